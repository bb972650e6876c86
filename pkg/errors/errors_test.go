package errors

import (
	stdErrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("catalog.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "catalog.yaml:12", parseErr.Location())
	require.ErrorIs(t, err, underlying)
	require.ErrorIs(t, err, ErrParse)
	require.NotErrorIs(t, err, ErrInvalid)
	require.Equal(t, "cannot decode: catalog.yaml:12: unexpected token", err.Error())

	noLine := NewParseError("catalog.yaml", 0, stdErrors.New("boom"))
	require.Equal(t, "cannot decode: catalog.yaml: boom", noLine.Error())
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("books[3].id", `duplicate book id "b1"`, nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "books[3].id", validationErr.Field)
	require.ErrorIs(t, err, ErrInvalid)
	require.Equal(t, `invalid document: books[3].id: duplicate book id "b1"`, err.Error())

	require.Equal(t, "invalid document: catalog is nil", NewValidationError("", "catalog is nil", nil).Error())
}

func TestSourceError(t *testing.T) {
	t.Parallel()

	err := NewSourceError("/tmp/catalog.db", os.ErrNotExist)

	var sourceErr *SourceError
	require.ErrorAs(t, err, &sourceErr)
	require.Equal(t, "/tmp/catalog.db", sourceErr.Source)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorIs(t, err, ErrSource)
	require.NotErrorIs(t, err, ErrParse)

	// Wrapping keeps the category visible.
	wrapped := fmt.Errorf("loading: %w", err)
	require.ErrorIs(t, wrapped, ErrSource)
}
