// Package errors holds the typed failures raised while loading a catalog
// or the settings that point at it.
package errors

import (
	"errors"
	"fmt"
)

// Category sentinels. Every typed error matches exactly one of them with
// errors.Is, so callers can branch without a type switch.
var (
	ErrParse   = errors.New("cannot decode")
	ErrInvalid = errors.New("invalid document")
	ErrSource  = errors.New("catalog source unavailable")
)

// ParseError is a document that could not be read or decoded. Line is 1-based
// and zero when the decoder did not report one.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError wraps a read or decode failure of the document at path.
func NewParseError(path string, line int, err error) error {
	pe := &ParseError{Path: path, Line: line, Err: err}
	if err != nil {
		pe.Message = err.Error()
	}
	return pe
}

// Location renders "path:line", or just the path when the line is unknown.
func (e *ParseError) Location() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return e.Path
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrParse, e.Location(), e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ValidationError is a decoded document that breaks a rule. Field uses the
// document's own spelling, e.g. "books[3].published".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError reports a rule broken by field.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalid, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalid, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// SourceError is a catalog backend, such as a database, that failed while
// being read or written.
type SourceError struct {
	Source string
	Err    error
}

// NewSourceError wraps a backend failure for source.
func NewSourceError(source string, err error) error {
	return &SourceError{Source: source, Err: err}
}

func (e *SourceError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", ErrSource, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrSource, e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrSource }
