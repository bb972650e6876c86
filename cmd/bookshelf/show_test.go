package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowCommand_TextOutput(t *testing.T) {
	home := setupHome(t)
	path := writeCatalogFile(t, home, 12)

	stdout, _, err := executeCommand("show", "b02", "--catalog", path)
	require.NoError(t, err)
	require.Equal(t, "Book Number 2\n"+
		"Grace Hopper (1991)\n"+
		"Genres: Fiction\n"+
		"Image:  https://img.example/2.jpg\n"+
		"\nDescription of book 2\n", stdout)
}

func TestShowCommand_JSONOutput(t *testing.T) {
	home := setupHome(t)
	path := writeCatalogFile(t, home, 12)

	stdout, _, err := executeCommand("show", "b10", "--catalog", path, "--json")
	require.NoError(t, err)

	var payload showJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "b10", payload.ID)
	require.Equal(t, "Ada Lovelace (1999)", payload.Subtitle)
	require.Equal(t, []string{"Fantasy", "Fiction"}, payload.Genres)
}

func TestShowCommand_UnknownBook(t *testing.T) {
	home := setupHome(t)
	path := writeCatalogFile(t, home, 3)

	_, _, err := executeCommand("show", "nope", "--catalog", path)
	require.Error(t, err)

	var cmdErr *commandError
	require.True(t, errors.As(err, &cmdErr))
	require.Equal(t, "show", cmdErr.operation)
	require.Contains(t, err.Error(), `looking up book "nope"`)
	require.Contains(t, err.Error(), "Run 'bookshelf list'")
}

func TestShowCommand_RequiresID(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("show")
	require.Error(t, err)

	_, _, err = executeCommand("show", "  ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "book ID cannot be empty")
}
