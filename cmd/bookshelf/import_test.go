package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImportCommand_YAMLToDatabase(t *testing.T) {
	home := setupHome(t)
	src := writeCatalogFile(t, home, 42)
	dest := filepath.Join(home, "data", "books.db")

	stdout, _, err := executeCommand("import", src, dest)
	require.NoError(t, err)
	require.Contains(t, stdout, "Imported 42 books from "+src+" into "+dest)

	listed, _, err := executeCommand("list", "--catalog", dest, "--json", "--all")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(listed), &payload))
	require.Equal(t, 42, payload.Count)
	require.Equal(t, "b01", payload.Books[0].ID)
	require.Equal(t, "b42", payload.Books[41].ID)
	require.Equal(t, "Ada Lovelace", payload.Books[0].Author)
}

func TestImportCommand_DatabaseToYAML(t *testing.T) {
	home := setupHome(t)
	src := writeCatalogFile(t, home, 8)
	db := filepath.Join(home, "books.sqlite")
	out := filepath.Join(home, "export", "books.yaml")

	_, _, err := executeCommand("import", src, db)
	require.NoError(t, err)
	_, _, err = executeCommand("import", db, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "title: Book Number 8")

	stdout, _, err := executeCommand("show", "b08", "--catalog", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Grace Hopper (1997)")
}

func TestImportCommand_BundledSample(t *testing.T) {
	home := setupHome(t)
	dest := filepath.Join(home, "sample.db")

	stdout, _, err := executeCommand("import", "sample", dest)
	require.NoError(t, err)
	require.Contains(t, stdout, "from embedded:sample")

	shown, _, err := executeCommand("show", "bk001", "--catalog", dest)
	require.NoError(t, err)
	require.Contains(t, shown, "Pride and Prejudice")
	require.Contains(t, shown, "Jane Austen (1813)")
}

func TestImportCommand_MissingSource(t *testing.T) {
	home := setupHome(t)

	_, _, err := executeCommand("import", filepath.Join(home, "absent.yaml"), filepath.Join(home, "out.db"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to import")

	_, statErr := os.Stat(filepath.Join(home, "out.db"))
	require.True(t, os.IsNotExist(statErr))
}

func TestImportCommand_DryRun(t *testing.T) {
	home := setupHome(t)
	src := writeCatalogFile(t, home, 5)
	dest := filepath.Join(home, "books.db")

	stdout, _, err := executeCommand("import", src, dest, "--dry-run")
	require.NoError(t, err)
	require.Regexp(t, `\n\+\s+title: Book Number 5\n`, stdout)
	require.Contains(t, stdout, "rerun without --dry-run")
	_, statErr := os.Stat(dest)
	require.True(t, os.IsNotExist(statErr))

	_, _, err = executeCommand("import", src, dest)
	require.NoError(t, err)

	stdout, _, err = executeCommand("import", src, dest, "--dry-run")
	require.NoError(t, err)
	require.Equal(t, "No changes: "+dest+" already matches the source.\n", stdout)
}
