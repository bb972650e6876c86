package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog/catalogtest"
	"github.com/alexisbeaulieu97/bookshelf/internal/config"
	"github.com/alexisbeaulieu97/bookshelf/internal/infrastructure/catalogsource"
)

// executeCommand runs the root command and returns stdout and stderr
// separately so log lines never leak into JSON output.
func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// writeCatalogFile stores a generated catalog of n books as YAML.
func writeCatalogFile(t *testing.T, dir string, n int) string {
	t.Helper()
	data, err := config.MarshalCatalog(catalogsource.FromCatalog(catalogtest.Generate(n, 0)))
	require.NoError(t, err)

	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeSettingsFile(t *testing.T, home, contents string) {
	t.Helper()
	path := filepath.Join(home, ".bookshelf", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
