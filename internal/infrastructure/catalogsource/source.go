// Package catalogsource loads catalogs from YAML/JSON documents, SQLite
// databases or the embedded sample.
package catalogsource

import (
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
	"github.com/alexisbeaulieu97/bookshelf/internal/ports"
)

// Open picks a source for path by extension. An empty path selects the
// embedded sample catalog.
func Open(path string, log *logger.Logger) ports.CatalogSource {
	if path == "" {
		return Embedded(log)
	}
	if IsDatabase(path) {
		return NewSQLiteSource(path, log)
	}
	return NewYAMLSource(path, log)
}

// IsDatabase reports whether path names a SQLite catalog.
func IsDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}
