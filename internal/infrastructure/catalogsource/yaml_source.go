package catalogsource

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/config"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
	"github.com/alexisbeaulieu97/bookshelf/internal/ports"
)

// YAMLSource reads a YAML or JSON catalog document. When data is set the
// document is decoded from memory instead of path.
type YAMLSource struct {
	path   string
	data   []byte
	logger *logger.Logger
}

// NewYAMLSource returns a source backed by the document at path.
func NewYAMLSource(path string, log *logger.Logger) *YAMLSource {
	return &YAMLSource{path: path, logger: log}
}

// Name implements ports.CatalogSource.
func (s *YAMLSource) Name() string {
	return s.path
}

// Load implements ports.CatalogSource.
func (s *YAMLSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := s.logger.WithFields(map[string]any{"source": s.path})
	log.Debug("loading catalog document")

	var (
		doc *config.CatalogDocument
		err error
	)
	if s.data != nil {
		doc, err = config.ParseCatalogBytes(s.path, s.data)
	} else {
		doc, err = config.ParseCatalog(s.path)
	}
	if err != nil {
		log.Error(err, "catalog document rejected")
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if refs := doc.UnresolvedReferences(); len(refs) > 0 {
		log.WithFields(map[string]any{"references": refs}).Warn("catalog has unresolved references")
	}

	cat, err := ToCatalog(doc)
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{
		"books":   len(cat.Books),
		"authors": len(cat.Authors),
		"genres":  len(cat.Genres),
	}).Info("catalog loaded")
	return cat, nil
}

// ToCatalog maps a validated document onto the domain catalog.
func ToCatalog(doc *config.CatalogDocument) (*catalog.Catalog, error) {
	if doc == nil {
		return nil, catalog.ErrSourceRequired
	}

	books := make([]catalog.Book, len(doc.Books))
	for i, entry := range doc.Books {
		published, err := config.ParsePublished(entry.Published)
		if err != nil {
			return nil, err
		}
		books[i] = catalog.Book{
			ID:          entry.ID,
			Title:       entry.Title,
			Author:      entry.Author,
			Image:       entry.Image,
			Description: strings.TrimSpace(entry.Description),
			Published:   published,
			Genres:      append([]string(nil), entry.Genres...),
		}
	}

	return &catalog.Catalog{
		Books:    books,
		Authors:  cloneMap(doc.Authors),
		Genres:   cloneMap(doc.Genres),
		PageSize: doc.PageSize,
	}, nil
}

// FromCatalog is the inverse of ToCatalog. Publication dates are written
// as RFC3339 timestamps that keep their UTC offset.
func FromCatalog(cat *catalog.Catalog) *config.CatalogDocument {
	if cat == nil {
		return nil
	}

	entries := make([]config.BookEntry, len(cat.Books))
	for i, b := range cat.Books {
		entries[i] = config.BookEntry{
			ID:          b.ID,
			Title:       b.Title,
			Author:      b.Author,
			Image:       b.Image,
			Description: b.Description,
			Published:   b.Published.Format(publishedLayout),
			Genres:      append([]string(nil), b.Genres...),
		}
	}

	return &config.CatalogDocument{
		PageSize: cat.PageSize,
		Authors:  cloneMap(cat.Authors),
		Genres:   cloneMap(cat.Genres),
		Books:    entries,
	}
}

func cloneMap(src map[string]string) map[string]string {
	clone := make(map[string]string, len(src))
	for k, v := range src {
		clone[k] = v
	}
	return clone
}

var _ ports.CatalogSource = (*YAMLSource)(nil)
