package ports

import (
	"context"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// CatalogSource loads the static catalog feed. Load is called once before
// the first render; the returned catalog is treated as immutable by every
// consumer.
//
// Error mapping expectations:
//   - missing files → *errors.ParseError wrapping fs.ErrNotExist
//   - malformed documents → *errors.ParseError or *errors.ValidationError
//   - database failures → *errors.SourceError
//   - context cancellation → ctx.Err()
type CatalogSource interface {
	// Load materialises the catalog. Implementations must respect ctx before
	// expensive work and never return a catalog with a nil book collection.
	Load(ctx context.Context) (*catalog.Catalog, error)

	// Name identifies the source in logs and error messages.
	Name() string
}
