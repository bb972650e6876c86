package catalog

import (
	"errors"
)

// ErrSourceRequired is returned when the backing book collection is absent.
var ErrSourceRequired = errors.New("catalog: source required")

// Store holds the full catalog, the current matches and the page cursor.
// It is owned by a single controller and is not safe for concurrent use.
type Store struct {
	catalog  *Catalog
	matches  []Book
	page     int
	pageSize int
}

// NewStore wraps a loaded catalog. Matches start as the full collection.
func NewStore(cat *Catalog) (*Store, error) {
	if cat == nil || cat.Books == nil {
		return nil, ErrSourceRequired
	}

	size := cat.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	return &Store{
		catalog:  cat,
		matches:  cat.Books,
		page:     1,
		pageSize: size,
	}, nil
}

// Catalog returns the backing catalog.
func (s *Store) Catalog() *Catalog {
	return s.catalog
}

// Books returns the full collection.
func (s *Store) Books() []Book {
	return s.catalog.Books
}

// Matches returns the current filtered view.
func (s *Store) Matches() []Book {
	return s.matches
}

// Page returns the page cursor, always >= 1.
func (s *Store) Page() int {
	return s.page
}

// PageSize returns the effective page size.
func (s *Store) PageSize() int {
	return s.pageSize
}

// SetMatches replaces the filtered view wholesale and resets the cursor.
func (s *Store) SetMatches(books []Book) {
	if books == nil {
		books = []Book{}
	}
	s.matches = books
	s.page = 1
}

// SetPage moves the cursor. Values below 1 are clamped.
func (s *Store) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

// Lookup finds a book in the full collection by identifier.
func (s *Store) Lookup(id string) (Book, bool) {
	for _, b := range s.catalog.Books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}
