package catalog

import (
	"sort"
	"strings"
	"time"
)

// DefaultPageSize is the number of previews revealed per page.
const DefaultPageSize = 36

// Any is the criteria value that matches every author or genre.
const Any = "any"

// Book is a single catalog entry. Books are immutable once loaded.
type Book struct {
	ID          string
	Title       string
	Author      string
	Image       string
	Description string
	Published   time.Time
	Genres      []string
}

// HasGenre reports whether the book is tagged with the genre id.
func (b Book) HasGenre(id string) bool {
	for _, g := range b.Genres {
		if g == id {
			return true
		}
	}
	return false
}

// Catalog is the static data feed loaded once before the first render.
type Catalog struct {
	Books    []Book
	Authors  map[string]string
	Genres   map[string]string
	PageSize int
}

// AuthorName resolves an author id to its display name. Unknown ids yield "".
func (c *Catalog) AuthorName(id string) string {
	if c == nil {
		return ""
	}
	return c.Authors[id]
}

// GenreName resolves a genre id to its display name. Unknown ids yield "".
func (c *Catalog) GenreName(id string) string {
	if c == nil {
		return ""
	}
	return c.Genres[id]
}

// Option is one entry of a selector.
type Option struct {
	Value string
	Label string
}

// AuthorOptions returns the author selector entries, "All Authors" first.
func (c *Catalog) AuthorOptions() []Option {
	var authors map[string]string
	if c != nil {
		authors = c.Authors
	}
	return options("All Authors", authors)
}

// GenreOptions returns the genre selector entries, "All Genres" first.
func (c *Catalog) GenreOptions() []Option {
	var genres map[string]string
	if c != nil {
		genres = c.Genres
	}
	return options("All Genres", genres)
}

func options(anyLabel string, table map[string]string) []Option {
	result := make([]Option, 0, len(table)+1)
	for id, name := range table {
		result = append(result, Option{Value: id, Label: name})
	}
	sort.Slice(result, func(i, j int) bool {
		li, lj := strings.ToLower(result[i].Label), strings.ToLower(result[j].Label)
		if li == lj {
			return result[i].Value < result[j].Value
		}
		return li < lj
	})
	return append([]Option{{Value: Any, Label: anyLabel}}, result...)
}
