// Package catalogtest builds deterministic catalogs for tests.
package catalogtest

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// Generate returns a catalog of n books. Every ninth book (index 0, 9, 18...)
// carries genre "g1", all books carry "g2", and authors rotate over a1..a3.
func Generate(n, pageSize int) *catalog.Catalog {
	books := make([]catalog.Book, 0, n)
	for i := 0; i < n; i++ {
		genres := []string{"g2"}
		if i%9 == 0 {
			genres = append([]string{"g1"}, genres...)
		}
		books = append(books, catalog.Book{
			ID:          fmt.Sprintf("b%02d", i+1),
			Title:       fmt.Sprintf("Book Number %d", i+1),
			Author:      fmt.Sprintf("a%d", i%3+1),
			Image:       fmt.Sprintf("https://img.example/%d.jpg", i+1),
			Description: fmt.Sprintf("Description of book %d", i+1),
			Published:   time.Date(1990+i%30, time.June, 1, 0, 0, 0, 0, time.UTC),
			Genres:      genres,
		})
	}

	return &catalog.Catalog{
		Books: books,
		Authors: map[string]string{
			"a1": "Ada Lovelace",
			"a2": "Grace Hopper",
			"a3": "Edsger Dijkstra",
		},
		Genres: map[string]string{
			"g1": "Fantasy",
			"g2": "Fiction",
		},
		PageSize: pageSize,
	}
}

// IDs extracts book identifiers in order.
func IDs(books []catalog.Book) []string {
	ids := make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}
