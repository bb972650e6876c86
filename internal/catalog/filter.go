package catalog

import "strings"

// Criteria are the user-supplied filter predicates. Empty fields and the
// Any value match everything.
type Criteria struct {
	Title  string
	Author string
	Genre  string
}

// IsZero reports whether the criteria match every book.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Title) == "" && isAny(c.Author) && isAny(c.Genre)
}

// Normalized returns the criteria with the selectors trimmed and empty ones
// replaced by Any. The title is kept as typed: surrounding spaces are part
// of the substring.
func (c Criteria) Normalized() Criteria {
	return Criteria{Title: c.Title, Author: selector(c.Author), Genre: selector(c.Genre)}
}

// Match reports whether a single book satisfies all three predicates. A
// blank title matches everything; otherwise the lowercased title must
// contain the lowercased criterion, spaces included.
func (c Criteria) Match(b Book) bool {
	if strings.TrimSpace(c.Title) != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(c.Title)) {
		return false
	}
	if author := selector(c.Author); author != Any && b.Author != author {
		return false
	}
	if genre := selector(c.Genre); genre != Any && !b.HasGenre(genre) {
		return false
	}
	return true
}

// Filter returns the books matching the criteria in their original order.
// The input slice is never modified.
func Filter(books []Book, c Criteria) []Book {
	result := make([]Book, 0, len(books))
	for _, b := range books {
		if c.Match(b) {
			result = append(result, b)
		}
	}
	return result
}

func isAny(v string) bool {
	return selector(v) == Any
}

// selector trims an author or genre id and maps blank to Any.
func selector(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return Any
	}
	return v
}
