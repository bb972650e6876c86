package config

import (
	"fmt"
	"strings"
	"time"
)

// CatalogDocument is the on-disk catalog feed. JSON documents decode through
// the same YAML decoder.
type CatalogDocument struct {
	PageSize int               `yaml:"page_size,omitempty" validate:"omitempty,min=1,max=500"`
	Authors  map[string]string `yaml:"authors" validate:"omitempty,dive,keys,required,endkeys,required"`
	Genres   map[string]string `yaml:"genres" validate:"omitempty,dive,keys,required,endkeys,required"`
	Books    []BookEntry       `yaml:"books" validate:"required,dive"`
}

// BookEntry is one book in a catalog document.
type BookEntry struct {
	ID          string   `yaml:"id" validate:"required"`
	Title       string   `yaml:"title" validate:"required"`
	Author      string   `yaml:"author,omitempty"`
	Image       string   `yaml:"image,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Published   string   `yaml:"published" validate:"required,published_date"`
	Genres      []string `yaml:"genres,omitempty"`
}

var publishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006",
}

// ParsePublished accepts RFC3339 timestamps, bare dates and bare years.
func ParsePublished(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised publication date %q", value)
}

// UnresolvedReferences lists author and genre ids used by books but missing
// from the lookup tables. They are not errors: names degrade to "".
func (d *CatalogDocument) UnresolvedReferences() []string {
	if d == nil {
		return nil
	}

	var refs []string
	seen := make(map[string]bool)
	for _, b := range d.Books {
		if b.Author != "" {
			if _, ok := d.Authors[b.Author]; !ok && !seen["author:"+b.Author] {
				seen["author:"+b.Author] = true
				refs = append(refs, fmt.Sprintf("book %s: unknown author %q", b.ID, b.Author))
			}
		}
		for _, g := range b.Genres {
			if _, ok := d.Genres[g]; !ok && !seen["genre:"+g] {
				seen["genre:"+g] = true
				refs = append(refs, fmt.Sprintf("book %s: unknown genre %q", b.ID, g))
			}
		}
	}
	return refs
}
