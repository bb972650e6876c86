package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bookshelferrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	validYAML := `page_size: 2
authors:
  a1: Ada Lovelace
genres:
  g1: Fantasy
books:
  - id: b1
    title: The First
    author: a1
    image: https://img.example/1.jpg
    published: 2019-08-13T22:00:00.000Z
    genres: [g1]
  - id: b2
    title: The Second
    author: a1
    published: "2001-02-03"
`

	validJSON := `{
  "authors": {"a1": "Ada Lovelace"},
  "genres": {"g1": "Fantasy"},
  "books": [
    {"id": "b1", "title": "Json Book", "author": "a1", "published": "1999-03-04T00:00:00.000Z", "genres": ["g1"]}
  ]
}`

	invalidYAML := `books:
  - id: b1
    title: a: b
`

	missingBooks := `authors:
  a1: Ada Lovelace
`

	badDate := `books:
  - id: b1
    title: Dated
    published: last tuesday
`

	duplicate := `books:
  - id: b1
    title: One
    published: "2000"
  - id: b1
    title: Two
    published: "2001"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *CatalogDocument, err error)
	}{
		{
			name:     "valid yaml catalog is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *CatalogDocument, err error) {
				require.NoError(t, err)
				require.Equal(t, 2, doc.PageSize)
				require.Len(t, doc.Books, 2)
				require.Equal(t, "b1", doc.Books[0].ID)
				require.Equal(t, []string{"g1"}, doc.Books[0].Genres)
				require.Equal(t, "Ada Lovelace", doc.Authors["a1"])
			},
		},
		{
			name:     "json catalogs decode through yaml",
			contents: validJSON,
			assert: func(t *testing.T, doc *CatalogDocument, err error) {
				require.NoError(t, err)
				require.Len(t, doc.Books, 1)
				require.Equal(t, "Json Book", doc.Books[0].Title)
			},
		},
		{
			name:     "syntax errors carry a line number",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *CatalogDocument, err error) {
				require.Error(t, err)
				var parseErr *bookshelferrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "missing book collection fails",
			contents: missingBooks,
			assert: func(t *testing.T, doc *CatalogDocument, err error) {
				var valErr *bookshelferrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "books", valErr.Field)
			},
		},
		{
			name:     "unparseable publication date fails",
			contents: badDate,
			assert: func(t *testing.T, doc *CatalogDocument, err error) {
				var valErr *bookshelferrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "books[0].published", valErr.Field)
				require.Contains(t, valErr.Message, "published_date")
			},
		},
		{
			name:     "duplicate identifiers fail",
			contents: duplicate,
			assert: func(t *testing.T, doc *CatalogDocument, err error) {
				var valErr *bookshelferrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "books[1].id", valErr.Field)
				require.Contains(t, valErr.Message, "duplicate book id")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))
			doc, err := ParseCatalog(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseCatalog_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *bookshelferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.True(t, os.IsNotExist(parseErr.Err))
}

func TestParsePublished(t *testing.T) {
	t.Parallel()

	for input, year := range map[string]int{
		"2019-08-13T22:00:00.000Z":  2019,
		"2019-08-13T22:00:00+02:00": 2019,
		"1984-01-01T00:00:00":       1984,
		" 1965-08-01 ":              1965,
		"1851":                      1851,
	} {
		got, err := ParsePublished(input)
		require.NoError(t, err, input)
		require.Equal(t, year, got.Year(), input)
	}

	_, err := ParsePublished("soon")
	require.Error(t, err)
}

func TestUnresolvedReferences(t *testing.T) {
	t.Parallel()

	doc := &CatalogDocument{
		Authors: map[string]string{"a1": "Known"},
		Genres:  map[string]string{"g1": "Known"},
		Books: []BookEntry{
			{ID: "b1", Author: "a1", Genres: []string{"g1", "g9"}},
			{ID: "b2", Author: "a7", Genres: []string{"g9"}},
			{ID: "b3", Author: "a7"},
		},
	}

	require.Equal(t, []string{
		`book b1: unknown genre "g9"`,
		`book b2: unknown author "a7"`,
	}, doc.UnresolvedReferences())
}

func TestMarshalCatalogRoundTrip(t *testing.T) {
	t.Parallel()

	doc := &CatalogDocument{
		Authors: map[string]string{"a1": "Ada"},
		Books:   []BookEntry{{ID: "b1", Title: "T", Author: "a1", Published: time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC).Format("2006-01-02")}},
	}
	data, err := MarshalCatalog(doc)
	require.NoError(t, err)

	parsed, err := ParseCatalogBytes("memory", data)
	require.NoError(t, err)
	require.Equal(t, doc.Books, parsed.Books)
}

func TestParseCatalogBytes_EmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := ParseCatalogBytes("blank.yaml", []byte("\n\n"))
	var parseErr *bookshelferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, errEmptyDocument)
	require.Equal(t, "blank.yaml", parseErr.Path)
}

func TestMarshalCatalog_TwoSpaceIndent(t *testing.T) {
	t.Parallel()

	data, err := MarshalCatalog(&CatalogDocument{Books: []BookEntry{{ID: "b1", Title: "T", Published: "2001"}}})
	require.NoError(t, err)
	require.Contains(t, string(data), "books:\n  - id: b1\n    title: T\n")
}
