package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

const (
	themeCookie     = "theme"
	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

// pageQuery is the browser state carried in the URL.
type pageQuery struct {
	Criteria catalog.Criteria
	Pages    int
	Book     string
}

func parseQuery(values url.Values) pageQuery {
	q := pageQuery{
		Criteria: catalog.Criteria{
			Title:  values.Get("title"),
			Author: values.Get("author"),
			Genre:  values.Get("genre"),
		}.Normalized(),
		Pages: 1,
		Book:  strings.TrimSpace(values.Get("book")),
	}
	if n, err := strconv.Atoi(values.Get("page")); err == nil && n > 1 {
		q.Pages = n
	}
	return q
}

// values encodes the query back, leaving out defaults.
func (q pageQuery) values() url.Values {
	v := url.Values{}
	if strings.TrimSpace(q.Criteria.Title) != "" {
		v.Set("title", q.Criteria.Title)
	}
	if q.Criteria.Author != catalog.Any {
		v.Set("author", q.Criteria.Author)
	}
	if q.Criteria.Genre != catalog.Any {
		v.Set("genre", q.Criteria.Genre)
	}
	if q.Pages > 1 {
		v.Set("page", strconv.Itoa(q.Pages))
	}
	if q.Book != "" {
		v.Set("book", q.Book)
	}
	return v
}

// URL renders the query as a path relative to the site root.
func (q pageQuery) URL() string {
	encoded := q.values().Encode()
	if encoded == "" {
		return "/"
	}
	return "/?" + encoded
}

func (q pageQuery) withPages(n int) pageQuery {
	q.Pages = n
	return q
}

func (q pageQuery) withBook(id string) pageQuery {
	q.Book = id
	return q
}

// prefersDark resolves the initial theme: an explicit cookie wins, then the
// configured theme, then the client hint.
func (s *Server) prefersDark(r *http.Request) bool {
	if c, err := r.Cookie(themeCookie); err == nil {
		if t, err := browse.ParseTheme(c.Value); err == nil {
			return t == browse.Night
		}
	}
	if t, err := browse.ParseTheme(s.cfg.Theme); err == nil {
		return t == browse.Night
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(colorSchemeHint)), "dark")
}

// session replays the query against a fresh App. The catalog is shared and
// read-only, so concurrent requests never share mutable state.
func (s *Server) session(r *http.Request, q pageQuery) (*browse.App, *browse.ListRenderer, error) {
	list := &browse.ListRenderer{}
	app, err := browse.New(s.catalog, list, browse.Options{
		PrefersDark: s.prefersDark(r),
		Logger:      s.log,
	})
	if err != nil {
		return nil, nil, err
	}

	if !q.Criteria.IsZero() {
		app.Dispatch(browse.SubmitSearch{Criteria: q.Criteria})
	}
	for page := 1; page < q.Pages && app.Button().Enabled; page++ {
		app.Dispatch(browse.RequestNextPage{})
	}
	if q.Book != "" {
		app.Dispatch(browse.PreviewSelected{ID: q.Book})
	}

	return app, list, nil
}
