package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type previewView struct {
	ID     string
	Title  string
	Author string
	Image  string
	URL    string
}

type buttonView struct {
	Label   string
	Enabled bool
	URL     string
}

type detailView struct {
	ID          string
	Title       string
	Subtitle    string
	Image       string
	Description template.HTML
	CloseURL    string
}

type pageView struct {
	Theme     string
	Night     bool
	Style     template.CSS
	Title     string
	Authors   []optionView
	Genres    []optionView
	Previews  []previewView
	Shown     int
	Total     int
	Button    buttonView
	NoResults bool
	Detail    *detailView
	Return    string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := parseQuery(r.URL.Query())
	app, list, err := s.session(r, q)
	if err != nil {
		s.fail(w, err)
		return
	}

	instruction := app.Theme()
	btn := app.Button()
	view := pageView{
		Theme:     instruction.Theme.String(),
		Night:     instruction.Theme == browse.Night,
		Style:     paletteStyle(instruction.Palette),
		Title:     q.Criteria.Title,
		Authors:   selectOptions(app.Catalog().AuthorOptions(), q.Criteria.Author),
		Genres:    selectOptions(app.Catalog().GenreOptions(), q.Criteria.Genre),
		Shown:     len(list.Items()),
		Total:     len(app.Store().Matches()),
		NoResults: app.NoResults(),
		Return:    q.URL(),
		Button: buttonView{
			Label:   btn.Label(),
			Enabled: btn.Enabled,
			URL:     "#",
		},
	}
	if btn.Enabled {
		view.Button.URL = q.withBook("").withPages(app.Store().Page() + 1).URL()
	}

	browsing := q.withBook("")
	browsing.Pages = app.Store().Page()
	for _, p := range list.Items() {
		view.Previews = append(view.Previews, previewView{
			ID:     p.ID,
			Title:  p.Title,
			Author: p.Author,
			Image:  p.Image,
			URL:    browsing.withBook(p.ID).URL(),
		})
	}

	if d, ok := app.Detail(); ok {
		dv, err := s.detailView(d)
		if err != nil {
			s.fail(w, err)
			return
		}
		dv.CloseURL = browsing.URL()
		view.Detail = dv
	}

	s.render(w, r, "page", view)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	q := parseQuery(r.URL.Query()).withBook(chi.URLParam(r, "id"))
	app, _, err := s.session(r, q)
	if err != nil {
		s.fail(w, err)
		return
	}

	d, ok := app.Detail()
	if !ok {
		http.Error(w, fmt.Sprintf("book %q not found", q.Book), http.StatusNotFound)
		return
	}

	dv, err := s.detailView(d)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.render(w, r, "detail", dv)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	theme, err := browse.ParseTheme(r.PostForm.Get("theme"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    theme.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, safeReturn(r.PostForm.Get("return")), http.StatusSeeOther)
}

type apiBook struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Image     string   `json:"image,omitempty"`
	Published string   `json:"published"`
	Genres    []string `json:"genres"`
}

type apiResponse struct {
	Criteria  catalogCriteria `json:"criteria"`
	Total     int             `json:"total"`
	Page      int             `json:"page"`
	Remaining int             `json:"remaining"`
	Books     []apiBook       `json:"books"`
}

type catalogCriteria struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

func (s *Server) handleAPIBooks(w http.ResponseWriter, r *http.Request) {
	q := parseQuery(r.URL.Query()).withBook("")
	app, list, err := s.session(r, q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	cat := app.Catalog()
	resp := apiResponse{
		Criteria:  catalogCriteria{Title: q.Criteria.Title, Author: q.Criteria.Author, Genre: q.Criteria.Genre},
		Total:     len(app.Store().Matches()),
		Page:      app.Store().Page(),
		Remaining: app.RemainingCount(),
		Books:     make([]apiBook, 0, len(list.Items())),
	}
	for _, p := range list.Items() {
		b, ok := app.Store().Lookup(p.ID)
		if !ok {
			continue
		}
		resp.Books = append(resp.Books, apiBook{
			ID:        b.ID,
			Title:     b.Title,
			Author:    cat.AuthorName(b.Author),
			Image:     b.Image,
			Published: b.Published.UTC().Format(time.RFC3339),
			Genres:    genreNames(cat, b),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) detailView(d browse.Detail) (*detailView, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(d.Description), &buf); err != nil {
		return nil, fmt.Errorf("rendering description of %s: %w", d.ID, err)
	}
	return &detailView{
		ID:          d.ID,
		Title:       d.Title,
		Subtitle:    d.Subtitle,
		Image:       d.Image,
		Description: template.HTML(buf.String()),
	}, nil
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", colorSchemeHint)
	w.Header().Add("Vary", colorSchemeHint)
	w.Header().Add("Vary", "Cookie")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.log.Error(err, "request failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// paletteStyle renders the theme as inline custom properties.
func paletteStyle(p browse.Palette) template.CSS {
	props := p.Properties()
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	decls := make([]string, 0, len(names))
	for _, name := range names {
		decls = append(decls, name+": "+props[name])
	}
	return template.CSS(strings.Join(decls, "; "))
}

func selectOptions(opts []catalog.Option, selected string) []optionView {
	views := make([]optionView, len(opts))
	for i, o := range opts {
		views[i] = optionView{Value: o.Value, Label: o.Label, Selected: o.Value == selected}
	}
	return views
}

func genreNames(cat *catalog.Catalog, b catalog.Book) []string {
	names := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		if name := cat.GenreName(g); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// safeReturn only allows redirects back into this site.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
