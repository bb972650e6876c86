package browser

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
)

// Options configures the terminal browser.
type Options struct {
	PrefersDark bool
	UseUnicode  bool
	Logger      *logger.Logger
}

// Model is the terminal browser. All catalog state lives in the browse.App;
// the model only tracks what the terminal needs on top of it.
type Model struct {
	// Core state
	app  *browse.App
	list *browse.ListRenderer

	// Components
	keys   keyMap
	help   help.Model
	title  textinput.Model
	reader viewport.Model

	// Search form state
	focus     searchField
	authors   []catalog.Option
	genres    []catalog.Option
	authorIdx int
	genreIdx  int

	// Settings form state
	themeChoice browse.Theme

	// List state
	cursor int
	offset int

	// Status line
	status    string
	statusSeq int

	// Dimensions
	width  int
	height int

	useUnicode bool
}

// NewModel builds the browser over cat. It fails only when the catalog is
// missing, exactly like browse.New.
func NewModel(cat *catalog.Catalog, opts Options) (Model, error) {
	list := &browse.ListRenderer{}
	app, err := browse.New(cat, list, browse.Options{
		PrefersDark: opts.PrefersDark,
		Logger:      opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}

	title := textinput.New()
	title.Placeholder = "any title"
	title.Prompt = ""
	title.CharLimit = 120
	title.Width = 40

	m := Model{
		app:         app,
		list:        list,
		keys:        newKeyMap(),
		help:        help.New(),
		title:       title,
		reader:      viewport.New(0, 0),
		authors:     cat.AuthorOptions(),
		genres:      cat.GenreOptions(),
		themeChoice: app.Theme().Theme,
		useUnicode:  opts.UseUnicode,
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Bookshelf")
}

// App exposes the underlying controller.
func (m Model) App() *browse.App {
	return m.app
}

// layer is the surface that currently receives keys.
type layer int

const (
	layerList layer = iota
	layerSearch
	layerSettings
	layerDetail
)

// activeLayer picks the topmost open overlay. Overlays are independent, so
// more than one may be open; the detail overlay wins, then settings.
func (m Model) activeLayer() layer {
	state := m.app.Overlays()
	switch {
	case state.Detail:
		return layerDetail
	case state.Settings:
		return layerSettings
	case state.Search:
		return layerSearch
	default:
		return layerList
	}
}

// selectedPreview returns the preview under the cursor.
func (m Model) selectedPreview() (browse.Preview, bool) {
	items := m.list.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return browse.Preview{}, false
	}
	return items[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	items := len(m.list.Items())
	if items == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= items {
		m.cursor = items - 1
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	rows := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// listHeight is the number of preview rows that fit between header and footer.
func (m Model) listHeight() int {
	rows := m.height - chromeHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// resetSearchForm clears every field and puts focus back on the title.
func (m *Model) resetSearchForm() {
	m.title.Reset()
	m.authorIdx = 0
	m.genreIdx = 0
	m.focus = fieldTitle
}

func (m Model) criteria() catalog.Criteria {
	c := catalog.Criteria{Title: m.title.Value(), Author: catalog.Any, Genre: catalog.Any}
	if m.authorIdx < len(m.authors) {
		c.Author = m.authors[m.authorIdx].Value
	}
	if m.genreIdx < len(m.genres) {
		c.Genre = m.genres[m.genreIdx].Value
	}
	return c
}
