package browse

import (
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
)

// Options configures an App.
type Options struct {
	// PrefersDark is the host's colour-scheme signal used for the initial theme.
	PrefersDark bool
	Logger      *logger.Logger
}

// App is the top-level controller. It owns the store and every controller
// and applies one event at a time; callers must serialize Dispatch calls.
type App struct {
	store    *catalog.Store
	renderer Renderer
	pager    *Pager
	detail   *DetailController
	theme    *ThemeController
	search   Overlay
	settings Overlay
	criteria catalog.Criteria
	log      *logger.Logger
}

// New builds the controller graph and renders the first page.
func New(cat *catalog.Catalog, renderer Renderer, opts Options) (*App, error) {
	store, err := catalog.NewStore(cat)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	app := &App{
		store:    store,
		renderer: renderer,
		pager:    NewPager(store, renderer),
		detail:   NewDetailController(store),
		theme:    NewThemeController(opts.PrefersDark),
		criteria: catalog.Criteria{}.Normalized(),
		log:      log,
	}
	app.pager.Reset()

	log.WithFields(map[string]any{
		"books":     len(cat.Books),
		"page_size": store.PageSize(),
		"theme":     app.theme.Current().String(),
	}).Debug("browser initialised")

	return app, nil
}

// Dispatch applies a single event.
func (a *App) Dispatch(ev Event) {
	switch e := ev.(type) {
	case OpenSearch:
		a.search.Open()
	case CloseSearch:
		a.search.Close()
	case SubmitSearch:
		a.applySearch(e.Criteria)
	case OpenSettings:
		a.settings.Open()
	case CloseSettings:
		a.settings.Close()
	case SubmitTheme:
		a.theme.Apply(e.Theme)
		a.settings.Close()
	case RequestNextPage:
		a.pager.Advance()
	case PreviewSelected:
		if !a.detail.Select(e) {
			a.log.WithFields(map[string]any{"id": e.ID}).Debug("preview not in catalog")
		}
	case CloseDetail:
		a.detail.Close()
	default:
		return
	}

	a.log.WithFields(map[string]any{
		"event":     EventName(ev),
		"matches":   len(a.store.Matches()),
		"page":      a.store.Page(),
		"remaining": a.pager.RemainingCount(),
	}).Debug("event applied")
}

func (a *App) applySearch(c catalog.Criteria) {
	a.criteria = c.Normalized()
	a.store.SetMatches(catalog.Filter(a.store.Books(), a.criteria))
	a.pager.Reset()
	a.search.Close()
}

// Store exposes the catalog store.
func (a *App) Store() *catalog.Store {
	return a.store
}

// Catalog returns the loaded catalog.
func (a *App) Catalog() *catalog.Catalog {
	return a.store.Catalog()
}

// Criteria returns the active filter criteria.
func (a *App) Criteria() catalog.Criteria {
	return a.criteria
}

// Button returns the "show more" state.
func (a *App) Button() ButtonState {
	return a.pager.Button()
}

// RemainingCount returns the number of unrevealed matches.
func (a *App) RemainingCount() int {
	return a.pager.RemainingCount()
}

// NoResults reports that the active criteria matched nothing.
func (a *App) NoResults() bool {
	return len(a.store.Matches()) == 0
}

// Overlays returns the open/closed state of all overlays.
func (a *App) Overlays() OverlayState {
	return OverlayState{
		Search:   a.search.IsOpen(),
		Settings: a.settings.IsOpen(),
		Detail:   a.detail.IsOpen(),
	}
}

// Detail returns the populated detail overlay, if open.
func (a *App) Detail() (Detail, bool) {
	return a.detail.Active()
}

// Theme returns the colours to apply.
func (a *App) Theme() ThemeInstruction {
	return a.theme.Instruction()
}
