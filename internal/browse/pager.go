package browse

import (
	"fmt"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// ButtonState drives the "show more" affordance.
type ButtonState struct {
	Enabled   bool
	Remaining int
}

// Label is the button caption, e.g. "Show more (6)".
func (b ButtonState) Label() string {
	return fmt.Sprintf("Show more (%d)", b.Remaining)
}

// Pager reveals Matches one page at a time.
type Pager struct {
	store    *catalog.Store
	renderer Renderer
}

// NewPager binds the pager to a store and a renderer.
func NewPager(store *catalog.Store, renderer Renderer) *Pager {
	return &Pager{store: store, renderer: renderer}
}

// Reset moves the cursor back to the first page and replaces the visible
// list with it.
func (p *Pager) Reset() {
	p.store.SetPage(1)
	matches := p.store.Matches()
	p.renderer.Render(Previews(p.store.Catalog(), matches, p.store.PageSize()), Replace)
}

// Advance appends the next page of matches. Once everything is revealed it
// renders nothing and keeps the cursor where it is.
func (p *Pager) Advance() bool {
	if p.RemainingCount() == 0 {
		return false
	}

	matches := p.store.Matches()
	size := p.store.PageSize()
	start := p.store.Page() * size
	end := start + size
	if end > len(matches) {
		end = len(matches)
	}

	p.renderer.Render(Previews(p.store.Catalog(), matches[start:end], end-start), Append)
	p.store.SetPage(p.store.Page() + 1)
	return true
}

// RemainingCount is the number of matches not yet revealed.
func (p *Pager) RemainingCount() int {
	remaining := len(p.store.Matches()) - p.store.Page()*p.store.PageSize()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Visible is the number of matches currently revealed.
func (p *Pager) Visible() int {
	shown := p.store.Page() * p.store.PageSize()
	if total := len(p.store.Matches()); shown > total {
		return total
	}
	return shown
}

// Button reports the state of the "show more" affordance.
func (p *Pager) Button() ButtonState {
	remaining := p.RemainingCount()
	return ButtonState{Enabled: remaining > 0, Remaining: remaining}
}
