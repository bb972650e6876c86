package browse

import (
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// Target selects how rendered previews reach the visible list.
type Target int

const (
	// Replace discards the visible list before showing the new items.
	Replace Target = iota
	// Append adds the new items after the visible list.
	Append
)

func (t Target) String() string {
	if t == Append {
		return "append"
	}
	return "replace"
}

// Preview is the display element for one book in the list.
type Preview struct {
	ID     string
	Image  string
	Title  string
	Author string
}

// Renderer draws previews onto a presentation surface.
type Renderer interface {
	Render(items []Preview, into Target)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(items []Preview, into Target)

// Render implements Renderer.
func (f RendererFunc) Render(items []Preview, into Target) {
	f(items, into)
}

// Previews converts up to max books into display elements, in order.
func Previews(cat *catalog.Catalog, books []catalog.Book, max int) []Preview {
	if max > len(books) {
		max = len(books)
	}
	if max < 0 {
		max = 0
	}

	items := make([]Preview, 0, max)
	for _, b := range books[:max] {
		items = append(items, Preview{
			ID:     b.ID,
			Image:  b.Image,
			Title:  b.Title,
			Author: cat.AuthorName(b.Author),
		})
	}
	return items
}

// ListRenderer keeps the visible list in memory. Surfaces that redraw from
// state (the terminal and HTML browsers) read Items after each event.
type ListRenderer struct {
	items   []Preview
	renders int
}

// Render implements Renderer.
func (r *ListRenderer) Render(items []Preview, into Target) {
	r.renders++
	if into == Replace {
		r.items = append([]Preview(nil), items...)
		return
	}
	r.items = append(r.items, items...)
}

// Items returns the visible list.
func (r *ListRenderer) Items() []Preview {
	return r.items
}

// Renders returns how many render instructions were received.
func (r *ListRenderer) Renders() int {
	return r.renders
}
