package browse

import (
	"fmt"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// Detail is the populated content of the detail overlay.
type Detail struct {
	ID          string
	Image       string
	Title       string
	Subtitle    string
	Description string
}

// DetailController resolves selected previews back to books.
type DetailController struct {
	store   *catalog.Store
	overlay Overlay
	active  Detail
}

// NewDetailController creates a closed detail overlay.
func NewDetailController(store *catalog.Store) *DetailController {
	return &DetailController{store: store}
}

// Select opens the overlay for the selected book. Unknown identifiers leave
// the overlay untouched and return false.
func (d *DetailController) Select(ev PreviewSelected) bool {
	book, ok := d.store.Lookup(ev.ID)
	if !ok {
		return false
	}

	d.active = Detail{
		ID:          book.ID,
		Image:       book.Image,
		Title:       book.Title,
		Subtitle:    Subtitle(d.store.Catalog(), book),
		Description: book.Description,
	}
	d.overlay.Open()
	return true
}

// Close hides the overlay. Closing a closed overlay is a no-op.
func (d *DetailController) Close() {
	d.overlay.Close()
}

// IsOpen reports the overlay state.
func (d *DetailController) IsOpen() bool {
	return d.overlay.IsOpen()
}

// Active returns the populated fields and whether the overlay is open.
func (d *DetailController) Active() (Detail, bool) {
	if !d.overlay.IsOpen() {
		return Detail{}, false
	}
	return d.active, true
}

// Subtitle composes "<author> (<year>)".
func Subtitle(cat *catalog.Catalog, book catalog.Book) string {
	return fmt.Sprintf("%s (%d)", cat.AuthorName(book.Author), book.Published.Year())
}
