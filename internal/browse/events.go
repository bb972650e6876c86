package browse

import "github.com/alexisbeaulieu97/bookshelf/internal/catalog"

// Event is a discrete trigger from a presentation surface.
type Event interface {
	eventName() string
}

type (
	// OpenSearch shows the search overlay.
	OpenSearch struct{}
	// CloseSearch cancels the search overlay.
	CloseSearch struct{}
	// SubmitSearch applies new filter criteria.
	SubmitSearch struct {
		Criteria catalog.Criteria
	}
	// OpenSettings shows the settings overlay.
	OpenSettings struct{}
	// CloseSettings cancels the settings overlay.
	CloseSettings struct{}
	// SubmitTheme applies a theme choice.
	SubmitTheme struct {
		Theme Theme
	}
	// RequestNextPage reveals the next page of matches.
	RequestNextPage struct{}
	// PreviewSelected carries the identifier of a clicked preview.
	PreviewSelected struct {
		ID string
	}
	// CloseDetail hides the detail overlay.
	CloseDetail struct{}
)

func (OpenSearch) eventName() string      { return "open_search" }
func (CloseSearch) eventName() string     { return "close_search" }
func (SubmitSearch) eventName() string    { return "submit_search" }
func (OpenSettings) eventName() string    { return "open_settings" }
func (CloseSettings) eventName() string   { return "close_settings" }
func (SubmitTheme) eventName() string     { return "submit_theme" }
func (RequestNextPage) eventName() string { return "request_next_page" }
func (PreviewSelected) eventName() string { return "preview_selected" }
func (CloseDetail) eventName() string     { return "close_detail" }

// EventName returns the stable log name of an event.
func EventName(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.eventName()
}
