package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
)

var (
	accentColor = lipgloss.Color("99")  // Purple
	mutedColor  = lipgloss.Color("245") // Gray
	alertColor  = lipgloss.Color("196") // Red
)

// chromeHeight is the number of lines taken by header and footer.
const chromeHeight = 10

// styles is the style sheet for one palette. The palette's dark value is
// the text colour and its light value the background, so switching themes
// swaps the two.
type styles struct {
	base     lipgloss.Style
	title    lipgloss.Style
	header   lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	author   lipgloss.Style
	muted    lipgloss.Style
	message  lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	footer   lipgloss.Style
	status   lipgloss.Style
	warning  lipgloss.Style
	overlay  lipgloss.Style
	label    lipgloss.Style
	focused  lipgloss.Style
	subtitle lipgloss.Style
}

func newStyles(p browse.Palette) styles {
	fg := lipgloss.Color(p.Dark.Hex())
	bg := lipgloss.Color(p.Light.Hex())
	base := lipgloss.NewStyle().Foreground(fg).Background(bg)

	return styles{
		base: base,
		title: base.
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(2).
			PaddingRight(2),
		header: base.
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			BorderBackground(bg),
		item: base.
			PaddingLeft(2),
		selected: base.
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(accentColor).
			BorderBackground(bg),
		author: base.
			Foreground(mutedColor),
		muted: base.
			Foreground(mutedColor),
		message: base.
			Italic(true).
			Foreground(mutedColor).
			PaddingTop(2).
			PaddingLeft(4),
		button: base.
			Bold(true).
			Foreground(accentColor).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			BorderBackground(bg).
			Padding(0, 2),
		disabled: base.
			Foreground(mutedColor).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			BorderBackground(bg).
			Padding(0, 2),
		footer: base.
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			BorderBackground(bg),
		status: base.
			Bold(true).
			Foreground(accentColor),
		warning: base.
			Bold(true).
			Foreground(alertColor),
		overlay: base.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			BorderBackground(bg).
			Padding(1, 3),
		label: base.
			Bold(true).
			Foreground(mutedColor).
			Width(10),
		focused: base.
			Bold(true).
			Foreground(accentColor),
		subtitle: base.
			Italic(true).
			Foreground(mutedColor),
	}
}
