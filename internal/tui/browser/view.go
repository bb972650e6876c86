package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// noResultsMessage is shown in place of the list when nothing matches.
const noResultsMessage = "No results found. Your filters might be too narrow."

// View renders the current model state.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	st := newStyles(m.app.Theme().Palette)

	var body string
	switch m.activeLayer() {
	case layerDetail:
		body = m.renderDetailView(st)
	case layerSettings:
		body = m.renderSettingsView(st)
	case layerSearch:
		body = m.renderSearchView(st)
	default:
		body = m.renderListView(st)
	}

	return st.base.Width(m.width).Height(m.height).Render(body)
}

// renderListView renders the header, the visible previews and the footer.
func (m Model) renderListView(st styles) string {
	var content strings.Builder

	content.WriteString(m.renderHeader(st))
	content.WriteString("\n")

	if m.width < minWidth || m.height < minHeight {
		content.WriteString(st.warning.Render(fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight)))
		content.WriteString("\n")
	}

	content.WriteString(m.renderPreviewList(st))
	content.WriteString("\n")
	content.WriteString(m.renderFooter(st))

	return content.String()
}

// renderHeader renders the title and a summary of the active criteria.
func (m Model) renderHeader(st styles) string {
	title := st.title.Render(m.icon("📚", "#") + " Bookshelf")

	summary := fmt.Sprintf("%d of %d books  %s",
		len(m.list.Items()),
		len(m.app.Store().Matches()),
		m.describeCriteria(m.app.Criteria()),
	)

	return st.header.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, title, st.muted.Render(summary)))
}

func (m Model) describeCriteria(c catalog.Criteria) string {
	cat := m.app.Catalog()
	parts := []string{}
	if strings.TrimSpace(c.Title) != "" {
		parts = append(parts, fmt.Sprintf("title %q", c.Title))
	}
	if c.Author != catalog.Any && c.Author != "" {
		parts = append(parts, "by "+nameOr(cat.AuthorName(c.Author), c.Author))
	}
	if c.Genre != catalog.Any && c.Genre != "" {
		parts = append(parts, "in "+nameOr(cat.GenreName(c.Genre), c.Genre))
	}
	if len(parts) == 0 {
		return "(all books)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// renderPreviewList renders the scroll window over the visible list.
func (m Model) renderPreviewList(st styles) string {
	if m.app.NoResults() {
		return st.message.Render(noResultsMessage)
	}

	items := m.list.Items()
	start := m.offset
	end := start + m.listHeight()
	if end > len(items) {
		end = len(items)
	}

	rows := make([]string, 0, end-start+2)
	if start > 0 {
		rows = append(rows, st.muted.Render(m.icon("▲", "^")+" More above"))
	}
	for i := start; i < end; i++ {
		rows = append(rows, m.renderPreview(st, items[i], i == m.cursor))
	}
	if end < len(items) {
		rows = append(rows, st.muted.Render(m.icon("▼", "v")+" More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderPreview(st styles, p browse.Preview, selected bool) string {
	author := p.Author
	if author == "" {
		author = "Unknown author"
	}
	line := fmt.Sprintf("%s  %s", p.Title, st.author.Render(author))
	if selected {
		return st.selected.Render(line)
	}
	return st.item.Render(line)
}

// renderFooter renders the show-more button, status line and key help.
func (m Model) renderFooter(st styles) string {
	btn := m.app.Button()
	button := st.disabled.Render(btn.Label())
	if btn.Enabled {
		button = st.button.Render(btn.Label())
	}

	lines := []string{button}
	if m.status != "" {
		lines = append(lines, st.status.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))

	return st.footer.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderSearchView renders the search form.
func (m Model) renderSearchView(st styles) string {
	field := func(f searchField, label, value string) string {
		l := st.label.Render(label)
		if m.focus == f {
			l = st.focused.Width(10).Render(label)
		}
		return l + " " + value
	}

	selector := func(f searchField, opts []catalog.Option, idx int) string {
		if idx >= len(opts) {
			return ""
		}
		value := opts[idx].Label
		if m.focus == f {
			return st.focused.Render(fmt.Sprintf("%s %s %s", m.icon("◀", "<"), value, m.icon("▶", ">")))
		}
		return value
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render("Search"),
		"",
		field(fieldTitle, "Title", m.title.View()),
		field(fieldAuthor, "Author", selector(fieldAuthor, m.authors, m.authorIdx)),
		field(fieldGenre, "Genre", selector(fieldGenre, m.genres, m.genreIdx)),
		"",
		m.help.View(m.keys.searchHelp()),
	)

	return m.place(st, st.overlay.Render(form))
}

// renderSettingsView renders the theme form.
func (m Model) renderSettingsView(st styles) string {
	option := func(t browse.Theme, label string) string {
		mark := m.icon("○", "( )")
		if m.themeChoice == t {
			return st.focused.Render(m.icon("●", "(*)") + " " + label)
		}
		return mark + " " + label
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render("Theme"),
		"",
		option(browse.Day, "Day")+"    "+option(browse.Night, "Night"),
		"",
		m.help.View(m.keys.settingsHelp()),
	)

	return m.place(st, st.overlay.Render(form))
}

// renderDetailView renders the detail overlay for the selected book.
func (m Model) renderDetailView(st styles) string {
	d, ok := m.app.Detail()
	if !ok {
		return m.renderListView(st)
	}

	parts := []string{
		st.title.Render(d.Title),
		st.subtitle.Render(d.Subtitle),
	}
	if d.Image != "" {
		parts = append(parts, st.muted.Render(d.Image))
	}
	parts = append(parts, "", m.reader.View(), "", m.help.View(m.keys.detailHelp()))

	return m.place(st, st.overlay.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}

func (m Model) place(st styles, box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(st.base.GetBackground()))
}

func (m Model) icon(unicode, ascii string) string {
	if m.useUnicode {
		return unicode
	}
	return ascii
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

var _ help.KeyMap = keyMap{}
