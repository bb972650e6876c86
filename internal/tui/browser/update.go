package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
)

// Minimum terminal size before the browser shows a warning.
const (
	minWidth  = 40
	minHeight = 12
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reader.Width = readerWidth(msg.Width)
		m.reader.Height = readerHeight(msg.Height)
		if d, ok := m.app.Detail(); ok {
			m.reader.SetContent(wrapDescription(d.Description, m.reader.Width))
		}
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys to the topmost surface.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.activeLayer() {
	case layerDetail:
		return m.handleDetailKeys(msg)
	case layerSettings:
		return m.handleSettingsKeys(msg)
	case layerSearch:
		return m.handleSearchKeys(msg)
	default:
		return m.handleListKeys(msg)
	}
}

// handleListKeys handles keys on the preview list.
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.cursor, m.offset = 0, 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.list.Items()))
		return m, nil

	case key.Matches(msg, m.keys.Select):
		selected, ok := m.selectedPreview()
		if !ok {
			return m, nil
		}
		m.app.Dispatch(browse.PreviewSelected{ID: selected.ID})
		if d, open := m.app.Detail(); open {
			m.reader.SetContent(wrapDescription(d.Description, m.reader.Width))
			m.reader.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.More):
		if !m.app.Button().Enabled {
			return m, m.setStatus("Nothing more to show")
		}
		first := len(m.list.Items())
		m.app.Dispatch(browse.RequestNextPage{})
		m.cursor = first
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.app.Dispatch(browse.OpenSearch{})
		m.focus = fieldTitle
		return m, m.title.Focus()

	case key.Matches(msg, m.keys.Settings):
		m.app.Dispatch(browse.OpenSettings{})
		m.themeChoice = m.app.Theme().Theme
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleSearchKeys handles keys while the search form is open.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		m.app.Dispatch(browse.CloseSearch{})
		m.title.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.app.Dispatch(browse.SubmitSearch{Criteria: m.criteria()})
		m.resetSearchForm()
		m.title.Blur()
		m.cursor, m.offset = 0, 0
		return m, nil

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		return m, m.focusField((m.focus + 1) % fieldCount)

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	}

	if m.focus == fieldTitle {
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		return m, cmd
	}

	step := 0
	switch {
	case key.Matches(msg, m.keys.Left):
		step = -1
	case key.Matches(msg, m.keys.Right):
		step = 1
	}
	if step != 0 {
		if m.focus == fieldAuthor {
			m.authorIdx = cycle(m.authorIdx, step, len(m.authors))
		} else {
			m.genreIdx = cycle(m.genreIdx, step, len(m.genres))
		}
	}
	return m, nil
}

func (m *Model) focusField(f searchField) tea.Cmd {
	m.focus = f
	if f == fieldTitle {
		return m.title.Focus()
	}
	m.title.Blur()
	return nil
}

// handleSettingsKeys handles keys while the theme form is open.
func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		m.app.Dispatch(browse.CloseSettings{})
		return m, nil

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right), msg.Type == tea.KeyTab:
		if m.themeChoice == browse.Day {
			m.themeChoice = browse.Night
		} else {
			m.themeChoice = browse.Day
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.app.Dispatch(browse.SubmitTheme{Theme: m.themeChoice})
		return m, m.setStatus(fmt.Sprintf("Theme set to %s", m.themeChoice))
	}

	return m, nil
}

// handleDetailKeys handles keys while the detail overlay is open.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close), msg.Type == tea.KeyBackspace:
		m.app.Dispatch(browse.CloseDetail{})
		return m, nil
	}

	var cmd tea.Cmd
	m.reader, cmd = m.reader.Update(msg)
	return m, cmd
}

func cycle(idx, step, n int) int {
	if n == 0 {
		return 0
	}
	return ((idx+step)%n + n) % n
}

func readerWidth(width int) int {
	w := width - 12
	if w < 20 {
		return 20
	}
	return w
}

func readerHeight(height int) int {
	h := height - 16
	if h < 3 {
		return 3
	}
	return h
}

func wrapDescription(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
