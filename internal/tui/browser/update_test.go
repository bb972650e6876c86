package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog/catalogtest"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = press(t, m, string(r))
	}
	return m
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, 3)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 100, m.help.Width)
}

func TestUpdate_WindowTooSmall(t *testing.T) {
	m := newTestModel(t, 3)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, updated.(Model).View(), "Terminal too small")
}

func TestUpdate_ShowMoreRevealsNextPage(t *testing.T) {
	m := newTestModel(t, 42)

	m, cmd := press(t, m, "m")
	assert.Nil(t, cmd)
	assert.Len(t, m.list.Items(), 42)
	assert.Equal(t, browse.ButtonState{Enabled: false, Remaining: 0}, m.app.Button())
	assert.Equal(t, catalog.DefaultPageSize, m.cursor, "cursor jumps to the first revealed preview")

	m, cmd = press(t, m, "m")
	require.NotNil(t, cmd)
	assert.Len(t, m.list.Items(), 42)
	assert.Equal(t, "Nothing more to show", m.status)
}

func TestUpdate_StatusClearsOnlyForLatestSequence(t *testing.T) {
	m := newTestModel(t, 1)
	m, _ = press(t, m, "m")
	m, _ = press(t, m, "m")
	require.Equal(t, 2, m.statusSeq)

	updated, _ := m.Update(clearStatusMsg{seq: 1})
	m = updated.(Model)
	assert.Equal(t, "Nothing more to show", m.status)

	updated, _ = m.Update(clearStatusMsg{seq: 2})
	assert.Empty(t, updated.(Model).status)
}

func TestUpdate_TitleSearch(t *testing.T) {
	m := newTestModel(t, 42)
	m, _ = press(t, m, "down", "down")

	m, cmd := press(t, m, "/")
	assert.NotNil(t, cmd, "focusing the title input starts the cursor blink")
	assert.Equal(t, layerSearch, m.activeLayer())

	m = typeText(t, m, "number 4")
	m, _ = press(t, m, "enter")

	assert.Equal(t, []string{"b04", "b40", "b41", "b42"}, previewIDs(m))
	assert.False(t, m.app.Overlays().Search)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 0, m.offset)
	assert.Empty(t, m.title.Value(), "form is reset after submit")
	assert.Equal(t, "number 4", m.app.Criteria().Title)
}

func TestUpdate_GenreSelector(t *testing.T) {
	m := newTestModel(t, 42)

	m, _ = press(t, m, "/", "tab", "tab", "right", "enter")

	assert.Equal(t, []string{"b01", "b10", "b19", "b28", "b37"}, previewIDs(m))
	assert.Equal(t, "g1", m.app.Criteria().Genre)
	assert.Equal(t, 0, m.genreIdx)
}

func TestUpdate_AuthorSelectorWraps(t *testing.T) {
	m := newTestModel(t, 9)

	m, _ = press(t, m, "/", "tab", "left")
	assert.Equal(t, len(m.authors)-1, m.authorIdx)

	m, _ = press(t, m, "enter")
	for _, p := range m.list.Items() {
		assert.Equal(t, "Grace Hopper", p.Author)
	}
	assert.Len(t, m.list.Items(), 3)
}

func TestUpdate_SearchWithoutMatches(t *testing.T) {
	m := newTestModel(t, 42)

	m = typeText(t, m, "/")
	m = typeText(t, m, "zzz")
	m, _ = press(t, m, "enter")

	assert.True(t, m.app.NoResults())
	assert.Empty(t, m.list.Items())
	assert.False(t, m.app.Button().Enabled)
	assert.Contains(t, m.View(), "No results found")
}

func TestUpdate_SearchCancelKeepsCriteria(t *testing.T) {
	m := newTestModel(t, 42)

	m, _ = press(t, m, "/")
	m = typeText(t, m, "q")
	m, _ = press(t, m, "esc")

	assert.Equal(t, layerList, m.activeLayer())
	assert.Len(t, m.list.Items(), catalog.DefaultPageSize)
	assert.Empty(t, m.app.Criteria().Title)
}

func TestUpdate_DetailOverlay(t *testing.T) {
	m := newTestModel(t, 42)

	m, _ = press(t, m, "down", "enter")
	require.Equal(t, layerDetail, m.activeLayer())

	d, ok := m.app.Detail()
	require.True(t, ok)
	assert.Equal(t, "b02", d.ID)
	assert.Equal(t, "Grace Hopper (1991)", d.Subtitle)

	view := m.View()
	assert.Contains(t, view, "Book Number 2")
	assert.Contains(t, view, "Grace Hopper (1991)")
	assert.Contains(t, view, "Description of book 2")

	m, _ = press(t, m, "esc")
	assert.Equal(t, layerList, m.activeLayer())
	_, ok = m.app.Detail()
	assert.False(t, ok)
}

func TestUpdate_SettingsTheme(t *testing.T) {
	m := newTestModel(t, 3)

	m, _ = press(t, m, "s")
	require.Equal(t, layerSettings, m.activeLayer())
	assert.Equal(t, browse.Day, m.themeChoice)

	m, cmd := press(t, m, "right", "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, browse.Night, m.app.Theme().Theme)
	assert.False(t, m.app.Overlays().Settings)
	assert.Equal(t, "Theme set to night", m.status)
}

func TestUpdate_SettingsCancel(t *testing.T) {
	m := newTestModel(t, 3)

	m, _ = press(t, m, "s", "right", "esc")
	assert.Equal(t, browse.Day, m.app.Theme().Theme)
	assert.Equal(t, layerList, m.activeLayer())
}

func TestUpdate_CursorScrollsWindow(t *testing.T) {
	m, err := NewModel(catalogtest.Generate(20, 0), Options{})
	require.NoError(t, err)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: chromeHeight + 5})
	m = updated.(Model)

	for i := 0; i < 7; i++ {
		m, _ = press(t, m, "down")
	}
	assert.Equal(t, 7, m.cursor)
	assert.Equal(t, 3, m.offset)

	m, _ = press(t, m, "G")
	assert.Equal(t, 19, m.cursor)
	assert.Equal(t, 15, m.offset)

	m, _ = press(t, m, "g")
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 0, m.offset)

	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.cursor)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newTestModel(t, 3)
	m, _ = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
	m, _ = press(t, m, "?")
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t, 3)
		_, cmd := press(t, m, k)
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}

	m := newTestModel(t, 3)
	m, _ = press(t, m, "/")
	m, _ = press(t, m, "q")
	assert.Equal(t, "q", m.title.Value(), "q is text while typing a title")
	assert.Equal(t, layerSearch, m.activeLayer())
}

func previewIDs(m Model) []string {
	ids := make([]string, 0, len(m.list.Items()))
	for _, p := range m.list.Items() {
		ids = append(ids, p.ID)
	}
	return ids
}
