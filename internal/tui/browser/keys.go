package browser

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Select   key.Binding
	More     key.Binding
	Search   key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Overlay keys
	Close    key.Binding
	Submit   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		More:     key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m", "show more")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap for the list screen.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.More, k.Search, k.Settings, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the list screen.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Select, k.More},
		{k.Search, k.Settings},
		{k.Help, k.Quit},
	}
}

// overlayKeys is the help shown while a form or the detail view is open.
type overlayKeys struct {
	bindings []key.Binding
}

func (o overlayKeys) ShortHelp() []key.Binding { return o.bindings }

func (o overlayKeys) FullHelp() [][]key.Binding { return [][]key.Binding{o.bindings} }

func (k keyMap) searchHelp() overlayKeys {
	return overlayKeys{bindings: []key.Binding{k.Next, k.Left, k.Right, k.Submit, k.Close}}
}

func (k keyMap) settingsHelp() overlayKeys {
	return overlayKeys{bindings: []key.Binding{k.Left, k.Right, k.Submit, k.Close}}
}

func (k keyMap) detailHelp() overlayKeys {
	return overlayKeys{bindings: []key.Binding{k.Up, k.Down, k.Close}}
}
