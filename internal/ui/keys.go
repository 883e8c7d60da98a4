package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the shell's key bindings.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Index   key.Binding
	Up      key.Binding
	Down    key.Binding
	Reset   key.Binding
	Shuffle key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next screen"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev screen"),
		),
		Index: key.NewBinding(
			key.WithKeys("i", "enter"),
			key.WithHelp("i", "index"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "scroll down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recenter"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Index, k.Up, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Index},
		{k.Up, k.Down},
		{k.Reset, k.Shuffle},
		{k.Help, k.Quit},
	}
}
