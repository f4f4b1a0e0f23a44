package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the sandbox key bindings.
type KeyMap struct {
	Sand      key.Binding
	Water     key.Binding
	Erase     key.Binding
	BrushUp   key.Binding
	BrushDown key.Binding
	Pause     key.Binding
	Step      key.Binding
	Mode      key.Binding
	Clear     key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sand, k.Water, k.Erase, k.Pause, k.Step, k.Clear, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sand, k.Water, k.Erase, k.BrushUp, k.BrushDown},
		{k.Pause, k.Step, k.Mode, k.Clear, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Sand: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sand"),
		),
		Water: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "water"),
		),
		Erase: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "air"),
		),
		BrushUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger brush"),
		),
		BrushDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "smaller brush"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle mode"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
