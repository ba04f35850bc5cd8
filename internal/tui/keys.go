package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Accept key.Binding
	Reject key.Binding
	Undo   key.Binding
	Redo   key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Accept: key.NewBinding(
		key.WithKeys("right", "l", "a"),
		key.WithHelp("->/a", "accept"),
	),
	Reject: key.NewBinding(
		key.WithKeys("left", "h", "d"),
		key.WithHelp("<-/d", "dismiss"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r", "r"),
		key.WithHelp("r", "redo"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
