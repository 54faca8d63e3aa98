package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Pin        key.Binding
	Appearance key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "n", "right"),
			key.WithHelp("tab/n", "next theme"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "N", "left"),
			key.WithHelp("shift+tab", "previous theme"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin/unpin colors to current theme"),
		),
		Appearance: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "switch light/dark"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
