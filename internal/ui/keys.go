package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Refresh     key.Binding
	ShowCompose key.Binding
	HideCompose key.Binding
	Send        key.Binding
	Configure   key.Binding
	Quit        key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Submit      key.Binding
	Cancel      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Refresh:     key.NewBinding(key.WithKeys("f5", "ctrl+r"), key.WithHelp("f5", "refresh")),
		ShowCompose: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new status")),
		HideCompose: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide")),
		Send:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Configure:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "configure")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
		NextField:   key.NewBinding(key.WithKeys("tab", "down")),
		PrevField:   key.NewBinding(key.WithKeys("shift+tab", "up")),
		Submit:      key.NewBinding(key.WithKeys("enter")),
		Cancel:      key.NewBinding(key.WithKeys("esc")),
	}
}
