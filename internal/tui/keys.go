package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Focus   key.Binding
	Unfocus key.Binding
	Compact key.Binding
	Medium  key.Binding
	Full    key.Binding
	Cycle   key.Binding
	Reset   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
	ForceQ  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Focus:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "use")),
		Unfocus: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Compact: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "compact")),
		Medium:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "medium")),
		Full:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "full")),
		Cycle:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle size")),
		Reset:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear history")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Focus, k.Cycle, k.Compact, k.Medium, k.Full, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Unfocus},
		{k.Compact, k.Medium, k.Full, k.Cycle},
		{k.Reset, k.Quit},
	}
}
