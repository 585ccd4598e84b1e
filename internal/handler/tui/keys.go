package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ToggleTheme key.Binding
	Logout      key.Binding
	Back        key.Binding
	Enter       key.Binding
	Up          key.Binding
	Down        key.Binding
	Refresh     key.Binding
	Filter      key.Binding
	OpenCreated key.Binding
	CycleField  key.Binding
	FlipOrder   key.Binding
	Grab        key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	Name        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Logout:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "log out")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Refresh:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		OpenCreated: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "open new playlist")),
		CycleField:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort field")),
		FlipOrder:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "asc/desc")),
		Grab:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "grab/drop")),
		MoveUp:      key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "move up")),
		MoveDown:    key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "move down")),
		Name:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "name & create")),
	}
}
