package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global bindings; pane-local keys live with the panes.
type keyMap struct {
	Quit       key.Binding
	CycleFocus key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
	}
}
