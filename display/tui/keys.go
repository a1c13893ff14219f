package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the dashboard.
type keyMap struct {
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns the compact set of keybindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Help, k.Quit},
	}
}

// keys holds the default key bindings used by the dashboard.
var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}
