package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	// Monitoring
	Toggle     key.Binding
	WindowUp   key.Binding
	WindowDown key.Binding
	MaxUp      key.Binding
	MaxDown    key.Binding
	Category   key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "Start/stop"),
		),
		WindowUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Wider window"),
		),
		WindowDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Narrower window"),
		),
		MaxUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Raise max"),
		),
		MaxDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Lower max"),
		),
		Category: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Toggle category"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.WindowUp, k.WindowDown, k.Category, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Category},
		{k.WindowUp, k.WindowDown, k.MaxUp, k.MaxDown},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
