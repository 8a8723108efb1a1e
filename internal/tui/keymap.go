package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the dashboard browser.
type KeyMap struct {
	PrevTab    key.Binding
	NextTab    key.Binding
	PrevBucket key.Binding
	NextBucket key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevTab: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous period"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next period"),
		),
		PrevBucket: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "newer bucket"),
		),
		NextBucket: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "older bucket"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextTab, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTab, k.NextTab, k.PrevBucket, k.NextBucket},
		{k.Refresh, k.Help, k.Quit},
	}
}
