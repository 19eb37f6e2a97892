package demo

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the demo.
type KeyMap struct {
	// Toasts
	Toast key.Binding
	Short key.Binding
	Burst key.Binding

	// Layout
	Alignment key.Binding
	Overlap   key.Binding

	// Global
	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toast, k.Overlap, k.Alignment, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toast, k.Short, k.Burst},
		{k.Alignment, k.Overlap},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toast: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toast"),
		),
		Short: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "short toast"),
		),
		Burst: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "burst of 5"),
		),
		Alignment: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "cycle alignment"),
		),
		Overlap: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overlap/stack"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
