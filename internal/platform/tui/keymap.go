package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings of the game.
// Interrupt belongs to the platform and never reaches the game.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Play      key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Play, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Left, k.Down, k.Right},
		{k.Play, k.Quit, k.Interrupt},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "right"),
		),
		Play: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// Action translates a key message to a game action.
// Unbound keys and the interrupt key map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Play):
		return core.ActionPlay
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// IsInterrupt reports whether the key should end the program immediately.
func (k KeyMap) IsInterrupt(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Interrupt)
}
