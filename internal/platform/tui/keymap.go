package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-dodger/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Run    key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Run, k.Cancel, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Run, k.Cancel, k.Quit},
	}
}

// DefaultKeyMap returns WASD and arrow bindings. Shifted variants move and run.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "W", "shift+up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "S", "shift+down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left", "A", "shift+left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right", "D", "shift+right"),
			key.WithHelp("d/→", "right"),
		),
		Run: key.NewBinding(
			key.WithKeys("W", "A", "S", "D", "shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("shift", "run"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions returns the movement actions a key press holds.
// Quit and cancel are handled by the model and yield nothing here.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	var actions []core.Action
	switch {
	case key.Matches(msg, k.Up):
		actions = append(actions, core.ActionUp)
	case key.Matches(msg, k.Down):
		actions = append(actions, core.ActionDown)
	case key.Matches(msg, k.Left):
		actions = append(actions, core.ActionLeft)
	case key.Matches(msg, k.Right):
		actions = append(actions, core.ActionRight)
	default:
		return nil
	}
	if key.Matches(msg, k.Run) {
		actions = append(actions, core.ActionRun)
	}
	return actions
}
