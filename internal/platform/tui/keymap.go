package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinrush/internal/core"
)

// KeyMap defines the game's key bindings.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Easy    key.Binding
	Normal  key.Binding
	Hard    key.Binding
	Start   key.Binding
	Restart key.Binding
	Exit    key.Binding
	Quit    key.Binding

	// Help-only bindings that summarize groups of keys
	move       key.Binding
	difficulty key.Binding
}

// ShortHelp returns bindings for the one-line help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.move, k.difficulty, k.Start, k.Restart, k.Exit, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Easy, k.Normal, k.Hard, k.Start},
		{k.Restart, k.Exit, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Easy: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "easy"),
		),
		Normal: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "normal"),
		),
		Hard: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hard"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit after game over"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows/wasd", "move"),
		),
		difficulty: key.NewBinding(
			key.WithKeys("e", "n", "h"),
			key.WithHelp("e/n/h", "difficulty"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys. Quit is not an action: the caller
// checks it first and leaves the program.
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
	case key.Matches(msg, k.Easy):
		return core.ActionEasy
	case key.Matches(msg, k.Normal):
		return core.ActionNormal
	case key.Matches(msg, k.Hard):
		return core.ActionHard
	case key.Matches(msg, k.Start):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Exit):
		return core.ActionQuit
	}
	return core.ActionNone
}
