package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// KeyMap defines the key bindings for play. Emacs movement keys come first,
// as on the original terminal game; arrows and vi keys also work.
type KeyMap struct {
	North   key.Binding
	East    key.Binding
	South   key.Binding
	West    key.Binding
	Undo    key.Binding
	Repeat  key.Binding
	Help    key.Binding
	Boss    key.Binding
	Next    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.North, k.South, k.West, k.East, k.Undo, k.Repeat, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.West, k.East},
		{k.Undo, k.Repeat, k.Restart, k.Next},
		{k.Help, k.Boss, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North: key.NewBinding(
			key.WithKeys("ctrl+p", "up", "k"),
			key.WithHelp("^P/↑", "north"),
		),
		East: key.NewBinding(
			key.WithKeys("ctrl+f", "right", "l"),
			key.WithHelp("^F/→", "east"),
		),
		South: key.NewBinding(
			key.WithKeys("ctrl+n", "down", "j"),
			key.WithHelp("^N/↓", "south"),
		),
		West: key.NewBinding(
			key.WithKeys("ctrl+b", "left", "h"),
			key.WithHelp("^B/←", "west"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+_", "ctrl+z", "u"),
			key.WithHelp("^_/u", "undo"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("^U", "repeat ×4"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Boss: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "boss"),
		),
		Next: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "next level"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+g", "ctrl+c", "q"),
			key.WithHelp("^G/q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper uses.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a play action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.North):
		return core.ActionNorth
	case key.Matches(msg, k.East):
		return core.ActionEast
	case key.Matches(msg, k.South):
		return core.ActionSouth
	case key.Matches(msg, k.West):
		return core.ActionWest
	case key.Matches(msg, k.Undo):
		return core.ActionUndo
	case key.Matches(msg, k.Repeat):
		return core.ActionRepeat
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Boss):
		return core.ActionBoss
	case key.Matches(msg, k.Next):
		return core.ActionNextLevel
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// directionFor maps a move action to its direction.
func directionFor(a core.Action) (sokoban.Direction, bool) {
	switch a {
	case core.ActionNorth:
		return sokoban.North, true
	case core.ActionEast:
		return sokoban.East, true
	case core.ActionSouth:
		return sokoban.South, true
	case core.ActionWest:
		return sokoban.West, true
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "ctrl+g", "q":
		return MenuActionQuit
	case "up", "k", "ctrl+p":
		return MenuActionUp
	case "down", "j", "ctrl+n":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
