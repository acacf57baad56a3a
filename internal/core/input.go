package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionNorth            // ctrl+p, up, k
	ActionEast             // ctrl+f, right, l
	ActionSouth            // ctrl+n, down, j
	ActionWest             // ctrl+b, left, h
	ActionUndo             // ctrl+_, ctrl+z, u
	ActionRepeat           // ctrl+u - repeat prefix
	ActionHelp             // ? - help screen
	ActionBoss             // space - boss screen
	ActionNextLevel        // g - next level after a win
	ActionRestart          // r - restart the current level
	ActionQuit             // ctrl+g, ctrl+c, q
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorth:
		return "North"
	case ActionEast:
		return "East"
	case ActionSouth:
		return "South"
	case ActionWest:
		return "West"
	case ActionUndo:
		return "Undo"
	case ActionRepeat:
		return "Repeat"
	case ActionHelp:
		return "Help"
	case ActionBoss:
		return "Boss"
	case ActionNextLevel:
		return "NextLevel"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action moves the worker.
func (a Action) IsMove() bool {
	return a >= ActionNorth && a <= ActionWest
}

// Repeatable reports whether a pending repeat count applies to the action.
func (a Action) Repeatable() bool {
	return a.IsMove() || a == ActionUndo
}
