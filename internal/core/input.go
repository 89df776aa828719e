package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - turn up
	ActionDown           // S, Down arrow - turn down
	ActionLeft           // A, Left arrow - turn left
	ActionRight          // D, Right arrow - turn right
	ActionPause          // Space, P - pause/unpause (missions only)
	ActionRestart        // R key - restart game after game over
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsTurn reports whether the action is one of the four direction commands.
func (a Action) IsTurn() bool {
	return a >= ActionUp && a <= ActionRight
}

// Unit returns the unit direction vector for a turn action.
func (a Action) Unit() Vec {
	switch a {
	case ActionUp:
		return Vec{X: 0, Y: -1}
	case ActionDown:
		return Vec{X: 0, Y: 1}
	case ActionLeft:
		return Vec{X: -1, Y: 0}
	case ActionRight:
		return Vec{X: 1, Y: 0}
	default:
		return Vec{}
	}
}
