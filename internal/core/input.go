package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the game only ever sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W
	ActionDown         // S
	ActionLeft         // A
	ActionRight        // D
	ActionPlay         // P - start or restart a round
	ActionQuit         // Q - leave the game from the menu or death screen
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
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action steers the snake.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
