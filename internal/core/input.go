package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys, mouse drags and SSH input into actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionStart          // Enter, Space - leave the start screen
	ActionRestart        // R - new game after game over
	ActionQuit           // Q, Ctrl+C
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
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the intended direction for a movement action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return DirRight, false
}

// Swipe turns a drag vector into a direction intent. The dominant axis wins;
// equal magnitudes resolve to the vertical axis. A zero vector is no intent.
// Screen coordinates are used, so positive dy points down.
func Swipe(dx, dy int) (Direction, bool) {
	if dx == 0 && dy == 0 {
		return DirRight, false
	}
	if Abs(dx) > Abs(dy) {
		if dx > 0 {
			return DirRight, true
		}
		return DirLeft, true
	}
	if dy > 0 {
		return DirDown, true
	}
	return DirUp, true
}
