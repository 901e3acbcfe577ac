package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionRun          // Shift modifier - doubles movement speed
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
	case ActionRun:
		return "Run"
	default:
		return "Unknown"
	}
}

// InputFrame is the held state of every action for a single frame.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(held ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool),
	}
	for _, a := range held {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
