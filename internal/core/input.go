package core

// Action is a semantic control event, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left control held this tick
	ActionRight          // Right control held this tick
	ActionRelease        // Movement control released
	ActionStart          // Start or restart trigger on a splash screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRelease:
		return "Release"
	case ActionStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lower-case action name to an Action.
func ParseAction(name string) (Action, bool) {
	switch name {
	case "left":
		return ActionLeft, true
	case "right":
		return ActionRight, true
	case "release":
		return ActionRelease, true
	case "start":
		return ActionStart, true
	}
	return ActionNone, false
}

// InputFrame is the input state for a single simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
