package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Arrow up, W
	ActionDown               // Arrow down, S
	ActionLeft               // Arrow left, A
	ActionRight              // Arrow right, D
	ActionUsePotion          // Slot 1
	ActionUseBomb            // Slot 2
	ActionUseShrink          // Slot 3
	ActionUseSlow            // Slot 4
	ActionSpeedUp            // +
	ActionSpeedDown          // -
	ActionPause              // P
	ActionRestart            // R, after death
	ActionDebugDump          // F1 / ?
	ActionQuit               // Q, Ctrl+C
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
	case ActionUsePotion:
		return "UsePotion"
	case ActionUseBomb:
		return "UseBomb"
	case ActionUseShrink:
		return "UseShrink"
	case ActionUseSlow:
		return "UseSlow"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionDebugDump:
		return "DebugDump"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Heading returns the direction requested by a turn action.
// The second result is false for non-turn actions.
func (a Action) Heading() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirUp, false
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Order keeps the sequence in which actions arrived, so two turns in
	// one frame are applied in the order they were pressed.
	Order []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	if !f.Actions[a] {
		f.Order = append(f.Order, a)
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Order = f.Order[:0]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Order) == 0
}
