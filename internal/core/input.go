package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - held: move one cell up
	ActionDown               // S, Down arrow
	ActionLeft               // A, Left arrow
	ActionRight              // D, Right arrow
	ActionFire               // Pointer pressed this tick
	ActionDash               // Space - jump two cells along facing
	ActionConfirm            // Enter - start game / acknowledge game over
	ActionToggleSound        // M - toggle sound in the menu
	ActionQuit               // Q, Ctrl+C - exit
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
	case ActionFire:
		return "Fire"
	case ActionDash:
		return "Dash"
	case ActionConfirm:
		return "Confirm"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
// Direction actions mean "held during this tick"; the rest are edge events.
type InputFrame struct {
	Actions map[Action]bool

	// Pointer is the last known pointer position in world pixels.
	Pointer Vec
	// PointerHeld is true while the pointer button is down.
	PointerHeld bool
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
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a pointer press at p.
func (f *InputFrame) Press(p Vec) {
	f.Pointer = p
	f.PointerHeld = true
	f.Set(ActionFire)
}

// Release records a pointer release at p.
func (f *InputFrame) Release(p Vec) {
	f.Pointer = p
	f.PointerHeld = false
}

// Clear resets the per-tick actions. Pointer position and held state persist
// because they describe ongoing state rather than events.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.PointerHeld = f.PointerHeld
	return clone
}
