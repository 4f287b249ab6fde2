package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h - move paddle left (held)
	ActionRight          // Right arrow, l - move paddle right (held)
	ActionLaunch         // Space - launch the ball
	ActionConfirm        // Enter - start or restart a session
	ActionBack           // Escape - return to the menu from game over
	ActionPause          // P - pause/unpause while playing
	ActionQuit           // Q, Ctrl+C, window close - exit the program
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
	case ActionLaunch:
		return "Launch"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state for one frame, in logical units.
type Pointer struct {
	X, Y    float64
	Moved   bool // Pointer moved during this frame
	Clicked bool // Primary button was pressed during this frame
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	Pointer Pointer
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

// MovePointer records pointer motion to (x, y).
func (f *InputFrame) MovePointer(x, y float64) {
	f.Pointer.X = x
	f.Pointer.Y = y
	f.Pointer.Moved = true
}

// Click records a primary button press at (x, y).
func (f *InputFrame) Click(x, y float64) {
	f.Pointer.X = x
	f.Pointer.Y = y
	f.Pointer.Clicked = true
}

// Clear resets all actions and pointer events for the next frame.
// The last pointer position is kept so hover state survives idle frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Moved = false
	f.Pointer.Clicked = false
}
