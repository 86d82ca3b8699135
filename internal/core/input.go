package core

// Action is a semantic game command, abstracted from physical keys so the
// simulation never sees raw key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // space, w, up - upward impulse while playing
	ActionFire           // f, right - launch a projectile while playing
	ActionStart          // enter - begin the session from the start screen
	ActionRestart        // r, space - full reset from the game-over screen
	ActionQuit           // q, ctrl+c - leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionFire:
		return "Fire"
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

// Click is a pointer press in screen cell coordinates. On the start screen
// it is hit-tested against the start control; while playing it fires a
// projectile.
type Click struct {
	X, Y int
}

// InputFrame carries everything the player did between two simulation
// ticks. The platform fills one per frame and the game drains it exactly
// once, in arrival order for clicks.
type InputFrame struct {
	Actions map[Action]bool
	Clicks  []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddClick records a pointer press for this frame.
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
