package core

import "time"

// Action represents a semantic action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionTiltLeft         // Left arrow - tilt the device left
	ActionTiltRight        // Right arrow - tilt the device right
	ActionTiltUp           // Up arrow - tilt the device away
	ActionTiltDown         // Down arrow - tilt the device towards
	ActionLockTap          // U - tap the parental lock
	ActionBack             // Esc - leave a sub screen
	ActionQuit             // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTiltLeft:
		return "TiltLeft"
	case ActionTiltRight:
		return "TiltRight"
	case ActionTiltUp:
		return "TiltUp"
	case ActionTiltDown:
		return "TiltDown"
	case ActionLockTap:
		return "LockTap"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is one mouse or touch sample in simulation pixels.
type PointerEvent struct {
	Kind PointerKind
	Pos  Point
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointers holds pointer events in arrival order.
	Pointers []PointerEvent
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

// Push appends a pointer event.
func (f *InputFrame) Push(kind PointerKind, pos Point) {
	f.Pointers = append(f.Pointers, PointerEvent{Kind: kind, Pos: pos})
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}

// TickDuration returns the simulated time covered by one tick.
func TickDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
