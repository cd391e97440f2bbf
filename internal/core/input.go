package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // Left arrow, A - rotate counter-clockwise
	ActionRotateRight        // Right arrow, D - rotate clockwise
	ActionThrust             // Up arrow, W - accelerate forward
	ActionFire               // Space - fire a bullet (press-edge only)
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionThrust:
		return "Thrust"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// KeyEvent is a discrete press or release transition of an action's key.
type KeyEvent struct {
	Action  Action
	Pressed bool
}

// InputFrame represents the input state for one simulation tick.
//
// Actions holds the continuous "held" state (rotate, thrust) and one-shot
// menu actions. Events is the ordered queue of key transitions since the
// previous tick; fire is driven from Events so that a held key does not
// produce continuous fire.
type InputFrame struct {
	Actions map[Action]bool
	Events  []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held/triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held/triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press queues a press transition for the action.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: true})
}

// Release queues a release transition for the action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: false})
}

// Pressed reports how many press transitions of a were queued this frame.
func (f InputFrame) Pressed(a Action) int {
	n := 0
	for _, ev := range f.Events {
		if ev.Action == a && ev.Pressed {
			n++
		}
	}
	return n
}

// Clear resets all actions and drains the event queue for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Events) > 0 {
		clone.Events = append([]KeyEvent(nil), f.Events...)
	}
	return clone
}
