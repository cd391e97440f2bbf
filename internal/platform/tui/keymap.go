package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Terminals report key presses (and auto-repeats) but never releases, so a
// held key is modelled as a latch that each press re-arms. The latch must
// outlast the gap between auto-repeats or the ship stutters.
const (
	holdLatch = 160 * time.Millisecond // Rotate and thrust
	fireLatch = 200 * time.Millisecond
)

// KeyMapper translates Bubble Tea key messages to game actions and turns
// the press-only terminal key stream into held state plus fire transitions.
type KeyMapper struct {
	holdTicks int
	fireTicks int

	latch   map[core.Action]int // Remaining ticks a held action stays active
	pending []core.KeyEvent     // Transitions not yet delivered to a frame
	oneShot map[core.Action]bool
}

// NewKeyMapper creates a key mapper for the given tick rate.
func NewKeyMapper(tickRate int) *KeyMapper {
	if tickRate <= 0 {
		tickRate = core.NominalTickRate
	}
	return &KeyMapper{
		holdTicks: latchTicks(holdLatch, tickRate),
		fireTicks: latchTicks(fireLatch, tickRate),
		latch:     make(map[core.Action]int),
		oneShot:   make(map[core.Action]bool),
	}
}

func latchTicks(d time.Duration, tickRate int) int {
	return max(1, int(d*time.Duration(tickRate)/time.Second))
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionRotateLeft, false
	case "d", "right", "l":
		return core.ActionRotateRight, false
	case "w", "up", "k":
		return core.ActionThrust, false
	case " ", "f":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// HandleKey records a key message for the next frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg) bool {
	action, isQuit := km.MapKey(msg)
	km.Press(action)
	return isQuit
}

// Press records a press (or auto-repeat) of action.
func (km *KeyMapper) Press(action core.Action) {
	switch action {
	case core.ActionNone:
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust:
		km.latch[action] = km.holdTicks
	case core.ActionFire:
		// Auto-repeat of a latched fire key is not a new edge
		if km.latch[action] == 0 {
			km.pending = append(km.pending, core.KeyEvent{Action: action, Pressed: true})
		}
		km.latch[action] = km.fireTicks
	default:
		km.oneShot[action] = true
	}
}

// Held reports whether action is currently latched.
func (km *KeyMapper) Held(action core.Action) bool {
	return km.latch[action] > 0
}

// Fill writes the input for one tick into frame and advances the latches.
// Fire transitions are queued as events; a fire latch running out emits
// the release.
func (km *KeyMapper) Fill(frame *core.InputFrame) {
	for a, ticks := range km.latch {
		if ticks <= 0 {
			continue
		}
		if a != core.ActionFire {
			frame.Set(a)
		}
	}
	for a := range km.oneShot {
		frame.Set(a)
		delete(km.oneShot, a)
	}
	frame.Events = append(frame.Events, km.pending...)
	km.pending = km.pending[:0]

	for a, ticks := range km.latch {
		if ticks <= 0 {
			continue
		}
		km.latch[a] = ticks - 1
		if ticks == 1 && a == core.ActionFire {
			km.pending = append(km.pending, core.KeyEvent{Action: a, Pressed: false})
		}
	}
}

// Reset drops all latched and pending input.
func (km *KeyMapper) Reset() {
	clear(km.latch)
	clear(km.oneShot)
	km.pending = km.pending[:0]
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
