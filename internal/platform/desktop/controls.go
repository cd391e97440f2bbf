package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// heldBindings are actions sampled every tick while their key is down.
var heldBindings = map[core.Action][]ebiten.Key{
	core.ActionRotateLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRotateRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionThrust:      {ebiten.KeyW, ebiten.KeyArrowUp},
}

// edgeBindings fire once per key press.
var edgeBindings = map[ebiten.Key]core.Action{
	ebiten.KeyP:     core.ActionPause,
	ebiten.KeyR:     core.ActionRestart,
	ebiten.KeyEnter: core.ActionConfirm,
}

// fireKey drives fire through press and release events.
const fireKey = ebiten.KeySpace

// controls turns raw key state into input frames, tracking the previous
// tick for edge detection.
type controls struct {
	prevKeys map[ebiten.Key]bool
}

func newControls() *controls {
	return &controls{prevKeys: make(map[ebiten.Key]bool)}
}

// fill writes one tick of input into frame. down reports whether a key is
// currently pressed.
func (c *controls) fill(frame *core.InputFrame, down func(ebiten.Key) bool) {
	currentKeys := map[ebiten.Key]bool{}

	for action, keys := range heldBindings {
		for _, k := range keys {
			currentKeys[k] = down(k)
			if currentKeys[k] {
				frame.Set(action)
			}
		}
	}

	for k, action := range edgeBindings {
		currentKeys[k] = down(k)
		if currentKeys[k] && !c.prevKeys[k] {
			frame.Set(action)
		}
	}

	currentKeys[fireKey] = down(fireKey)
	switch {
	case currentKeys[fireKey] && !c.prevKeys[fireKey]:
		frame.Press(core.ActionFire)
	case !currentKeys[fireKey] && c.prevKeys[fireKey]:
		frame.Release(core.ActionFire)
	}

	c.prevKeys = currentKeys
}

// reset forgets the previous key state so held keys read as fresh presses.
func (c *controls) reset() {
	clear(c.prevKeys)
}
