package desktop

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

func keysDown(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := map[ebiten.Key]bool{}
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestProjectionCorners(t *testing.T) {
	p := newProjection(sim.Bounds{MinX: -640, MaxX: 640, MinY: -360, MaxY: 360}, 1280, 720)

	tests := []struct {
		in   core.Vec2
		x, y float32
	}{
		{core.Vec2{X: 0, Y: 0}, 640, 360},
		{core.Vec2{X: -640, Y: 360}, 0, 0},
		{core.Vec2{X: 640, Y: -360}, 1280, 720},
		{core.Vec2{X: 100, Y: 100}, 740, 260},
	}
	for _, tt := range tests {
		x, y := p.point(tt.in)
		if x != tt.x || y != tt.y {
			t.Errorf("point(%v) = (%v, %v), want (%v, %v)", tt.in, x, y, tt.x, tt.y)
		}
	}

	half := newProjection(sim.Bounds{MinX: -640, MaxX: 640, MinY: -360, MaxY: 360}, 640, 360)
	if got := half.length(100); got != 50 {
		t.Errorf("length(100) = %v, want 50", got)
	}
}

func TestHullFollowsRotation(t *testing.T) {
	v := sim.EntityView{Kind: sim.KindStarship, Scale: 50}

	nose := hull(v)[0]
	if math.Abs(nose.X) > 1e-9 || math.Abs(nose.Y-25) > 1e-9 {
		t.Errorf("unrotated nose = %v, want (0, 25)", nose)
	}

	v.Rotation = math.Pi / 2
	v.Position = core.Vec2{X: 10, Y: 10}
	nose = hull(v)[0]
	if math.Abs(nose.X-(-15)) > 1e-9 || math.Abs(nose.Y-10) > 1e-9 {
		t.Errorf("quarter-turn nose = %v, want (-15, 10)", nose)
	}
}

func TestControlsHeldAndEdges(t *testing.T) {
	c := newControls()

	frame := core.NewInputFrame()
	c.fill(&frame, keysDown(ebiten.KeyArrowLeft, ebiten.KeyW, ebiten.KeySpace, ebiten.KeyP))
	if !frame.Has(core.ActionRotateLeft) || !frame.Has(core.ActionThrust) {
		t.Error("held keys should set rotate and thrust")
	}
	if frame.Pressed(core.ActionFire) != 1 {
		t.Error("first space tick should press fire")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("first P tick should pause")
	}

	// Keys still down: held actions continue, edges do not repeat
	frame.Clear()
	c.fill(&frame, keysDown(ebiten.KeyArrowLeft, ebiten.KeySpace, ebiten.KeyP))
	if !frame.Has(core.ActionRotateLeft) {
		t.Error("rotate should stay held")
	}
	if frame.Has(core.ActionThrust) {
		t.Error("thrust released")
	}
	if len(frame.Events) != 0 || frame.Has(core.ActionPause) {
		t.Errorf("held edge keys repeated: %+v", frame)
	}

	frame.Clear()
	c.fill(&frame, keysDown())
	if len(frame.Events) != 1 || frame.Events[0] != (core.KeyEvent{Action: core.ActionFire, Pressed: false}) {
		t.Errorf("releasing space should emit one release, got %+v", frame.Events)
	}
}

func TestHostFiresOnPress(t *testing.T) {
	g := asteroids.New(asteroids.ModeClassic)
	h := NewHost(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}, Options{})

	if err := h.step(keysDown(ebiten.KeySpace)); err != nil {
		t.Fatal(err)
	}
	if err := h.step(keysDown(ebiten.KeySpace)); err != nil {
		t.Fatal(err)
	}

	bullets := 0
	for _, v := range g.Entities(nil) {
		if v.Kind == sim.KindBullet {
			bullets++
		}
	}
	if bullets != 1 {
		t.Errorf("bullets = %d, want 1 for a held space bar", bullets)
	}
	if h.ticks != 2 {
		t.Errorf("ticks = %d, want 2", h.ticks)
	}
	if w, hh := h.Layout(0, 0); w <= 0 || hh <= 0 {
		t.Errorf("layout = %dx%d", w, hh)
	}
}
