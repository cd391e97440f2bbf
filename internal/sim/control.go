package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Input is the per-tick control snapshot fed by the host: which keys are
// held right now, plus the key transitions seen since the previous tick.
type Input struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Events      []core.KeyEvent
}

// InputFromFrame converts a host input frame into a simulation Input.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		RotateLeft:  f.Has(core.ActionRotateLeft),
		RotateRight: f.Has(core.ActionRotateRight),
		Thrust:      f.Has(core.ActionThrust),
		Events:      f.Events,
	}
}

// Translator turns Input into starship rotation, thrust and fire requests.
// It remembers whether fire is held so that a held key fires only once.
type Translator struct {
	fireHeld bool
}

// FireEdges drains the fire transitions of in and returns how many press
// edges occurred. Repeated presses without a release are ignored.
func (t *Translator) FireEdges(in Input) int {
	edges := 0
	for _, ev := range in.Events {
		if ev.Action != core.ActionFire {
			continue
		}
		if ev.Pressed {
			if !t.fireHeld {
				edges++
			}
			t.fireHeld = true
		} else {
			t.fireHeld = false
		}
	}
	return edges
}

// Reset forgets the held fire state.
func (t *Translator) Reset() {
	t.fireHeld = false
}

// Apply steers every ship in ships and queues one bullet per ship for each
// fire edge. It reports whether thrust was applied.
func (t *Translator) Apply(in Input, ships []Handle, sp Spatial, p *Params, cmds *Commands, dt float64) bool {
	edges := t.FireEdges(in)
	for _, h := range ships {
		tr := sp.Get(h)

		switch {
		case in.RotateLeft:
			tr.Rotation += p.RotationSpeed * dt
		case in.RotateRight:
			tr.Rotation -= p.RotationSpeed * dt
		}
		sp.SetRotation(h, tr.Rotation)

		if in.Thrust {
			v := tr.Velocity.Add(Direction(tr.Rotation).Scale(p.Acceleration * dt))
			sp.SetVelocity(h, v.ClampLen(p.MaxVelocity))
		}

		vel := Direction(tr.Rotation).Normalize().Scale(p.BulletVelocity)
		for range edges {
			cmds.SpawnBullet(tr.Position, vel)
		}
	}
	return in.Thrust
}
