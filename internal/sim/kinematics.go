package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Wrap applies toroidal wraparound to one axis. An entity reappears on the
// opposite edge only after it is fully past the bound by half its scale.
func Wrap(v, lo, hi, half float64) float64 {
	if v > hi+half {
		return lo - half
	}
	if v < lo-half {
		return hi + half
	}
	return v
}

// Integrate advances every live entity by velocity*dt and wraps it into b.
func (a *Arena) Integrate(b Bounds, dt float64) {
	for i := range a.slots {
		e := &a.slots[i]
		if !e.alive {
			continue
		}
		e.pos = e.pos.Add(e.vel.Scale(dt))
		half := e.scale / 2
		e.pos.X = Wrap(e.pos.X, b.MinX, b.MaxX, half)
		e.pos.Y = Wrap(e.pos.Y, b.MinY, b.MaxY, half)
	}
}

// Decelerate decays the velocity of a starship by (1-rate) per nominal tick.
func (a *Arena) Decelerate(h Handle, rate, dt float64) {
	e := a.at(h)
	e.vel = e.vel.Scale(decayFactor(rate, dt))
}

func decayFactor(rate, dt float64) float64 {
	f := 1 - rate
	if dt == 1 {
		return f
	}
	return math.Pow(f, dt)
}

// Direction returns the forward unit vector of a ship rotated by theta.
// Rotation 0 faces +y.
func Direction(theta float64) core.Vec2 {
	return core.FromAngle(theta + math.Pi/2)
}
