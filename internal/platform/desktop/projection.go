package desktop

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

// projection maps logical playfield coordinates to window pixels.
// Logical y grows upward, pixel y grows downward.
type projection struct {
	b    sim.Bounds
	w, h float64 // Logical screen size in pixels
}

func newProjection(b sim.Bounds, w, h int) projection {
	return projection{b: b, w: float64(w), h: float64(h)}
}

func (p projection) point(v core.Vec2) (float32, float32) {
	x := (v.X - p.b.MinX) / (p.b.MaxX - p.b.MinX) * p.w
	y := (p.b.MaxY - v.Y) / (p.b.MaxY - p.b.MinY) * p.h
	return float32(x), float32(y)
}

// length scales a logical distance along x.
func (p projection) length(d float64) float32 {
	return float32(d / (p.b.MaxX - p.b.MinX) * p.w)
}

// shipHull are the triangle corners of a unit ship pointing up.
var shipHull = [3]core.Vec2{{X: 0, Y: 0.5}, {X: -0.25, Y: -0.5}, {X: 0.25, Y: -0.5}}

// hull returns the ship triangle for v in logical coordinates.
func hull(v sim.EntityView) [3]core.Vec2 {
	sin, cos := math.Sincos(v.Rotation)
	var out [3]core.Vec2
	for i, c := range shipHull {
		x, y := c.X*v.Scale, c.Y*v.Scale
		out[i] = core.Vec2{
			X: v.Position.X + x*cos - y*sin,
			Y: v.Position.Y + x*sin + y*cos,
		}
	}
	return out
}
