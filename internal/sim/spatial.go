package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Transform is the spatial state of one entity.
type Transform struct {
	Position core.Vec2
	Velocity core.Vec2
	Rotation float64
	Scale    float64
}

// Radius returns the bounding-circle radius, half the visual scale.
func (t Transform) Radius() float64 {
	return t.Scale / 2
}

// Spatial is the position/velocity/rotation/scale view over an Arena.
// It does no validation beyond handle liveness.
type Spatial struct {
	a *Arena
}

// Get returns the transform of h.
func (s Spatial) Get(h Handle) Transform {
	e := s.a.at(h)
	return Transform{Position: e.pos, Velocity: e.vel, Rotation: e.rot, Scale: e.scale}
}

// SetPosition moves h to p.
func (s Spatial) SetPosition(h Handle, p core.Vec2) {
	s.a.at(h).pos = p
}

// SetVelocity sets the velocity of h.
func (s Spatial) SetVelocity(h Handle, v core.Vec2) {
	s.a.at(h).vel = v
}

// SetRotation sets the rotation angle of h in radians.
func (s Spatial) SetRotation(h Handle, theta float64) {
	s.a.at(h).rot = theta
}

// SetScale sets the visual scale of h.
func (s Spatial) SetScale(h Handle, scale float64) {
	s.a.at(h).scale = scale
}
