// Package sim is the Asteroids simulation core: an arena of entities keyed by
// generation-checked handles, and a fixed-order tick pipeline
// (input -> integrate -> collide -> lifecycle) that advances it.
//
// The package performs no I/O. Hosts feed it an Input per tick and read back
// the render feed via World.Snapshot and the events returned by World.Step.
package sim

import (
	"fmt"
	"math"
)

// Params holds the tuning constants of the simulation. Velocities and
// per-tick increments are expressed in viewport units per nominal tick.
type Params struct {
	ViewportW float64
	ViewportH float64

	AsteroidVelocity float64
	BulletVelocity   float64
	BulletDistance   float64 // Maximum distance of a bullet from its spawn point

	RotationSpeed float64 // Radians per tick
	Acceleration  float64
	Deceleration  float64 // Velocity fraction lost per tick while not thrusting
	MaxVelocity   float64

	StarshipScale  float64
	BulletScale    float64
	AsteroidScales [sizeCount]float64 // Indexed by Size

	InitialAsteroids int
	SafeRadius       float64 // Minimum spawn distance of field asteroids from the starship
}

// DefaultParams returns the classic tuning: a 1280x720 viewport and six Big asteroids.
func DefaultParams() Params {
	const w, h = 1280, 720
	return Params{
		ViewportW:        w,
		ViewportH:        h,
		AsteroidVelocity: 2,
		BulletVelocity:   6,
		BulletDistance:   h * 0.8,
		RotationSpeed:    5 * 2 * math.Pi / 360,
		Acceleration:     0.2,
		Deceleration:     0.01,
		MaxVelocity:      10,
		StarshipScale:    50,
		BulletScale:      5,
		AsteroidScales:   [sizeCount]float64{100, 65, 30},
		InitialAsteroids: 6,
		SafeRadius:       150,
	}
}

// Validate reports the first parameter that would break the simulation.
func (p Params) Validate() error {
	switch {
	case p.ViewportW <= 0 || p.ViewportH <= 0:
		return fmt.Errorf("sim: viewport must be positive, got %gx%g", p.ViewportW, p.ViewportH)
	case p.BulletVelocity <= 0:
		return fmt.Errorf("sim: bullet velocity must be positive, got %g", p.BulletVelocity)
	case p.BulletDistance <= 0:
		return fmt.Errorf("sim: bullet distance must be positive, got %g", p.BulletDistance)
	case p.MaxVelocity <= 0:
		return fmt.Errorf("sim: max velocity must be positive, got %g", p.MaxVelocity)
	case p.Deceleration < 0 || p.Deceleration >= 1:
		return fmt.Errorf("sim: deceleration must be in [0, 1), got %g", p.Deceleration)
	case p.StarshipScale <= 0 || p.BulletScale <= 0:
		return fmt.Errorf("sim: starship and bullet scales must be positive")
	case p.InitialAsteroids < 0:
		return fmt.Errorf("sim: initial asteroids must not be negative, got %d", p.InitialAsteroids)
	}
	for s, scale := range p.AsteroidScales {
		if scale <= 0 {
			return fmt.Errorf("sim: %s asteroid scale must be positive, got %g", Size(s), scale)
		}
	}
	return nil
}

// Bounds returns the viewport rectangle, centered on the origin.
func (p Params) Bounds() Bounds {
	return Bounds{
		MinX: -p.ViewportW / 2,
		MaxX: p.ViewportW / 2,
		MinY: -p.ViewportH / 2,
		MaxY: p.ViewportH / 2,
	}
}

// AsteroidScale returns the visual scale of an asteroid of the given size.
func (p Params) AsteroidScale(s Size) float64 {
	return p.AsteroidScales[s.index()]
}

// Bounds is an axis-aligned viewport rectangle in logical units.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}
