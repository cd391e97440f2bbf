package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Source is the random stream used for fragment and field directions.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// RandomDirection returns a unit vector with a uniformly random angle.
func RandomDirection(rng Source) core.Vec2 {
	return core.FromAngle(rng.Float64() * 2 * math.Pi)
}

// SplitAsteroid queues the destruction of asteroid h and, unless it is
// already Small, two fragments of the next size at its position with
// independent random headings at the given speed.
func SplitAsteroid(es Entities, sp Spatial, cmds *Commands, rng Source, h Handle, speed float64) {
	pos := sp.Get(h).Position
	cmds.Despawn(h)
	next, ok := Split(es.Size(h))
	if !ok {
		return
	}
	for range 2 {
		cmds.SpawnAsteroid(pos, RandomDirection(rng).Scale(speed), next)
	}
}
