package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Entities is the creation/destruction view over an Arena. It assigns each
// spawned entity its scale from Params.
type Entities struct {
	a *Arena
	p *Params
}

// SpawnStarship creates a starship at pos, at rest, facing up.
func (es Entities) SpawnStarship(pos core.Vec2) Handle {
	return es.a.alloc(entity{
		kind:  KindStarship,
		pos:   pos,
		scale: es.p.StarshipScale,
	})
}

// SpawnAsteroid creates an asteroid of the given size class.
func (es Entities) SpawnAsteroid(pos, vel core.Vec2, size Size) Handle {
	return es.a.alloc(entity{
		kind:  KindAsteroid,
		pos:   pos,
		vel:   vel,
		size:  size,
		scale: es.p.AsteroidScale(size),
	})
}

// SpawnBullet creates a bullet at origin and records origin for range tracking.
func (es Entities) SpawnBullet(origin, vel core.Vec2) Handle {
	return es.a.alloc(entity{
		kind:   KindBullet,
		pos:    origin,
		vel:    vel,
		origin: origin,
		scale:  es.p.BulletScale,
	})
}

// Despawn destroys h. Despawning a stale handle panics.
func (es Entities) Despawn(h Handle) {
	es.a.release(h)
}

// Size returns the size class of an asteroid.
func (es Entities) Size(h Handle) Size {
	e := es.a.at(h)
	if e.kind != KindAsteroid {
		panic("sim: Size on " + e.kind.String() + " " + h.String())
	}
	return e.size
}

// Origin returns the spawn point of a bullet.
func (es Entities) Origin(h Handle) core.Vec2 {
	e := es.a.at(h)
	if e.kind != KindBullet {
		panic("sim: Origin on " + e.kind.String() + " " + h.String())
	}
	return e.origin
}

// PruneBullets despawns every bullet farther than maxDist from its spawn
// origin and appends their handles to dst.
func (es Entities) PruneBullets(maxDist float64, dst []Handle) []Handle {
	for i := range es.a.slots {
		e := &es.a.slots[i]
		if !e.alive || e.kind != KindBullet || e.pos.Dist(e.origin) <= maxDist {
			continue
		}
		h := newHandle(uint32(i), e.gen)
		dst = append(dst, h)
		es.a.release(h)
	}
	return dst
}
