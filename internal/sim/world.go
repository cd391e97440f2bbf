package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const spawnAttempts = 32

// EntityView is one entry of the render feed.
type EntityView struct {
	Handle   Handle
	Kind     Kind
	Position core.Vec2
	Velocity core.Vec2
	Rotation float64
	Scale    float64
	Size     Size // asteroids only
}

// World owns the arena and runs the tick pipeline over it.
type World struct {
	params Params
	bounds Bounds
	rng    Source

	arena    *Arena
	cmds     Commands
	control  Translator
	detector *Detector

	tick int

	// scratch buffers reused across ticks
	ships, bullets, asteroids, spawned, expired []Handle
	events                                      []Event
}

// NewWorld creates an empty world. It panics if p is invalid; hosts are
// expected to validate configuration before building a world.
func NewWorld(p Params, rng Source) *World {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	return &World{
		params:   p,
		bounds:   p.Bounds(),
		rng:      rng,
		arena:    NewArena(64),
		detector: NewDetector(64),
	}
}

// Params returns the tuning the world was built with.
func (w *World) Params() Params {
	return w.params
}

// Spatial returns the spatial-state view of the world's arena.
func (w *World) Spatial() Spatial {
	return w.arena.Spatial()
}

// Entities returns the creation/destruction view of the world's arena.
func (w *World) Entities() Entities {
	return Entities{a: w.arena, p: &w.params}
}

// Alive reports whether h refers to a live entity.
func (w *World) Alive(h Handle) bool {
	return w.arena.Alive(h)
}

// Count returns the number of live entities of kind k.
func (w *World) Count(k Kind) int {
	return w.arena.Count(k)
}

// Tick returns the number of completed steps.
func (w *World) Tick() int {
	return w.tick
}

// Populate creates the starting layout: one starship at the origin facing
// up and the initial field of Big asteroids.
func (w *World) Populate() Handle {
	ship := w.Entities().SpawnStarship(core.Vec2{})
	w.SpawnField(w.params.InitialAsteroids, w.params.AsteroidVelocity)
	return ship
}

// SpawnField spawns n Big asteroids at random positions at least SafeRadius
// away from every starship, moving in random directions at speed.
func (w *World) SpawnField(n int, speed float64) []Handle {
	es := w.Entities()
	w.ships = w.arena.Collect(KindStarship, w.ships[:0])
	out := make([]Handle, 0, n)
	for range n {
		pos := w.fieldPosition()
		out = append(out, es.SpawnAsteroid(pos, RandomDirection(w.rng).Scale(speed), SizeBig))
	}
	return out
}

func (w *World) fieldPosition() core.Vec2 {
	b := w.bounds
	var pos core.Vec2
	for range spawnAttempts {
		pos = core.V(
			b.MinX+w.rng.Float64()*(b.MaxX-b.MinX),
			b.MinY+w.rng.Float64()*(b.MaxY-b.MinY),
		)
		if w.clearOfShips(pos) {
			return pos
		}
	}
	// Crowded field: fall back to the left edge, which is as far from a
	// centred ship as the viewport allows.
	pos.X = b.MinX
	return pos
}

func (w *World) clearOfShips(pos core.Vec2) bool {
	sp := w.arena.Spatial()
	for _, s := range w.ships {
		if sp.Get(s).Position.Dist(pos) < w.params.SafeRadius {
			return false
		}
	}
	return true
}

// Step advances the world by one tick. dt is the tick length in nominal
// ticks (1 at 60 TPS). The phases run in a fixed order: input translation,
// integration, collision detection, lifecycle. The returned events are
// valid until the next call.
func (w *World) Step(in Input, dt float64) []Event {
	w.events = w.events[:0]
	sp := w.arena.Spatial()
	es := w.Entities()

	// input
	w.ships = w.arena.Collect(KindStarship, w.ships[:0])
	thrust := w.control.Apply(in, w.ships, sp, &w.params, &w.cmds, dt)

	// integrate
	w.arena.Integrate(w.bounds, dt)
	if !thrust {
		for _, s := range w.ships {
			w.arena.Decelerate(s, w.params.Deceleration, dt)
		}
	}

	// collide
	w.bullets = w.arena.Collect(KindBullet, w.bullets[:0])
	w.asteroids = w.arena.Collect(KindAsteroid, w.asteroids[:0])
	for _, s := range w.detector.Starships(sp, w.ships, w.asteroids) {
		w.events = append(w.events, Event{Kind: EventStarshipDestroyed, Handle: s, Position: sp.Get(s).Position})
		w.cmds.Despawn(s)
	}
	for _, hit := range w.detector.Bullets(sp, w.bullets, w.asteroids) {
		at := sp.Get(hit.Asteroid)
		w.events = append(w.events, Event{
			Kind:     EventAsteroidDestroyed,
			Handle:   hit.Asteroid,
			Position: at.Position,
			Size:     es.Size(hit.Asteroid),
		})
		w.cmds.Despawn(hit.Bullet)
		SplitAsteroid(es, sp, &w.cmds, w.rng, hit.Asteroid, w.params.AsteroidVelocity)
	}

	// lifecycle
	w.cmds.ApplyDespawns(es)
	w.expired = es.PruneBullets(w.params.BulletDistance, w.expired[:0])
	for _, b := range w.expired {
		w.events = append(w.events, Event{Kind: EventBulletExpired, Handle: b})
	}
	w.spawned = w.cmds.ApplySpawns(es, w.spawned[:0])
	for _, h := range w.spawned {
		if w.arena.Kind(h) == KindBullet {
			w.events = append(w.events, Event{Kind: EventBulletFired, Handle: h, Position: sp.Get(h).Position})
		}
	}

	w.tick++
	return w.events
}

// Snapshot appends the render feed, one view per live entity in slot
// order, to dst.
func (w *World) Snapshot(dst []EntityView) []EntityView {
	for i := range w.arena.slots {
		e := &w.arena.slots[i]
		if !e.alive {
			continue
		}
		dst = append(dst, EntityView{
			Handle:   newHandle(uint32(i), e.gen),
			Kind:     e.kind,
			Position: e.pos,
			Velocity: e.vel,
			Rotation: e.rot,
			Scale:    e.scale,
			Size:     e.size,
		})
	}
	return dst
}

// ResetControls clears latched input state, e.g. after a pause.
func (w *World) ResetControls() {
	w.control.Reset()
}
