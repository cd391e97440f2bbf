package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Handle identifies an entity for its lifetime. The low 32 bits are the
// arena slot, the high 32 bits the slot generation at spawn time, so a
// handle to a despawned entity never aliases the slot's next occupant.
type Handle uint64

// NilHandle is never issued by an Arena.
const NilHandle Handle = 0

func newHandle(index, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(index))
}

// Index returns the arena slot of the handle.
func (h Handle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

// Generation returns the slot generation the handle was issued for.
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

func (h Handle) String() string {
	return fmt.Sprintf("#%d.%d", h.Index(), h.Generation())
}

// Kind is the entity type stored in an arena slot.
type Kind uint8

const (
	KindStarship Kind = iota + 1
	KindBullet
	KindAsteroid
)

func (k Kind) String() string {
	switch k {
	case KindStarship:
		return "starship"
	case KindBullet:
		return "bullet"
	case KindAsteroid:
		return "asteroid"
	default:
		return "none"
	}
}

// entity is one arena record. Fields unused by a kind stay zero.
type entity struct {
	gen   uint32
	alive bool
	kind  Kind

	pos   core.Vec2
	vel   core.Vec2
	rot   float64
	scale float64

	size   Size      // asteroids
	origin core.Vec2 // bullets: spawn point
}

// Arena owns every entity record. Slots are reused through a free list;
// each reuse bumps the slot generation.
type Arena struct {
	slots []entity
	free  []uint32
	live  int
}

// NewArena creates an arena with room for capacity entities before growing.
func NewArena(capacity int) *Arena {
	return &Arena{slots: make([]entity, 0, capacity)}
}

func (a *Arena) alloc(e entity) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		e.gen = a.slots[idx].gen + 1
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, entity{})
		e.gen = 1
	}
	e.alive = true
	a.slots[idx] = e
	a.live++
	return newHandle(idx, e.gen)
}

func (a *Arena) release(h Handle) {
	e := a.at(h)
	gen := e.gen
	*e = entity{gen: gen}
	a.free = append(a.free, h.Index())
	a.live--
}

// at resolves a handle to its record. A stale or unknown handle is an
// ordering bug in the tick pipeline and panics.
func (a *Arena) at(h Handle) *entity {
	idx := h.Index()
	if int(idx) >= len(a.slots) {
		panic(fmt.Sprintf("sim: unknown handle %s", h))
	}
	e := &a.slots[idx]
	if !e.alive || e.gen != h.Generation() {
		panic(fmt.Sprintf("sim: stale handle %s", h))
	}
	return e
}

// Alive reports whether h refers to a live entity.
func (a *Arena) Alive(h Handle) bool {
	idx := h.Index()
	if int(idx) >= len(a.slots) {
		return false
	}
	e := &a.slots[idx]
	return e.alive && e.gen == h.Generation()
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.live
}

// Kind returns the kind of a live entity.
func (a *Arena) Kind(h Handle) Kind {
	return a.at(h).kind
}

// Collect appends the handles of all live entities of the given kind to dst,
// in slot order, and returns the extended slice.
func (a *Arena) Collect(kind Kind, dst []Handle) []Handle {
	for i := range a.slots {
		e := &a.slots[i]
		if e.alive && e.kind == kind {
			dst = append(dst, newHandle(uint32(i), e.gen))
		}
	}
	return dst
}

// Count returns the number of live entities of the given kind.
func (a *Arena) Count(kind Kind) int {
	n := 0
	for i := range a.slots {
		if a.slots[i].alive && a.slots[i].kind == kind {
			n++
		}
	}
	return n
}

// Spatial returns the spatial-state view of the arena.
func (a *Arena) Spatial() Spatial {
	return Spatial{a: a}
}
