package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// EventKind classifies an observable simulation event.
type EventKind uint8

const (
	EventStarshipDestroyed EventKind = iota + 1
	EventAsteroidDestroyed
	EventBulletFired
	EventBulletExpired
)

func (k EventKind) String() string {
	switch k {
	case EventStarshipDestroyed:
		return "starship_destroyed"
	case EventAsteroidDestroyed:
		return "asteroid_destroyed"
	case EventBulletFired:
		return "bullet_fired"
	case EventBulletExpired:
		return "bullet_expired"
	default:
		return "unknown"
	}
}

// Event is emitted by World.Step. Handle refers to the entity as it was
// when the event happened; for destruction events it is already stale.
type Event struct {
	Kind     EventKind
	Handle   Handle
	Position core.Vec2
	Size     Size // EventAsteroidDestroyed only
}
