package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

type commandKind uint8

const (
	cmdSpawnBullet commandKind = iota + 1
	cmdSpawnAsteroid
	cmdDespawn
)

type command struct {
	kind   commandKind
	handle Handle
	pos    core.Vec2
	vel    core.Vec2
	size   Size
}

// Commands buffers structural changes to the arena so that systems iterating
// the entity set never mutate it. The buffer is flushed once per tick, in
// the lifecycle phase: despawns first, then spawns.
type Commands struct {
	queue []command
}

// SpawnBullet queues a bullet spawn.
func (c *Commands) SpawnBullet(origin, vel core.Vec2) {
	c.queue = append(c.queue, command{kind: cmdSpawnBullet, pos: origin, vel: vel})
}

// SpawnAsteroid queues an asteroid spawn.
func (c *Commands) SpawnAsteroid(pos, vel core.Vec2, size Size) {
	c.queue = append(c.queue, command{kind: cmdSpawnAsteroid, pos: pos, vel: vel, size: size})
}

// Despawn queues removal of h.
func (c *Commands) Despawn(h Handle) {
	c.queue = append(c.queue, command{kind: cmdDespawn, handle: h})
}

// Len returns the number of pending commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Flush applies despawns, then spawns, and empties the buffer. Spawned
// handles are appended to dst.
func (c *Commands) Flush(es Entities, dst []Handle) []Handle {
	c.ApplyDespawns(es)
	return c.ApplySpawns(es, dst)
}

// ApplyDespawns performs the queued despawns in queue order.
func (c *Commands) ApplyDespawns(es Entities) {
	for _, cmd := range c.queue {
		if cmd.kind == cmdDespawn {
			es.Despawn(cmd.handle)
		}
	}
}

// ApplySpawns performs the queued spawns in queue order, appends their
// handles to dst and empties the buffer. Call it after ApplyDespawns.
func (c *Commands) ApplySpawns(es Entities, dst []Handle) []Handle {
	for _, cmd := range c.queue {
		switch cmd.kind {
		case cmdSpawnBullet:
			dst = append(dst, es.SpawnBullet(cmd.pos, cmd.vel))
		case cmdSpawnAsteroid:
			dst = append(dst, es.SpawnAsteroid(cmd.pos, cmd.vel, cmd.size))
		}
	}
	c.queue = c.queue[:0]
	return dst
}
