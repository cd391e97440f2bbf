package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func press(a core.Action) core.KeyEvent   { return core.KeyEvent{Action: a, Pressed: true} }
func release(a core.Action) core.KeyEvent { return core.KeyEvent{Action: a} }

func TestFireEdgesDebounce(t *testing.T) {
	var tr Translator

	assert.Equal(t, 1, tr.FireEdges(Input{Events: []core.KeyEvent{press(core.ActionFire)}}))
	// Held: no new events, no new edge.
	assert.Equal(t, 0, tr.FireEdges(Input{}))
	// Key repeat while held is not an edge.
	assert.Equal(t, 0, tr.FireEdges(Input{Events: []core.KeyEvent{press(core.ActionFire)}}))
	// Release then press within one tick is a new edge.
	assert.Equal(t, 1, tr.FireEdges(Input{Events: []core.KeyEvent{
		release(core.ActionFire), press(core.ActionFire),
	}}))
	// Two full taps in one tick fire twice.
	assert.Equal(t, 2, tr.FireEdges(Input{Events: []core.KeyEvent{
		release(core.ActionFire), press(core.ActionFire),
		release(core.ActionFire), press(core.ActionFire),
	}}))
	// Other keys are ignored.
	tr.Reset()
	assert.Equal(t, 0, tr.FireEdges(Input{Events: []core.KeyEvent{press(core.ActionThrust)}}))
}

func newShipFixture() (*Arena, Entities, Handle, *Params) {
	a, es := newTestEntities()
	h := es.SpawnStarship(core.Vec2{})
	return a, es, h, es.p
}

func TestTranslatorRotation(t *testing.T) {
	a, _, h, p := newShipFixture()
	var tr Translator
	var cmds Commands
	ships := []Handle{h}

	tr.Apply(Input{RotateLeft: true}, ships, a.Spatial(), p, &cmds, 1)
	assert.InDelta(t, p.RotationSpeed, a.Spatial().Get(h).Rotation, 1e-12)

	tr.Apply(Input{RotateRight: true}, ships, a.Spatial(), p, &cmds, 1)
	assert.InDelta(t, 0, a.Spatial().Get(h).Rotation, 1e-12)

	// Left wins when both are held.
	tr.Apply(Input{RotateLeft: true, RotateRight: true}, ships, a.Spatial(), p, &cmds, 1)
	assert.InDelta(t, p.RotationSpeed, a.Spatial().Get(h).Rotation, 1e-12)
}

func TestTranslatorThrustFollowsHeading(t *testing.T) {
	a, _, h, p := newShipFixture()
	var tr Translator
	var cmds Commands

	thrust := tr.Apply(Input{Thrust: true}, []Handle{h}, a.Spatial(), p, &cmds, 1)
	assert.True(t, thrust)

	v := a.Spatial().Get(h).Velocity
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, p.Acceleration, v.Y, 1e-12)
}

func TestSpeedCap(t *testing.T) {
	a, _, h, p := newShipFixture()
	var tr Translator
	var cmds Commands

	for i := range 500 {
		in := Input{Thrust: true, RotateLeft: i%50 < 10}
		tr.Apply(in, []Handle{h}, a.Spatial(), p, &cmds, 1)
		require.LessOrEqual(t, a.Spatial().Get(h).Velocity.Len(), p.MaxVelocity+1e-9)
	}
	assert.InDelta(t, p.MaxVelocity, a.Spatial().Get(h).Velocity.Len(), 1e-9)
}

func TestTranslatorQueuesBulletOnEdge(t *testing.T) {
	a, es, h, p := newShipFixture()
	var tr Translator
	var cmds Commands
	a.Spatial().SetPosition(h, core.V(10, 20))

	in := Input{Events: []core.KeyEvent{press(core.ActionFire)}}
	tr.Apply(in, []Handle{h}, a.Spatial(), p, &cmds, 1)
	require.Equal(t, 1, cmds.Len())

	tr.Apply(Input{}, []Handle{h}, a.Spatial(), p, &cmds, 1)
	require.Equal(t, 1, cmds.Len())

	spawned := cmds.Flush(es, nil)
	require.Len(t, spawned, 1)
	b := a.Spatial().Get(spawned[0])
	assert.Equal(t, core.V(10, 20), b.Position)
	assert.InDelta(t, 0, b.Velocity.X, 1e-12)
	assert.InDelta(t, p.BulletVelocity, b.Velocity.Y, 1e-12)
	assert.Equal(t, core.V(10, 20), es.Origin(spawned[0]))
}

func TestInputFromFrame(t *testing.T) {
	f := core.NewInputFrame()
	f.Set(core.ActionRotateLeft)
	f.Set(core.ActionThrust)
	f.Press(core.ActionFire)

	in := InputFromFrame(f)
	assert.True(t, in.RotateLeft)
	assert.False(t, in.RotateRight)
	assert.True(t, in.Thrust)
	assert.Equal(t, []core.KeyEvent{press(core.ActionFire)}, in.Events)
}
