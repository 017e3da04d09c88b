package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/milk9111/gravityshift/physics"
	"github.com/milk9111/gravityshift/sfx"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now   float64
	dt    float64
	fixed float64
}

func (c *fakeClock) DeltaTime() float64      { return c.dt }
func (c *fakeClock) FixedDeltaTime() float64 { return c.fixed }
func (c *fakeClock) Now() float64            { return c.now }

func (c *fakeClock) advance() { c.now += c.dt }

type fakeEvents struct {
	died  int
	cubes int
}

func (f *fakeEvents) ReportPlayerDied()    { f.died++ }
func (f *fakeEvents) ReportCubeCollected() { f.cubes++ }

type fakeAudio struct {
	cues []sfx.Cue
}

func (f *fakeAudio) PlayAudioCue(cue sfx.Cue) { f.cues = append(f.cues, cue) }

type fakeSpace struct {
	hit   bool
	calls int

	origin, direction mgl64.Vec3
	maxDistance       float64
}

func (f *fakeSpace) Raycast(origin, direction mgl64.Vec3, maxDistance float64) (physics.RaycastHit, bool) {
	f.calls++
	f.origin, f.direction, f.maxDistance = origin, direction, maxDistance
	return physics.RaycastHit{}, f.hit
}

type testPlayer struct {
	entity ecs.Entity
	body   *physics.Body
	cfg    *component.Player
	loco   *component.Locomotion
	input  *component.Input
	holo   *component.Hologram
	anim   *component.Animator
}

func newTestPlayer(t *testing.T, w *ecs.World, position mgl64.Vec3) *testPlayer {
	t.Helper()

	cfg := component.DefaultPlayer()
	p := &testPlayer{
		entity: ecs.CreateEntity(w),
		body:   physics.NewBody(position, 0.5),
		cfg:    &cfg,
		loco:   component.NewLocomotion(),
		input:  &component.Input{},
		holo:   component.NewHologram(),
		anim:   component.NewAnimator(),
	}
	e := p.entity
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent.Kind(), p.cfg))
	require.NoError(t, ecs.Add(w, e, component.LocomotionComponent.Kind(), p.loco))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), p.input))
	require.NoError(t, ecs.Add(w, e, component.HologramComponent.Kind(), p.holo))
	require.NoError(t, ecs.Add(w, e, component.AnimatorComponent.Kind(), p.anim))
	require.NoError(t, ecs.Add(w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{Body: p.body}))
	require.NoError(t, ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 0}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(position)))
	return p
}

func addFloor(t *testing.T, w *ecs.World) *physics.Box {
	t.Helper()
	box := physics.NewBox(mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{10, 0.5, 10})
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.StaticColliderComponent.Kind(), &component.StaticCollider{Box: box}))
	return box
}
