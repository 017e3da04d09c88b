package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityshift/common"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomGravityAddsStrengthPerStep(t *testing.T) {
	diag, _ := common.SafeNormalize(mgl64.Vec3{1, -2, 3})
	gravities := map[string]mgl64.Vec3{
		"down":     {0, -1, 0},
		"up":       {0, 1, 0},
		"east":     {1, 0, 0},
		"north":    {0, 0, 1},
		"diagonal": diag,
	}

	for name, g := range gravities {
		t.Run(name, func(t *testing.T) {
			w := ecs.NewWorld()
			clock := &fakeClock{fixed: 0.02}
			p := newTestPlayer(t, w, mgl64.Vec3{})
			p.loco.GravityDirection = g

			phys := NewPhysicsSystem(clock)
			sched := ecs.NewScheduler(NewPlayerPhysicsSystem(clock, phys), phys)

			sched.Update(w)
			assertVec3(t, g.Mul(9.81*0.02), p.body.Velocity())

			sched.Update(w)
			assertVec3(t, g.Mul(2*9.81*0.02), p.body.Velocity())
		})
	}
}

func TestMoveDisplacementPerFixedStep(t *testing.T) {
	w := ecs.NewWorld()
	clock := &fakeClock{dt: 0.02, fixed: 0.02}
	p := newTestPlayer(t, w, mgl64.Vec3{2, 0, 3})
	p.input.Move = mgl64.Vec2{0, 1}

	NewPlayerControllerSystem(clock, nil, nil).Update(w)
	NewPlayerPhysicsSystem(clock, nil).Update(w)

	target, ok := p.body.PendingMove()
	require.True(t, ok)
	assertVec3(t, mgl64.Vec3{0, 0, 0.1}, target.Sub(p.body.Position()))
}

func TestMoveDisplacementAfterStep(t *testing.T) {
	w := ecs.NewWorld()
	clock := &fakeClock{dt: 0.02, fixed: 0.02}
	p := newTestPlayer(t, w, mgl64.Vec3{})
	p.input.Move = mgl64.Vec2{0, 1}
	phys := NewPhysicsSystem(clock)

	NewPlayerControllerSystem(clock, nil, nil).Update(w)
	ecs.NewScheduler(NewPlayerPhysicsSystem(clock, phys), phys).Update(w)

	moved := common.ProjectOnPlane(p.body.Position(), common.Up)
	assertVec3(t, mgl64.Vec3{0, 0, 0.1}, moved)
}

func TestMoveBelowDeadzoneSkipped(t *testing.T) {
	w := ecs.NewWorld()
	p := newTestPlayer(t, w, mgl64.Vec3{})
	p.loco.MoveDirection = mgl64.Vec3{0.05, 0, 0.05}

	NewPlayerPhysicsSystem(&fakeClock{fixed: 0.02}, nil).Update(w)

	_, ok := p.body.PendingMove()
	assert.False(t, ok)
	assert.Equal(t, mgl64.QuatIdent(), p.body.Rotation())
}

func TestFacingTurnsTowardMovement(t *testing.T) {
	w := ecs.NewWorld()
	clock := &fakeClock{fixed: 0.02}
	p := newTestPlayer(t, w, mgl64.Vec3{})
	p.input.Move = mgl64.Vec2{1, 0}
	p.loco.MoveDirection = mgl64.Vec3{1, 0, 0}
	sys := NewPlayerPhysicsSystem(clock, nil)

	sys.Update(w)
	first := common.RotationForward(p.body.Rotation())
	assert.Greater(t, first.X(), 0.0)
	assert.Less(t, first.X(), 1.0, "one step only covers part of the turn")
	assert.InDelta(t, 0, first.Y(), 1e-9, "facing stays on the surface plane")

	for range 200 {
		sys.Update(w)
	}
	assert.InDelta(t, 1, common.RotationForward(p.body.Rotation()).X(), 1e-6)
}

func TestFacingRateScalesWithForwardInput(t *testing.T) {
	turned := func(axisY float64) float64 {
		w := ecs.NewWorld()
		p := newTestPlayer(t, w, mgl64.Vec3{})
		p.input.Move = mgl64.Vec2{1, axisY}
		p.loco.MoveDirection = mgl64.Vec3{1, 0, 0}
		NewPlayerPhysicsSystem(&fakeClock{fixed: 0.02}, nil).Update(w)
		return math.Acos(mgl64.Clamp(common.RotationForward(p.body.Rotation()).Z(), -1, 1))
	}

	assert.Greater(t, turned(1), turned(0))
}

func TestBackwardInputKeepsFacing(t *testing.T) {
	w := ecs.NewWorld()
	p := newTestPlayer(t, w, mgl64.Vec3{})
	p.input.Move = mgl64.Vec2{0, -1}
	p.loco.MoveDirection = mgl64.Vec3{0, 0, -1}

	NewPlayerPhysicsSystem(&fakeClock{fixed: 0.02}, nil).Update(w)

	assert.Equal(t, mgl64.QuatIdent(), p.body.Rotation())
	_, moving := p.body.PendingMove()
	assert.True(t, moving)
}

func TestGroundedRaycast(t *testing.T) {
	w := ecs.NewWorld()
	space := &fakeSpace{hit: true}
	p := newTestPlayer(t, w, mgl64.Vec3{1, 2, 3})
	p.loco.GravityDirection = mgl64.Vec3{0, 0, 1}
	sys := NewPlayerPhysicsSystem(&fakeClock{fixed: 0.02}, space)

	sys.Update(w)
	assert.True(t, p.loco.Grounded)
	assertVec3(t, mgl64.Vec3{1, 2, 2.5}, space.origin)
	assertVec3(t, mgl64.Vec3{0, 0, 1}, space.direction)
	assert.Equal(t, 1.2, space.maxDistance)

	space.hit = false
	sys.Update(w)
	assert.False(t, p.loco.Grounded)
}

func TestNotGroundedAfterSwitchWithoutGroundInReach(t *testing.T) {
	w := ecs.NewWorld()
	clock := &fakeClock{dt: 0.02, fixed: 0.02}
	addFloor(t, w)
	p := newTestPlayer(t, w, mgl64.Vec3{})
	phys := NewPhysicsSystem(clock)
	fixed := ecs.NewScheduler(NewPlayerPhysicsSystem(clock, phys), phys)
	frame := ecs.NewScheduler(NewPlayerControllerSystem(clock, nil, nil))

	phys.Sync(w)
	fixed.Update(w)
	frame.Update(w)
	require.True(t, p.loco.Grounded)

	// Preview gravity toward +x; the east is open.
	p.input.RotatePreview = mgl64.Vec2{1, 0}
	frame.Update(w)
	clock.advance()
	*p.input = component.Input{GravitySwitchPressed: true}
	frame.Update(w)
	require.Equal(t, mgl64.Vec3{1, 0, 0}, roundVec(p.loco.GravityDirection))
	assert.False(t, p.loco.Grounded)

	fixed.Update(w)
	assert.False(t, p.loco.Grounded)
}

func TestDisabledPlayerSkipsPhysics(t *testing.T) {
	w := ecs.NewWorld()
	space := &fakeSpace{hit: true}
	p := newTestPlayer(t, w, mgl64.Vec3{})
	p.loco.MoveDirection = mgl64.Vec3{0, 0, 1}
	require.NoError(t, ecs.Add(w, p.entity, component.DisabledComponent.Kind(), &component.Disabled{}))

	NewPlayerPhysicsSystem(&fakeClock{fixed: 0.02}, space).Update(w)

	assert.Zero(t, space.calls)
	_, moving := p.body.PendingMove()
	assert.False(t, moving)
}

func roundVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Round(v.X()), math.Round(v.Y()), math.Round(v.Z())}
}
