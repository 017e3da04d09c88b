package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestApplyForceModes(t *testing.T) {
	cases := []struct {
		name string
		mode ForceMode
		mass float64
		dt   float64
		want mgl64.Vec3
	}{
		{"acceleration_ignores_mass", ForceModeAcceleration, 4, 0.5, mgl64.Vec3{0, 1, 0}},
		{"force_divides_by_mass", ForceModeForce, 4, 0.5, mgl64.Vec3{0, 0.25, 0}},
		{"impulse_ignores_dt", ForceModeImpulse, 4, 0.5, mgl64.Vec3{0, 0.5, 0}},
		{"velocity_change", ForceModeVelocityChange, 4, 0.5, mgl64.Vec3{0, 2, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			b := NewBody(mgl64.Vec3{}, 0.5)
			b.GravityScale = 0
			b.Mass = c.mass
			w.AddBody(b)

			b.ApplyForce(mgl64.Vec3{0, 2, 0}, c.mode)
			w.Step(c.dt)

			assert.True(t, b.Velocity().ApproxEqualThreshold(c.want, eps), "got %v", b.Velocity())
		})
	}
}

func TestForcesDoNotCarryOverSteps(t *testing.T) {
	w := NewWorld()
	b := NewBody(mgl64.Vec3{}, 0.5)
	b.GravityScale = 0
	w.AddBody(b)

	b.ApplyForce(mgl64.Vec3{1, 0, 0}, ForceModeImpulse)
	w.Step(0.1)
	w.Step(0.1)

	assert.InDelta(t, 1, b.Velocity().X(), eps)
	assert.InDelta(t, 0.2, b.Position().X(), eps)
}

func TestWorldGravityScale(t *testing.T) {
	w := NewWorld()
	b := NewBody(mgl64.Vec3{0, 10, 0}, 0.5)
	b.GravityScale = 0
	w.AddBody(b)

	w.Step(0.02)
	assert.Equal(t, mgl64.Vec3{}, b.Velocity(), "disabled engine gravity must not move the body")

	b.GravityScale = 1
	w.Step(0.02)
	assert.InDelta(t, DefaultGravity.Y()*0.02, b.Velocity().Y(), eps)
}

func TestMovePositionAppliedOnStep(t *testing.T) {
	w := NewWorld()
	b := NewBody(mgl64.Vec3{}, 0.5)
	b.GravityScale = 0
	w.AddBody(b)

	b.MovePosition(mgl64.Vec3{0, 0, 0.1})
	target, ok := b.PendingMove()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, 0, 0.1}, target)
	assert.Equal(t, mgl64.Vec3{}, b.Position(), "move is deferred")

	w.Step(0.02)
	assert.True(t, b.Position().ApproxEqualThreshold(mgl64.Vec3{0, 0, 0.1}, eps))
	_, ok = b.PendingMove()
	assert.False(t, ok)
}

func TestBodyRestsOnFloor(t *testing.T) {
	w := NewWorld()
	w.AddBox(NewBox(mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{10, 0.5, 10}))
	b := NewBody(mgl64.Vec3{0, 0, 0}, 0.5)
	w.AddBody(b)

	for i := 0; i < 50; i++ {
		w.Step(0.02)
	}

	assert.InDelta(t, 0, b.Position().Y(), 1e-6)
	assert.InDelta(t, 0, b.Velocity().Y(), 1e-6)
}

func TestSphereInsideBoxPushedOut(t *testing.T) {
	box := NewBox(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	normal, depth, ok := box.sphereOverlap(mgl64.Vec3{0, 0.8, 0}, 0.5)
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, normal)
	assert.InDelta(t, 0.7, depth, eps)
}

func TestRaycast(t *testing.T) {
	w := NewWorld()
	floor := NewBox(mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{5, 0.5, 5})
	wall := NewBox(mgl64.Vec3{3, 2, 0}, mgl64.Vec3{0.5, 2, 5})
	w.AddBox(floor)
	w.AddBox(wall)

	cases := []struct {
		name     string
		origin   mgl64.Vec3
		dir      mgl64.Vec3
		max      float64
		wantHit  bool
		wantBox  *Box
		wantDist float64
		wantNorm mgl64.Vec3
	}{
		{"down_to_floor", mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, -1, 0}, 1.2, true, floor, 0.5, mgl64.Vec3{0, 1, 0}},
		{"unnormalized_direction", mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, -4, 0}, 1.2, true, floor, 0.5, mgl64.Vec3{0, 1, 0}},
		{"out_of_reach", mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, -1, 0}, 1.2, false, nil, 0, mgl64.Vec3{}},
		{"sideways_to_wall", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, 5, true, wall, 2.5, mgl64.Vec3{-1, 0, 0}},
		{"nearest_wins", mgl64.Vec3{3, 5, 0}, mgl64.Vec3{0, -1, 0}, 10, true, wall, 1, mgl64.Vec3{0, 1, 0}},
		{"origin_inside_ignored", mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{0, -1, 0}, 10, false, nil, 0, mgl64.Vec3{}},
		{"zero_direction", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{}, 10, false, nil, 0, mgl64.Vec3{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit, ok := w.Raycast(c.origin, c.dir, c.max)
			require.Equal(t, c.wantHit, ok)
			if !ok {
				return
			}
			assert.Same(t, c.wantBox, hit.Box)
			assert.InDelta(t, c.wantDist, hit.Distance, eps)
			assert.Equal(t, c.wantNorm, hit.Normal)
		})
	}
}

func TestTriggerContacts(t *testing.T) {
	w := NewWorld()
	cube := NewTrigger("cube", mgl64.Vec3{0, 0.5, 2}, mgl64.Vec3{0.25, 0.25, 0.25})
	cube.Owner = 42
	w.AddTrigger(cube)

	b := NewBody(mgl64.Vec3{}, 0.5)
	b.GravityScale = 0
	w.AddBody(b)

	w.Step(0.02)
	assert.Empty(t, w.Contacts())

	b.SetPosition(mgl64.Vec3{0, 0, 1.5})
	w.Step(0.02)
	require.Len(t, w.Contacts(), 1)
	assert.Same(t, b, w.Contacts()[0].Body)
	assert.Equal(t, 42, w.Contacts()[0].Trigger.Owner)

	w.RemoveTrigger(cube)
	w.Step(0.02)
	assert.Empty(t, w.Contacts())
}

func TestColliderFollowsRotation(t *testing.T) {
	b := NewBody(mgl64.Vec3{1, 1, 1}, 0.5)
	b.SetRotation(mgl64.QuatRotate(mgl64.DegToRad(180), mgl64.Vec3{0, 0, 1}))
	assert.True(t, b.Center().ApproxEqualThreshold(mgl64.Vec3{1, 0.5, 1}, 1e-9))
}
