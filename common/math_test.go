package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func vecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-6), "want %v got %v", want, got)
}

func TestLookRotation(t *testing.T) {
	cases := []struct {
		name    string
		forward mgl64.Vec3
		up      mgl64.Vec3
	}{
		{"identity", Forward, Up},
		{"right", Right, Up},
		{"back_unnormalized", mgl64.Vec3{0, 0, -3}, Up},
		{"on_wall", Up, mgl64.Vec3{-1, 0, 0}},
		{"ceiling", mgl64.Vec3{1, 0, 1}, mgl64.Vec3{0, -1, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := LookRotation(c.forward, c.up)
			f, _ := SafeNormalize(c.forward)
			vecNear(t, f, RotationForward(q))
			u, _ := SafeNormalize(ProjectOnPlane(c.up, f))
			vecNear(t, u, RotationUp(q))
		})
	}
}

func TestLookRotationDegenerate(t *testing.T) {
	assert.Equal(t, mgl64.QuatIdent(), LookRotation(mgl64.Vec3{}, Up))

	q := LookRotation(Up, Up)
	vecNear(t, Up, RotationForward(q))
}

func TestFromToRotation(t *testing.T) {
	cases := []struct {
		name     string
		from, to mgl64.Vec3
	}{
		{"quarter", Up, Right},
		{"opposite", Up, mgl64.Vec3{0, -1, 0}},
		{"same", Forward, Forward},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := FromToRotation(c.from, c.to)
			vecNear(t, c.to, q.Rotate(c.from))
		})
	}
}

func TestEulerRoundTrip(t *testing.T) {
	cases := []mgl64.Vec3{
		{0, 0, 0},
		{0, 0, 90},
		{30, 45, 60},
		{270, 0, 180},
		{10, 200, 350},
	}
	for _, e := range cases {
		q := QuatFromEulerDegrees(e)
		back := QuatFromEulerDegrees(EulerDegrees(q))
		assert.InDelta(t, 1, math.Abs(q.Dot(back)), 1e-9, "euler %v", e)
	}
}

func TestEulerDegreesRange(t *testing.T) {
	e := EulerDegrees(mgl64.QuatRotate(mgl64.DegToRad(-90), Forward))
	assert.InDelta(t, 270, e.Z(), 1e-6)
	for i := 0; i < 3; i++ {
		assert.GreaterOrEqual(t, e[i], 0.0)
		assert.Less(t, e[i], 360.0)
	}
}

func TestEulerGimbalLockKeepsOrientation(t *testing.T) {
	q := QuatFromEulerDegrees(mgl64.Vec3{90, 30, 0})
	e := EulerDegrees(q)
	assert.InDelta(t, 90, e.X(), 1e-4)
	assert.InDelta(t, 0, e.Z(), 1e-9)
	back := QuatFromEulerDegrees(e)
	assert.InDelta(t, 1, math.Abs(q.Dot(back)), 1e-6)
}

func TestSlerpShortestArc(t *testing.T) {
	a := mgl64.QuatIdent()
	b := mgl64.QuatRotate(mgl64.DegToRad(90), Up).Scale(-1)

	half := Slerp(a, b, 0.5)
	want := mgl64.QuatRotate(mgl64.DegToRad(45), Up)
	assert.InDelta(t, 1, math.Abs(half.Dot(want)), 1e-9)

	assert.InDelta(t, 1, math.Abs(a.Dot(Slerp(a, b, -1))), 1e-12)
}

func TestWrapDegrees(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		360:  0,
		-90:  270,
		725:  5,
		-720: 0,
	}
	for in, want := range cases {
		assert.InDelta(t, want, WrapDegrees(in), 1e-9, "in %v", in)
	}
}

func TestProjectOnPlane(t *testing.T) {
	vecNear(t, mgl64.Vec3{1, 0, 2}, ProjectOnPlane(mgl64.Vec3{1, 5, 2}, Up))
}
