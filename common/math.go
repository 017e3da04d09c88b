package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-6

// World axes: x right, y up, z forward.
var (
	Right   = mgl64.Vec3{1, 0, 0}
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp01(t float64) float64 {
	return mgl64.Clamp(t, 0, 1)
}

// SafeNormalize returns v/|v|, or ok=false when v is too short to carry a
// direction.
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	lenSq := v.Dot(v)
	if lenSq < epsilon*epsilon {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / math.Sqrt(lenSq)), true
}

// ProjectOnPlane removes the component of v along the unit normal n.
func ProjectOnPlane(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// RotationUp returns the local up axis of q in world space.
func RotationUp(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Up)
}

// RotationForward returns the local forward axis of q in world space.
func RotationForward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// RotationRight returns the local right axis of q in world space.
func RotationRight(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Right)
}

// LookRotation builds the rotation whose forward axis points along forward
// and whose up axis is as close to up as possible.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	f, ok := SafeNormalize(forward)
	if !ok {
		return mgl64.QuatIdent()
	}
	r, ok := SafeNormalize(up.Cross(f))
	if !ok {
		return FromToRotation(Forward, f)
	}
	u := f.Cross(r)
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(r, u, f).Mat4()).Normalize()
}

// FromToRotation is the shortest rotation taking direction from onto to.
func FromToRotation(from, to mgl64.Vec3) mgl64.Quat {
	a, okA := SafeNormalize(from)
	b, okB := SafeNormalize(to)
	if !okA || !okB {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(a, b).Normalize()
}

// Slerp interpolates along the shortest arc; t is clamped to [0,1].
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, Clamp01(t)).Normalize()
}

// QuatFromEulerDegrees composes yaw(y) * pitch(x) * roll(z), so roll is
// applied first and yaw last.
func QuatFromEulerDegrees(e mgl64.Vec3) mgl64.Quat {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(e.Y()), Up)
	pitch := mgl64.QuatRotate(mgl64.DegToRad(e.X()), Right)
	roll := mgl64.QuatRotate(mgl64.DegToRad(e.Z()), Forward)
	return yaw.Mul(pitch).Mul(roll).Normalize()
}

// EulerDegrees is the inverse of QuatFromEulerDegrees with every angle
// wrapped into [0,360). In gimbal lock roll is reported as 0.
func EulerDegrees(q mgl64.Quat) mgl64.Vec3 {
	m := q.Normalize().Mat4()
	sx := mgl64.Clamp(-m.At(1, 2), -1, 1)
	x := math.Asin(sx)

	var y, z float64
	if math.Abs(sx) < 1-epsilon {
		y = math.Atan2(m.At(0, 2), m.At(2, 2))
		z = math.Atan2(m.At(1, 0), m.At(1, 1))
	} else {
		y = math.Atan2(-m.At(2, 0), m.At(0, 0))
	}
	return mgl64.Vec3{
		WrapDegrees(mgl64.RadToDeg(x)),
		WrapDegrees(mgl64.RadToDeg(y)),
		WrapDegrees(mgl64.RadToDeg(z)),
	}
}

// WrapDegrees maps an angle into [0,360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360-1e-9 {
		deg = 0
	}
	return deg
}
