package physics

import "github.com/go-gl/mathgl/mgl64"

// ForceMode selects how ApplyForce turns a vector into a velocity change.
type ForceMode int

const (
	// ForceModeForce is a continuous force scaled by mass and step length.
	ForceModeForce ForceMode = iota
	// ForceModeAcceleration is a continuous acceleration, mass is ignored.
	ForceModeAcceleration
	// ForceModeImpulse is an instantaneous momentum change scaled by mass.
	ForceModeImpulse
	// ForceModeVelocityChange is an instantaneous velocity change.
	ForceModeVelocityChange
)

func (m ForceMode) String() string {
	switch m {
	case ForceModeForce:
		return "force"
	case ForceModeAcceleration:
		return "acceleration"
	case ForceModeImpulse:
		return "impulse"
	case ForceModeVelocityChange:
		return "velocity_change"
	default:
		return "unknown"
	}
}

// Body is a dynamic sphere collider. Forces and MovePosition requests are
// buffered until the next World.Step.
type Body struct {
	Tag string

	// GravityScale multiplies World.Gravity. Zero disables world gravity.
	GravityScale float64
	Mass         float64
	Radius       float64
	// ColliderOffset is the sphere centre in body-local space.
	ColliderOffset mgl64.Vec3

	position mgl64.Vec3
	velocity mgl64.Vec3
	rotation mgl64.Quat

	accel   mgl64.Vec3
	deltaV  mgl64.Vec3
	target  mgl64.Vec3
	moving  bool
}

// NewBody creates a unit-mass body at position with identity rotation.
func NewBody(position mgl64.Vec3, radius float64) *Body {
	return &Body{
		GravityScale:   1,
		Mass:           1,
		Radius:         radius,
		ColliderOffset: mgl64.Vec3{0, radius, 0},
		position:       position,
		rotation:       mgl64.QuatIdent(),
	}
}

func (b *Body) Position() mgl64.Vec3 { return b.position }

// SetPosition teleports the body and drops any pending MovePosition.
func (b *Body) SetPosition(p mgl64.Vec3) {
	b.position = p
	b.moving = false
}

func (b *Body) Velocity() mgl64.Vec3 { return b.velocity }

func (b *Body) SetVelocity(v mgl64.Vec3) { b.velocity = v }

func (b *Body) Rotation() mgl64.Quat { return b.rotation }

func (b *Body) SetRotation(q mgl64.Quat) { b.rotation = q.Normalize() }

// MovePosition requests the body to be at p at the start of the next step.
func (b *Body) MovePosition(p mgl64.Vec3) {
	b.target = p
	b.moving = true
}

// PendingMove returns the MovePosition target queued for the next step.
func (b *Body) PendingMove() (mgl64.Vec3, bool) {
	return b.target, b.moving
}

// ApplyForce buffers f for the next step according to mode.
func (b *Body) ApplyForce(f mgl64.Vec3, mode ForceMode) {
	mass := b.Mass
	if mass <= 0 {
		mass = 1
	}
	switch mode {
	case ForceModeForce:
		b.accel = b.accel.Add(f.Mul(1 / mass))
	case ForceModeAcceleration:
		b.accel = b.accel.Add(f)
	case ForceModeImpulse:
		b.deltaV = b.deltaV.Add(f.Mul(1 / mass))
	case ForceModeVelocityChange:
		b.deltaV = b.deltaV.Add(f)
	}
}

// Center returns the collider centre in world space.
func (b *Body) Center() mgl64.Vec3 {
	return b.position.Add(b.rotation.Rotate(b.ColliderOffset))
}

func (b *Body) integrate(gravity mgl64.Vec3, dt float64) {
	accel := b.accel.Add(gravity.Mul(b.GravityScale))
	b.velocity = b.velocity.Add(accel.Mul(dt)).Add(b.deltaV)
	if b.moving {
		b.position = b.target
	}
	b.position = b.position.Add(b.velocity.Mul(dt))

	b.accel = mgl64.Vec3{}
	b.deltaV = mgl64.Vec3{}
	b.moving = false
}
