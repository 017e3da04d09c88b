package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GravitySwitchState is the preview/commit phase of the gravity switch.
type GravitySwitchState int

const (
	GravitySwitchIdle GravitySwitchState = iota
	GravitySwitchPreviewing
)

func (s GravitySwitchState) String() string {
	switch s {
	case GravitySwitchIdle:
		return "idle"
	case GravitySwitchPreviewing:
		return "previewing"
	default:
		return "unknown"
	}
}

// Locomotion is the runtime state of the player's movement and gravity.
// Only the player controller and player physics systems write it.
type Locomotion struct {
	GravityDirection        mgl64.Vec3
	PendingGravityDirection mgl64.Vec3
	SwitchState             GravitySwitchState

	// MoveDirection is the surface-relative direction from the last frame's
	// input; the fixed pass consumes it.
	MoveDirection mgl64.Vec3

	Grounded bool
	FallTimer float64
	Dead      bool

	// LastGravitySwitch is a clock timestamp in seconds.
	LastGravitySwitch float64
}

// NewLocomotion starts with gravity pointing down and no switch on record.
func NewLocomotion() *Locomotion {
	down := mgl64.Vec3{0, -1, 0}
	return &Locomotion{
		GravityDirection:        down,
		PendingGravityDirection: down,
		LastGravitySwitch:       math.Inf(-1),
	}
}

// Up is the direction opposite to gravity.
func (l *Locomotion) Up() mgl64.Vec3 {
	return l.GravityDirection.Mul(-1)
}

var LocomotionComponent = NewComponent[Locomotion]()
