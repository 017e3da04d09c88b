package component

// Player holds the locomotion tuning loaded from the player prefab.
type Player struct {
	MoveSpeed       float64
	JumpForce       float64
	RotationSpeed   float64
	GravityStrength float64

	FallGraceTime float64
	FallThreshold float64

	GravitySwitchCooldown float64
	GravitySwitchOffset   float64

	GroundCheckOffset   float64
	GroundCheckDistance float64

	MoveDeadzone      float64
	HologramHideAfter float64

	// NormalizeDiagonal removes the ~41% speed bonus of diagonal input.
	NormalizeDiagonal bool
}

// DefaultPlayer returns the tuning the prototype shipped with.
func DefaultPlayer() Player {
	return Player{
		MoveSpeed:             5,
		JumpForce:             5,
		RotationSpeed:         10,
		GravityStrength:       9.81,
		FallGraceTime:         4,
		FallThreshold:         0.5,
		GravitySwitchCooldown: 0.2,
		GravitySwitchOffset:   1.8,
		GroundCheckOffset:     0.5,
		GroundCheckDistance:   1.2,
		MoveDeadzone:          0.01,
		HologramHideAfter:     2,
	}
}

var PlayerComponent = NewComponent[Player]()
