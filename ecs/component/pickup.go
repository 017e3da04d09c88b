package component

import "github.com/milk9111/gravityshift/physics"

const PickupKindCube = "cube"

// Pickup is a collectible backed by a physics trigger volume.
type Pickup struct {
	Kind    string
	Trigger *physics.Trigger
	// Spin is the idle rotation speed in degrees per second.
	Spin float64
}

var PickupComponent = NewComponent[Pickup]()
