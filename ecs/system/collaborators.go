package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityshift/physics"
)

// GameEvents receives round outcomes from the player systems.
type GameEvents interface {
	ReportPlayerDied()
	ReportCubeCollected()
}

// SpatialQuery casts rays against level geometry.
type SpatialQuery interface {
	Raycast(origin, direction mgl64.Vec3, maxDistance float64) (physics.RaycastHit, bool)
}

// Clock is the simulation time source, in seconds.
type Clock interface {
	DeltaTime() float64
	FixedDeltaTime() float64
	Now() float64
}
