package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityshift/common"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
)

// PickupHoverSystem spins idle pickups about the world up axis.
type PickupHoverSystem struct {
	clock Clock
}

func NewPickupHoverSystem(clock Clock) *PickupHoverSystem { return &PickupHoverSystem{clock: clock} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil || s.clock == nil {
		return
	}
	dt := s.clock.DeltaTime()

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		if pickup.Spin == 0 {
			return
		}
		spin := mgl64.QuatRotate(mgl64.DegToRad(pickup.Spin*dt), common.Up)
		t.Rotation = spin.Mul(t.Rotation).Normalize()
	})
}
