package system

import (
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
)

// HologramSystem hides the gravity preview once the player has left the
// preview input alone for the configured time. It runs after the player
// controller.
type HologramSystem struct {
	clock Clock
}

func NewHologramSystem(clock Clock) *HologramSystem {
	return &HologramSystem{clock: clock}
}

func (h *HologramSystem) Update(w *ecs.World) {
	if w == nil || h.clock == nil {
		return
	}
	dt := h.clock.DeltaTime()

	ecs.ForEach3(w, component.HologramComponent.Kind(), component.PlayerComponent.Kind(), component.LocomotionComponent.Kind(), func(e ecs.Entity, holo *component.Hologram, cfg *component.Player, loco *component.Locomotion) {
		if !holo.Visible {
			return
		}
		holo.IdleTime += dt
		if cfg.HologramHideAfter > 0 && holo.IdleTime >= cfg.HologramHideAfter {
			holo.Visible = false
			holo.IdleTime = 0
			loco.SwitchState = component.GravitySwitchIdle
		}
	})
}
