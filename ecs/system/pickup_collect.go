package system

import (
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/milk9111/gravityshift/physics"
	"github.com/rs/zerolog/log"
)

// TriggerSource exposes the trigger overlaps of the last physics step.
type TriggerSource interface {
	Contacts() []physics.Contact
	RemoveTrigger(t *physics.Trigger)
}

// PickupCollectSystem turns player/cube overlaps into collected cubes. It
// runs right after PhysicsSystem.
type PickupCollectSystem struct {
	triggers TriggerSource
	events   GameEvents
}

func NewPickupCollectSystem(triggers TriggerSource, events GameEvents) *PickupCollectSystem {
	return &PickupCollectSystem{triggers: triggers, events: events}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil || s.triggers == nil {
		return
	}

	players := make(map[*physics.Body]ecs.Entity)
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.RigidBodyComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, rb *component.RigidBody) {
		if rb.Body != nil && !ecs.Has(w, e, component.DisabledComponent.Kind()) {
			players[rb.Body] = e
		}
	})
	if len(players) == 0 {
		return
	}

	for _, c := range s.triggers.Contacts() {
		player, ok := players[c.Body]
		if !ok || c.Trigger == nil || c.Trigger.Tag != component.PickupKindCube {
			continue
		}
		cube, ok := c.Trigger.Owner.(ecs.Entity)
		if !ok || !ecs.IsAlive(w, cube) {
			continue
		}

		s.triggers.RemoveTrigger(c.Trigger)
		ecs.DestroyEntity(w, cube)
		w.Events().Push(ecs.Event{Type: ecs.EventCubeCollected, Entity: player, Data: cube})
		log.Debug().Stringer("cube", cube).Msg("cube picked up")
		if s.events != nil {
			s.events.ReportCubeCollected()
		}
	}
}
