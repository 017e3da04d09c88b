package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/milk9111/gravityshift/physics"
)

// PhysicsSystem mirrors ECS bodies, level boxes and pickup triggers into a
// physics.World, steps it once per fixed pass and copies the results back
// into transforms.
type PhysicsSystem struct {
	world *physics.World
	clock Clock

	bodies   map[ecs.Entity]*physics.Body
	boxes    map[ecs.Entity]*physics.Box
	triggers map[ecs.Entity]*physics.Trigger
}

func NewPhysicsSystem(clock Clock) *PhysicsSystem {
	return &PhysicsSystem{
		world:    physics.NewWorld(),
		clock:    clock,
		bodies:   make(map[ecs.Entity]*physics.Body),
		boxes:    make(map[ecs.Entity]*physics.Box),
		triggers: make(map[ecs.Entity]*physics.Trigger),
	}
}

func (ps *PhysicsSystem) World() *physics.World {
	if ps == nil {
		return nil
	}
	return ps.world
}

func (ps *PhysicsSystem) Raycast(origin, direction mgl64.Vec3, maxDistance float64) (physics.RaycastHit, bool) {
	return ps.world.Raycast(origin, direction, maxDistance)
}

// Contacts returns the trigger overlaps of the last step.
func (ps *PhysicsSystem) Contacts() []physics.Contact {
	return ps.world.Contacts()
}

func (ps *PhysicsSystem) RemoveTrigger(t *physics.Trigger) {
	if t == nil {
		return
	}
	ps.world.RemoveTrigger(t)
	for e, other := range ps.triggers {
		if other == t {
			delete(ps.triggers, e)
		}
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)
	if ps.clock != nil {
		ps.world.Step(ps.clock.FixedDeltaTime())
	}

	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody, t *component.Transform) {
		if rb.Body == nil {
			return
		}
		t.Position = rb.Body.Position()
		t.Rotation = rb.Body.Rotation()
	})
}

// Sync registers new bodies, boxes and triggers and drops the ones whose
// entities are gone or disabled. Update calls it before every step.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.RigidBodyComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody) {
		disabled := ecs.Has(w, e, component.DisabledComponent.Kind())
		current, registered := ps.bodies[e]
		if registered && (disabled || current != rb.Body) {
			ps.world.RemoveBody(current)
			delete(ps.bodies, e)
			registered = false
		}
		if disabled || rb.Body == nil {
			return
		}

		rb.Body.GravityScale = 1
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			rb.Body.GravityScale = gs.Scale
		}
		if !registered {
			ps.world.AddBody(rb.Body)
			ps.bodies[e] = rb.Body
		}
	})

	ecs.ForEach(w, component.StaticColliderComponent.Kind(), func(e ecs.Entity, sc *component.StaticCollider) {
		if sc.Box == nil {
			return
		}
		if _, ok := ps.boxes[e]; ok {
			return
		}
		ps.world.AddBox(sc.Box)
		ps.boxes[e] = sc.Box
	})

	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, p *component.Pickup) {
		if p.Trigger == nil {
			return
		}
		if _, ok := ps.triggers[e]; ok {
			return
		}
		p.Trigger.Owner = e
		ps.world.AddTrigger(p.Trigger)
		ps.triggers[e] = p.Trigger
	})

	for e, b := range ps.bodies {
		if rb, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind()); !ok || rb.Body != b {
			ps.world.RemoveBody(b)
			delete(ps.bodies, e)
		}
	}
	for e, box := range ps.boxes {
		if sc, ok := ecs.Get(w, e, component.StaticColliderComponent.Kind()); !ok || sc.Box != box {
			ps.world.RemoveBox(box)
			delete(ps.boxes, e)
		}
	}
	for e, t := range ps.triggers {
		if p, ok := ecs.Get(w, e, component.PickupComponent.Kind()); !ok || p.Trigger != t {
			ps.world.RemoveTrigger(t)
			delete(ps.triggers, e)
		}
	}
}
