package system

import (
	"math"

	"github.com/milk9111/gravityshift/common"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/milk9111/gravityshift/physics"
)

// PlayerPhysicsSystem is the fixed-step half of the locomotion state
// machine. It runs before PhysicsSystem so its forces and moves land in the
// same step.
type PlayerPhysicsSystem struct {
	clock Clock
	space SpatialQuery
}

func NewPlayerPhysicsSystem(clock Clock, space SpatialQuery) *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{clock: clock, space: space}
}

func (p *PlayerPhysicsSystem) Update(w *ecs.World) {
	if w == nil || p.clock == nil {
		return
	}
	dt := p.clock.FixedDeltaTime()

	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.LocomotionComponent.Kind(),
		component.InputComponent.Kind(),
		component.RigidBodyComponent.Kind(),
		func(e ecs.Entity, cfg *component.Player, loco *component.Locomotion, input *component.Input, rb *component.RigidBody) {
			if rb.Body == nil || ecs.Has(w, e, component.DisabledComponent.Kind()) {
				return
			}
			body := rb.Body
			up := loco.Up()

			body.ApplyForce(loco.GravityDirection.Mul(cfg.GravityStrength), physics.ForceModeAcceleration)

			move := loco.MoveDirection
			if move.Dot(move) >= cfg.MoveDeadzone {
				body.MovePosition(body.Position().Add(move.Mul(cfg.MoveSpeed * dt)))

				// Walking backwards keeps the current facing.
				if input.Move.Y() >= 0 {
					target := common.LookRotation(move, up)
					t := cfg.RotationSpeed * common.Lerp(0.3, 1, math.Abs(input.Move.Y())) * dt
					body.SetRotation(common.Slerp(body.Rotation(), target, t))
				}
			}

			loco.Grounded = p.grounded(cfg, loco, body)
		})
}

func (p *PlayerPhysicsSystem) grounded(cfg *component.Player, loco *component.Locomotion, body *physics.Body) bool {
	if p.space == nil {
		return false
	}
	origin := body.Position().Add(loco.Up().Mul(cfg.GroundCheckOffset))
	_, hit := p.space.Raycast(origin, loco.GravityDirection, cfg.GroundCheckDistance)
	return hit
}
