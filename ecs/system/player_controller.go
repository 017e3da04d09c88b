package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityshift/common"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/milk9111/gravityshift/physics"
	"github.com/milk9111/gravityshift/sfx"
	"github.com/rs/zerolog/log"
)

// A switch to a direction within ~8° of the current one is ignored.
const gravitySwitchMinDot = 0.99

// PlayerControllerSystem is the per-frame half of the locomotion state
// machine: move intent, gravity preview and commit, jump, animator
// parameters and the fall-to-death timer.
type PlayerControllerSystem struct {
	clock  Clock
	events GameEvents
	audio  sfx.Player
}

func NewPlayerControllerSystem(clock Clock, events GameEvents, audio sfx.Player) *PlayerControllerSystem {
	return &PlayerControllerSystem{clock: clock, events: events, audio: audio}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || p.clock == nil {
		return
	}

	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.LocomotionComponent.Kind(),
		component.InputComponent.Kind(),
		component.RigidBodyComponent.Kind(),
		func(e ecs.Entity, cfg *component.Player, loco *component.Locomotion, input *component.Input, rb *component.RigidBody) {
			if rb.Body == nil || loco.Dead || ecs.Has(w, e, component.DisabledComponent.Kind()) {
				return
			}
			body := rb.Body

			loco.MoveDirection = SurfaceMoveDirection(body.Rotation(), loco.GravityDirection, input.Move, cfg.NormalizeDiagonal)

			hologram, _ := ecs.Get(w, e, component.HologramComponent.Kind())
			p.preview(loco, hologram, input.RotatePreview)

			if input.GravitySwitchPressed {
				p.commitGravitySwitch(w, e, cfg, loco, body, hologram)
			}
			if input.JumpPressed && loco.Grounded {
				p.jump(w, e, cfg, loco, body)
			}

			if animator, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
				animator.SetParameter(component.AnimParamSpeed, loco.MoveDirection.Len())
				animator.SetParameter(component.AnimParamGrounded, loco.Grounded)
			}

			p.updateFallTimer(w, e, cfg, loco, body)
		})
}

// SurfaceMoveDirection maps a move axis onto the plane orthogonal to
// gravity, relative to the current facing. The result is not normalised
// unless normalize is set, so diagonals are ~41% faster.
func SurfaceMoveDirection(rotation mgl64.Quat, gravity mgl64.Vec3, axis mgl64.Vec2, normalize bool) mgl64.Vec3 {
	up := gravity.Mul(-1)

	forward, ok := common.SafeNormalize(common.ProjectOnPlane(common.RotationForward(rotation), up))
	if !ok {
		forward, ok = common.SafeNormalize(common.ProjectOnPlane(common.Forward, up))
	}
	if !ok {
		forward, _ = common.SafeNormalize(common.ProjectOnPlane(common.Right, up))
	}
	right := up.Cross(forward)

	dir := forward.Mul(axis.Y()).Add(right.Mul(axis.X()))
	if normalize {
		if n, ok := common.SafeNormalize(dir); ok {
			dir = n
		}
	}
	return dir
}

func (p *PlayerControllerSystem) preview(loco *component.Locomotion, hologram *component.Hologram, axis mgl64.Vec2) {
	if hologram == nil {
		return
	}
	if axis == (mgl64.Vec2{}) {
		hologram.LastInput = axis
		return
	}

	hologram.IdleTime = 0
	if axis == hologram.LastInput {
		return
	}
	hologram.LastInput = axis

	hologram.Pivot = stepPivot(hologram.Pivot, axis)
	hologram.Visible = true
	loco.SwitchState = component.GravitySwitchPreviewing
	if pending, ok := common.SafeNormalize(common.RotationUp(hologram.Pivot).Mul(-1)); ok {
		loco.PendingGravityDirection = pending
	}
}

// stepPivot turns the pivot 90° about one of its own axes: x>0 forward,
// x<0 back, y>0 right, y<0 left. Yaw is re-zeroed afterwards.
func stepPivot(pivot mgl64.Quat, axis mgl64.Vec2) mgl64.Quat {
	var local mgl64.Vec3
	switch {
	case axis.X() > 0:
		local = common.Forward
	case axis.X() < 0:
		local = common.Forward.Mul(-1)
	case axis.Y() > 0:
		local = common.Right
	default:
		local = common.Right.Mul(-1)
	}
	pivot = pivot.Mul(mgl64.QuatRotate(math.Pi/2, local)).Normalize()

	euler := common.EulerDegrees(pivot)
	// EulerDegrees already reports [0,360), so this clamp never changes
	// anything.
	euler = mgl64.Vec3{mgl64.Clamp(euler.X(), 0, 360), 0, mgl64.Clamp(euler.Z(), 0, 360)}
	return common.QuatFromEulerDegrees(euler)
}

func (p *PlayerControllerSystem) commitGravitySwitch(w *ecs.World, e ecs.Entity, cfg *component.Player, loco *component.Locomotion, body *physics.Body, hologram *component.Hologram) {
	now := p.clock.Now()
	if now-loco.LastGravitySwitch < cfg.GravitySwitchCooldown {
		return
	}
	pending := loco.PendingGravityDirection
	if loco.GravityDirection.Dot(pending) > gravitySwitchMinDot {
		return
	}

	oldUp := loco.Up()
	newUp := pending.Mul(-1)

	body.SetPosition(body.Position().Add(newUp.Mul(cfg.GravitySwitchOffset)))
	loco.GravityDirection = pending
	body.SetRotation(common.FromToRotation(oldUp, newUp).Mul(body.Rotation()))
	loco.LastGravitySwitch = now

	loco.SwitchState = component.GravitySwitchIdle
	loco.FallTimer = 0
	loco.Grounded = false
	if hologram != nil {
		hologram.Visible = false
	}

	w.Events().Push(ecs.Event{Type: ecs.EventGravitySwitched, Entity: e, Data: pending})
	p.play(sfx.CueGravitySwitch)
	log.Debug().
		Stringer("entity", e).
		Floats64("gravity", pending[:]).
		Float64("at", now).
		Msg("gravity switched")
}

func (p *PlayerControllerSystem) jump(w *ecs.World, e ecs.Entity, cfg *component.Player, loco *component.Locomotion, body *physics.Body) {
	g := loco.GravityDirection
	v := body.Velocity()
	body.SetVelocity(v.Sub(g.Mul(v.Dot(g))))
	body.ApplyForce(g.Mul(-cfg.JumpForce), physics.ForceModeImpulse)
	loco.Grounded = false

	w.Events().Push(ecs.Event{Type: ecs.EventJumped, Entity: e})
	p.play(sfx.CueJump)
}

func (p *PlayerControllerSystem) updateFallTimer(w *ecs.World, e ecs.Entity, cfg *component.Player, loco *component.Locomotion, body *physics.Body) {
	along := body.Velocity().Dot(loco.GravityDirection)
	if loco.Grounded || along <= cfg.FallThreshold {
		loco.FallTimer = 0
		return
	}

	loco.FallTimer += p.clock.DeltaTime()
	if loco.FallTimer < cfg.FallGraceTime {
		return
	}

	loco.Dead = true
	log.Info().Stringer("entity", e).Float64("fall_time", loco.FallTimer).Msg("player fell to death")
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Entity: e})
	if p.events != nil {
		p.events.ReportPlayerDied()
	}
}

func (p *PlayerControllerSystem) play(cue sfx.Cue) {
	if p.audio != nil {
		p.audio.PlayAudioCue(cue)
	}
}
