package system

import (
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/rs/zerolog/log"
)

const (
	AnimIdle = "idle"
	AnimRun  = "run"
	AnimFall = "fall"

	runSpeedThreshold = 0.1
)

// AnimationSystem picks the clip each animator should play from the
// parameters gameplay systems pushed this frame.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(e ecs.Entity, anim *component.Animator) {
		next := ResolveClip(anim)
		if next == anim.Current {
			return
		}
		log.Trace().Stringer("entity", e).Str("from", anim.Current).Str("to", next).Msg("animation")
		anim.Previous = anim.Current
		anim.Current = next
	})
}

// ResolveClip maps Speed and Grounded onto idle, run or fall.
func ResolveClip(anim *component.Animator) string {
	if anim == nil {
		return AnimIdle
	}
	if !anim.Bools[component.AnimParamGrounded] {
		return AnimFall
	}
	if anim.Floats[component.AnimParamSpeed] > runSpeedThreshold {
		return AnimRun
	}
	return AnimIdle
}
