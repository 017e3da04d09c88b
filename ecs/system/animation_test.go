package system

import (
	"testing"

	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClip(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		grounded bool
		want     string
	}{
		{name: "idle", speed: 0, grounded: true, want: AnimIdle},
		{name: "run", speed: 1, grounded: true, want: AnimRun},
		{name: "creep_is_idle", speed: 0.05, grounded: true, want: AnimIdle},
		{name: "airborne", speed: 1, grounded: false, want: AnimFall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim := component.NewAnimator()
			anim.SetParameter(component.AnimParamSpeed, tt.speed)
			anim.SetParameter(component.AnimParamGrounded, tt.grounded)
			assert.Equal(t, tt.want, ResolveClip(anim))
		})
	}

	assert.Equal(t, AnimIdle, ResolveClip(nil))
}

func TestAnimationSystemTracksPrevious(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	anim := component.NewAnimator()
	require.NoError(t, ecs.Add(w, e, component.AnimatorComponent.Kind(), anim))

	anim.SetParameter(component.AnimParamGrounded, true)
	anim.SetParameter(component.AnimParamSpeed, 2.0)
	NewAnimationSystem().Update(w)
	assert.Equal(t, AnimRun, anim.Current)
	assert.Equal(t, AnimIdle, anim.Previous)

	anim.SetParameter(component.AnimParamGrounded, false)
	NewAnimationSystem().Update(w)
	assert.Equal(t, AnimFall, anim.Current)
	assert.Equal(t, AnimRun, anim.Previous)
}
