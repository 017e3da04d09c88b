package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityshift/common"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraCopiesPitchAndRollKeepsYaw(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	pt := component.NewTransform(mgl64.Vec3{1, 2, 3})
	pt.Rotation = common.QuatFromEulerDegrees(mgl64.Vec3{30, 90, 20})
	require.NoError(t, ecs.Add(w, player, component.TransformComponent.Kind(), pt))

	cam := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{TargetName: "player"}))
	ct := component.NewTransform(mgl64.Vec3{})
	ct.Rotation = common.QuatFromEulerDegrees(mgl64.Vec3{0, 45, 0})
	require.NoError(t, ecs.Add(w, cam, component.TransformComponent.Kind(), ct))

	NewCameraSystem().Update(w)

	got := common.EulerDegrees(ct.Rotation)
	assert.InDelta(t, 30, got.X(), 1e-6)
	assert.InDelta(t, 45, got.Y(), 1e-6)
	assert.InDelta(t, 20, got.Z(), 1e-6)
	assert.InDelta(t, 0, ct.Position.Sub(pt.Position).Len(), 1e-9)
}

func TestCameraSmoothsTowardOffset(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, player, component.NameComponent.Kind(), &component.Name{Value: "hero"}))
	require.NoError(t, ecs.Add(w, player, component.TransformComponent.Kind(), component.NewTransform(mgl64.Vec3{10, 0, 0})))

	cam := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{TargetName: "hero", Offset: mgl64.Vec3{0, 2, 0}, Smoothness: 0.5}))
	ct := component.NewTransform(mgl64.Vec3{})
	require.NoError(t, ecs.Add(w, cam, component.TransformComponent.Kind(), ct))

	sys := NewCameraSystem()
	sys.Update(w)
	assertVec3(t, mgl64.Vec3{5, 1, 0}, ct.Position)
	sys.Update(w)
	assertVec3(t, mgl64.Vec3{7.5, 1.5, 0}, ct.Position)
}

func TestCameraWithoutTarget(t *testing.T) {
	w := ecs.NewWorld()
	cam := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{TargetName: "player"}))
	ct := component.NewTransform(mgl64.Vec3{1, 1, 1})
	require.NoError(t, ecs.Add(w, cam, component.TransformComponent.Kind(), ct))

	assert.NotPanics(t, func() { NewCameraSystem().Update(w) })
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, ct.Position)
}
