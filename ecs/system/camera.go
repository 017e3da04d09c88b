package system

import (
	"github.com/milk9111/gravityshift/common"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
)

// CameraSystem runs last in the frame. The camera keeps its own yaw and
// copies the target's pitch and roll, so the view tilts with gravity but not
// with the player's facing.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
		cs.targetEntity = 0
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if !ecs.IsAlive(w, cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, cam.TargetName)
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	targetEuler := common.EulerDegrees(target.Rotation)
	euler := common.EulerDegrees(camTransform.Rotation)
	euler[0] = targetEuler.X()
	euler[2] = targetEuler.Z()
	camTransform.Rotation = common.QuatFromEulerDegrees(euler)

	desired := target.Position.Add(camTransform.Rotation.Rotate(cam.Offset))
	if cam.Smoothness <= 0 || cam.Smoothness >= 1 {
		camTransform.Position = desired
		return
	}
	camTransform.Position = camTransform.Position.Add(desired.Sub(camTransform.Position).Mul(cam.Smoothness))
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	if found.Valid() {
		return found
	}
	if name == "player" {
		if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
