package entity

import (
	"fmt"

	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
)

// NewCamera builds the follow camera and snaps it behind its target if the
// target already exists.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	camera, err := BuildEntity(w, "camera.yaml")
	if err != nil {
		return 0, err
	}

	cam, ok := ecs.Get(w, camera, component.CameraComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("camera: prefab has no camera component")
	}

	var target *component.Transform
	ecs.ForEach2(w, component.NameComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, n *component.Name, t *component.Transform) {
		if target == nil && n.Value == cam.TargetName {
			target = t
		}
	})
	if target != nil {
		if err := SetEntityPosition(w, camera, target.Position.Add(cam.Offset)); err != nil {
			return 0, fmt.Errorf("camera: override transform: %w", err)
		}
	}
	return camera, nil
}
