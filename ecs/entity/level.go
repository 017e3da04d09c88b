package entity

import (
	"fmt"

	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/milk9111/gravityshift/physics"
	"github.com/milk9111/gravityshift/prefabs"
)

// LoadLevelToWorld creates a static collider entity per platform and a cube
// pickup per cube position. It returns the number of cubes spawned.
func LoadLevelToWorld(w *ecs.World, lvl *prefabs.LevelSpec) (int, error) {
	if w == nil {
		return 0, fmt.Errorf("level: world is nil")
	}
	if lvl == nil {
		return 0, fmt.Errorf("level: level is nil")
	}

	for _, p := range lvl.Platforms {
		e := ecs.CreateEntity(w)
		box := physics.NewBox(p.Center.Vec3(), p.HalfExtents.Vec3())
		box.Tag = p.Name
		if err := ecs.Add(w, e, component.LevelTagComponent.Kind(), &component.LevelTag{}); err != nil {
			return 0, fmt.Errorf("level: platform %q: add level tag: %w", p.Name, err)
		}
		if err := ecs.Add(w, e, component.StaticColliderComponent.Kind(), &component.StaticCollider{Box: box}); err != nil {
			return 0, fmt.Errorf("level: platform %q: add collider: %w", p.Name, err)
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(box.Center())); err != nil {
			return 0, fmt.Errorf("level: platform %q: add transform: %w", p.Name, err)
		}
		if p.Name != "" {
			if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: p.Name}); err != nil {
				return 0, fmt.Errorf("level: platform %q: add name: %w", p.Name, err)
			}
		}
	}

	cube, err := prefabs.LoadEntityBuildSpec("cube.yaml")
	if err != nil {
		return 0, fmt.Errorf("level: load cube prefab: %w", err)
	}
	for i, pos := range lvl.Cubes {
		e, err := BuildEntityFromSpec(w, cube, "cube.yaml")
		if err != nil {
			return 0, fmt.Errorf("level: cube %d: %w", i, err)
		}
		if err := SetEntityPosition(w, e, pos.Vec3()); err != nil {
			return 0, fmt.Errorf("level: cube %d: place: %w", i, err)
		}
	}
	return len(lvl.Cubes), nil
}
