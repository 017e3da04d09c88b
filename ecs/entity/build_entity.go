package entity

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityshift/common"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/milk9111/gravityshift/physics"
	"github.com/milk9111/gravityshift/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":    addPlayerTag,
	"camera_tag":    addCameraTag,
	"player":        addPlayer,
	"locomotion":    addLocomotion,
	"input":         addInput,
	"hologram":      addHologram,
	"animator":      addAnimator,
	"transform":     addTransform,
	"rigid_body":    addRigidBody,
	"gravity_scale": addGravityScale,
	"camera":        addCamera,
	"pickup":        addPickup,
}

// Components that read the transform must come after it.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"player",
	"locomotion",
	"input",
	"hologram",
	"animator",
	"transform",
	"rigid_body",
	"gravity_scale",
	"camera",
	"pickup",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, spec, prefabPath)
}

// BuildEntityFromSpec creates an entity from an already decoded prefab.
// On error nothing is left in the world.
func BuildEntityFromSpec(w *ecs.World, spec prefabs.EntityBuildSpec, prefabPath string) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	if spec.Name != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add name: %w", prefabPath, err)
		}
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	return e, nil
}

// SetEntityPosition moves an entity and its rigid body, if any.
func SetEntityPosition(w *ecs.World, e ecs.Entity, position mgl64.Vec3) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = component.NewTransform(position)
	}
	t.Position = position
	if rb, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind()); ok && rb.Body != nil {
		rb.Body.SetPosition(position)
	}
	if p, ok := ecs.Get(w, e, component.PickupComponent.Kind()); ok && p.Trigger != nil {
		half := p.Trigger.Max.Sub(p.Trigger.Center())
		p.Trigger.Min = position.Sub(half)
		p.Trigger.Max = position.Add(half)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}

	cfg := component.DefaultPlayer()
	override := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	override(&cfg.MoveSpeed, spec.MoveSpeed)
	override(&cfg.JumpForce, spec.JumpForce)
	override(&cfg.RotationSpeed, spec.RotationSpeed)
	override(&cfg.GravityStrength, spec.GravityStrength)
	override(&cfg.FallGraceTime, spec.FallGraceTime)
	override(&cfg.FallThreshold, spec.FallThreshold)
	override(&cfg.GravitySwitchCooldown, spec.GravitySwitchCooldown)
	override(&cfg.GravitySwitchOffset, spec.GravitySwitchOffset)
	override(&cfg.GroundCheckOffset, spec.GroundCheckOffset)
	override(&cfg.GroundCheckDistance, spec.GroundCheckDistance)
	override(&cfg.MoveDeadzone, spec.MoveDeadzone)
	override(&cfg.HologramHideAfter, spec.HologramHideAfter)
	cfg.NormalizeDiagonal = spec.NormalizeDiagonal

	if cfg.MoveSpeed < 0 || cfg.GravityStrength < 0 || cfg.FallGraceTime <= 0 || cfg.GroundCheckDistance <= 0 {
		return fmt.Errorf("player spec: invalid tuning %+v", cfg)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &cfg)
}

func addLocomotion(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.LocomotionComponent.Kind(), component.NewLocomotion())
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addHologram(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.HologramComponent.Kind(), component.NewHologram())
}

func addAnimator(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AnimatorComponent.Kind(), component.NewAnimator())
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := component.NewTransform(spec.Position.Vec3())
	t.Rotation = common.QuatFromEulerDegrees(spec.Rotation.Vec3())
	if spec.Scale != nil {
		t.Scale = spec.Scale.Vec3()
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

type rigidBodySpec = prefabs.RigidBodyComponentSpec

func addRigidBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[rigidBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode rigid body spec: %w", err)
	}
	if spec.Radius <= 0 {
		spec.Radius = 0.5
	}
	if spec.Mass <= 0 {
		spec.Mass = 1
	}

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("rigid body needs a transform")
	}
	body := physics.NewBody(t.Position, spec.Radius)
	body.Mass = spec.Mass
	body.SetRotation(t.Rotation)
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
		body.Tag = n.Value
	}
	return ecs.Add(w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{Body: body})
}

type gravityScaleSpec = prefabs.GravityScaleComponentSpec

func addGravityScale(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravityScaleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity scale spec: %w", err)
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.Scale})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Smoothness == 0 {
		spec.Smoothness = 0.15
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.TargetName,
		Offset:     spec.Offset.Vec3(),
		Smoothness: spec.Smoothness,
	})
}

type pickupSpec = prefabs.PickupComponentSpec

func addPickup(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[pickupSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pickup spec: %w", err)
	}
	if spec.Kind == "" {
		spec.Kind = component.PickupKindCube
	}
	if spec.HalfExtent <= 0 {
		spec.HalfExtent = 0.25
	}

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("pickup needs a transform")
	}
	half := mgl64.Vec3{spec.HalfExtent, spec.HalfExtent, spec.HalfExtent}
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		Kind:    spec.Kind,
		Trigger: physics.NewTrigger(spec.Kind, t.Position, half),
		Spin:    spec.Spin,
	})
}
