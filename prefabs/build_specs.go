package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// PlayerComponentSpec uses pointers so an omitted key keeps the default
// tuning rather than zeroing it.
type PlayerComponentSpec struct {
	MoveSpeed             *float64 `yaml:"move_speed"`
	JumpForce             *float64 `yaml:"jump_force"`
	RotationSpeed         *float64 `yaml:"rotation_speed"`
	GravityStrength       *float64 `yaml:"gravity_strength"`
	FallGraceTime         *float64 `yaml:"fall_grace_time"`
	FallThreshold         *float64 `yaml:"fall_threshold"`
	GravitySwitchCooldown *float64 `yaml:"gravity_switch_cooldown"`
	GravitySwitchOffset   *float64 `yaml:"gravity_switch_offset"`
	GroundCheckOffset     *float64 `yaml:"ground_check_offset"`
	GroundCheckDistance   *float64 `yaml:"ground_check_distance"`
	MoveDeadzone          *float64 `yaml:"move_deadzone"`
	HologramHideAfter     *float64 `yaml:"hologram_hide_after"`
	NormalizeDiagonal     bool     `yaml:"normalize_diagonal"`
}

type TransformComponentSpec struct {
	Position Vec3Spec  `yaml:"position"`
	Rotation Vec3Spec  `yaml:"rotation"`
	Scale    *Vec3Spec `yaml:"scale"`
}

type RigidBodyComponentSpec struct {
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

type CameraComponentSpec struct {
	TargetName string   `yaml:"target_name"`
	Offset     Vec3Spec `yaml:"offset"`
	Smoothness float64  `yaml:"smoothness"`
}

type PickupComponentSpec struct {
	Kind       string  `yaml:"kind"`
	HalfExtent float64 `yaml:"half_extent"`
	Spin       float64 `yaml:"spin"`
}
