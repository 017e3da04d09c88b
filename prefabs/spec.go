package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Vec3Spec accepts either {x, y, z} or a three element sequence.
type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v *Vec3Spec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xs []float64
		if err := value.Decode(&xs); err != nil {
			return err
		}
		if len(xs) != 3 {
			return fmt.Errorf("vector must have 3 components, got %d", len(xs))
		}
		v.X, v.Y, v.Z = xs[0], xs[1], xs[2]
		return nil
	case yaml.MappingNode:
		type plain Vec3Spec
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*v = Vec3Spec(p)
		return nil
	default:
		return fmt.Errorf("vector must be a mapping or sequence")
	}
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

type PlatformSpec struct {
	Name        string   `yaml:"name"`
	Center      Vec3Spec `yaml:"center"`
	HalfExtents Vec3Spec `yaml:"half_extents"`
}

type LevelSpec struct {
	Name      string         `yaml:"name"`
	Spawn     Vec3Spec       `yaml:"spawn"`
	Platforms []PlatformSpec `yaml:"platforms"`
	Cubes     []Vec3Spec     `yaml:"cubes"`
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	if len(spec.Platforms) == 0 {
		return nil, fmt.Errorf("prefabs: %s: level has no platforms", filename)
	}
	for i, p := range spec.Platforms {
		h := p.HalfExtents
		if h.X <= 0 || h.Y <= 0 || h.Z <= 0 {
			return nil, fmt.Errorf("prefabs: %s: platform %d has non-positive half extents", filename, i)
		}
	}
	return &spec, nil
}

type GameSpec struct {
	Duration float64 `yaml:"duration"`
	// TotalCubes of 0 means every cube placed in the level.
	TotalCubes int     `yaml:"total_cubes"`
	Volume     float64 `yaml:"volume"`
	Level      string  `yaml:"level"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Duration <= 0 {
		spec.Duration = 120
	}
	if spec.Level == "" {
		spec.Level = "level.yaml"
	}
	return &spec, nil
}
