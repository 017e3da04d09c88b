package prefabs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVec3SpecAcceptsMappingAndSequence(t *testing.T) {
	var got struct {
		A Vec3Spec `yaml:"a"`
		B Vec3Spec `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: {x: 1, y: 2, z: 3}\nb: [4, 5, 6]\n"), &got))
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, got.A.Vec3())
	assert.Equal(t, mgl64.Vec3{4, 5, 6}, got.B.Vec3())
}

func TestVec3SpecRejectsShortSequence(t *testing.T) {
	var v Vec3Spec
	assert.Error(t, yaml.Unmarshal([]byte("[1, 2]"), &v))
}

func TestEmbeddedPrefabsParse(t *testing.T) {
	for _, name := range []string{"player.yaml", "camera.yaml", "cube.yaml"} {
		spec, err := LoadEntityBuildSpec(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, spec.Components, name)
	}

	level, err := LoadLevelSpec("level.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, level.Platforms)
	assert.Len(t, level.Cubes, 5)

	game, err := LoadGameSpec()
	require.NoError(t, err)
	assert.Equal(t, 120.0, game.Duration)
	assert.Equal(t, "level.yaml", game.Level)
}

func TestDecodePlayerComponentKeepsOmittedKeysNil(t *testing.T) {
	spec, err := DecodeComponentSpec[PlayerComponentSpec](map[string]any{"move_speed": 7.5})
	require.NoError(t, err)
	require.NotNil(t, spec.MoveSpeed)
	assert.Equal(t, 7.5, *spec.MoveSpeed)
	assert.Nil(t, spec.JumpForce)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec[GameSpec]("missing.yaml")
	assert.ErrorContains(t, err, "prefabs: load missing.yaml")
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "player.yaml", cleanPrefabPath("/home/dev/game/prefabs/player.yaml"))
	assert.Equal(t, "level.yaml", Name("prefabs/level.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
}
