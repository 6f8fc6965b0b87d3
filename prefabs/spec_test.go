package prefabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTuningSpecKeepsDefaults(t *testing.T) {
	spec, err := ParseTuningSpec([]byte("jump_height: 99\n"))
	require.NoError(t, err)

	tn := spec.Tuning()
	assert.Equal(t, 99.0, tn.JumpHeight)
	assert.Equal(t, 0.55, tn.TimeToJumpHeight)
	assert.Equal(t, uint32(80), tn.MaxFallCount)
	assert.Equal(t, 32.0, tn.GridSize)
}

func TestParseTuningSpecRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"zero_time", "time_to_jump_height: 0\n"},
		{"negative_grid", "grid_size: -1\n"},
		{"not_yaml", "jump_height: [\n"},
		{"nan_time", "time_to_jump_height: .nan\n"},
		{"nan_grid", "grid_size: .NaN\n"},
		{"inf_speed", "horizontal_speed: .inf\n"},
		{"nan_padding", "padding: .nan\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTuningSpec([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	data, err := PrefabsFS.ReadFile(TuningFile)
	require.NoError(t, err)
	spec, err := ParseTuningSpec(data)
	require.NoError(t, err)
	assert.Equal(t, defaultTuningSpec(), *spec)
}

func TestEmbeddedScene(t *testing.T) {
	data, err := PrefabsFS.ReadFile(SceneFile)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	spec, err := LoadSceneSpec()
	require.NoError(t, err)
	assert.Equal(t, 1000, spec.Window.Width)
	assert.Len(t, spec.Palette, 3)
	assert.Len(t, spec.Toolbar, 2)
	assert.Equal(t, 32.0, spec.IconSize)
	require.NotNil(t, spec.Window.Background.Color)
	r, g, b, _ := spec.Window.Background.RGBA()
	assert.Equal(t, uint32(0x22), r>>8)
	assert.Equal(t, uint32(0x20), g>>8)
	assert.Equal(t, uint32(0x34), b>>8)
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "scene.yaml", cleanPrefabPath("prefabs/scene.yaml"))
	assert.Equal(t, "scene.yaml", cleanPrefabPath("scene.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
}

func TestKnownPrefabs(t *testing.T) {
	assert.True(t, Known(TuningFile))
	assert.True(t, Known("prefabs/scene.yaml"))
	assert.True(t, Known("/somewhere/else/prefabs/tuning.yaml"))
	assert.False(t, Known("storage.yaml"))
	assert.False(t, Known("tuning.yaml.swp"))
}

func TestOrigin(t *testing.T) {
	// Tests run inside the package directory, so there is no prefabs/
	// override next to them.
	assert.Equal(t, SourceEmbedded, Origin(TuningFile))
	assert.Equal(t, SourceMissing, Origin("nothing.yaml"))
}
