package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backdrop-gfx/backdrop-go/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePreset = `
effect: plasma
params:
  speed: 0.3
  scale: 6
window:
  title: Plasma
  width: 1920
  height: 1080
engine:
  framerate: 30
  vsync: false
  max_dpr: 2
  power_preference: high-performance
  profiling: true
`

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := config.LoadConfig(writePreset(t, samplePreset))
	require.NoError(t, err)

	assert.Equal(t, "plasma", cfg.Effect)
	assert.InDelta(t, 0.3, cfg.Params["speed"], 1e-6)
	assert.InDelta(t, 6, cfg.Params["scale"], 1e-6)
	assert.Equal(t, "Plasma", cfg.Window.Title)
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, float64(30), cfg.Engine.FrameRate)
	assert.False(t, cfg.Engine.VSync)
	assert.Equal(t, float32(2), cfg.Engine.MaxDpr)
	assert.Equal(t, "high-performance", cfg.Engine.PowerPreference)
	assert.True(t, cfg.Engine.Profiling)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, float64(60), cfg.Engine.FrameRate)
	assert.True(t, cfg.Engine.VSync)
	assert.Equal(t, "Backdrop", cfg.Window.Title)
}

func TestLoadConfigPartialOverlay(t *testing.T) {
	cfg, err := config.LoadConfig(writePreset(t, "effect: aurora\n"))
	require.NoError(t, err)

	assert.Equal(t, "aurora", cfg.Effect)
	assert.Equal(t, float64(60), cfg.Engine.FrameRate, "untouched fields keep defaults")
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	_, err := config.LoadConfig(writePreset(t, "engine: [not a map"))
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")

	cfg := config.DefaultConfig()
	cfg.Effect = "plasma"
	cfg.Params["speed"] = 0.5
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "plasma", loaded.Effect)
	assert.InDelta(t, 0.5, loaded.Params["speed"], 1e-6)
}

func TestEngineOptionsCount(t *testing.T) {
	cfg, err := config.LoadConfig(writePreset(t, samplePreset))
	require.NoError(t, err)

	// Base options plus WithMaxDpr and WithParamOverrides from the preset.
	assert.Len(t, cfg.EngineOptions(), 8)

	defaults := config.DefaultConfig()
	assert.Len(t, defaults.EngineOptions(), 6)
}

func TestWindowOptionsCount(t *testing.T) {
	assert.Len(t, config.DefaultConfig().WindowOptions(), 3)
}
