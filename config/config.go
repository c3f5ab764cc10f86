// Package config loads effect presets from YAML files and translates them
// into engine options.
package config

import (
	"fmt"
	"os"

	"github.com/backdrop-gfx/backdrop-go/engine"
	"github.com/backdrop-gfx/backdrop-go/engine/renderer"
	"github.com/backdrop-gfx/backdrop-go/engine/window"
	"gopkg.in/yaml.v2"
)

// Config represents a full effect preset: which effect to run, its parameter
// overrides, and how to run it.
type Config struct {
	Effect string             `yaml:"effect"`
	Params map[string]float32 `yaml:"params"`
	Window WindowConfig       `yaml:"window"`
	Engine EngineConfig       `yaml:"engine"`
}

// WindowConfig contains window-related configuration.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// EngineConfig contains frame pacing and GPU selection configuration.
type EngineConfig struct {
	FrameRate             float64 `yaml:"framerate"`
	VSync                 bool    `yaml:"vsync"`
	MaxDpr                float32 `yaml:"max_dpr"`
	PowerPreference       string  `yaml:"power_preference"` // default, low-power, high-performance
	RespectReducedMotion  bool    `yaml:"respect_reduced_motion"`
	ForceSoftwareRenderer bool    `yaml:"force_software_renderer"`
	Profiling             bool    `yaml:"profiling"`
}

// DefaultConfig creates a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Params: map[string]float32{},
		Window: WindowConfig{
			Title:  "Backdrop",
			Width:  1280,
			Height: 720,
		},
		Engine: EngineConfig{
			FrameRate:            60,
			VSync:                true,
			RespectReducedMotion: true,
			PowerPreference:      "low-power",
		},
	}
}

// LoadConfig loads a preset from a YAML file, overlaying the defaults.
// A missing file returns the defaults together with the error so callers can
// choose whether that is fatal.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file.
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}

// EngineOptions translates the preset into engine builder options.
func (c *Config) EngineOptions() []engine.EngineBuilderOption {
	presentMode := renderer.PresentModeUncapped
	if c.Engine.VSync {
		presentMode = renderer.PresentModeVSync
	}

	options := []engine.EngineBuilderOption{
		engine.WithFrameRate(c.Engine.FrameRate),
		engine.WithPresentMode(presentMode),
		engine.WithPowerPreference(c.powerPreference()),
		engine.WithRespectReducedMotion(c.Engine.RespectReducedMotion),
		engine.WithForceSoftwareRenderer(c.Engine.ForceSoftwareRenderer),
		engine.WithProfiling(c.Engine.Profiling),
	}
	if c.Engine.MaxDpr > 1 {
		options = append(options, engine.WithMaxDpr(c.Engine.MaxDpr))
	}
	if len(c.Params) > 0 {
		options = append(options, engine.WithParamOverrides(c.Params))
	}
	return options
}

// WindowOptions translates the preset into window builder options.
func (c *Config) WindowOptions() []window.BuilderOption {
	return []window.BuilderOption{
		window.WithTitle(c.Window.Title),
		window.WithWidth(c.Window.Width),
		window.WithHeight(c.Window.Height),
	}
}

func (c *Config) powerPreference() renderer.PowerPreference {
	switch c.Engine.PowerPreference {
	case "low-power":
		return renderer.PowerPreferenceLowPower
	case "high-performance":
		return renderer.PowerPreferenceHighPerformance
	default:
		return renderer.PowerPreferenceDefault
	}
}
