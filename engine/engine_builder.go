package engine

import (
	"github.com/backdrop-gfx/backdrop-go/engine/renderer"
	"github.com/backdrop-gfx/backdrop-go/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the
// engine instance.
type EngineBuilderOption func(*engine)

// WithWindow sets a custom configured window for the engine to use rather
// than allowing the engine to create and manage one internally. The caller
// stays responsible for closing a window it provides.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
		e.windowOwned = false
	}
}

// WithFrameRate sets the target frame rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target frames per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.frameRate = fps
	}
}

// WithParamOverrides overrides descriptor parameter defaults at startup.
// Names not declared by the descriptor are ignored.
//
// Parameters:
//   - overrides: parameter values keyed by declared name
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithParamOverrides(overrides map[string]float32) EngineBuilderOption {
	return func(e *engine) {
		e.paramOverrides = overrides
	}
}

// WithMaxDpr caps the device pixel ratio used for surface sizing.
// Values <= 1 keep the default cap.
//
// Parameters:
//   - maxDpr: the upper bound for the effective device pixel ratio
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxDpr(maxDpr float32) EngineBuilderOption {
	return func(e *engine) {
		if maxDpr > 1 {
			e.maxDpr = maxDpr
		}
	}
}

// WithRespectReducedMotion controls whether the engine honors the platform's
// reduced motion preference. When honored and the preference is set, each
// Start renders a single still frame instead of a continuous animation.
// Enabled by default; pass false to always animate.
//
// Parameters:
//   - respect: true to honor the reduced motion preference
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRespectReducedMotion(respect bool) EngineBuilderOption {
	return func(e *engine) {
		e.respectReducedMotion = respect
	}
}

// WithPowerPreference hints which GPU the adapter request should favor.
// An ambient effect defaults to the low power adapter.
//
// Parameters:
//   - pref: the PowerPreference to request
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPowerPreference(pref renderer.PowerPreference) EngineBuilderOption {
	return func(e *engine) {
		e.powerPreference = pref
	}
}

// WithPresentMode sets the surface present mode.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPresentMode(mode renderer.PresentMode) EngineBuilderOption {
	return func(e *engine) {
		e.pendingPresentMode = &mode
	}
}

// WithForceSoftwareRenderer forces the fallback (software) GPU adapter.
//
// Parameters:
//   - force: true to require the fallback adapter
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithForceSoftwareRenderer(force bool) EngineBuilderOption {
	return func(e *engine) {
		e.forceSoftware = force
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}
