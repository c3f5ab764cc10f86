package renderer

// BuilderOption configures a Renderer during construction.
type BuilderOption func(*renderer)

// WithPresentMode sets the initial present mode.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - BuilderOption: the option to apply
func WithPresentMode(mode PresentMode) BuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithPowerPreference hints which GPU the adapter request should favor.
//
// Parameters:
//   - pref: the PowerPreference to request
//
// Returns:
//   - BuilderOption: the option to apply
func WithPowerPreference(pref PowerPreference) BuilderOption {
	return func(r *renderer) {
		r.powerPreference = pref
	}
}

// WithForceSoftwareRenderer forces the fallback (software) adapter. Useful
// for headless environments and driver triage.
//
// Parameters:
//   - force: true to require the fallback adapter
//
// Returns:
//   - BuilderOption: the option to apply
func WithForceSoftwareRenderer(force bool) BuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
