package scheduler

import "time"

// BuilderOption configures a FrameScheduler during construction.
type BuilderOption func(*frameScheduler)

// WithFrameRate sets the target frame rate in frames per second.
// Values at or below zero keep the 60 fps default.
//
// Parameters:
//   - fps: target frames per second
//
// Returns:
//   - BuilderOption: the option to apply
func WithFrameRate(fps float64) BuilderOption {
	return func(s *frameScheduler) {
		if fps > 0 {
			s.frameRate = time.Duration(float64(time.Second) / fps)
		}
	}
}

// WithAnimate controls whether the scheduler runs a continuous loop. When
// false, each Start produces exactly one frame at time zero. Used when the
// platform signals a reduced motion preference.
//
// Parameters:
//   - animate: false to render a single still frame per Start
//
// Returns:
//   - BuilderOption: the option to apply
func WithAnimate(animate bool) BuilderOption {
	return func(s *frameScheduler) {
		s.animate = animate
	}
}

// WithFrameSkippedCallback registers a callback invoked for every tick that
// is skipped because the surface is hidden. Used for pacing statistics.
//
// Parameters:
//   - cb: function invoked once per skipped tick
//
// Returns:
//   - BuilderOption: the option to apply
func WithFrameSkippedCallback(cb func()) BuilderOption {
	return func(s *frameScheduler) {
		s.frameSkipped = cb
	}
}

// WithVisibilitySource wires the scheduler to a visibility signal. While the
// source reports the surface as hidden, frames are skipped but the clock
// keeps running.
//
// Parameters:
//   - source: the visibility subscription entry point
//
// Returns:
//   - BuilderOption: the option to apply
func WithVisibilitySource(source VisibilitySource) BuilderOption {
	return func(s *frameScheduler) {
		s.visibilitySource = source
	}
}
