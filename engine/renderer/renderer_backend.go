package renderer

import "errors"

// RendererBackendType identifies the GPU backend implementation used by the
// Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display
// surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting,
	// capping frame rate to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for
	// vertical blank. May cause screen tearing but provides the lowest
	// latency.
	PresentModeUncapped
)

// PowerPreference hints which GPU the adapter request should favor on
// multi-GPU systems. A fullscreen ambient effect usually wants the low power
// GPU.
type PowerPreference int

const (
	// PowerPreferenceDefault lets the platform pick an adapter.
	PowerPreferenceDefault PowerPreference = iota

	// PowerPreferenceLowPower favors the integrated GPU.
	PowerPreferenceLowPower

	// PowerPreferenceHighPerformance favors the discrete GPU.
	PowerPreferenceHighPerformance
)

var (
	// ErrNoAdapter means no GPU adapter compatible with the surface could be
	// acquired. Rendering cannot proceed on this machine.
	ErrNoAdapter = errors.New("renderer: no compatible GPU adapter")

	// ErrUnsupportedPlatform means the platform could not provide a surface
	// descriptor for the window.
	ErrUnsupportedPlatform = errors.New("renderer: platform cannot provide a render surface")

	// ErrSurfaceUnavailable means the swapchain texture could not be acquired
	// for the current frame.
	ErrSurfaceUnavailable = errors.New("renderer: surface texture unavailable")
)

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
