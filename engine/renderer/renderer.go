// Package renderer owns the GPU surface and the fullscreen effect pipeline.
// It compiles the effect shader once, holds a single uniform buffer, and
// draws one fullscreen triangle per frame.
package renderer

import (
	"github.com/backdrop-gfx/backdrop-go/engine/renderer/shader"
	"github.com/backdrop-gfx/backdrop-go/engine/surface"
	"github.com/backdrop-gfx/backdrop-go/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	powerPreference      PowerPreference
	pendingPresentMode   *PresentMode
}

// Renderer is the high-level rendering API for a single fullscreen effect.
// It hides the backend behind a small surface so the engine can be tested
// with a fake implementation.
type Renderer interface {
	// Configure applies a new surface geometry. Call when the framebuffer
	// size or content scale changes.
	//
	// Parameters:
	//   - geom: the resolved physical surface geometry
	Configure(geom surface.Geometry)

	// RenderFrame uploads the packed uniform bytes and draws one frame.
	//
	// Parameters:
	//   - data: the uniform data for this frame
	//
	// Returns:
	//   - error: an error if the frame could not be produced
	RenderFrame(data []byte) error

	// SetPresentMode changes the present mode. Takes effect on the next
	// Configure call.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Destroy releases all GPU resources held by the renderer.
	// Safe to call multiple times.
	Destroy()
}

var _ Renderer = &renderer{}

// New creates a Renderer for the given window, compiles the effect shader,
// and configures the surface for the initial geometry.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window hosting the render surface
//   - shaderSource: the complete WGSL source with vs_main and fs_main
//   - uniformSize: the uniform buffer size in bytes
//   - geom: the initial surface geometry
//   - options: functional options to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: an error if GPU initialization or pipeline creation fails
func New(backendType RendererBackendType, win window.Window, shaderSource string, uniformSize uint64, geom surface.Geometry, options ...BuilderOption) (Renderer, error) {
	if err := shader.ValidateEffectSource(shaderSource); err != nil {
		return nil, err
	}

	r := &renderer{
		backendType: backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(win.SurfaceDescriptor(), r.powerPreference, r.forceFallbackAdapter)
	}
	if err != nil {
		return nil, err
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(geom)

	if err := r.backend.BuildPipeline(shaderSource, uniformSize); err != nil {
		r.backend.Destroy()
		return nil, err
	}

	return r, nil
}

func (r *renderer) Configure(geom surface.Geometry) {
	r.backend.ConfigureSurface(geom)
}

func (r *renderer) RenderFrame(data []byte) error {
	return r.backend.RenderFrame(data)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Destroy() {
	r.backend.Destroy()
}
