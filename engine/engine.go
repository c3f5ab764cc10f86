// Package engine is the entry point for running a fullscreen effect. It ties
// the window, the GPU renderer, and the frame scheduler together behind a
// small lifecycle API.
package engine

import (
	"fmt"
	"log"
	"sync"

	"github.com/backdrop-gfx/backdrop-go/engine/descriptor"
	"github.com/backdrop-gfx/backdrop-go/engine/profiler"
	"github.com/backdrop-gfx/backdrop-go/engine/renderer"
	"github.com/backdrop-gfx/backdrop-go/engine/scheduler"
	"github.com/backdrop-gfx/backdrop-go/engine/surface"
	"github.com/backdrop-gfx/backdrop-go/engine/uniform"
	"github.com/backdrop-gfx/backdrop-go/engine/window"
)

// rendererFactory creates the Renderer for an engine. Swapped out by tests.
type rendererFactory func(win window.Window, shaderSource string, uniformSize uint64, geom surface.Geometry, options ...renderer.BuilderOption) (renderer.Renderer, error)

// engine implements the Engine interface.
// Coordinates the window, renderer, and frame scheduler.
type engine struct {
	mu sync.Mutex

	desc   descriptor.Descriptor
	params *descriptor.Params

	window   window.Window
	renderer renderer.Renderer
	sched    scheduler.FrameScheduler

	// geom is the surface geometry the renderer is currently configured for.
	geom surface.Geometry

	// resizeNeeded marks the surface configuration stale. Set by window
	// callbacks, consumed at the start of the next frame.
	resizeNeeded bool

	// scratch is the reusable uniform staging buffer. Sized once at init so
	// the frame loop never allocates.
	scratch []float32

	destroyed   bool
	destroyOnce sync.Once

	// windowOwned is true when the engine created the window itself and is
	// responsible for closing it on Destroy.
	windowOwned bool

	profiler         *profiler.Profiler
	profilingEnabled bool

	// Builder config collected before init.
	paramOverrides       map[string]float32
	frameRate            float64
	maxDpr               float32
	respectReducedMotion bool
	powerPreference      renderer.PowerPreference
	pendingPresentMode   *renderer.PresentMode
	forceSoftware        bool

	newRenderer rendererFactory
}

// Engine runs a single fullscreen effect in a window.
type Engine interface {
	// Start resets the animation clock and begins producing frames. When the
	// surface geometry is stale the surface is reconfigured before the first
	// frame. Calling Start while running is a no-op.
	Start()

	// Stop halts frame production without releasing resources. The next
	// Start begins a fresh clock at zero.
	Stop()

	// Destroy stops the engine and releases all GPU and window resources.
	// The engine is unusable afterwards. Safe to call multiple times.
	Destroy()

	// Params returns the live parameter set. Reads and writes are visible to
	// the next rendered frame.
	//
	// Returns:
	//   - *descriptor.Params: the live parameters
	Params() *descriptor.Params

	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Run starts the engine and blocks in the window message loop until the
	// window closes, then destroys the engine.
	Run()
}

var _ Engine = &engine{}

// New creates an Engine for the given effect descriptor.
// The descriptor is validated, the window and GPU renderer are created, and
// the effect pipeline is compiled, but no frames are produced until Start.
//
// Parameters:
//   - desc: the effect descriptor to run
//   - options: functional options for window, scheduling, and GPU selection
//
// Returns:
//   - Engine: the initialized engine
//   - error: an error if validation or GPU initialization fails
func New(desc descriptor.Descriptor, options ...EngineBuilderOption) (Engine, error) {
	e := newDefaultEngine()
	for _, opt := range options {
		opt(e)
	}
	if err := e.init(desc); err != nil {
		return nil, err
	}
	return e, nil
}

func newDefaultEngine() *engine {
	return &engine{
		frameRate:            60,
		maxDpr:               surface.DefaultMaxDpr,
		respectReducedMotion: true,
		powerPreference:      renderer.PowerPreferenceLowPower,
		profiler:             profiler.NewProfiler(),
		newRenderer:          defaultRendererFactory,
	}
}

func defaultRendererFactory(win window.Window, shaderSource string, uniformSize uint64, geom surface.Geometry, options ...renderer.BuilderOption) (renderer.Renderer, error) {
	return renderer.New(renderer.BackendTypeWGPU, win, shaderSource, uniformSize, geom, options...)
}

// init validates the descriptor and wires the window, renderer, and
// scheduler together.
func (e *engine) init(desc descriptor.Descriptor) error {
	if err := descriptor.Validate(desc); err != nil {
		return fmt.Errorf("invalid descriptor: %w", err)
	}
	e.desc = desc
	e.params = descriptor.NewParams(desc.DefaultParams(), e.paramOverrides)
	e.scratch = make([]float32, desc.UniformFloatCount())

	if e.window == nil {
		win, err := window.New(window.WithTitle(desc.ID()))
		if err != nil {
			return err
		}
		e.window = win
		e.windowOwned = true
	}

	e.geom = e.currentGeometry()

	rendererOptions := []renderer.BuilderOption{
		renderer.WithPowerPreference(e.powerPreference),
		renderer.WithForceSoftwareRenderer(e.forceSoftware),
	}
	if e.pendingPresentMode != nil {
		rendererOptions = append(rendererOptions, renderer.WithPresentMode(*e.pendingPresentMode))
	}

	r, err := e.newRenderer(e.window, desc.ShaderSource(), uniform.ByteSize(desc.UniformFloatCount()), e.geom, rendererOptions...)
	if err != nil {
		return err
	}
	e.renderer = r

	// Geometry changes are only flagged here; the surface itself is
	// reconfigured on the frame loop thread before the next draw.
	e.window.SetResizeCallback(func(width, height int) {
		e.mu.Lock()
		e.resizeNeeded = true
		e.mu.Unlock()
	})
	e.window.SetContentScaleCallback(func(scale float32) {
		e.mu.Lock()
		e.resizeNeeded = true
		e.mu.Unlock()
	})

	animate := true
	if e.respectReducedMotion && window.ReducedMotionPreferred() {
		animate = false
	}

	visibility := scheduler.VisibilitySource(func(onChange func(visible bool)) func() {
		e.window.SetVisibilityCallback(onChange)
		return func() {
			e.window.SetVisibilityCallback(nil)
		}
	})

	e.sched = scheduler.New(e.renderFrame,
		scheduler.WithFrameRate(e.frameRate),
		scheduler.WithAnimate(animate),
		scheduler.WithVisibilitySource(visibility),
		scheduler.WithFrameSkippedCallback(e.frameSkipped),
	)

	return nil
}

func (e *engine) Start() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	// The display may have changed while stopped; re-derive the geometry
	// before the first frame.
	e.resizeNeeded = true
	e.reconfigureLocked()
	e.mu.Unlock()

	e.sched.Start()
}

func (e *engine) Stop() {
	e.sched.Stop()
}

func (e *engine) Destroy() {
	e.destroyOnce.Do(func() {
		e.sched.Destroy()

		e.mu.Lock()
		e.destroyed = true
		e.mu.Unlock()

		e.window.SetResizeCallback(nil)
		e.window.SetContentScaleCallback(nil)

		e.renderer.Destroy()

		if e.windowOwned {
			if err := e.window.Close(); err != nil {
				log.Printf("engine: closing window: %v", err)
			}
		}
	})
}

func (e *engine) Params() *descriptor.Params {
	return e.params
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.Start()
	e.window.ProcessMessages()
	e.Destroy()
}

// renderFrame is the scheduler callback. It packs the uniform buffer for the
// elapsed time and draws one frame. A render fault is fatal for the loop:
// it is logged and the scheduler is stopped.
func (e *engine) renderFrame(elapsed float64) {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.reconfigureLocked()
	geom := e.geom

	e.desc.WriteUniforms(e.scratch, elapsed, geom.PixelWidth, geom.PixelHeight, geom.DevicePixelRatio, e.params)
	data := uniform.Bytes(e.scratch)
	e.mu.Unlock()

	if err := e.renderer.RenderFrame(data); err != nil {
		log.Printf("engine: render frame failed, stopping: %v", err)
		// Stop waits for the frame loop to exit, so it cannot run on the
		// loop goroutine itself.
		go e.Stop()
		return
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}
}

// frameSkipped records a hidden-surface tick for the profiler report.
func (e *engine) frameSkipped() {
	if e.profilingEnabled {
		e.profiler.FrameSkipped()
	}
}

// reconfigureLocked recomputes the surface geometry and reconfigures the
// renderer if a resize or content scale change was flagged. Caller holds mu.
func (e *engine) reconfigureLocked() {
	if !e.resizeNeeded {
		return
	}
	e.resizeNeeded = false

	geom := e.currentGeometry()
	if geom.Equal(e.geom) {
		return
	}
	e.geom = geom
	e.renderer.Configure(geom)
}

// currentGeometry reads the window's logical size and content scale and
// resolves the physical surface geometry.
func (e *engine) currentGeometry() surface.Geometry {
	logicalWidth, logicalHeight := e.window.LogicalSize()
	return surface.Compute(logicalWidth, logicalHeight, e.window.ContentScale(), e.maxDpr)
}
