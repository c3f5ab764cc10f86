// Package window provides platform windowing for the fullscreen effect
// surface. It exposes logical size, content scale, and visibility signals so
// the engine can keep the GPU surface configuration in sync with the display.
package window

import (
	"fmt"
	"runtime"

	"github.com/backdrop-gfx/backdrop-go/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window wraps the platform window hosting the effect surface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer size
	// changes. Width and height are physical pixels.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetContentScaleCallback sets the function called when the window moves
	// to a display with a different content scale (device pixel ratio).
	//
	// Parameters:
	//   - callback: function receiving the new scale factor
	SetContentScaleCallback(callback func(scale float32))

	// SetVisibilityCallback sets the function called when the window is
	// minimized or restored. Receives false when hidden, true when visible.
	//
	// Parameters:
	//   - callback: function receiving the visibility state
	SetVisibilityCallback(callback func(visible bool))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating
	// a WebGPU surface. The descriptor is platform-appropriate (Windows HWND,
	// X11 Xlib, Wayland, macOS Metal) and is created by the wgpuglfw bridge.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil if not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// LogicalSize returns the window client area in logical (screen) units,
	// before content scaling is applied.
	//
	// Returns:
	//   - float64: logical width
	//   - float64: logical height
	LogicalSize() (float64, float64)

	// ContentScale returns the current device pixel ratio of the display the
	// window occupies.
	//
	// Returns:
	//   - float32: the content scale factor
	ContentScale() float32

	// Width returns the current framebuffer width in physical pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in physical pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each
	// iteration.
	ProcessMessages()
}

// effectWindow is the implementation of the Window interface.
type effectWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width and height track the framebuffer size in physical pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the framebuffer size changes.
	onResize func(width, height int)

	// onContentScale is called when the display content scale changes.
	onContentScale func(scale float32)

	// onVisibility is called when the window is minimized or restored.
	onVisibility func(visible bool)
}

var _ Window = &effectWindow{}

// New creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
//   - error: error if platform window creation fails
func New(options ...BuilderOption) (Window, error) {
	w := &effectWindow{
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	w.title = common.Coalesce(w.title, "Backdrop")
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("creating platform window: %w", err)
	}
	return w, nil
}

func (w *effectWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *effectWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *effectWindow) SetContentScaleCallback(callback func(scale float32)) {
	w.onContentScale = callback
}

func (w *effectWindow) SetVisibilityCallback(callback func(visible bool)) {
	w.onVisibility = callback
}

func (w *effectWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *effectWindow) LogicalSize() (float64, float64) {
	return platformLogicalSize(w)
}

func (w *effectWindow) ContentScale() float32 {
	return platformContentScale(w)
}

func (w *effectWindow) Width() int {
	return w.width
}

func (w *effectWindow) Height() int {
	return w.height
}

func (w *effectWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *effectWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *effectWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}
