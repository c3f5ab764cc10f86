package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/backdrop-gfx/backdrop-go/engine/surface"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat *wgpu.TextureFormat
	presentMode   wgpu.PresentMode
	configured    bool
	geometry      surface.Geometry

	uniformBuffer  *wgpu.Buffer
	uniformSize    uint64
	bindGroup      *wgpu.BindGroup
	renderPipeline *wgpu.RenderPipeline

	destroyOnce sync.Once
}

type wgpuRendererBackend interface {
	// ConfigureSurface applies the surface configuration for the given
	// geometry. Called once at startup and again whenever the framebuffer
	// size or content scale changes.
	//
	// Parameters:
	//   - geom: the resolved physical surface geometry
	ConfigureSurface(geom surface.Geometry)

	// BuildPipeline compiles the effect shader and creates the fullscreen
	// render pipeline together with the uniform buffer and its bind group.
	// ConfigureSurface must have been called at least once so the surface
	// format is known.
	//
	// Parameters:
	//   - shaderSource: the complete WGSL source with vs_main and fs_main
	//   - uniformSize: the uniform buffer size in bytes
	//
	// Returns:
	//   - error: an error if shader compilation or pipeline creation fails
	BuildPipeline(shaderSource string, uniformSize uint64) error

	// SetPresentMode sets the surface present mode. Takes effect on the next
	// ConfigureSurface call.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// RenderFrame uploads the uniform data and draws one fullscreen frame.
	//
	// Parameters:
	//   - data: the packed uniform bytes for this frame
	//
	// Returns:
	//   - error: an error if the frame could not be produced
	RenderFrame(data []byte) error

	// Destroy releases all GPU resources. Safe to call multiple times.
	Destroy()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, powerPreference PowerPreference, forceFallbackAdapter bool) (wgpuRendererBackend, error) {
	if surfaceDescriptor == nil {
		return nil, ErrUnsupportedPlatform
	}

	runtime.LockOSThread()
	b := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	opts := &wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	}
	switch powerPreference {
	case PowerPreferenceLowPower:
		opts.PowerPreference = wgpu.PowerPreferenceLowPower
	case PowerPreferenceHighPerformance:
		opts.PowerPreference = wgpu.PowerPreferenceHighPerformance
	}

	a, err := b.instance.RequestAdapter(opts)
	if err != nil {
		b.releaseCore()
		return nil, fmt.Errorf("%w: %v", ErrNoAdapter, err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Backdrop Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		b.releaseCore()
		return nil, fmt.Errorf("requesting device: %w", err)
	}
	b.device = d
	b.queue = d.GetQueue()

	return b, nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(geom surface.Geometry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       geom.PixelWidth,
		Height:      geom.PixelHeight,
		PresentMode: b.presentMode,
		AlphaMode:   pickAlphaMode(capabilities.AlphaModes),
	})
	b.geometry = geom
	b.configured = true
}

// pickAlphaMode prefers premultiplied alpha compositing when the surface
// supports it, falling back to the first mode the surface reports.
func pickAlphaMode(modes []wgpu.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	for _, mode := range modes {
		if mode == wgpu.CompositeAlphaModePremultiplied {
			return mode
		}
	}
	return modes[0]
}

func (b *wgpuRendererBackendImpl) BuildPipeline(shaderSource string, uniformSize uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.configured {
		return fmt.Errorf("surface must be configured before building the pipeline")
	}

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Effect Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: shaderSource,
		},
	})
	if err != nil {
		return fmt.Errorf("compiling effect shader: %w", err)
	}
	defer module.Release()

	buffer, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Effect Uniform Buffer",
		Size:  uniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("creating uniform buffer: %w", err)
	}
	b.uniformBuffer = buffer
	b.uniformSize = uniformSize

	// One uniform buffer at group 0 binding 0, visible to both stages. The
	// whole uniform layout contract for effects lives in this single binding.
	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Effect Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating bind group layout: %w", err)
	}
	defer layout.Release()

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Effect Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating bind group: %w", err)
	}
	b.bindGroup = bindGroup

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Effect Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return fmt.Errorf("creating pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	// Fullscreen triangle: no vertex buffers, no depth, no MSAA. The vertex
	// stage derives positions from the vertex index alone.
	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Effect Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("creating render pipeline: %w", err)
	}
	b.renderPipeline = created

	return nil
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) RenderFrame(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.renderPipeline == nil {
		return fmt.Errorf("render pipeline not built")
	}
	if uint64(len(data)) != b.uniformSize {
		return fmt.Errorf("uniform data is %d bytes, buffer expects %d", len(data), b.uniformSize)
	}

	b.queue.WriteBuffer(b.uniformBuffer, 0, data)

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    view,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: 0, G: 0, B: 0, A: 1,
				},
			},
		},
	})
	pass.SetPipeline(b.renderPipeline)
	pass.SetBindGroup(0, b.bindGroup, nil)
	pass.Draw(3, 1, 0, 0)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		surfaceTexture.Release()
		return err
	}

	b.queue.Submit(commandBuffer)
	b.surface.Present()

	commandBuffer.Release()
	encoder.Release()
	view.Release()
	surfaceTexture.Release()

	return nil
}

func (b *wgpuRendererBackendImpl) Destroy() {
	b.destroyOnce.Do(func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if b.renderPipeline != nil {
			b.renderPipeline.Release()
			b.renderPipeline = nil
		}
		if b.bindGroup != nil {
			b.bindGroup.Release()
			b.bindGroup = nil
		}
		if b.uniformBuffer != nil {
			b.uniformBuffer.Release()
			b.uniformBuffer = nil
		}
		b.releaseCore()
	})
}

// releaseCore releases the device chain in reverse creation order.
func (b *wgpuRendererBackendImpl) releaseCore() {
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
