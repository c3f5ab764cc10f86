// Package descriptor defines the renderer descriptor contract: a passive value
// object that supplies a shader program, a typed set of numeric parameters,
// and a pure uniform-writer function. The engine is descriptor-agnostic; a
// descriptor is the only thing that distinguishes one effect from another.
package descriptor

import (
	"fmt"

	"github.com/backdrop-gfx/backdrop-go/engine/uniform"
)

// WriteUniformsFunc fills buf[0:floatCount) with the fixed uniform layout for
// one frame. Implementations must be pure with respect to buf: write every
// frame, never retain buf beyond the call.
type WriteUniformsFunc func(buf []float32, t float64, width, height uint32, dpr float32, params *Params)

// Descriptor is the contract a renderer descriptor fulfills for the engine.
//
// A descriptor is immutable once constructed. Its shader source must declare a
// uniform struct whose field order mirrors the layout produced by
// WriteUniforms exactly; the engine only length-checks the buffer, so a
// field-order mismatch corrupts silently (see package uniform).
type Descriptor interface {
	// ID returns the descriptor's unique identifier.
	//
	// Returns:
	//   - string: the unique key for this descriptor
	ID() string

	// DefaultParams returns the descriptor's parameters with their default
	// values, in declared order. The order fixes each parameter's slot in the
	// uniform layout.
	//
	// Returns:
	//   - []Param: the ordered default parameter set
	DefaultParams() []Param

	// ShaderSource returns the WGSL program text for this descriptor. The
	// program must expose vs_main and fs_main entry points and draw using the
	// vertex index only (the engine binds no vertex buffers).
	//
	// Returns:
	//   - string: the shader source
	ShaderSource() string

	// UniformFloatCount returns the total length of the uniform layout in
	// 32-bit floats: the 4 standard fields, the declared parameters, and
	// trailing padding so the byte size is a multiple of 16.
	//
	// Returns:
	//   - int: the uniform layout length in floats
	UniformFloatCount() int

	// WriteUniforms fills buf with the uniform layout for one frame.
	// buf has exactly UniformFloatCount elements and is reused by the engine
	// across frames; it must not be retained beyond the call.
	//
	// Parameters:
	//   - buf: the engine-owned scratch buffer to fill
	//   - t: elapsed seconds since the loop started
	//   - width: backing-buffer width in pixels
	//   - height: backing-buffer height in pixels
	//   - dpr: the clamped device pixel ratio
	//   - params: the live parameter set
	WriteUniforms(buf []float32, t float64, width, height uint32, dpr float32, params *Params)
}

// effectDescriptor is the builder-option implementation of Descriptor.
type effectDescriptor struct {
	id            string
	params        []Param
	shaderSource  string
	floatCount    int
	uniformWriter WriteUniformsFunc
}

var _ Descriptor = &effectDescriptor{}

// New creates a Descriptor from the provided options. When no explicit float
// count is set, the count is derived from the declared parameters via
// uniform.FloatCountFor. When no uniform writer is set, the default writer is
// used: standard fields, then parameters in declared order, then zero padding.
//
// Parameters:
//   - options: functional options configuring the descriptor
//
// Returns:
//   - Descriptor: the constructed descriptor
func New(options ...BuilderOption) Descriptor {
	d := &effectDescriptor{}
	for _, opt := range options {
		opt(d)
	}
	if d.floatCount == 0 {
		d.floatCount = uniform.FloatCountFor(len(d.params))
	}
	if d.uniformWriter == nil {
		d.uniformWriter = defaultWriter
	}
	return d
}

// Validate checks the descriptor's uniform-count invariant:
// UniformFloatCount must be a positive multiple of 4 and account for the
// standard fields plus every declared parameter. The engine rejects invalid
// descriptors at initialization rather than at frame time.
//
// Parameters:
//   - d: the descriptor to check
//
// Returns:
//   - error: a descriptive error if the contract is violated, otherwise nil
func Validate(d Descriptor) error {
	if d.ID() == "" {
		return fmt.Errorf("descriptor has no id")
	}
	if err := uniform.ValidateFloatCount(d.UniformFloatCount(), len(d.DefaultParams())); err != nil {
		return fmt.Errorf("descriptor %q: %w", d.ID(), err)
	}
	return nil
}

// defaultWriter writes the standard fields, then the parameters in declared
// order, then zeroes the trailing padding.
func defaultWriter(buf []float32, t float64, width, height uint32, dpr float32, params *Params) {
	uniform.WriteStandard(buf, t, width, height, dpr)
	n := len(params.AppendValues(buf[uniform.StandardFloatCount:uniform.StandardFloatCount]))
	for i := uniform.StandardFloatCount + n; i < len(buf); i++ {
		buf[i] = 0
	}
}

func (d *effectDescriptor) ID() string {
	return d.id
}

func (d *effectDescriptor) DefaultParams() []Param {
	out := make([]Param, len(d.params))
	copy(out, d.params)
	return out
}

func (d *effectDescriptor) ShaderSource() string {
	return d.shaderSource
}

func (d *effectDescriptor) UniformFloatCount() int {
	return d.floatCount
}

func (d *effectDescriptor) WriteUniforms(buf []float32, t float64, width, height uint32, dpr float32, params *Params) {
	d.uniformWriter(buf, t, width, height, dpr, params)
}
