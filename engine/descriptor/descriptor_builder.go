package descriptor

// BuilderOption is a functional option applied to a descriptor during construction via New.
type BuilderOption func(*effectDescriptor)

// WithID sets the descriptor's unique identifier.
//
// Parameters:
//   - id: the unique key for the descriptor
//
// Returns:
//   - BuilderOption: option function to apply
func WithID(id string) BuilderOption {
	return func(d *effectDescriptor) {
		d.id = id
	}
}

// WithParam declares a parameter with its default value. Parameters occupy
// uniform-layout slots in the order they are declared.
//
// Parameters:
//   - name: the parameter identifier
//   - def: the parameter's default value
//
// Returns:
//   - BuilderOption: option function to apply
func WithParam(name string, def float32) BuilderOption {
	return func(d *effectDescriptor) {
		d.params = append(d.params, Param{Name: name, Value: def})
	}
}

// WithParams declares multiple parameters at once, preserving slice order.
//
// Parameters:
//   - params: the ordered parameters with default values
//
// Returns:
//   - BuilderOption: option function to apply
func WithParams(params ...Param) BuilderOption {
	return func(d *effectDescriptor) {
		d.params = append(d.params, params...)
	}
}

// WithShaderSource sets the WGSL program text. The program must expose
// vs_main and fs_main entry points and mirror the uniform layout exactly.
//
// Parameters:
//   - source: the shader source text
//
// Returns:
//   - BuilderOption: option function to apply
func WithShaderSource(source string) BuilderOption {
	return func(d *effectDescriptor) {
		d.shaderSource = source
	}
}

// WithUniformFloatCount overrides the derived uniform float count. Only
// needed when the shader declares more uniform space than the parameter list
// implies; the count must still satisfy the layout invariant checked by
// Validate.
//
// Parameters:
//   - count: the total uniform layout length in floats
//
// Returns:
//   - BuilderOption: option function to apply
func WithUniformFloatCount(count int) BuilderOption {
	return func(d *effectDescriptor) {
		d.floatCount = count
	}
}

// WithUniformWriter replaces the default uniform writer. Custom writers must
// honor the layout contract: standard fields at indices 0-3 and a total
// length of UniformFloatCount floats.
//
// Parameters:
//   - writer: the uniform writer function
//
// Returns:
//   - BuilderOption: option function to apply
func WithUniformWriter(writer WriteUniformsFunc) BuilderOption {
	return func(d *effectDescriptor) {
		d.uniformWriter = writer
	}
}
