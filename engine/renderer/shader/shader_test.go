package shader_test

import (
	"testing"

	"github.com/backdrop-gfx/backdrop-go/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSource = `
struct Uniforms {
    time: f32,
    width: f32,
    height: f32,
    dpr: f32,
};

@group(0) @binding(0) var<uniform> u: Uniforms;

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(u.time, 0.0, 0.0, 1.0);
}
`

func TestEntryPoints(t *testing.T) {
	vertex, fragment := shader.EntryPoints(validSource)
	assert.Equal(t, []string{"vs_main"}, vertex)
	assert.Equal(t, []string{"fs_main"}, fragment)
}

func TestValidateEffectSourceAccepts(t *testing.T) {
	require.NoError(t, shader.ValidateEffectSource(validSource))
}

func TestValidateEffectSourceRejections(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name: "wrong vertex entry name",
			source: `@group(0) @binding(0) var<uniform> u: U;
@vertex fn main_vs() -> @builtin(position) vec4<f32> { return vec4<f32>(); }
@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(); }`,
		},
		{
			name: "missing fragment entry",
			source: `@group(0) @binding(0) var<uniform> u: U;
@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(); }`,
		},
		{
			name: "no uniform variable",
			source: `@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(); }
@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(); }`,
		},
		{
			name: "uniform at wrong binding",
			source: `@group(0) @binding(1) var<uniform> u: U;
@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(); }
@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(); }`,
		},
		{
			name: "two uniform variables",
			source: `@group(0) @binding(0) var<uniform> a: U;
@group(1) @binding(0) var<uniform> b: U;
@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(); }
@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(); }`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, shader.ValidateEffectSource(tc.source))
		})
	}
}
