package descriptor_test

import (
	"testing"

	"github.com/backdrop-gfx/backdrop-go/engine/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenParams() []descriptor.Param {
	return []descriptor.Param{
		{Name: "p0", Value: 10}, {Name: "p1", Value: 11}, {Name: "p2", Value: 12},
		{Name: "p3", Value: 13}, {Name: "p4", Value: 14}, {Name: "p5", Value: 15},
		{Name: "p6", Value: 16}, {Name: "p7", Value: 17}, {Name: "p8", Value: 18},
		{Name: "p9", Value: 19},
	}
}

func TestDerivedFloatCount(t *testing.T) {
	d := descriptor.New(
		descriptor.WithID("fx"),
		descriptor.WithParams(tenParams()...),
		descriptor.WithShaderSource("// wgsl"),
	)
	// 4 standard + 10 params = 14, padded to 16.
	assert.Equal(t, 16, d.UniformFloatCount())
	require.NoError(t, descriptor.Validate(d))
}

func TestValidateRejectsBadCounts(t *testing.T) {
	noID := descriptor.New(descriptor.WithParam("speed", 1))
	assert.Error(t, descriptor.Validate(noID))

	unaligned := descriptor.New(
		descriptor.WithID("fx"),
		descriptor.WithParam("speed", 1),
		descriptor.WithUniformFloatCount(14),
	)
	assert.Error(t, descriptor.Validate(unaligned))

	tooSmall := descriptor.New(
		descriptor.WithID("fx"),
		descriptor.WithParams(tenParams()...),
		descriptor.WithUniformFloatCount(8),
	)
	assert.Error(t, descriptor.Validate(tooSmall))
}

// Layout scenario: 16 floats, 10 named params plus 2 padding slots.
// writeUniforms at time=1, 800x600, dpr=2 must place 1,800,600,2 at indices
// 0-3, the 10 parameter values at 4-13 in declared order, and leave 14-15 zero.
func TestDefaultWriterLayout(t *testing.T) {
	d := descriptor.New(
		descriptor.WithID("fx"),
		descriptor.WithParams(tenParams()...),
	)
	require.Equal(t, 16, d.UniformFloatCount())
	params := descriptor.NewParams(d.DefaultParams(), nil)

	buf := make([]float32, d.UniformFloatCount())
	// Dirty the padding slots to prove the writer zeroes them every frame.
	buf[14], buf[15] = 99, 99

	d.WriteUniforms(buf, 1.0, 800, 600, 2, params)

	assert.Equal(t, []float32{1, 800, 600, 2}, buf[0:4])
	assert.Equal(t, []float32{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, buf[4:14])
	assert.Equal(t, []float32{0, 0}, buf[14:16])
}

func TestParamsMergeRoundTrip(t *testing.T) {
	defaults := []descriptor.Param{
		{Name: "speed", Value: 1.0},
		{Name: "scale", Value: 4.0},
	}
	p := descriptor.NewParams(defaults, map[string]float32{"speed": 0.3, "bogus": 7})

	assert.InDelta(t, 0.3, p.Get("speed"), 1e-6)
	assert.InDelta(t, 4.0, p.Get("scale"), 1e-6, "unspecified keys retain defaults")
	assert.Zero(t, p.Get("bogus"), "undeclared override names are ignored")
	assert.Equal(t, []string{"speed", "scale"}, p.Names())
}

func TestParamsSetVisibleOnNextRead(t *testing.T) {
	p := descriptor.NewParams([]descriptor.Param{{Name: "speed", Value: 1}}, nil)
	p.Set("speed", 0.5)
	assert.InDelta(t, 0.5, p.Get("speed"), 1e-6)

	vals := p.AppendValues(nil)
	assert.Equal(t, []float32{0.5}, vals)

	p.Set("missing", 9)
	assert.Zero(t, p.Get("missing"))
}

func TestRegistry(t *testing.T) {
	r := descriptor.NewRegistry()
	r.Register(nil)
	r.Register(descriptor.New(descriptor.WithID("plasma")))
	r.Register(descriptor.New(descriptor.WithID("aurora")))

	d, ok := r.Get("plasma")
	require.True(t, ok)
	assert.Equal(t, "plasma", d.ID())

	_, ok = r.Get("unknown")
	assert.False(t, ok)

	assert.Equal(t, []string{"aurora", "plasma"}, r.List())
}

func TestCustomUniformWriter(t *testing.T) {
	called := false
	d := descriptor.New(
		descriptor.WithID("fx"),
		descriptor.WithParam("speed", 1),
		descriptor.WithUniformWriter(func(buf []float32, tm float64, w, h uint32, dpr float32, params *descriptor.Params) {
			called = true
			buf[0] = float32(tm)
		}),
	)
	buf := make([]float32, d.UniformFloatCount())
	d.WriteUniforms(buf, 2.5, 1, 1, 1, nil)
	assert.True(t, called)
	assert.InDelta(t, 2.5, buf[0], 1e-6)
}
