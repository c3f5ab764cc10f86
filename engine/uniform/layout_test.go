package uniform_test

import (
	"testing"

	"github.com/backdrop-gfx/backdrop-go/engine/uniform"
	"github.com/stretchr/testify/assert"
)

func TestFloatCountFor(t *testing.T) {
	cases := []struct {
		params int
		want   int
	}{
		{0, 4},
		{1, 8},
		{4, 8},
		{5, 12},
		{10, 16},
		{12, 16},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, uniform.FloatCountFor(c.params), "params=%d", c.params)
		assert.Zero(t, uniform.FloatCountFor(c.params)%4)
	}
}

func TestPadFloats(t *testing.T) {
	// 10 params -> 4 + 10 = 14 floats, padded to 16 with 2 trailing zeros.
	assert.Equal(t, 2, uniform.PadFloats(10))
	assert.Equal(t, 0, uniform.PadFloats(4))
	assert.Equal(t, 3, uniform.PadFloats(1))
}

func TestValidateFloatCount(t *testing.T) {
	assert.NoError(t, uniform.ValidateFloatCount(16, 10))
	assert.NoError(t, uniform.ValidateFloatCount(8, 4))

	assert.Error(t, uniform.ValidateFloatCount(0, 0))
	assert.Error(t, uniform.ValidateFloatCount(-4, 0))
	assert.Error(t, uniform.ValidateFloatCount(14, 10), "not a multiple of 4")
	assert.Error(t, uniform.ValidateFloatCount(8, 6), "too small for params")
}

func TestWriteStandard(t *testing.T) {
	buf := make([]float32, 8)
	uniform.WriteStandard(buf, 1.0, 800, 600, 2)
	assert.Equal(t, []float32{1, 800, 600, 2}, buf[:4])
	assert.Equal(t, []float32{0, 0, 0, 0}, buf[4:], "remaining floats untouched")
}

func TestBytesLength(t *testing.T) {
	buf := make([]float32, 16)
	assert.Len(t, uniform.Bytes(buf), 64)
}
