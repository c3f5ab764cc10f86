package surface_test

import (
	"testing"

	"github.com/backdrop-gfx/backdrop-go/engine/surface"
	"github.com/stretchr/testify/assert"
)

func TestComputeScalesByRatio(t *testing.T) {
	g := surface.Compute(800, 600, 2, surface.DefaultMaxDpr)

	assert.Equal(t, uint32(1600), g.PixelWidth)
	assert.Equal(t, uint32(1200), g.PixelHeight)
	assert.Equal(t, float32(2), g.DevicePixelRatio)
}

func TestComputeClampsRatio(t *testing.T) {
	tests := []struct {
		name    string
		hint    float32
		maxDpr  float32
		wantDpr float32
	}{
		{name: "below one raised to one", hint: 0.5, maxDpr: 3, wantDpr: 1},
		{name: "zero raised to one", hint: 0, maxDpr: 3, wantDpr: 1},
		{name: "above cap lowered to cap", hint: 4, maxDpr: 3, wantDpr: 3},
		{name: "custom cap respected", hint: 3, maxDpr: 2, wantDpr: 2},
		{name: "invalid cap falls back to default", hint: 5, maxDpr: 0, wantDpr: surface.DefaultMaxDpr},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := surface.Compute(100, 100, tc.hint, tc.maxDpr)
			assert.Equal(t, tc.wantDpr, g.DevicePixelRatio)
		})
	}
}

func TestComputeFloorsFractionalPixels(t *testing.T) {
	g := surface.Compute(333, 333, 1.5, 3)

	assert.Equal(t, uint32(499), g.PixelWidth)
	assert.Equal(t, uint32(499), g.PixelHeight)
}

func TestComputeNeverReturnsZeroExtent(t *testing.T) {
	g := surface.Compute(0, 0.4, 1, 3)

	assert.Equal(t, uint32(1), g.PixelWidth)
	assert.Equal(t, uint32(1), g.PixelHeight)
}

func TestGeometryEqual(t *testing.T) {
	a := surface.Geometry{PixelWidth: 1600, PixelHeight: 1200, DevicePixelRatio: 2}
	b := a
	assert.True(t, a.Equal(b))

	b.PixelHeight = 1201
	assert.False(t, a.Equal(b))
}
