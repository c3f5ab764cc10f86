// Package surface derives the physical pixel geometry of the render target
// from a logical window size and a device pixel ratio hint. All sizing math
// lives here so the renderer and the engine agree on the numbers they hand
// to the GPU surface configuration.
package surface

import (
	"math"

	"github.com/backdrop-gfx/backdrop-go/common"
)

// DefaultMaxDpr caps the device pixel ratio used for sizing. Very dense
// displays report ratios above 3 and rendering a fullscreen effect at that
// density burns fill rate for no visible gain.
const DefaultMaxDpr float32 = 3

// Geometry is the resolved physical size of the render surface together with
// the effective device pixel ratio that produced it.
type Geometry struct {
	PixelWidth       uint32
	PixelHeight      uint32
	DevicePixelRatio float32
}

// Compute resolves the physical surface geometry for a logical size and a
// device pixel ratio hint.
//
// The hint is clamped to the range [1, maxDpr]. A maxDpr at or below 1 falls
// back to DefaultMaxDpr. Pixel dimensions are the floor of logical size times
// the effective ratio, never below 1 so a collapsed window cannot produce a
// zero-sized surface configuration.
//
// Parameters:
//   - logicalWidth: window width in logical units.
//   - logicalHeight: window height in logical units.
//   - dprHint: device pixel ratio reported by the windowing system.
//   - maxDpr: upper bound for the effective ratio.
//
// Returns:
//   - Geometry: the resolved physical size and effective ratio.
func Compute(logicalWidth, logicalHeight float64, dprHint, maxDpr float32) Geometry {
	if maxDpr <= 1 {
		maxDpr = DefaultMaxDpr
	}
	dpr := common.Clamp(dprHint, 1, maxDpr)

	return Geometry{
		PixelWidth:       pixelExtent(logicalWidth, dpr),
		PixelHeight:      pixelExtent(logicalHeight, dpr),
		DevicePixelRatio: dpr,
	}
}

func pixelExtent(logical float64, dpr float32) uint32 {
	px := math.Floor(logical * float64(dpr))
	if px < 1 {
		return 1
	}
	return uint32(px)
}

// Equal reports whether two geometries describe the same physical surface.
// The engine uses this to skip redundant surface reconfiguration on resize
// callbacks that do not change the pixel size.
func (g Geometry) Equal(other Geometry) bool {
	return g.PixelWidth == other.PixelWidth &&
		g.PixelHeight == other.PixelHeight &&
		g.DevicePixelRatio == other.DevicePixelRatio
}
