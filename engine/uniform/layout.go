// Package uniform defines the fixed binary contract between the host and a
// descriptor's shader program.
//
// The layout is a flat sequence of 32-bit floats, offset 0, tightly packed:
//
//	[time, width, height, dpr, param_0 .. param_k, pad ...]
//
// The first four floats are the standard fields written every frame by the
// engine; the remainder are descriptor parameters in declared order, followed
// by zero padding so the total byte length is a multiple of 16 (the uniform
// memory alignment rule of the WebGPU API). The shader-side struct declaration
// must mirror this field order exactly. The engine can only length-check the
// buffer at runtime; a field-order mismatch between descriptor and shader is a
// silent-corruption class of bug and is the descriptor author's contract to
// honor.
package uniform

import (
	"fmt"

	"github.com/backdrop-gfx/backdrop-go/common"
)

const (
	// StandardFloatCount is the number of standard fields at the head of every
	// uniform layout: time, width, height, and device pixel ratio.
	StandardFloatCount = 4

	// ByteAlignment is the required alignment of the total uniform byte size.
	ByteAlignment = 16

	// floatsPerAlign is the number of f32 values per 16-byte alignment block.
	floatsPerAlign = ByteAlignment / 4
)

// FloatCountFor returns the uniform float count required for a descriptor with
// the given number of parameters: the standard fields plus the parameters,
// rounded up to the next multiple of 4 floats (16 bytes).
//
// Parameters:
//   - paramCount: the number of descriptor parameters
//
// Returns:
//   - int: the total float count including standard fields and padding
func FloatCountFor(paramCount int) int {
	n := StandardFloatCount + paramCount
	if rem := n % floatsPerAlign; rem != 0 {
		n += floatsPerAlign - rem
	}
	return n
}

// PadFloats returns the number of trailing padding floats for a descriptor
// with the given number of parameters.
//
// Parameters:
//   - paramCount: the number of descriptor parameters
//
// Returns:
//   - int: the number of zero-padding floats at the tail of the layout
func PadFloats(paramCount int) int {
	return FloatCountFor(paramCount) - StandardFloatCount - paramCount
}

// ValidateFloatCount checks the uniform-count invariant for a descriptor:
// the count must be positive, a multiple of 4, and large enough to hold the
// standard fields plus paramCount parameters.
//
// Parameters:
//   - floatCount: the descriptor's declared uniform float count
//   - paramCount: the number of descriptor parameters
//
// Returns:
//   - error: a descriptive error if the invariant is violated, otherwise nil
func ValidateFloatCount(floatCount, paramCount int) error {
	if floatCount <= 0 || floatCount%floatsPerAlign != 0 {
		return fmt.Errorf("uniform float count %d must be a positive multiple of %d", floatCount, floatsPerAlign)
	}
	if min := StandardFloatCount + paramCount; floatCount < min {
		return fmt.Errorf("uniform float count %d too small for %d standard fields and %d params", floatCount, StandardFloatCount, paramCount)
	}
	return nil
}

// ByteSize returns the uniform buffer size in bytes for the given float
// count.
//
// Parameters:
//   - floatCount: the descriptor's declared uniform float count
//
// Returns:
//   - uint64: the buffer size in bytes
func ByteSize(floatCount int) uint64 {
	return uint64(floatCount) * 4
}

// WriteStandard fills the four standard fields at the head of buf.
// buf must have at least StandardFloatCount elements.
//
// Parameters:
//   - buf: the uniform scratch buffer to write into
//   - t: elapsed time in seconds since the loop started
//   - width: backing-buffer width in pixels (not logical units)
//   - height: backing-buffer height in pixels (not logical units)
//   - dpr: the clamped device pixel ratio
func WriteStandard(buf []float32, t float64, width, height uint32, dpr float32) {
	buf[0] = float32(t)
	buf[1] = float32(width)
	buf[2] = float32(height)
	buf[3] = dpr
}

// Bytes returns a byte-slice view of the uniform scratch buffer suitable for
// a GPU buffer upload. The view shares memory with buf and is only valid
// until the next write; it must not be retained across frames.
//
// Parameters:
//   - buf: the uniform scratch buffer
//
// Returns:
//   - []byte: a little-endian f32 byte view of buf
func Bytes(buf []float32) []byte {
	return common.SliceToBytes(buf)
}
