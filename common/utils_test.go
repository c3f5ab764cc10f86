package common_test

import (
	"testing"

	"github.com/backdrop-gfx/backdrop-go/common"
	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, common.Coalesce(0, 0, 5, 7))
	assert.Equal(t, "a", common.Coalesce("", "a"))
	assert.Equal(t, 0, common.Coalesce(0, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), common.Clamp(float32(0.5), 1, 3))
	assert.Equal(t, float32(3), common.Clamp(float32(4.2), 1, 3))
	assert.Equal(t, float32(2), common.Clamp(float32(2), 1, 3))
	assert.Equal(t, 10, common.Clamp(12, 0, 10))
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, common.SliceToBytes([]float32(nil)))

	data := []float32{1.0, 2.0}
	b := common.SliceToBytes(data)
	assert.Len(t, b, 8)
	// 1.0 as little-endian IEEE 754: 0x3f800000
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, b[:4])
}
