package bitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitConv(t *testing.T) {
	test := []struct {
		name string
		bits []bool
	}{
		{"empty", []bool{}},
		{"single true", []bool{true}},
		{"single false", []bool{false}},
		{"row", []bool{true, true, false, true}},
		{"word boundary", func() []bool {
			bits := make([]bool, 70)
			for i := range bits {
				bits[i] = i%3 == 0
			}
			return bits
		}()},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			data, size := Pack(tt.bits)
			assert.Equal(t, len(tt.bits), size)
			got, err := Unpack(data, size)
			require.NoError(t, err)
			assert.Equal(t, tt.bits, got)
		})
	}
}

func TestUnpack_ShortData(t *testing.T) {
	test := []struct {
		name string
		data []uint64
		size int
	}{
		{"nil data", nil, 4},
		{"one word too few", []uint64{^uint64(0)}, 100},
		{"one bit over", []uint64{0, 0}, 129},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			bits, err := Unpack(tt.data, tt.size)
			assert.ErrorIs(t, err, ErrShortData)
			assert.Nil(t, bits)
		})
	}

	bits, err := Unpack([]uint64{1 << 63}, 64)
	require.NoError(t, err)
	assert.True(t, bits[0])
	assert.False(t, bits[63])
}
