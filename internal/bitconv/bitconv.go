package bitconv

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/bitstream-go"
)

var ErrShortData = errors.New("data holds fewer bits than requested")

// Pack writes bits most significant first into uint64 words and returns the
// words together with the number of bits written.
func Pack(bits []bool) ([]uint64, int) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	return w.Data(), w.Bits()
}

// Unpack reads size bits back from data. It fails when data is too short to
// hold size bits.
func Unpack(data []uint64, size int) ([]bool, error) {
	if size <= 0 {
		return []bool{}, nil
	}
	if size > len(data)*64 {
		return nil, fmt.Errorf("%w: %d bits in %d words", ErrShortData, size, len(data))
	}
	r := bitstream.NewBitReader(data, 0, 0)
	r.SetBits(size)
	bits := make([]bool, size)
	for i := range bits {
		v, err := r.ReadBitAt(i)
		if err != nil {
			return nil, fmt.Errorf("bit %d: %w", i, err)
		}
		bits[i] = v
	}
	return bits, nil
}
