package printsize

import (
	"fmt"

	"github.com/yyyoichi/printsize/internal/bitconv"
)

// FormatResult holds, for one paper format, whether it fits each quality tier.
// Fits follows the tier order used for the calculation.
type FormatResult struct {
	Format PaperFormat `json:"format"`
	Fits   []bool      `json:"fits"`
}

// Matrix is the compatibility matrix: formats outer, tiers inner.
type Matrix []FormatResult

// Fits reports whether the format at index format fits the tier at index tier.
// Out of range indexes report false.
func (m Matrix) Fits(format, tier int) bool {
	if format < 0 || format >= len(m) {
		return false
	}
	fits := m[format].Fits
	if tier < 0 || tier >= len(fits) {
		return false
	}
	return fits[tier]
}

// Count returns, per tier, how many formats fit.
func (m Matrix) Count() []int {
	if len(m) == 0 {
		return []int{}
	}
	counts := make([]int, len(m[0].Fits))
	for _, row := range m {
		for j, ok := range row.Fits {
			if ok {
				counts[j]++
			}
		}
	}
	return counts
}

// Pack encodes the fit flags row by row into uint64 words and returns them
// with the number of bits used. Format names and sizes are not encoded.
func (m Matrix) Pack() ([]uint64, int) {
	var bits []bool
	for _, row := range m {
		bits = append(bits, row.Fits...)
	}
	return bitconv.Pack(bits)
}

// UnpackMatrix rebuilds a matrix from Pack output. formats supplies the rows
// and tiers the number of columns. It returns ErrInvalidMatrix when size does
// not match the shape or data holds fewer than size bits.
func UnpackMatrix(data []uint64, size int, formats []PaperFormat, tiers int) (Matrix, error) {
	if tiers < 0 || size != len(formats)*tiers {
		return nil, fmt.Errorf("%w: %d bits for %d formats x %d tiers", ErrInvalidMatrix, size, len(formats), tiers)
	}
	bits, err := bitconv.Unpack(data, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	m := make(Matrix, len(formats))
	for i, f := range formats {
		m[i] = FormatResult{
			Format: f,
			Fits:   append([]bool{}, bits[i*tiers:(i+1)*tiers]...),
		}
	}
	return m, nil
}

func (m Matrix) clone() Matrix {
	if m == nil {
		return nil
	}
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = FormatResult{
			Format: row.Format,
			Fits:   append([]bool{}, row.Fits...),
		}
	}
	return c
}
