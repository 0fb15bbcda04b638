package resolution

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// AspectRatio is the width:height ratio assumed for every image (3:2).
	AspectRatio = 1.5
	// PixelsPerMegapixel converts a megapixel count to a total pixel count.
	PixelsPerMegapixel = 1_000_000
)

// Resolve converts a megapixel count into pixel dimensions with a 3:2 aspect ratio.
//
// The real-valued sides are sqrt(total*1.5) and sqrt(total/1.5), so their product
// is the total pixel count and their ratio is exactly 1.5 before rounding.
// Each side is then rounded to the nearest integer, ties away from zero.
//
// megapixels must be positive and finite; validation is the caller's job.
func Resolve(megapixels float64) (width, height int) {
	total := megapixels * PixelsPerMegapixel
	w := Round(math.Sqrt(total * AspectRatio))
	h := Round(math.Sqrt(total / AspectRatio))
	return int(w), int(h)
}

// Round rounds x to the nearest integer, ties away from zero.
func Round(x float64) float64 {
	return scalar.Round(x, 0)
}

// Fits reports whether the dimensions derived from megapixels are representable as int.
func Fits(megapixels float64) bool {
	total := megapixels * PixelsPerMegapixel
	return !math.IsInf(total, 0) && math.Sqrt(total*AspectRatio) < math.MaxInt32
}
