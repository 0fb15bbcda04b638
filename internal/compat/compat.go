package compat

// Size is a rectangle in centimeters.
type Size struct {
	Width, Height float64
}

// Swap returns the size rotated by 90 degrees.
func (s Size) Swap() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Landscape reports whether format fits inside limit without rotation.
func Landscape(format, limit Size) bool {
	return format.Width <= limit.Width && format.Height <= limit.Height
}

// Portrait reports whether format fits inside limit once rotated.
func Portrait(format, limit Size) bool {
	return format.Height <= limit.Width && format.Width <= limit.Height
}

// Fits reports whether format fits inside limit in either orientation.
// Equal sides count as fitting.
func Fits(format, limit Size) bool {
	return Landscape(format, limit) || Portrait(format, limit)
}

// Check evaluates every (format, limit) pair. The outer slice follows formats and
// the inner slice follows limits, so result[i][j] is Fits(formats[i], limits[j]).
func Check(limits []Size, formats []Size) [][]bool {
	result := make([][]bool, len(formats))
	for i, f := range formats {
		row := make([]bool, len(limits))
		for j, m := range limits {
			row[j] = Fits(f, m)
		}
		result[i] = row
	}
	return result
}
