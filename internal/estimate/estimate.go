package estimate

// CentimetersPerInch converts inches, the unit DPI is defined in, to centimeters.
const CentimetersPerInch = 2.54

// Length returns the printed length in centimeters of pixels at dpi.
// The result is not rounded.
func Length(pixels, dpi int) float64 {
	return float64(pixels) / float64(dpi) * CentimetersPerInch
}

// Estimate returns the printed width and height in centimeters of a
// width x height pixel image at dpi.
func Estimate(width, height, dpi int) (widthCm, heightCm float64) {
	return Length(width, dpi), Length(height, dpi)
}
