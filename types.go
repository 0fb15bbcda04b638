package printsize

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Dimensions is an image size in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Pixels returns the total pixel count.
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

// Megapixels returns the total pixel count in millions.
func (d Dimensions) Megapixels() float64 {
	return float64(d.Pixels()) / 1_000_000
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d px", d.Width, d.Height)
}

// QualityTier is a named print density.
type QualityTier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DPI         int    `json:"dpi"`
	Description string `json:"description"`
}

// PrintSize is a physical print size in centimeters.
// Values are kept at full precision; use Rounded only for display.
type PrintSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rounded returns the size rounded to one decimal place, ties away from zero.
func (s PrintSize) Rounded() PrintSize {
	return PrintSize{
		Width:  scalar.Round(s.Width, 1),
		Height: scalar.Round(s.Height, 1),
	}
}

func (s PrintSize) String() string {
	r := s.Rounded()
	return fmt.Sprintf("%.1f x %.1f cm", r.Width, r.Height)
}

// TierSize is the largest print size available at a quality tier.
type TierSize struct {
	Tier QualityTier `json:"tier"`
	Size PrintSize   `json:"size"`
}

// PaperFormat is a standard print format in centimeters.
type PaperFormat struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Camera is a catalog entry.
type Camera struct {
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Megapixels float64 `json:"megapixels"`
}

// Report is the full result of one calculation.
type Report struct {
	Megapixels float64    `json:"megapixels"`
	Camera     *Camera    `json:"camera,omitempty"`
	Dimensions Dimensions `json:"dimensions"`
	Sizes      []TierSize `json:"sizes"`
	Matrix     Matrix     `json:"matrix"`
}

// LargestFormat returns the last format, in input order, that fits the tier at
// index tier. ok is false when no format fits or tier is out of range.
func (r *Report) LargestFormat(tier int) (format PaperFormat, ok bool) {
	for i := len(r.Matrix) - 1; i >= 0; i-- {
		if r.Matrix.Fits(i, tier) {
			return r.Matrix[i].Format, true
		}
	}
	return PaperFormat{}, false
}

func (r *Report) clone() *Report {
	c := *r
	if r.Camera != nil {
		cam := *r.Camera
		c.Camera = &cam
	}
	if r.Sizes != nil {
		c.Sizes = make([]TierSize, len(r.Sizes))
		copy(c.Sizes, r.Sizes)
	}
	c.Matrix = r.Matrix.clone()
	return &c
}
