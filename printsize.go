package printsize

import (
	"errors"
	"fmt"
	"math"

	"github.com/yyyoichi/printsize/internal/cache"
	"github.com/yyyoichi/printsize/internal/compat"
	"github.com/yyyoichi/printsize/internal/estimate"
	"github.com/yyyoichi/printsize/internal/resolution"
)

var (
	ErrInvalidMegapixels = errors.New("megapixels must be a positive finite number")
	ErrInvalidDimensions = errors.New("pixel dimensions must be positive")
	ErrInvalidDPI        = errors.New("dpi must be positive")
	ErrInvalidFormat     = errors.New("paper format sides must be positive finite numbers")
	ErrInvalidMatrix     = errors.New("packed matrix does not match its shape")
	ErrUnknownCamera     = errors.New("unknown camera")
	ErrNoCatalog         = errors.New("no camera catalog configured")
)

// ResolveDimensions converts a megapixel count into 3:2 pixel dimensions.
// Each side is rounded to the nearest integer, ties away from zero.
//
// Returns ErrInvalidMegapixels when megapixels is not positive and finite, or is
// too small to yield at least one pixel per side, and ErrInvalidDimensions when
// the sides would not fit in an int.
func ResolveDimensions(megapixels float64) (Dimensions, error) {
	if megapixels <= 0 || math.IsNaN(megapixels) || math.IsInf(megapixels, 0) {
		return Dimensions{}, fmt.Errorf("%w: %v", ErrInvalidMegapixels, megapixels)
	}
	if !resolution.Fits(megapixels) {
		return Dimensions{}, fmt.Errorf("%w: %v megapixels overflows", ErrInvalidDimensions, megapixels)
	}
	w, h := resolution.Resolve(megapixels)
	if w < 1 || h < 1 {
		return Dimensions{}, fmt.Errorf("%w: %v is below one pixel", ErrInvalidMegapixels, megapixels)
	}
	return Dimensions{Width: w, Height: h}, nil
}

// EstimatePrintSize returns the largest print, in centimeters, of a
// width x height pixel image at dpi. The result is not rounded.
func EstimatePrintSize(width, height, dpi int) (PrintSize, error) {
	if dpi <= 0 {
		return PrintSize{}, fmt.Errorf("%w: %d", ErrInvalidDPI, dpi)
	}
	if width <= 0 || height <= 0 {
		return PrintSize{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	w, h := estimate.Estimate(width, height, dpi)
	return PrintSize{Width: w, Height: h}, nil
}

// EstimateTiers applies EstimatePrintSize once per tier, keeping tier order.
func EstimateTiers(dims Dimensions, tiers []QualityTier) ([]TierSize, error) {
	sizes := make([]TierSize, len(tiers))
	for i, tier := range tiers {
		size, err := EstimatePrintSize(dims.Width, dims.Height, tier.DPI)
		if err != nil {
			return nil, fmt.Errorf("tier %q: %w", tier.Name, err)
		}
		sizes[i] = TierSize{Tier: tier, Size: size}
	}
	return sizes, nil
}

// CheckCompatibility decides, for every format and every maximum size, whether
// the format fits in landscape or portrait orientation. Equal sides fit.
//
// The result lists formats in input order; each row lists sizes in input order.
// Empty inputs give an empty matrix or empty rows.
func CheckCompatibility(sizes []PrintSize, formats []PaperFormat) Matrix {
	limits := make([]compat.Size, len(sizes))
	for i, s := range sizes {
		limits[i] = compat.Size{Width: s.Width, Height: s.Height}
	}
	targets := make([]compat.Size, len(formats))
	for i, f := range formats {
		targets[i] = compat.Size{Width: f.Width, Height: f.Height}
	}
	fits := compat.Check(limits, targets)
	m := make(Matrix, len(formats))
	for i, f := range formats {
		m[i] = FormatResult{Format: f, Fits: fits[i]}
	}
	return m
}

// Calculator runs the three stages against a fixed set of reference data.
// It holds no mutable state apart from the optional cache and is safe for
// concurrent use.
type Calculator struct {
	tiers   []QualityTier
	formats []PaperFormat
	catalog *Catalog
	cache   *cache.Cache[uint64, *Report]
}

// New initializes a Calculator. Without WithTiers or WithFormats the
// corresponding lists are empty and every report has an empty matrix.
func New(opts ...Option) (*Calculator, error) {
	c := new(Calculator)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Calculate resolves megapixels into dimensions, estimates the print size at
// every tier and checks every format against every tier.
func (c *Calculator) Calculate(megapixels float64) (*Report, error) {
	if c.cache == nil {
		return c.calculate(megapixels)
	}
	r, err := c.cache.Get(math.Float64bits(megapixels), func() (*Report, error) {
		return c.calculate(megapixels)
	})
	if err != nil {
		return nil, err
	}
	return r.clone(), nil
}

// CalculateCamera looks the camera up in the catalog and calculates its report.
func (c *Calculator) CalculateCamera(name string) (*Report, error) {
	if c.catalog == nil {
		return nil, ErrNoCatalog
	}
	cam, ok := c.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCamera, name)
	}
	r, err := c.Calculate(cam.Megapixels)
	if err != nil {
		return nil, fmt.Errorf("camera %q: %w", name, err)
	}
	r.Camera = &cam
	return r, nil
}

// Tiers returns a copy of the configured quality tiers.
func (c *Calculator) Tiers() []QualityTier {
	return append([]QualityTier{}, c.tiers...)
}

// Formats returns a copy of the configured paper formats.
func (c *Calculator) Formats() []PaperFormat {
	return append([]PaperFormat{}, c.formats...)
}

// Catalog returns the configured camera catalog, or nil.
func (c *Calculator) Catalog() *Catalog {
	return c.catalog
}

func (c *Calculator) calculate(megapixels float64) (*Report, error) {
	dims, err := ResolveDimensions(megapixels)
	if err != nil {
		return nil, err
	}
	sizes, err := EstimateTiers(dims, c.tiers)
	if err != nil {
		return nil, err
	}
	limits := make([]PrintSize, len(sizes))
	for i, s := range sizes {
		limits[i] = s.Size
	}
	return &Report{
		Megapixels: megapixels,
		Dimensions: dims,
		Sizes:      sizes,
		Matrix:     CheckCompatibility(limits, c.formats),
	}, nil
}

func (c *Calculator) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.tiers == nil {
		c.tiers = []QualityTier{}
	}
	if c.formats == nil {
		c.formats = []PaperFormat{}
	}
	return nil
}
