package printsize

import (
	"fmt"
	"math"

	"github.com/yyyoichi/printsize/internal/cache"
)

type Option func(*Calculator) error

// WithTiers sets the ordered quality tiers. Every report lists print sizes and
// matrix columns in this order. Each tier must have a positive DPI.
// The slice is copied.
func WithTiers(tiers ...QualityTier) Option {
	return func(c *Calculator) error {
		for _, t := range tiers {
			if t.DPI <= 0 {
				return fmt.Errorf("tier %q: %w: %d", t.Name, ErrInvalidDPI, t.DPI)
			}
		}
		c.tiers = append([]QualityTier{}, tiers...)
		return nil
	}
}

// WithFormats sets the ordered paper formats checked against every tier.
// Both sides of every format must be positive and finite. The slice is copied.
func WithFormats(formats ...PaperFormat) Option {
	return func(c *Calculator) error {
		for _, f := range formats {
			if !validSide(f.Width) || !validSide(f.Height) {
				return fmt.Errorf("format %q: %w: %vx%v", f.Name, ErrInvalidFormat, f.Width, f.Height)
			}
		}
		c.formats = append([]PaperFormat{}, formats...)
		return nil
	}
}

// WithCatalog sets the camera catalog used by CalculateCamera.
func WithCatalog(catalog *Catalog) Option {
	return func(c *Calculator) error {
		c.catalog = catalog
		return nil
	}
}

// WithCache memoizes reports by megapixel value. Reports are copied on the way
// out, so cached and uncached calculators return identical, independent values.
func WithCache() Option {
	return func(c *Calculator) error {
		c.cache = cache.New[uint64, *Report]()
		return nil
	}
}

func validSide(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
