// Package refdata holds the reference tables the calculator is usually run
// against: a camera catalog, four print quality tiers and eight common photo
// print formats in centimeters.
//
// Every function returns fresh values; callers may modify them freely.
package refdata

import printsize "github.com/yyyoichi/printsize"

const (
	// MinMegapixels and MaxMegapixels bound manual input in front ends.
	// The calculator itself accepts any positive value.
	MinMegapixels = 1
	MaxMegapixels = 200
)

// Options returns the options wiring every table into a calculator.
func Options() []printsize.Option {
	return []printsize.Option{
		printsize.WithTiers(Tiers()...),
		printsize.WithFormats(Formats()...),
		printsize.WithCatalog(Catalog()),
	}
}

// Tiers returns the quality tiers from sharpest to coarsest.
func Tiers() []printsize.QualityTier {
	return []printsize.QualityTier{
		{ID: "excellent", Name: "Excellent", DPI: 300, Description: "Professional quality, viewed up close"},
		{ID: "very-good", Name: "Very good", DPI: 240, Description: "Photo books, standard prints"},
		{ID: "good", Name: "Good", DPI: 150, Description: "Posters, medium viewing distance"},
		{ID: "acceptable", Name: "Acceptable", DPI: 100, Description: "Large formats, viewed from afar"},
	}
}

// Formats returns the common print formats from smallest to largest.
func Formats() []printsize.PaperFormat {
	return []printsize.PaperFormat{
		{Name: "10x15", Width: 10, Height: 15},
		{Name: "13x18", Width: 13, Height: 18},
		{Name: "20x30", Width: 20, Height: 30},
		{Name: "30x40", Width: 30, Height: 40},
		{Name: "40x60", Width: 40, Height: 60},
		{Name: "50x70", Width: 50, Height: 70},
		{Name: "60x90", Width: 60, Height: 90},
		{Name: "70x100", Width: 70, Height: 100},
	}
}

// Catalog returns a catalog of current cameras and phones.
func Catalog() *printsize.Catalog {
	return printsize.NewCatalog(Cameras()...)
}

// Cameras returns the catalog entries grouped by brand.
func Cameras() []printsize.Camera {
	return []printsize.Camera{
		{Name: "Canon EOS R5", Brand: "Canon", Megapixels: 45},
		{Name: "Canon EOS R6 II", Brand: "Canon", Megapixels: 24.2},
		{Name: "Canon EOS R8", Brand: "Canon", Megapixels: 24.2},
		{Name: "Canon EOS R7", Brand: "Canon", Megapixels: 32.5},
		{Name: "Canon EOS 5D Mark IV", Brand: "Canon", Megapixels: 30.4},

		{Name: "Sony A7R V", Brand: "Sony", Megapixels: 61},
		{Name: "Sony A7 IV", Brand: "Sony", Megapixels: 33},
		{Name: "Sony A7C II", Brand: "Sony", Megapixels: 33},
		{Name: "Sony A6700", Brand: "Sony", Megapixels: 26},

		{Name: "Nikon Z8", Brand: "Nikon", Megapixels: 45.7},
		{Name: "Nikon Z6 III", Brand: "Nikon", Megapixels: 24.5},
		{Name: "Nikon Z5", Brand: "Nikon", Megapixels: 24.3},
		{Name: "Nikon D850", Brand: "Nikon", Megapixels: 45.7},

		{Name: "Fujifilm X-T5", Brand: "Fujifilm", Megapixels: 40.2},
		{Name: "Fujifilm X-H2", Brand: "Fujifilm", Megapixels: 40.2},
		{Name: "Fujifilm GFX 100S", Brand: "Fujifilm", Megapixels: 102},

		{Name: "iPhone 15 Pro Max", Brand: "Apple", Megapixels: 48},
		{Name: "iPhone 15 Pro", Brand: "Apple", Megapixels: 48},
		{Name: "iPhone 15", Brand: "Apple", Megapixels: 48},
		{Name: "iPhone 14 Pro", Brand: "Apple", Megapixels: 48},
		{Name: "Samsung Galaxy S24 Ultra", Brand: "Samsung", Megapixels: 200},
		{Name: "Samsung Galaxy S24", Brand: "Samsung", Megapixels: 50},
		{Name: "Google Pixel 8 Pro", Brand: "Google", Megapixels: 50},
	}
}
