package render

import (
	"encoding/json"
	"io"

	printsize "github.com/yyyoichi/printsize"
)

type jsonReport struct {
	Megapixels float64              `json:"megapixels"`
	Camera     *printsize.Camera    `json:"camera,omitempty"`
	Dimensions printsize.Dimensions `json:"dimensions"`
	Sizes      []jsonSize           `json:"sizes"`
	Formats    []jsonFormat         `json:"formats"`
	Packed     jsonPacked           `json:"packed"`
}

// jsonPacked is the fit matrix as Matrix.Pack words, formats outer and
// tiers inner.
type jsonPacked struct {
	Bits  int      `json:"bits"`
	Words []uint64 `json:"words"`
}

type jsonSize struct {
	Tier    printsize.QualityTier `json:"tier"`
	Size    printsize.PrintSize   `json:"size"`
	Display printsize.PrintSize   `json:"display"`
}

type jsonFormat struct {
	printsize.PaperFormat
	Fits []bool `json:"fits"`
}

// WriteJSON writes r as indented JSON. Sizes carry both the full-precision
// value and the one-decimal display value; the matrix is also written in
// packed form.
func WriteJSON(w io.Writer, r *printsize.Report) error {
	out := jsonReport{
		Megapixels: r.Megapixels,
		Camera:     r.Camera,
		Dimensions: r.Dimensions,
		Sizes:      make([]jsonSize, len(r.Sizes)),
		Formats:    make([]jsonFormat, len(r.Matrix)),
	}
	for i, s := range r.Sizes {
		out.Sizes[i] = jsonSize{Tier: s.Tier, Size: s.Size, Display: s.Size.Rounded()}
	}
	for i, row := range r.Matrix {
		out.Formats[i] = jsonFormat{PaperFormat: row.Format, Fits: row.Fits}
	}
	words, bits := r.Matrix.Pack()
	if words == nil {
		words = []uint64{}
	}
	out.Packed = jsonPacked{Bits: bits, Words: words}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
