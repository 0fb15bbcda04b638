package test

import (
	_ "embed"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/printsize/internal/compat"
	"github.com/yyyoichi/printsize/internal/estimate"
	"github.com/yyyoichi/printsize/internal/resolution"
)

//go:embed testcase/pipeline_test_cases.json
var pipelineTestCasesJSON []byte

// formats and dpis the fixture was generated against
var (
	fixtureDPIs    = []int{300, 240, 150, 100}
	fixtureFormats = []compat.Size{
		{Width: 10, Height: 15},
		{Width: 13, Height: 18},
		{Width: 20, Height: 30},
		{Width: 30, Height: 40},
		{Width: 40, Height: 60},
		{Width: 50, Height: 70},
		{Width: 60, Height: 90},
		{Width: 70, Height: 100},
	}
)

type pipelineTestCase struct {
	Name       string  `json:"name"`
	Megapixels float64 `json:"megapixels"`
	Expected   struct {
		Width  int `json:"width"`
		Height int `json:"height"`
		Sizes  []struct {
			DPI    int     `json:"dpi"`
			Width  float64 `json:"width"`
			Height float64 `json:"height"`
		} `json:"sizes"`
		Fits [][]bool `json:"fits"`
	} `json:"expected"`
}

func loadPipelineTestCases(t *testing.T) []pipelineTestCase {
	var test []pipelineTestCase
	err := json.Unmarshal(pipelineTestCasesJSON, &test)
	require.NoError(t, err)
	require.NotEmpty(t, test)
	return test
}

func TestResolution_Resolve(t *testing.T) {
	for _, tt := range loadPipelineTestCases(t) {
		t.Run(tt.Name, func(t *testing.T) {
			w, h := resolution.Resolve(tt.Megapixels)
			assert.Equal(t, tt.Expected.Width, w, "width")
			assert.Equal(t, tt.Expected.Height, h, "height")
		})
	}
}

func TestEstimate_Estimate(t *testing.T) {
	for _, tt := range loadPipelineTestCases(t) {
		t.Run(tt.Name, func(t *testing.T) {
			require.Len(t, tt.Expected.Sizes, len(fixtureDPIs))
			for i, s := range tt.Expected.Sizes {
				require.Equal(t, fixtureDPIs[i], s.DPI)
				w, h := estimate.Estimate(tt.Expected.Width, tt.Expected.Height, s.DPI)
				assert.InDelta(t, s.Width, w, 1e-9, "width at %d dpi", s.DPI)
				assert.InDelta(t, s.Height, h, 1e-9, "height at %d dpi", s.DPI)
			}
		})
	}
}

func TestCompat_Check(t *testing.T) {
	for _, tt := range loadPipelineTestCases(t) {
		t.Run(tt.Name, func(t *testing.T) {
			limits := make([]compat.Size, len(tt.Expected.Sizes))
			for i, s := range tt.Expected.Sizes {
				limits[i] = compat.Size{Width: s.Width, Height: s.Height}
			}
			got := compat.Check(limits, fixtureFormats)
			assert.Equal(t, tt.Expected.Fits, got)
		})
	}
}
