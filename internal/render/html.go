package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	printsize "github.com/yyyoichi/printsize"
)

// WriteHTML writes the compatibility matrix as an HTML heatmap page.
// Fitting cells have value 1, the others 0.
func WriteHTML(w io.Writer, r *printsize.Report) error {
	var xLabels, yLabels []string
	for _, s := range r.Sizes {
		xLabels = append(xLabels, tierLabel(s.Tier))
	}
	for _, row := range r.Matrix {
		yLabels = append(yLabels, row.Format.Name+" cm")
	}

	var data []opts.HeatMapData
	for y, row := range r.Matrix {
		for x, ok := range row.Fits {
			v := 0
			if ok {
				v = 1
			}
			data = append(data, opts.HeatMapData{Value: [3]any{x, y, v}})
		}
	}

	subtitle := fmt.Sprintf("%v MP, %d x %d px", r.Megapixels, r.Dimensions.Width, r.Dimensions.Height)
	if r.Camera != nil {
		subtitle = r.Camera.Name + ", " + subtitle
	}

	heatmap := charts.NewHeatMap()
	heatmap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Print format compatibility",
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Quality",
			Type:      "category",
			Data:      xLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Format",
			Type:      "category",
			Data:      yLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(false),
			Min:        0,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: []string{"#f46d43", "#66bd63"}},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	heatmap.AddSeries("Fits", data)
	return heatmap.Render(w)
}
