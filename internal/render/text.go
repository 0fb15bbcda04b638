package render

import (
	"io"
	"text/tabwriter"

	printsize "github.com/yyyoichi/printsize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteText writes a plain-text report: resolution, the largest print at
// every tier and the format compatibility table.
func WriteText(w io.Writer, r *printsize.Report, tag language.Tag) error {
	p := message.NewPrinter(tag)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if r.Camera != nil {
		p.Fprintf(tw, "Camera:\t%s (%s)\n", r.Camera.Name, r.Camera.Brand)
	}
	p.Fprintf(tw, "Megapixels:\t%v MP\n", r.Megapixels)
	p.Fprintf(tw, "Resolution:\t%d x %d px\n", r.Dimensions.Width, r.Dimensions.Height)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Sizes) > 0 {
		p.Fprintf(tw, "\nQuality\tDPI\tMax print size\t\n")
		for _, s := range r.Sizes {
			p.Fprintf(tw, "%s\t%d\t%s\t%s\n", s.Tier.Name, s.Tier.DPI, s.Size.String(), s.Tier.Description)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(r.Matrix) > 0 && len(r.Sizes) > 0 {
		p.Fprintf(tw, "\nFormat")
		for _, s := range r.Sizes {
			p.Fprintf(tw, "\t%s", tierLabel(s.Tier))
		}
		p.Fprintf(tw, "\n")
		for _, row := range r.Matrix {
			p.Fprintf(tw, "%s cm", row.Format.Name)
			for _, ok := range row.Fits {
				p.Fprintf(tw, "\t%s", fitLabel(ok))
			}
			p.Fprintf(tw, "\n")
		}
	}
	return tw.Flush()
}
