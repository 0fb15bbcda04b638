// Command printsize prints the largest print sizes and compatible paper
// formats for a camera model or a megapixel value.
//
//	printsize -camera "Canon EOS R5"
//	printsize -mp 24 -o xlsx -out prints.xlsx
//	printsize -cameras -lang de
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	printsize "github.com/yyyoichi/printsize"
	"github.com/yyyoichi/printsize/internal/render"
	"github.com/yyyoichi/printsize/refdata"
	"golang.org/x/text/language"
)

var (
	errNoInput        = errors.New("either -camera or -mp is required")
	errOutOfRange     = errors.New("megapixels out of range")
	errOutputRequired = errors.New("binary output requires -out")
)

func main() {
	log.SetFlags(0)
	loadEnv()
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, cfg config, stdout io.Writer) error {
	fs := flag.NewFlagSet("printsize", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	camera := fs.String("camera", cfg.Camera, "camera model from the catalog")
	mp := fs.Float64("mp", cfg.Megapixels, fmt.Sprintf("megapixels (%d-%d)", refdata.MinMegapixels, refdata.MaxMegapixels))
	output := fs.String("o", cfg.Output, "output format: text, json, xlsx or html")
	out := fs.String("out", cfg.Out, "output file (default stdout)")
	list := fs.Bool("cameras", false, "list catalog cameras and exit")
	lang := fs.String("lang", cfg.Lang, "language used for sorting and number formatting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("invalid -lang %q: %w", *lang, err)
	}
	catalog := refdata.Catalog()
	if *list {
		return listCameras(stdout, catalog, tag)
	}

	format, err := render.ParseFormat(*output)
	if err != nil {
		return err
	}
	if format.Binary() && *out == "" {
		return fmt.Errorf("%w: %s", errOutputRequired, format)
	}

	calc, err := printsize.New(refdata.Options()...)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	name := *camera
	if set["mp"] && !set["camera"] {
		// an explicit -mp replaces a camera picked up from the environment
		name = ""
	}

	var report *printsize.Report
	switch {
	case name != "":
		report, err = calc.CalculateCamera(name)
	case set["mp"] || *mp != 0:
		if *mp < refdata.MinMegapixels || *mp > refdata.MaxMegapixels {
			return fmt.Errorf("%w: %v (want %d-%d)", errOutOfRange, *mp, refdata.MinMegapixels, refdata.MaxMegapixels)
		}
		report, err = calc.Calculate(*mp)
	default:
		return errNoInput
	}
	if err != nil {
		return err
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := render.Render(w, format, report, tag); err != nil {
		return err
	}
	if *out != "" {
		log.Printf("Wrote %s report to %s", format, *out)
	}
	return nil
}

func listCameras(w io.Writer, c *printsize.Catalog, tag language.Tag) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range c.SortedNames(tag) {
		cam, _ := c.Lookup(name)
		fmt.Fprintf(tw, "%s\t%s\t%v MP\n", cam.Name, cam.Brand, cam.Megapixels)
	}
	return tw.Flush()
}
