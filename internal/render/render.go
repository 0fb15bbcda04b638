// Package render turns reports into text, JSON, XLSX and HTML documents.
// It is the only place where print sizes are rounded.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	printsize "github.com/yyyoichi/printsize"
	"golang.org/x/text/language"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	XLSX Format = "xlsx"
	HTML Format = "html"
)

// Formats lists every supported output format.
var Formats = []Format{Text, JSON, XLSX, HTML}

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Formats {
		if f == v {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Binary reports whether the format produces non-text output.
func (f Format) Binary() bool {
	return f == XLSX
}

// Render writes r to w in format f. Numbers in text output are grouped
// following tag.
func Render(w io.Writer, f Format, r *printsize.Report, tag language.Tag) error {
	switch f {
	case Text:
		return WriteText(w, r, tag)
	case JSON:
		return WriteJSON(w, r)
	case XLSX:
		return WriteXLSX(w, r)
	case HTML:
		return WriteHTML(w, r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func tierLabel(t printsize.QualityTier) string {
	return fmt.Sprintf("%s (%d)", t.Name, t.DPI)
}

func fitLabel(ok bool) string {
	if ok {
		return "OK"
	}
	return "No"
}
