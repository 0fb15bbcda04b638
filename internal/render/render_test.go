package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	printsize "github.com/yyyoichi/printsize"
	"github.com/yyyoichi/printsize/refdata"
	"golang.org/x/text/language"
)

func newReport(t *testing.T, mp float64) *printsize.Report {
	t.Helper()
	c, err := printsize.New(refdata.Options()...)
	require.NoError(t, err)
	r, err := c.Calculate(mp)
	require.NoError(t, err)
	return r
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"text", Text},
		{"JSON", JSON},
		{" xlsx ", XLSX},
		{"Html", HTML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}

	_, err := ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	var buf bytes.Buffer
	err = Render(&buf, Format("pdf"), newReport(t, 24), language.English)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, newReport(t, 24), language.English))
	out := buf.String()

	assert.Contains(t, out, "6,000 x 4,000 px")
	assert.Contains(t, out, "50.8 x 33.9 cm")
	assert.Contains(t, out, "152.4 x 101.6 cm")
	assert.NotContains(t, out, "Camera:")

	rows := map[string][]string{}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 6 && fields[1] == "cm" {
			rows[fields[0]] = fields[2:]
		}
	}
	assert.Equal(t, []string{"OK", "OK", "OK", "OK"}, rows["10x15"])
	assert.Equal(t, []string{"OK", "OK", "OK", "OK"}, rows["30x40"])
	assert.Equal(t, []string{"No", "OK", "OK", "OK"}, rows["40x60"])
	assert.Equal(t, []string{"No", "No", "No", "OK"}, rows["70x100"])
}

func TestWriteText_Camera(t *testing.T) {
	c, err := printsize.New(refdata.Options()...)
	require.NoError(t, err)
	r, err := c.CalculateCamera("Canon EOS R5")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r, language.English))
	assert.Contains(t, buf.String(), "Canon EOS R5 (Canon)")
	assert.Contains(t, buf.String(), "8,216 x 5,477 px")
}

func TestWriteText_Empty(t *testing.T) {
	c, err := printsize.New()
	require.NoError(t, err)
	r, err := c.Calculate(24)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r, language.English))
	assert.Contains(t, buf.String(), "6,000 x 4,000 px")
	assert.NotContains(t, buf.String(), "Format")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, newReport(t, 24)))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 24.0, got.Megapixels)
	assert.Equal(t, printsize.Dimensions{Width: 6000, Height: 4000}, got.Dimensions)
	require.Len(t, got.Sizes, 4)
	assert.Equal(t, 300, got.Sizes[0].Tier.DPI)
	assert.InDelta(t, 4000.0/300*2.54, got.Sizes[0].Size.Height, 1e-12)
	assert.Equal(t, printsize.PrintSize{Width: 50.8, Height: 33.9}, got.Sizes[0].Display)
	require.Len(t, got.Formats, 8)
	assert.Equal(t, "70x100", got.Formats[7].Name)
	assert.Equal(t, []bool{false, false, false, true}, got.Formats[7].Fits)

	assert.Equal(t, 32, got.Packed.Bits)
	formats := make([]printsize.PaperFormat, len(got.Formats))
	for i, f := range got.Formats {
		formats[i] = f.PaperFormat
	}
	m, err := printsize.UnpackMatrix(got.Packed.Words, got.Packed.Bits, formats, len(got.Sizes))
	require.NoError(t, err)
	for i, row := range m {
		assert.Equal(t, got.Formats[i].Fits, row.Fits, row.Format.Name)
	}
}

func TestWriteJSON_EmptyMatrix(t *testing.T) {
	c, err := printsize.New()
	require.NoError(t, err)
	r, err := c.Calculate(24)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))
	assert.Contains(t, buf.String(), `"words": []`)

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 0, got.Packed.Bits)
	assert.Empty(t, got.Formats)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, newReport(t, 24)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetSizes, sheetFormats}, f.GetSheetList())

	v, err := f.GetCellValue(sheetSizes, "A5")
	require.NoError(t, err)
	assert.Equal(t, "Quality", v)
	v, err = f.GetCellValue(sheetSizes, "A6")
	require.NoError(t, err)
	assert.Equal(t, "Excellent", v)
	v, err = f.GetCellValue(sheetSizes, "B6")
	require.NoError(t, err)
	assert.Equal(t, "300", v)

	rows, err := f.GetRows(sheetFormats)
	require.NoError(t, err)
	require.Len(t, rows, 9)
	assert.Equal(t, []string{"Format", "Excellent (300)", "Very good (240)", "Good (150)", "Acceptable (100)"}, rows[0])
	assert.Equal(t, []string{"70x100", "No", "No", "No", "OK"}, rows[8])
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, newReport(t, 24)))
	out := buf.String()

	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Print format compatibility")
	assert.Contains(t, out, "70x100 cm")
	assert.Contains(t, out, "Acceptable (100)")
}

func TestRender(t *testing.T) {
	r := newReport(t, 12)
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, f, r, language.English))
			assert.NotZero(t, buf.Len())
		})
	}
	assert.True(t, XLSX.Binary())
	assert.False(t, HTML.Binary())
}
