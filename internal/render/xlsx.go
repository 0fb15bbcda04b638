package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	printsize "github.com/yyyoichi/printsize"
)

const (
	sheetSizes   = "Sizes"
	sheetFormats = "Formats"
)

// WriteXLSX writes r as a workbook with a "Sizes" sheet (one row per tier)
// and a "Formats" sheet (the compatibility table).
func WriteXLSX(w io.Writer, r *printsize.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSizes); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetFormats); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	// Sizes
	rows := [][]any{
		{"Megapixels", r.Megapixels},
		{"Width (px)", r.Dimensions.Width},
		{"Height (px)", r.Dimensions.Height},
		{},
		{"Quality", "DPI", "Width (cm)", "Height (cm)", "Description"},
	}
	if r.Camera != nil {
		rows = append([][]any{{"Camera", r.Camera.Name, r.Camera.Brand}}, rows...)
	}
	headerRow := len(rows)
	for _, s := range r.Sizes {
		d := s.Size.Rounded()
		rows = append(rows, []any{s.Tier.Name, s.Tier.DPI, d.Width, d.Height, s.Tier.Description})
	}
	if err := setRows(f, sheetSizes, rows); err != nil {
		return err
	}
	if err := setRowStyle(f, sheetSizes, headerRow, 5, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetSizes, "A", "A", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetSizes, "E", "E", 40); err != nil {
		return err
	}

	// Formats
	header := []any{"Format"}
	for _, s := range r.Sizes {
		header = append(header, tierLabel(s.Tier))
	}
	rows = [][]any{header}
	for _, row := range r.Matrix {
		cells := []any{row.Format.Name}
		for _, ok := range row.Fits {
			cells = append(cells, fitLabel(ok))
		}
		rows = append(rows, cells)
	}
	if err := setRows(f, sheetFormats, rows); err != nil {
		return err
	}
	if err := setRowStyle(f, sheetFormats, 1, len(header), headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetFormats, "B", "Z", 18); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

func setRowStyle(f *excelize.File, sheet string, row, cols, style int) error {
	if cols < 1 {
		return nil
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(cols, row)
	return f.SetCellStyle(sheet, first, last, style)
}
