package report

import (
	"fmt"
	"io"
	"strings"

	"WireRing/internal/form"

	"github.com/xuri/excelize/v2"
)

const (
	resultsSheet    = "Results"
	partitionsSheet = "Partitions"
)

func WriteXLSX(w io.Writer, meta Meta, st form.State) error {
	meta = meta.withDefaults()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	rows := [][]interface{}{
		{meta.Title},
		{"Project", meta.Project},
		{"Author", meta.Author},
		{"Date", meta.Date.Format("2006-01-02")},
		{},
		{"Brand", brandLabel(st)},
		{"Width (mm)", st.Inputs.Width},
		{"Depth (mm)", st.Inputs.Depth},
		{"Bend Height (mm)", st.Inputs.BendHeight},
		{"Wire Diameter (mm)", st.Inputs.WireDiameter},
		{},
		{"Wire Size (mm)", st.Results.WireSizeMM},
		{"Sheet Size (mm)", st.Results.SheetSizeMM},
	}
	if err := writeRows(f, resultsSheet, rows); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	if err := f.SetCellStyle(resultsSheet, "A1", "A1", bold); err != nil {
		return fmt.Errorf("style title: %w", err)
	}
	if err := f.SetColWidth(resultsSheet, "A", "A", 22); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if len(st.Partitions) > 0 {
		if _, err := f.NewSheet(partitionsSheet); err != nil {
			return fmt.Errorf("create sheet: %w", err)
		}
		prow := [][]interface{}{{"Cutlery", "Length (mm)", "Qty"}}
		for _, e := range st.Partitions {
			for _, p := range e.Partitions {
				prow = append(prow, []interface{}{e.Size, p.Length, p.Qty})
			}
		}
		if err := writeRows(f, partitionsSheet, prow); err != nil {
			return err
		}
		if err := f.SetCellStyle(partitionsSheet, "A1", "C1", bold); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func brandLabel(st form.State) string {
	if st.BrandName != "" {
		return st.BrandName
	}
	return st.Inputs.Brand
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// ReadXLSX reads one form submission per row of the first sheet, columns
// brand, width, depth, bend_height, wire_diameter. The first row is a header.
// Empty cells are left unset, so a missing bend height falls back to the
// brand preset. Blank rows are skipped.
func ReadXLSX(r io.Reader) ([]form.Request, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var out []form.Request
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		out = append(out, parseRow(row))
	}
	return out, nil
}

func parseRow(row []string) form.Request {
	cell := func(i int) *form.Value {
		if i >= len(row) || strings.TrimSpace(row[i]) == "" {
			return nil
		}
		return form.V(row[i])
	}
	req := form.Request{
		Width:        cell(1),
		Depth:        cell(2),
		BendHeight:   cell(3),
		WireDiameter: cell(4),
	}
	if len(row) > 0 {
		req.Brand = strings.TrimSpace(row[0])
	}
	return req
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
