package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"WireRing/internal/calc/wire"
	"WireRing/internal/form"

	"github.com/phpdave11/gofpdf"
)

type Meta struct {
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Title   string    `json:"title"`
	Date    time.Time `json:"-"`
}

func (m Meta) withDefaults() Meta {
	if m.Title == "" {
		m.Title = "Wire Ring Calculation"
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	return m
}

// MM formats a length with two decimals.
func MM(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Dim formats an entered dimension as typed, without padding.
func Dim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func WritePDF(w io.Writer, meta Meta, st form.State) error {
	meta = meta.withDefaults()

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	heading(pdf, "Input Summary")
	if st.BrandName != "" {
		row(pdf, "Brand", st.BrandName)
	} else if st.Inputs.Brand != "" {
		row(pdf, "Brand", tr(st.Inputs.Brand))
	}
	row(pdf, "Width", Dim(st.Inputs.Width)+" mm")
	row(pdf, "Depth", Dim(st.Inputs.Depth)+" mm")
	row(pdf, "Bend Height", Dim(st.Inputs.BendHeight)+" mm")
	row(pdf, "Wire Diameter", Dim(st.Inputs.WireDiameter)+" mm")
	pdf.Ln(4)

	heading(pdf, "Calculation Results")
	row(pdf, "Wire Size Required", MM(st.Results.WireSizeMM)+" mm")
	row(pdf, "Sheet Size Required", MM(st.Results.SheetSizeMM)+" mm")
	pdf.Ln(4)

	heading(pdf, "Calculation Formulas")
	for _, f := range wire.Formulas() {
		pdf.MultiCell(0, 6, tr(f.Name+": "+f.Expression), "", "L", false)
	}

	if len(st.Partitions) > 0 {
		pdf.Ln(4)
		heading(pdf, "Cutlery Partition Table")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 7, "Cutlery", "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, "Length (mm)", "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, "Qty", "1", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, e := range st.Partitions {
			for i, p := range e.Partitions {
				size := ""
				if i == 0 {
					size = e.Size
				}
				pdf.CellFormat(40, 7, size, "1", 0, "L", false, 0, "")
				pdf.CellFormat(50, 7, Dim(p.Length), "1", 0, "R", false, 0, "")
				pdf.CellFormat(30, 7, strconv.Itoa(p.Qty), "1", 1, "R", false, 0, "")
			}
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func heading(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 6, label+":", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
