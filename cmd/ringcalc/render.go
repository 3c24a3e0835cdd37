package main

import (
	"fmt"
	"strconv"
	"strings"

	"WireRing/internal/calc/brand"
	"WireRing/internal/calc/wire"
	"WireRing/internal/form"
	"WireRing/internal/report"

	"github.com/charmbracelet/lipgloss"
)

const sectionGap = "\n"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Width(22)
	valueStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	lengthStyle = lipgloss.NewStyle().Width(16).Align(lipgloss.Right)
	qtyStyle    = lipgloss.NewStyle().Width(8).Align(lipgloss.Right)
)

func renderState(st form.State) string {
	var b strings.Builder

	if st.Inputs.Brand != "" {
		name := st.BrandName
		if name == "" {
			name = st.Inputs.Brand + " (no preset)"
		}
		line(&b, "Selected Brand", name)
	}
	if st.HasInputs {
		b.WriteString(titleStyle.Render("Input Summary") + "\n")
		line(&b, "Width", report.Dim(st.Inputs.Width)+" mm")
		line(&b, "Depth", report.Dim(st.Inputs.Depth)+" mm")
		line(&b, "Bend Height", report.Dim(st.Inputs.BendHeight)+" mm")
		line(&b, "Wire Diameter", report.Dim(st.Inputs.WireDiameter)+" mm")
		b.WriteString(sectionGap)
	}

	b.WriteString(titleStyle.Render("Calculation Results") + "\n")
	line(&b, "Wire Size Required", report.MM(st.Results.WireSizeMM)+" mm")
	line(&b, "Sheet Size Required", report.MM(st.Results.SheetSizeMM)+" mm")
	b.WriteString(sectionGap)

	for _, f := range wire.Formulas() {
		b.WriteString(mutedStyle.Render(f.Name+": "+f.Expression) + "\n")
	}

	if len(st.Partitions) > 0 {
		b.WriteString(sectionGap)
		b.WriteString(titleStyle.Render("Cutlery Partition Table") + "\n")
		b.WriteString(renderPartitions(st.Partitions))
	}
	return b.String()
}

func renderPartitions(entries []brand.SizeEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(valueStyle.Render(e.Size+" Cutlery") + "\n")
		for _, p := range e.Partitions {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				lengthStyle.Render("Length: "+report.Dim(p.Length)+"mm"),
				qtyStyle.Render("Qty: "+strconv.Itoa(p.Qty)),
			) + "\n")
		}
	}
	return b.String()
}

func renderBrands() string {
	var b strings.Builder
	for _, br := range brand.Brands() {
		b.WriteString(titleStyle.Render(br.Name) + mutedStyle.Render(fmt.Sprintf(" (%s)", br.ID)) + "\n")
		line(&b, "Bend Height", report.Dim(br.BendHeightMM)+" mm")
		if parts := brand.Partitions(br.ID); len(parts) > 0 {
			b.WriteString(renderPartitions(parts))
		}
		b.WriteString(sectionGap)
	}
	return b.String()
}

func line(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label+":") + valueStyle.Render(value) + "\n")
}
