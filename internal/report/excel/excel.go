// Package excel renders a reportdata.Report as a two-sheet Excel workbook:
// a "Packages" sheet (one row per package with its Ca/Ce/A/I/D metrics) and
// a "Cycles" sheet (one row per distinct dependency cycle). Sheet-per-
// concern layout with Styler-driven row styling and a frozen header pane.
package excel

import (
	"fmt"
	"strconv"
	"strings"

	"depscan/internal/reportdata"

	"github.com/xuri/excelize/v2"
)

// Exporter writes a reportdata.Report to an .xlsx workbook.
type Exporter struct {
	// Stateless
}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export generates the Excel workbook at path.
func (e *Exporter) Export(r *reportdata.Report, path string) error {
	f := excelize.NewFile()
	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	if err := e.writePackages(f, styler, r); err != nil {
		return err
	}
	if err := e.writeCycles(f, styler, r); err != nil {
		return err
	}

	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	return f.SaveAs(path)
}

func (e *Exporter) writePackages(f *excelize.File, s *Styler, r *reportdata.Report) error {
	sheet := "Packages"
	f.NewSheet(sheet)

	headers := []string{"Package", "Classes", "Ca", "Ce", "A", "I", "D", "Cycle"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	for _, p := range r.Packages {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.ClassCount)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Ca)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Ce)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), round2(p.A))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), round2(p.I))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), round2(p.D))

		cycleLabel := ""
		if p.ContainsCycle {
			cycleLabel = "yes"
		}
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), cycleLabel)

		style := s.rowStyle(p)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), style)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 40)
	f.SetColWidth(sheet, "C", "H", 10)

	return nil
}

func (e *Exporter) writeCycles(f *excelize.File, s *Styler, r *reportdata.Report) error {
	sheet := "Cycles"
	f.NewSheet(sheet)

	headers := []string{"No", "Cycle"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	row := 2
	for i, cycle := range r.Cycles {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), strings.Join(cycle, " -> "))
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), s.CycleStyle)
		row++
	}

	f.SetColWidth(sheet, "B", "B", 80)

	return nil
}

func (e *Exporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

// rowStyle flags cyclical packages in red and otherwise colors by distance
// from the main sequence: low D is healthy (green), high D is a candidate
// for refactoring (orange).
func (s *Styler) rowStyle(p reportdata.PackageReport) int {
	if p.ContainsCycle {
		return s.CycleStyle
	}
	if p.D <= 0.3 {
		return s.StableStyle
	}
	if p.D >= 0.7 {
		return s.UnstableStyle
	}
	return s.DefaultStyle
}

func round2(v float64) float64 {
	f, err := strconv.ParseFloat(fmt.Sprintf("%.2f", v), 64)
	if err != nil {
		return v
	}
	return f
}
