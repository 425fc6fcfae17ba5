// Package word renders a reportdata.Report as a Word document: summary
// lines followed by a plain-text table with one row per package and a
// numbered cycle listing. Builds a skeleton OOXML package, opens it with the docx
// library, and replaces placeholders with generated plain text.
package word

import (
	"fmt"
	"os"
	"strings"

	"depscan/internal/reportdata"

	"github.com/nguyenthenguyen/docx"
)

// Exporter writes a reportdata.Report as a .docx file.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders r as a Word document at path.
func (e *Exporter) Export(r *reportdata.Report, path string) error {
	tmpFile, err := os.CreateTemp("", "depscan-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	if err := buildTemplateDocx(tmpFile.Name()); err != nil {
		return fmt.Errorf("failed to build template: %w", err)
	}

	rd, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read generated template: %w", err)
	}
	defer rd.Close()

	doc := rd.Editable()

	cyclic := 0
	for _, p := range r.Packages {
		if p.ContainsCycle {
			cyclic++
		}
	}

	doc.Replace("{{Date}}", "", -1)
	doc.Replace("{{TotalPackages}}", fmt.Sprintf("%d", len(r.Packages)), -1)
	doc.Replace("{{CyclicCount}}", fmt.Sprintf("%d", cyclic), -1)
	doc.Replace("{{Content}}", buildContent(r), -1)

	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}

// buildContent renders a plain-text table with a header line and one row
// per package, followed by the cycle list, for injection into the
// {{Content}} placeholder.
func buildContent(r *reportdata.Report) string {
	var sb strings.Builder

	sb.WriteString("PACKAGE METRICS\n\n")
	sb.WriteString(fmt.Sprintf("%-40s %6s %4s %4s %6s %6s %6s\n", "Package", "Classes", "Ca", "Ce", "A", "I", "D"))
	sb.WriteString(strings.Repeat("-", 90) + "\n")

	for _, p := range r.Packages {
		marker := ""
		if p.ContainsCycle {
			marker = " [CYCLE]"
		}
		sb.WriteString(fmt.Sprintf("%-40s %6d %4d %4d %6.2f %6.2f %6.2f%s\n",
			truncate(p.Name, 40), p.ClassCount, p.Ca, p.Ce, p.A, p.I, p.D, marker))
	}

	sb.WriteString("\n" + strings.Repeat("=", 90) + "\n\n")
	sb.WriteString("DEPENDENCY CYCLES\n\n")

	if len(r.Cycles) == 0 {
		sb.WriteString("No cycles detected.\n")
		return sb.String()
	}

	for i, cycle := range r.Cycles {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, strings.Join(cycle, " -> ")))
	}

	return sb.String()
}

// truncate truncates a string to a maximum length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
