// Package html renders a reportdata.Report as a static HTML page: a summary
// card, a table of package metrics, and a cycle list, via
// html/template execution and a CSS-card layout.
package html

import (
	"fmt"
	"html/template"
	"os"

	"depscan/internal/reportdata"
)

// Exporter writes a reportdata.Report as a single HTML file.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// pageData is the view handed to MetricsReportTemplate.
type pageData struct {
	TotalPackages int
	CyclicCount   int
	Packages      []reportdata.PackageReport
	Cycles        [][]string
}

// Export renders r as an HTML file at path.
func (e *Exporter) Export(r *reportdata.Report, path string) error {
	cyclic := 0
	for _, p := range r.Packages {
		if p.ContainsCycle {
			cyclic++
		}
	}

	data := pageData{
		TotalPackages: len(r.Packages),
		CyclicCount:   cyclic,
		Packages:      r.Packages,
		Cycles:        r.Cycles,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tmpl, err := template.New("metrics-report").Funcs(template.FuncMap{
		"pct": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"distanceClass": distanceClass,
	}).Parse(MetricsReportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(f, data)
}

// distanceClass buckets D into a CSS class: healthy (D <= 0.3), borderline,
// or far from the main sequence (D >= 0.7). It does not tell the zone of
// pain from the zone of uselessness.
func distanceClass(d float64) string {
	switch {
	case d <= 0.3:
		return "d-good"
	case d >= 0.7:
		return "d-bad"
	default:
		return "d-warn"
	}
}
