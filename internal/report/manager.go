// Package report dispatches to one report writer per requested output
// format, returning one reportdata.Exporter implementation per format.
package report

import (
	"strings"

	"depscan/internal/report/excel"
	"depscan/internal/report/html"
	"depscan/internal/report/json"
	"depscan/internal/report/word"
	"depscan/internal/reportdata"
)

// Exporters returns one Exporter per requested format, keyed by the
// normalized format name so callers can recover the output path for each;
// unrecognized format names are silently skipped (cmd/depscan validates
// formats up front via config.Validate).
func Exporters(formats []string) map[string]reportdata.Exporter {
	exporters := make(map[string]reportdata.Exporter)

	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))

		var canonical string
		switch f {
		case "excel", "xlsx":
			canonical = "excel"
		case "html":
			canonical = "html"
		case "word", "docx":
			canonical = "word"
		case "json":
			canonical = "json"
		default:
			continue
		}

		if _, ok := exporters[canonical]; ok {
			continue
		}

		switch canonical {
		case "excel":
			exporters[canonical] = excel.NewExporter()
		case "html":
			exporters[canonical] = html.NewExporter()
		case "word":
			exporters[canonical] = word.NewExporter()
		case "json":
			exporters[canonical] = json.NewExporter()
		}
	}

	return exporters
}
