// Package json renders a reportdata.Report as a single indented JSON
// document: a dedicated exporter package per output format, encoding/json
// with indentation, a direct dump of the package-metrics view.
package json

import (
	"encoding/json"
	"os"

	"depscan/internal/reportdata"
)

// Exporter writes a reportdata.Report as a .json file.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// document is the on-disk JSON shape; field names are chosen for the
// report's consumers rather than mirroring reportdata's Go field names.
type document struct {
	Packages []packageEntry `json:"packages"`
	Cycles   [][]string     `json:"cycles"`
}

type packageEntry struct {
	Name          string  `json:"name"`
	Classes       int     `json:"classes"`
	Ca            int     `json:"afferentCoupling"`
	Ce            int     `json:"efferentCoupling"`
	Abstractness  float64 `json:"abstractness"`
	Instability   float64 `json:"instability"`
	Distance      float64 `json:"distance"`
	ContainsCycle bool    `json:"containsCycle"`
}

// Export writes r to path as indented JSON.
func (e *Exporter) Export(r *reportdata.Report, path string) error {
	doc := document{
		Packages: make([]packageEntry, 0, len(r.Packages)),
		Cycles:   r.Cycles,
	}
	for _, p := range r.Packages {
		doc.Packages = append(doc.Packages, packageEntry{
			Name:          p.Name,
			Classes:       p.ClassCount,
			Ca:            p.Ca,
			Ce:            p.Ce,
			Abstractness:  p.A,
			Instability:   p.I,
			Distance:      p.D,
			ContainsCycle: p.ContainsCycle,
		})
	}
	if doc.Cycles == nil {
		doc.Cycles = [][]string{}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
