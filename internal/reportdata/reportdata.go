// Package reportdata defines the shared view every output format
// (excel/html/word/json, under internal/report/...) renders from. It is
// kept separate from internal/report itself so format packages can depend
// on the view type without an import cycle through the dispatcher.
package reportdata

import (
	"sort"

	"depscan/internal/metrics"
	"depscan/internal/model"
)

// PackageReport is one package's computed metrics, flattened for
// rendering -- the shape every exporter (excel/html/word/json) reads.
type PackageReport struct {
	Name          string
	ClassCount    int
	Ca            int
	Ce            int
	A             float64
	I             float64
	D             float64
	ContainsCycle bool
}

// Report is the complete view handed to every exporter.
type Report struct {
	Packages []PackageReport
	// Cycles holds every distinct simple cycle found among packages marked
	// ContainsCycle, each as an ordered list of package names.
	Cycles [][]string
}

// Build computes metrics for every package and assembles the shared
// report view, sorted by package name for stable output across formats.
func Build(pkgs []*model.JavaPackage) *Report {
	reports := metrics.ComputeAll(pkgs)

	out := &Report{Packages: make([]PackageReport, 0, len(reports))}
	for _, r := range reports {
		out.Packages = append(out.Packages, PackageReport{
			Name:          r.Package.Name,
			ClassCount:    len(r.Package.Classes()),
			Ca:            r.Ca,
			Ce:            r.Ce,
			A:             r.A,
			I:             r.I,
			D:             r.D,
			ContainsCycle: r.Package.ContainsCycle,
		})
	}
	sort.Slice(out.Packages, func(i, j int) bool { return out.Packages[i].Name < out.Packages[j].Name })

	seen := make(map[string]bool)
	for _, p := range pkgs {
		if !p.ContainsCycle {
			continue
		}
		for _, cycle := range metrics.CollectAllCycles(p) {
			names := make([]string, len(cycle))
			for i, q := range cycle {
				names[i] = q.Name
			}
			// The same cycle is found once from each of its members, each
			// time as a different rotation; key it by the rotation that
			// starts at its smallest name so it is kept only once.
			start := 0
			for i, n := range names {
				if n < names[start] {
					start = i
				}
			}
			key := ""
			for i := range names {
				key += names[(start+i)%len(names)] + "\x00"
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out.Cycles = append(out.Cycles, names)
		}
	}
	sort.Slice(out.Cycles, func(i, j int) bool {
		return joinCycle(out.Cycles[i]) < joinCycle(out.Cycles[j])
	})

	return out
}

func joinCycle(names []string) string {
	s := ""
	for _, n := range names {
		s += n + "\x00"
	}
	return s
}

// Exporter is the unified interface for every reporting strategy.
type Exporter interface {
	// Export writes r to path in this exporter's format.
	Export(r *Report, path string) error
}
