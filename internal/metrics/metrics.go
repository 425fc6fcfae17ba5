// Package metrics implements spec component F, MetricsEngine: per-package
// Ca/Ce/Abstractness/Instability/Distance, plus DFS-based cycle detection.
//
// The coupling/abstractness/instability/distance formulas are grounded on
// abdidvp-openkraft's ImportGraph.Instability/Abstractness/
// DistanceFromMainSequence (same Robert Martin metrics, generalized here to
// spec.md §4.F's per-package volatility term, which abdidvp's analog does
// not have).
package metrics

import "depscan/internal/model"

// Report is the computed metric set for one package.
type Report struct {
	Package *model.JavaPackage
	Ca      int
	Ce      int
	A       float64
	I       float64
	D       float64
}

// Compute returns a Report for p, per the formulas in spec.md §4.F.
func Compute(p *model.JavaPackage) Report {
	ca := p.Ca()
	ce := p.Ce()

	a := abstractness(p)
	i := instability(ce, ca, p.Volatility)
	d := distance(a, i)

	return Report{Package: p, Ca: ca, Ce: ce, A: a, I: i, D: d}
}

// ComputeAll returns a Report for every package in pkgs, in the same order.
func ComputeAll(pkgs []*model.JavaPackage) []Report {
	out := make([]Report, len(pkgs))
	for idx, p := range pkgs {
		out[idx] = Compute(p)
	}
	return out
}

func abstractness(p *model.JavaPackage) float64 {
	total := len(p.Classes())
	if total == 0 {
		return 0
	}
	return float64(p.AbstractClassCount()) / float64(total)
}

// instability implements spec.md §4.F: I = (Ce*v) / (Ce*v + Ca) if the
// denominator is positive, else 0. The denominator weights only the
// package's own volatility; Ca is unweighted.
func instability(ce, ca, volatility int) float64 {
	weightedCe := float64(ce * volatility)
	denom := weightedCe + float64(ca)
	if denom <= 0 {
		return 0
	}
	return weightedCe / denom
}

func distance(a, i float64) float64 {
	d := a + i - 1
	if d < 0 {
		return -d
	}
	return d
}
