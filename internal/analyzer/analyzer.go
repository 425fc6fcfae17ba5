// Package analyzer implements spec component E, Analyzer: orchestrates one
// analysis session end to end, per spec.md §4.E and the sequencing in §5
// (single-threaded, synchronous; listener callbacks run inline; resources
// close before the next class begins).
//
// The orchestration shape -- registered roots, a listener callback fired
// per successfully parsed unit, sequential single-pass traversal -- covers
// class-file collection and parsing end to end.
package analyzer

import (
	"context"
	"io"

	"depscan/internal/classfile"
	"depscan/internal/collector"
	"depscan/internal/filter"
	"depscan/internal/graph"
	"depscan/internal/logger"
	"depscan/internal/metrics"
	"depscan/internal/model"
)

// Config enumerates the options spec.md §4.E names.
type Config struct {
	// Filter is required but may be empty (filter.Empty()).
	Filter *filter.Filter
	// Components is an optional list of component-merge prefixes.
	Components []string
	// SkipInnerClasses, when true, excludes any class whose base name
	// contains "$" after position 0 (spec.md §4.C). The zero value accepts
	// inner classes, matching the spec's default.
	SkipInnerClasses bool
}

// Listener receives one event per successfully parsed class, in collector
// order (spec.md §6's "Listener interface exposed by the core").
type Listener interface {
	OnParsedClass(c *model.JavaClass)
}

// NoopListener discards every event; the zero value is ready to use.
type NoopListener struct{}

func (NoopListener) OnParsedClass(*model.JavaClass) {}

// Analyze runs one analysis session over roots (each a directory or
// .jar/.zip/.war archive), per spec.md §4.E's six-step sequence, and
// returns the resulting packages in name order.
func Analyze(ctx context.Context, roots []string, cfg Config, listener Listener) ([]*model.JavaPackage, error) {
	if listener == nil {
		listener = NoopListener{}
	}
	f := cfg.Filter
	if f == nil {
		f = filter.Empty()
	}

	g := graph.New()
	collectOpts := collector.Options{AcceptInnerClasses: !cfg.SkipInnerClasses}

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := collector.Collect(root, collectOpts)
		if err != nil {
			// Both a malformed root and a root-level IOError (cannot open an
			// archive at all) are promoted to ConfigurationError, per
			// spec.md §7.
			return nil, newConfigurationError("cannot register root %q: %v", root, err)
		}

		for _, entry := range entries {
			// Cooperative cancellation: the natural boundary is between
			// classes, never mid-parse (spec.md §5).
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			processEntry(entry, f, g, listener)
		}
	}

	if len(cfg.Components) > 0 {
		g = g.Merge(cfg.Components)
	}

	pkgs := g.Packages()
	metrics.MarkCycles(pkgs)

	if err := verifyBidirectionalInvariant(pkgs); err != nil {
		return nil, err
	}

	return pkgs, nil
}

// processEntry opens, reads, and parses one collector entry, closing the
// byte source before returning on every path (spec.md §5's resource
// discipline: "no resource outlives a single class's parse"). Both
// IOError and ParseError are skip-and-continue, so failures are logged and
// swallowed rather than propagated.
func processEntry(entry collector.Entry, f *filter.Filter, g *graph.Graph, listener Listener) {
	rc, err := entry.Open()
	if err != nil {
		logger.LogIOError(entry.Name, err)
		return
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		logger.LogIOError(entry.Name, err)
		return
	}

	class, err := classfile.Parse(data, f)
	if err != nil {
		logger.LogParseError(entry.Name, err)
		return
	}

	g.AddClass(class)
	listener.OnParsedClass(class)
}

// verifyBidirectionalInvariant asserts, for every package, that q is an
// efferent of p iff p is an afferent of q (spec.md §8's "Edge symmetry"
// property). A violation here means graph code has a bug, not that the
// input was malformed, hence InvariantViolation rather than a parse/IO
// error.
func verifyBidirectionalInvariant(pkgs []*model.JavaPackage) error {
	for _, p := range pkgs {
		for _, q := range p.Efferents() {
			if !q.HasAfferent(p.Name) {
				return newInvariantViolation("edge asymmetry: %s -> %s has no reciprocal afferent", p.Name, q.Name)
			}
		}
		for _, q := range p.Afferents() {
			if !q.HasEfferent(p.Name) {
				return newInvariantViolation("edge asymmetry: %s <- %s has no reciprocal efferent", p.Name, q.Name)
			}
		}
	}
	return nil
}
