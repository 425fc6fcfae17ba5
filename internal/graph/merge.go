package graph

import (
	"sort"
	"strings"

	"depscan/internal/model"
)

// Merge collapses every package whose name starts with one of the given
// component prefixes into a synthetic package named for that prefix, per
// spec.md §4.D's "Component merging" step. It returns a fresh graph built
// from the rewritten classes; the receiver's package maps are not touched,
// but the classes are shared with it, so their PackageName changes in the
// receiver too. Called with an empty prefix list, it returns the receiver
// itself.
//
// Classes retain identity (by Name); only PackageName is rewritten, and
// self-edges introduced by the collapse are dropped by virtue of
// model.JavaPackage.AddEdgeUnsafe already refusing same-name edges.
func (g *Graph) Merge(prefixes []string) *Graph {
	if len(prefixes) == 0 {
		return g
	}

	// Sort classes by name first so the rebuilt graph's insertion order is
	// deterministic regardless of the source map's iteration order.
	classNames := make([]string, 0, len(g.classes))
	for name := range g.classes {
		classNames = append(classNames, name)
	}
	sort.Strings(classNames)

	merged := New()
	for _, name := range classNames {
		c := g.classes[name]
		c.PackageName = componentName(c.PackageName, prefixes)

		rewrittenImports := make([]string, 0, len(c.ImportedPackages()))
		for _, imp := range c.ImportedPackages() {
			rewrittenImports = append(rewrittenImports, componentName(imp, prefixes))
		}

		addClassWithImports(merged, c, rewrittenImports)
	}

	return merged
}

// componentName returns the longest configured prefix that pkgName starts
// with, or pkgName unchanged if none matches.
func componentName(pkgName string, prefixes []string) string {
	best := ""
	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}
		if strings.HasPrefix(pkgName, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return pkgName
	}
	return best
}

// addClassWithImports mirrors Graph.AddClass, but takes an explicit,
// already-rewritten import list instead of reading c.ImportedPackages(),
// so Merge can redirect edges to synthetic component packages without
// mutating the class's own import set.
func addClassWithImports(g *Graph, c *model.JavaClass, imports []string) {
	g.classes[c.Name] = c

	home := g.GetOrCreatePackage(c.PackageName)
	home.AddClass(c)

	for _, impName := range imports {
		dep := g.GetOrCreatePackage(impName)
		home.AddEdgeUnsafe(dep)
	}
}
