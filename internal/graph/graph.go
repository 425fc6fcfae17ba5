// Package graph implements spec component D, DependencyGraph: the
// canonical-identity map from name to *model.JavaPackage / *model.JavaClass,
// and the bidirectional-edge bookkeeping that keeps Ca/Ce in sync.
//
// The canonical-map-by-name pattern (FullClassName -> Node lookup maps) and
// the lazy stub-node-on-first-reference idea are grounded on
// abdidvp-openkraft's BuildImportGraph, which creates a stub PackageNode
// the first time an import target is referenced before it has otherwise
// been seen.
package graph

import (
	"sort"

	"depscan/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Graph is the canonical dependency graph for one analysis session.
type Graph struct {
	packages map[string]*model.JavaPackage
	classes  map[string]*model.JavaClass

	// order preserves first-insertion order of package names, used only
	// when a caller wants that view instead of the default name-ascending
	// sort (spec.md §4.D: "insertion-order preserved only for reporting").
	order []string
}

// New returns an empty dependency graph.
func New() *Graph {
	return &Graph{
		packages: make(map[string]*model.JavaPackage),
		classes:  make(map[string]*model.JavaClass),
	}
}

// GetOrCreatePackage returns the canonical *model.JavaPackage for name,
// creating and inserting a stub if this is the first reference.
func (g *Graph) GetOrCreatePackage(name string) *model.JavaPackage {
	if p, ok := g.packages[name]; ok {
		return p
	}
	p := model.NewJavaPackage(name)
	g.packages[name] = p
	g.order = append(g.order, name)
	return p
}

// AddClass registers a parsed class into the graph: resolves (or creates)
// its home package, adds the class to that package's member set, and wires
// an edge for every one of the class's imported packages (spec.md §4.D).
func (g *Graph) AddClass(c *model.JavaClass) *model.JavaClass {
	if existing, ok := g.classes[c.Name]; ok {
		return existing
	}
	g.classes[c.Name] = c

	home := g.GetOrCreatePackage(c.PackageName)
	home.AddClass(c)

	for _, impName := range c.ImportedPackages() {
		dep := g.GetOrCreatePackage(impName)
		home.AddEdgeUnsafe(dep)
	}

	return c
}

// Package looks up a package by name without creating it.
func (g *Graph) Package(name string) (*model.JavaPackage, bool) {
	p, ok := g.packages[name]
	return p, ok
}

// Class looks up a class by name without creating it.
func (g *Graph) Class(name string) (*model.JavaClass, bool) {
	c, ok := g.classes[name]
	return c, ok
}

// Packages returns every package in the graph, ordered by name using a
// locale-aware collator (golang.org/x/text/collate), per spec.md §4.D's
// "default by name ascending" -- a plain byte-wise sort.Strings would
// mis-order names containing non-ASCII identifiers recovered from modified
// UTF-8 class names.
func (g *Graph) Packages() []*model.JavaPackage {
	out := make([]*model.JavaPackage, 0, len(g.packages))
	for _, p := range g.packages {
		out = append(out, p)
	}
	col := collate.New(language.Und)
	sort.Slice(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// PackagesInsertionOrder returns packages in first-reference order, for
// reporting views that want to reflect analysis order rather than name
// order (spec.md §4.D).
func (g *Graph) PackagesInsertionOrder() []*model.JavaPackage {
	out := make([]*model.JavaPackage, 0, len(g.order))
	for _, name := range g.order {
		if p, ok := g.packages[name]; ok {
			out = append(out, p)
		}
	}
	return out
}
