package model

import "fmt"

// JavaPackage is the unit of dependency analysis: a named collection of
// classes together with the set of packages that depend on it (afferents)
// and the set of packages it depends on (efferents).
//
// Identity is by Name alone. Two *JavaPackage instances are never created
// for the same name within a session; the DependencyGraph is the only
// component allowed to fabricate one (see internal/graph).
type JavaPackage struct {
	Name string

	classes map[string]*JavaClass

	// afferents and efferents are keyed by package name (the values are the
	// package pointers), so an edge to a given name is recorded once even
	// when the target is a stub created by GetOrCreatePackage before it has
	// been parsed. Component merging does not edit these maps; it builds
	// fresh package instances in a new graph.
	afferents map[string]*JavaPackage
	efferents map[string]*JavaPackage

	// Volatility is 0 or 1. The metrics engine multiplies this package's own
	// Ce by it when computing its instability, so 0 makes that instability 0;
	// edges still form normally.
	Volatility int

	// ContainsCycle is set by the metrics engine when this package is on the
	// DFS path between a back-edge target and the package that closes the
	// back edge, i.e. when the traversal finds it on a cycle.
	ContainsCycle bool
}

// DefaultPackageName is the sentinel for classes with no package.
const DefaultPackageName = "Default"

// NewJavaPackage returns a freshly initialized package with no classes or
// edges. Volatility defaults to 1, per spec.
func NewJavaPackage(name string) *JavaPackage {
	return &JavaPackage{
		Name:       name,
		classes:    make(map[string]*JavaClass),
		afferents:  make(map[string]*JavaPackage),
		efferents:  make(map[string]*JavaPackage),
		Volatility: 1,
	}
}

// AddClass registers c as belonging to this package. It is idempotent.
func (p *JavaPackage) AddClass(c *JavaClass) {
	p.classes[c.Name] = c
}

// Classes returns the packages's classes in no particular order. Callers
// that need determinism should sort by Name.
func (p *JavaPackage) Classes() []*JavaClass {
	out := make([]*JavaClass, 0, len(p.classes))
	for _, c := range p.classes {
		out = append(out, c)
	}
	return out
}

// HasClass reports whether a class with the given name is a member.
func (p *JavaPackage) HasClass(name string) bool {
	_, ok := p.classes[name]
	return ok
}

// addAfferent records that dep depends on p. Callers outside this file use
// AddEdgeUnsafe, which also maintains the reciprocal efferent edge; this
// method alone does not preserve the bidirectional invariant.
func (p *JavaPackage) addAfferent(dep *JavaPackage) {
	if dep.Name == p.Name {
		return
	}
	p.afferents[dep.Name] = dep
}

// addEfferent records that p depends on dep. See addAfferent.
func (p *JavaPackage) addEfferent(dep *JavaPackage) {
	if dep.Name == p.Name {
		return
	}
	p.efferents[dep.Name] = dep
}

// Afferents returns the packages that depend on p.
func (p *JavaPackage) Afferents() []*JavaPackage {
	out := make([]*JavaPackage, 0, len(p.afferents))
	for _, q := range p.afferents {
		out = append(out, q)
	}
	return out
}

// Efferents returns the packages that p depends on.
func (p *JavaPackage) Efferents() []*JavaPackage {
	out := make([]*JavaPackage, 0, len(p.efferents))
	for _, q := range p.efferents {
		out = append(out, q)
	}
	return out
}

// HasAfferent reports whether name is a direct afferent dependency.
func (p *JavaPackage) HasAfferent(name string) bool {
	_, ok := p.afferents[name]
	return ok
}

// HasEfferent reports whether name is a direct efferent dependency.
func (p *JavaPackage) HasEfferent(name string) bool {
	_, ok := p.efferents[name]
	return ok
}

// Ca is the afferent coupling: the number of packages depending on p.
func (p *JavaPackage) Ca() int { return len(p.afferents) }

// Ce is the efferent coupling: the number of packages p depends on.
func (p *JavaPackage) Ce() int { return len(p.efferents) }

// AbstractClassCount returns the number of abstract classes/interfaces.
func (p *JavaPackage) AbstractClassCount() int {
	n := 0
	for _, c := range p.classes {
		if c.IsAbstract {
			n++
		}
	}
	return n
}

// ConcreteClassCount returns the number of concrete classes.
func (p *JavaPackage) ConcreteClassCount() int {
	return len(p.classes) - p.AbstractClassCount()
}

func (p *JavaPackage) String() string {
	return fmt.Sprintf("JavaPackage{%s, classes=%d, Ca=%d, Ce=%d}", p.Name, len(p.classes), p.Ca(), p.Ce())
}

// RemoveClass drops a class from the package. Component merging does not
// call it; it builds fresh packages instead.
func (p *JavaPackage) RemoveClass(name string) {
	delete(p.classes, name)
}

// ResetEdges clears all afferent/efferent edges. Component merging does not
// call it; it builds fresh packages with fresh edges instead.
func (p *JavaPackage) ResetEdges() {
	p.afferents = make(map[string]*JavaPackage)
	p.efferents = make(map[string]*JavaPackage)
}

// AddEdgeUnsafe installs dep as an efferent of p and p as an afferent of
// dep, keeping both sides of the edge in step; a nil dep or a same-name
// (self) edge is ignored. It does not check that p and dep are the
// canonical instances of some graph. Exported for internal/graph and
// internal/constraint (same-module visibility; Go has no package-friend
// mechanism finer than this).
func (p *JavaPackage) AddEdgeUnsafe(dep *JavaPackage) {
	if dep == nil || dep.Name == p.Name {
		return
	}
	p.addEfferent(dep)
	dep.addAfferent(p)
}
