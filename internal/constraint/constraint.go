// Package constraint implements spec component G, Constraint/Comparison: a
// user-constructed expected package set matched against an analyzed graph.
//
// This is authored fresh from spec.md §4.G -- none of the pack's example
// repos carry an analogous "expected dependency set" comparison type -- and
// built entirely on the standard library (map/slice equality), which is
// the right tool here: the comparison is pure in-memory set algebra with
// no I/O, parsing, or domain-specific format to delegate to a library.
package constraint

import "depscan/internal/model"

// Constraint holds a user-declared expected package set: each package
// carries its own expected afferent/efferent names, built via DependsUpon.
type Constraint struct {
	packages map[string]*model.JavaPackage
}

// New returns an empty constraint set.
func New() *Constraint {
	return &Constraint{packages: make(map[string]*model.JavaPackage)}
}

// Package returns the expected package named name, creating it if this is
// the first reference.
func (c *Constraint) Package(name string) *model.JavaPackage {
	if p, ok := c.packages[name]; ok {
		return p
	}
	p := model.NewJavaPackage(name)
	c.packages[name] = p
	return p
}

// DependsUpon declares that a depends on b: a.efferents gets b, and
// b.afferents gets a, per spec.md §4.G.
func DependsUpon(a, b *model.JavaPackage) {
	a.AddEdgeUnsafe(b)
}

// Match reports whether actual is equal to this constraint's expected
// package set: same size, and for each expected package, an actual package
// of the same name exists with equal afferent and efferent name sets
// (spec.md §4.G). A mismatch is the normal expression of a failed
// constraint, not an error (UsageError in spec.md §7's taxonomy) -- hence
// the bool return rather than an error.
func (c *Constraint) Match(actual []*model.JavaPackage) bool {
	if len(actual) != len(c.packages) {
		return false
	}

	byName := make(map[string]*model.JavaPackage, len(actual))
	for _, p := range actual {
		byName[p.Name] = p
	}

	for name, expected := range c.packages {
		got, ok := byName[name]
		if !ok {
			return false
		}
		if !sameNames(expected.Afferents(), got.Afferents()) {
			return false
		}
		if !sameNames(expected.Efferents(), got.Efferents()) {
			return false
		}
	}

	return true
}

func sameNames(a, b []*model.JavaPackage) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, p := range a {
		set[p.Name] = true
	}
	for _, p := range b {
		if !set[p.Name] {
			return false
		}
	}
	return true
}
