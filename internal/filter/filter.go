// Package filter implements spec component A, PackageFilter: an
// ordered-prefix-list accept/reject test applied to package names before
// they are recorded as dependencies.
package filter

import "strings"

// Filter holds an ordered sequence of prefix strings. A package name is
// rejected if any configured prefix is a prefix of it.
//
// A configured entry's trailing "*" is stripped before storage, but the
// match remains a plain prefix match either way -- "com.foo" and
// "com.foo*" are deliberately equivalent. This mirrors the analyzed
// source's own filter behavior and is preserved rather than "fixed"
// (see DESIGN.md, Open Questions #3).
type Filter struct {
	prefixes []string
}

// New builds a Filter from an explicit list of prefixes. Empty entries are
// discarded; trailing "*" is stripped from each entry.
func New(prefixes []string) *Filter {
	f := &Filter{}
	for _, p := range prefixes {
		f.addPrefix(p)
	}
	return f
}

// Empty returns a filter that accepts every package name.
func Empty() *Filter {
	return &Filter{}
}

func (f *Filter) addPrefix(raw string) {
	p := strings.TrimSpace(raw)
	if p == "" {
		return
	}
	p = strings.TrimSuffix(p, "*")
	if p == "" {
		return
	}
	f.prefixes = append(f.prefixes, p)
}

// Accept returns false iff some configured prefix is a prefix of name;
// otherwise true. There are no error conditions.
func (f *Filter) Accept(name string) bool {
	for _, p := range f.prefixes {
		if strings.HasPrefix(name, p) {
			return false
		}
	}
	return true
}

// Prefixes returns the configured prefixes, in registration order, with
// trailing "*" already stripped.
func (f *Filter) Prefixes() []string {
	out := make([]string, len(f.prefixes))
	copy(out, f.prefixes)
	return out
}
