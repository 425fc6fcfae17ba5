package constraint

import (
	"testing"

	"depscan/internal/model"
)

func TestMatch_RoundTripSucceeds(t *testing.T) {
	a := model.NewJavaPackage("a")
	b := model.NewJavaPackage("b")
	a.AddEdgeUnsafe(b)

	actual := []*model.JavaPackage{a, b}

	c := New()
	ca := c.Package("a")
	cb := c.Package("b")
	DependsUpon(ca, cb)

	if !c.Match(actual) {
		t.Fatal("expected constraint built from analyzed result to match that result")
	}
}

func TestMatch_FailsOnSizeMismatch(t *testing.T) {
	c := New()
	c.Package("a")

	if c.Match([]*model.JavaPackage{}) {
		t.Fatal("expected false on size mismatch")
	}
}

func TestMatch_FailsOnEdgeMismatch(t *testing.T) {
	a := model.NewJavaPackage("a")
	b := model.NewJavaPackage("b")
	a.AddEdgeUnsafe(b)
	actual := []*model.JavaPackage{a, b}

	c := New()
	c.Package("a")
	c.Package("b") // no DependsUpon declared: expected edges empty

	if c.Match(actual) {
		t.Fatal("expected false: expected set has no edge, actual does")
	}
}
