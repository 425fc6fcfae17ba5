package graph

import (
	"testing"

	"depscan/internal/model"
)

func newClass(name, pkg string, imports ...string) *model.JavaClass {
	c := model.NewJavaClass(name)
	c.PackageName = pkg
	for _, imp := range imports {
		c.AddImport(imp)
	}
	return c
}

func TestAddClass_CreatesHomePackageAndEdges(t *testing.T) {
	g := New()
	c := newClass("com.acme.Widget", "com.acme", "org.other")

	g.AddClass(c)

	home, ok := g.Package("com.acme")
	if !ok {
		t.Fatal("home package not created")
	}
	if !home.HasClass("com.acme.Widget") {
		t.Fatal("class not registered in home package")
	}
	if !home.HasEfferent("org.other") {
		t.Fatal("expected efferent edge to org.other")
	}

	dep, ok := g.Package("org.other")
	if !ok {
		t.Fatal("dependency stub package not created")
	}
	if !dep.HasAfferent("com.acme") {
		t.Fatal("expected reciprocal afferent edge on org.other")
	}
}

func TestAddClass_NoSelfEdge(t *testing.T) {
	g := New()
	c := model.NewJavaClass("com.acme.Widget")
	c.PackageName = "com.acme"
	c.AddImport("com.acme") // ignored: own package

	g.AddClass(c)

	home, _ := g.Package("com.acme")
	if home.Ce() != 0 {
		t.Fatalf("Ce = %d, want 0 (no self edges)", home.Ce())
	}
}

func TestPackages_SortedByName(t *testing.T) {
	g := New()
	g.AddClass(newClass("z.Z", "z"))
	g.AddClass(newClass("a.A", "a"))
	g.AddClass(newClass("m.M", "m"))

	pkgs := g.Packages()
	if len(pkgs) != 3 {
		t.Fatalf("got %d packages, want 3", len(pkgs))
	}
	for i := 1; i < len(pkgs); i++ {
		if pkgs[i-1].Name > pkgs[i].Name {
			t.Fatalf("packages not sorted: %v", pkgs)
		}
	}
}

func TestMerge_CollapsesByPrefixAndDropsSelfEdges(t *testing.T) {
	g := New()
	g.AddClass(newClass("com.acme.web.Controller", "com.acme.web", "com.acme.service"))
	g.AddClass(newClass("com.acme.service.Service", "com.acme.service", "com.acme.dao"))
	g.AddClass(newClass("com.acme.dao.Dao", "com.acme.dao"))

	merged := g.Merge([]string{"com.acme.web", "com.acme.service", "com.acme.dao"})

	pkgs := merged.Packages()
	if len(pkgs) != 3 {
		t.Fatalf("got %d merged packages, want 3: %v", len(pkgs), pkgs)
	}

	web, ok := merged.Package("com.acme.web")
	if !ok {
		t.Fatal("com.acme.web not found after merge")
	}
	if !web.HasEfferent("com.acme.service") {
		t.Fatal("expected web -> service edge to survive merge")
	}
	if web.HasEfferent("com.acme.web") {
		t.Fatal("self-edge should have been dropped")
	}
}

func TestMerge_NoOpWithoutPrefixes(t *testing.T) {
	g := New()
	g.AddClass(newClass("com.acme.Widget", "com.acme"))

	merged := g.Merge(nil)
	if merged != g {
		t.Fatal("Merge with no prefixes should return the receiver unchanged")
	}
}
