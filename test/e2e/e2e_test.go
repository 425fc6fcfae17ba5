// Package e2e fabricates minimal class files programmatically and drives
// the full depscan pipeline (collector -> analyzer -> metrics -> report)
// end to end, covering the six concrete scenarios in spec.md §8: a hybrid
// directory of fabricated class files scanned through the full pipeline,
// reports generated, outputs asserted.
package e2e

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"depscan/internal/analyzer"
	"depscan/internal/filter"
	jsonexp "depscan/internal/report/json"
	"depscan/internal/reportdata"
)

const (
	tagUTF8  = 1
	tagClass = 7
)

// classSpec describes one fabricated class file.
type classSpec struct {
	name             string // internal form, "/"-separated
	superImport      string // internal form; "" means no superclass
	isAbstract       bool
	isInterface      bool
	annotationImport string // internal form; if set, adds a RuntimeVisibleAnnotations-only reference
}

// buildClass assembles a well-formed class file for spec.
func buildClass(t *testing.T, spec classSpec) []byte {
	t.Helper()

	var entries [][]byte
	next := uint16(1)

	addUTF8 := func(s string) uint16 {
		idx := next
		var e bytes.Buffer
		e.WriteByte(tagUTF8)
		binary.Write(&e, binary.BigEndian, uint16(len(s)))
		e.WriteString(s)
		entries = append(entries, e.Bytes())
		next++
		return idx
	}
	addClass := func(nameIdx uint16) uint16 {
		idx := next
		var e bytes.Buffer
		e.WriteByte(tagClass)
		binary.Write(&e, binary.BigEndian, nameIdx)
		entries = append(entries, e.Bytes())
		next++
		return idx
	}

	thisNameIdx := addUTF8(spec.name)
	thisClassIdx := addClass(thisNameIdx)

	var superClassIdx uint16
	if spec.superImport != "" {
		superNameIdx := addUTF8(spec.superImport)
		superClassIdx = addClass(superNameIdx)
	}

	var annotationDescIdx uint16
	var annotationAttrNameIdx uint16
	if spec.annotationImport != "" {
		annotationDescIdx = addUTF8("L" + spec.annotationImport + ";")
		annotationAttrNameIdx = addUTF8("RuntimeVisibleAnnotations")
	}
	// A dummy annotation type_index, reused for every annotation written.
	var annotationTypeIdx uint16
	if spec.annotationImport != "" {
		annotationTypeIdx = addUTF8("Ljava/lang/annotation/Documented;")
	}

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint32(0xCAFEBABE))
	binary.Write(&out, binary.BigEndian, uint16(0)) // minor
	binary.Write(&out, binary.BigEndian, uint16(0)) // major
	binary.Write(&out, binary.BigEndian, next)       // constant_pool_count
	for _, e := range entries {
		out.Write(e)
	}

	var accessFlags uint16
	if spec.isAbstract {
		accessFlags |= 0x0400
	}
	if spec.isInterface {
		accessFlags |= 0x0200
	}
	binary.Write(&out, binary.BigEndian, accessFlags)
	binary.Write(&out, binary.BigEndian, thisClassIdx)
	binary.Write(&out, binary.BigEndian, superClassIdx)
	binary.Write(&out, binary.BigEndian, uint16(0)) // interfaces_count
	binary.Write(&out, binary.BigEndian, uint16(0)) // fields_count
	binary.Write(&out, binary.BigEndian, uint16(0)) // methods_count

	if spec.annotationImport == "" {
		binary.Write(&out, binary.BigEndian, uint16(0)) // class attributes_count
		return out.Bytes()
	}

	// One RuntimeVisibleAnnotations attribute, one annotation, one
	// element_value_pair with tag 'c' referencing annotationDescIdx -- no
	// CLASS constant-pool entry is written for the referenced package, so
	// the only path to the edge is the annotation walk (spec.md §8 #6).
	var body bytes.Buffer
	binary.Write(&body, binary.BigEndian, uint16(1)) // num_annotations
	binary.Write(&body, binary.BigEndian, annotationTypeIdx)
	binary.Write(&body, binary.BigEndian, uint16(1)) // num_element_value_pairs
	binary.Write(&body, binary.BigEndian, annotationTypeIdx) // element_name_index (reused, value irrelevant)
	body.WriteByte('c')
	binary.Write(&body, binary.BigEndian, annotationDescIdx)

	binary.Write(&out, binary.BigEndian, uint16(1)) // class attributes_count
	binary.Write(&out, binary.BigEndian, annotationAttrNameIdx)
	binary.Write(&out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func writeClass(t *testing.T, dir string, spec classSpec) {
	t.Helper()
	full := filepath.Join(dir, spec.name+".class")
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, buildClass(t, spec), 0o644); err != nil {
		t.Fatal(err)
	}
}

func analyze(t *testing.T, root string) *reportdata.Report {
	t.Helper()
	pkgs, err := analyzer.Analyze(context.Background(), []string{root}, analyzer.Config{
		Filter: filter.Empty(),
	}, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return reportdata.Build(pkgs)
}

func findPackage(t *testing.T, r *reportdata.Report, name string) reportdata.PackageReport {
	t.Helper()
	for _, p := range r.Packages {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("package %q not found, got %v", name, r.Packages)
	return reportdata.PackageReport{}
}

// Scenario 1: two isolated packages, no edges.
func TestE2E_TwoIsolatedPackages(t *testing.T) {
	root := t.TempDir()
	writeClass(t, root, classSpec{name: "a/X"})
	writeClass(t, root, classSpec{name: "b/Y"})

	r := analyze(t, root)
	if len(r.Packages) != 2 {
		t.Fatalf("expected 2 packages, got %d: %v", len(r.Packages), r.Packages)
	}
	for _, name := range []string{"a", "b"} {
		p := findPackage(t, r, name)
		if p.Ca != 0 || p.Ce != 0 {
			t.Errorf("%s: Ca=%d Ce=%d, want 0,0", name, p.Ca, p.Ce)
		}
		if p.A != 0 {
			t.Errorf("%s: A=%v, want 0", name, p.A)
		}
		if p.I != 0 {
			t.Errorf("%s: I=%v, want 0 (undefined instability reported as 0)", name, p.I)
		}
		if p.D != 1 {
			t.Errorf("%s: D=%v, want 1", name, p.D)
		}
	}
}

// Scenario 2: linear dependency a.X -> b.Y.
func TestE2E_LinearDependency(t *testing.T) {
	root := t.TempDir()
	writeClass(t, root, classSpec{name: "a/X", superImport: "b/Y"})
	writeClass(t, root, classSpec{name: "b/Y"})

	r := analyze(t, root)

	a := findPackage(t, r, "a")
	if a.Ce != 1 || a.Ca != 0 || a.I != 1 {
		t.Errorf("a: Ce=%d Ca=%d I=%v, want 1,0,1", a.Ce, a.Ca, a.I)
	}
	b := findPackage(t, r, "b")
	if b.Ce != 0 || b.Ca != 1 || b.I != 0 {
		t.Errorf("b: Ce=%d Ca=%d I=%v, want 0,1,0", b.Ce, b.Ca, b.I)
	}
	if len(r.Cycles) != 0 {
		t.Errorf("expected no cycles, got %v", r.Cycles)
	}
}

// Scenario 3: two-node cycle a.X <-> b.Y.
func TestE2E_TwoNodeCycle(t *testing.T) {
	root := t.TempDir()
	writeClass(t, root, classSpec{name: "a/X", superImport: "b/Y"})
	writeClass(t, root, classSpec{name: "b/Y", superImport: "a/X"})

	r := analyze(t, root)

	a := findPackage(t, r, "a")
	b := findPackage(t, r, "b")
	if !a.ContainsCycle || !b.ContainsCycle {
		t.Fatalf("expected both packages cyclic, got a=%v b=%v", a.ContainsCycle, b.ContainsCycle)
	}
	if a.Ca != 1 || a.Ce != 1 || b.Ca != 1 || b.Ce != 1 {
		t.Errorf("expected Ca=Ce=1 on both, got a=(%d,%d) b=(%d,%d)", a.Ca, a.Ce, b.Ca, b.Ce)
	}
}

// Scenario 4: three-node cycle a->b->c->a plus a dangling dependent d.W->a.X.
func TestE2E_ThreeNodeCycleWithDanglingDependent(t *testing.T) {
	root := t.TempDir()
	writeClass(t, root, classSpec{name: "a/X", superImport: "b/Y"})
	writeClass(t, root, classSpec{name: "b/Y", superImport: "c/Z"})
	writeClass(t, root, classSpec{name: "c/Z", superImport: "a/X"})
	writeClass(t, root, classSpec{name: "d/W", superImport: "a/X"})

	r := analyze(t, root)

	for _, name := range []string{"a", "b", "c"} {
		if p := findPackage(t, r, name); !p.ContainsCycle {
			t.Errorf("%s: expected ContainsCycle=true", name)
		}
	}
	d := findPackage(t, r, "d")
	if d.ContainsCycle {
		t.Error("d: expected ContainsCycle=false")
	}
	a := findPackage(t, r, "a")
	if a.Ca != 2 || a.Ce != 1 {
		t.Errorf("a: Ca=%d Ce=%d, want 2,1", a.Ca, a.Ce)
	}
}

// Scenario 5: abstract/concrete mix.
func TestE2E_AbstractConcreteMix(t *testing.T) {
	root := t.TempDir()
	writeClass(t, root, classSpec{name: "p/Iface", isInterface: true})
	writeClass(t, root, classSpec{name: "p/A"})
	writeClass(t, root, classSpec{name: "p/B"})
	writeClass(t, root, classSpec{name: "p/C"})

	r := analyze(t, root)
	p := findPackage(t, r, "p")
	if p.ClassCount != 4 {
		t.Fatalf("expected 4 classes, got %d", p.ClassCount)
	}
	if p.A != 0.25 {
		t.Errorf("A=%v, want 0.25", p.A)
	}
}

// Scenario 6: annotation-only reference.
func TestE2E_AnnotationOnlyReference(t *testing.T) {
	root := t.TempDir()
	writeClass(t, root, classSpec{name: "a/X", annotationImport: "b/Y"})
	writeClass(t, root, classSpec{name: "b/Y"})

	r := analyze(t, root)
	a := findPackage(t, r, "a")
	if a.Ce != 1 {
		t.Fatalf("a: Ce=%d, want 1 (edge should come from the annotation walk)", a.Ce)
	}
}

// TestE2E_FullPipelineWritesJSONReport exercises collection through report
// writing using the JSON exporter (no external tool needed to inspect the
// result).
func TestE2E_FullPipelineWritesJSONReport(t *testing.T) {
	root := t.TempDir()
	writeClass(t, root, classSpec{name: "com/acme/web/Controller", superImport: "com/acme/service/Base"})
	writeClass(t, root, classSpec{name: "com/acme/service/Base"})

	r := analyze(t, root)

	outDir := t.TempDir()
	outPath := filepath.Join(outDir, "report.json")
	if err := jsonexp.NewExporter().Export(r, outPath); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}

	var doc struct {
		Packages []struct {
			Name string `json:"name"`
		} `json:"packages"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if len(doc.Packages) != 2 {
		t.Fatalf("expected 2 packages in JSON report, got %d", len(doc.Packages))
	}
}
