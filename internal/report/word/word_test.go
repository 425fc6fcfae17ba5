package word

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"depscan/internal/reportdata"
)

func TestExport_ProducesWellFormedDocxWithContent(t *testing.T) {
	r := &reportdata.Report{
		Packages: []reportdata.PackageReport{
			{Name: "a", ClassCount: 1, Ca: 0, Ce: 1, A: 0, I: 1, D: 0},
			{Name: "b", ClassCount: 1, Ca: 1, Ce: 0, A: 0, I: 0, D: 1, ContainsCycle: true},
		},
		Cycles: [][]string{{"b", "c", "b"}},
	}

	path := filepath.Join(t.TempDir(), "report.docx")
	if err := NewExporter().Export(r, path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("OpenReader: %v (output is not a valid zip/docx)", err)
	}
	defer zr.Close()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		t.Fatal("word/document.xml missing from generated docx")
	}

	rc, err := doc.Open()
	if err != nil {
		t.Fatalf("opening word/document.xml: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading word/document.xml: %v", err)
	}
	xml := string(data)

	for _, want := range []string{"PACKAGE METRICS", "DEPENDENCY CYCLES", "b -&gt; c -&gt; b", "Total Packages: 2"} {
		if !strings.Contains(xml, want) {
			t.Errorf("expected document.xml to contain %q, got:\n%s", want, xml)
		}
	}
}
