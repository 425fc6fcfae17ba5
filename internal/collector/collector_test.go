package collector

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectDirectory_FiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b", "Widget.class"), "b")
	writeFile(t, filepath.Join(root, "a", "Gadget.class"), "a")
	writeFile(t, filepath.Join(root, "a", "Gadget.java"), "ignored")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ignored")

	entries, err := Collect(root, DefaultOptions())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(entries), entries)
	}
	if entries[0].Name > entries[1].Name {
		t.Fatalf("entries not sorted: %v", entries)
	}
}

func TestCollectDirectory_InnerClassExclusion(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Outer.class"), "x")
	writeFile(t, filepath.Join(root, "Outer$Inner.class"), "x")

	opts := Options{AcceptInnerClasses: false}
	entries, err := Collect(root, opts)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (inner class excluded): %v", len(entries), entries)
	}
	if filepath.Base(entries[0].Name) != "Outer.class" {
		t.Fatalf("unexpected survivor: %v", entries[0].Name)
	}
}

func TestCollectArchive_JarEntries(t *testing.T) {
	root := t.TempDir()
	jarPath := filepath.Join(root, "lib.jar")

	f, err := os.Create(jarPath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for _, name := range []string{"com/acme/Widget.class", "com/acme/Widget$1.class", "META-INF/MANIFEST.MF"} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte("x")); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	entries, err := Collect(jarPath, DefaultOptions())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(entries), entries)
	}

	for _, e := range entries {
		rc, err := e.Open()
		if err != nil {
			t.Fatalf("Open(%s): %v", e.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("ReadAll(%s): %v", e.Name, err)
		}
		if string(data) != "x" {
			t.Fatalf("unexpected contents for %s: %q", e.Name, data)
		}
	}
}

func TestCollect_InvalidRoot(t *testing.T) {
	root := t.TempDir()
	notAnArchive := filepath.Join(root, "notes.txt")
	writeFile(t, notAnArchive, "hello")

	_, err := Collect(notAnArchive, DefaultOptions())
	if err == nil {
		t.Fatal("expected InvalidRootError")
	}
	if _, ok := err.(*InvalidRootError); !ok {
		t.Fatalf("expected *InvalidRootError, got %T (%v)", err, err)
	}
}
