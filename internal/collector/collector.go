// Package collector implements spec component C, FileCollector: walking a
// registered root (directory tree or archive) and yielding a deterministic,
// deduplicated sequence of class-file entries.
//
// The directory walk uses filepath.WalkDir over a root, skipping .git/.svn;
// the archive walk is grounded on cgrushko-tools_jvm_autodeps's
// listclassesinjar.List (archive/zip, "$" inner-class exclusion, ".class"
// suffix filtering).
package collector

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one yielded class-file occurrence: a logical name (its path, for
// diagnostics) and a function that opens its bytes on demand.
type Entry struct {
	// Name is the entry's path as recorded in its root (archive-internal
	// slash-separated path, or an OS filesystem path for directories).
	Name string
	// Open returns a fresh reader over the entry's bytes. Callers must
	// close it.
	Open func() (io.ReadCloser, error)
}

// Options configures acceptance rules shared by both directory and archive
// roots.
type Options struct {
	// AcceptInnerClasses, when false, skips any file whose base name
	// contains "$" after position 0 (spec.md §4.C). Default true.
	AcceptInnerClasses bool
}

// DefaultOptions returns the spec-mandated default: inner classes accepted.
func DefaultOptions() Options {
	return Options{AcceptInnerClasses: true}
}

// InvalidRootError reports a root that is neither a directory nor a
// recognized archive extension (spec.md §4.C: "InvalidRoot on
// registration").
type InvalidRootError struct {
	Root string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid root %q: not a directory or a .jar/.zip/.war archive", e.Root)
}

var archiveExtensions = map[string]bool{
	".jar": true,
	".zip": true,
	".war": true,
}

// Collect walks root (a directory or a .jar/.zip/.war archive, matched
// case-insensitively) and returns every accepted class-file entry, sorted
// by Name for deterministic yield order, deduplicated by Name.
func Collect(root string, opts Options) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		if ext := strings.ToLower(filepath.Ext(root)); archiveExtensions[ext] {
			// Root doesn't exist on disk but looks like an archive path;
			// report as a read error, not a registration error.
			return nil, err
		}
		return nil, &InvalidRootError{Root: root}
	}

	var entries []Entry
	if info.IsDir() {
		entries, err = collectDir(root, opts)
	} else {
		ext := strings.ToLower(filepath.Ext(root))
		if !archiveExtensions[ext] {
			return nil, &InvalidRootError{Root: root}
		}
		entries, err = collectArchive(root, opts)
	}
	if err != nil {
		return nil, err
	}

	return dedupSorted(entries), nil
}

func collectDir(root string, opts Options) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == ".svn" {
				return filepath.SkipDir
			}
			return nil
		}
		if !accept(d.Name(), opts) {
			return nil
		}
		entries = append(entries, Entry{
			Name: path,
			Open: func() (io.ReadCloser, error) { return os.Open(path) },
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collector: walk %s: %w", root, err)
	}
	return entries, nil
}

func collectArchive(root string, opts Options) ([]Entry, error) {
	r, err := zip.OpenReader(root)
	if err != nil {
		return nil, fmt.Errorf("collector: open archive %s: %w", root, err)
	}
	defer r.Close()

	var entries []Entry
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		base := baseName(f.Name)
		if !accept(base, opts) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("collector: open archive entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("collector: read archive entry %s: %w", f.Name, err)
		}

		name := f.Name
		entries = append(entries, Entry{
			Name: name,
			Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
		})
	}
	// r (and every per-entry rc above) is closed before Collect returns, so
	// no archive file descriptor outlives this function (spec.md §5).
	return entries, nil
}

// accept applies spec.md §4.C's filename rule: lowercased ".class" suffix,
// and (when inner classes are disabled) no "$" after position 0 of the
// base name.
func accept(name string, opts Options) bool {
	lower := strings.ToLower(name)
	if !strings.HasSuffix(lower, ".class") {
		return false
	}
	if !opts.AcceptInnerClasses {
		base := baseName(name)
		if idx := strings.IndexByte(base, '$'); idx > 0 {
			return false
		}
	}
	return true
}

// baseName is path.Base restricted to forward-slash-delimited names (both
// archive entries and WalkDir paths use "/" or the OS separator, and
// filepath.Base handles both on every platform this tool ships for).
func baseName(name string) string {
	return filepath.Base(filepath.ToSlash(name))
}

// dedupSorted sorts entries by Name and drops any later duplicate.
func dedupSorted(entries []Entry) []Entry {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	out := entries[:0:0]
	var last string
	first := true
	for _, e := range entries {
		if !first && e.Name == last {
			continue
		}
		out = append(out, e)
		last = e.Name
		first = false
	}
	return out
}
