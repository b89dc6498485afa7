package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-pptx2pdf/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists / TestNonEmptyFile
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.pdf")
	if err := os.WriteFile(file, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: file, want: true},
		{name: "missing file", path: filepath.Join(dir, "absent.pdf"), want: false},
		{name: "directory is not a file", path: dir, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNonEmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	full := filepath.Join(dir, "full.pdf")
	empty := filepath.Join(dir, "empty.pdf")
	if err := os.WriteFile(full, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "non-empty file", path: full, want: true},
		{name: "empty file", path: empty, want: false},
		{name: "missing file", path: filepath.Join(dir, "absent.pdf"), want: false},
		{name: "directory", path: dir, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileutil.NonEmptyFile(tt.path); got != tt.want {
				t.Errorf("NonEmptyFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEnsureDir / TestRemoveIfExists
// ---------------------------------------------------------------------------

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")

	if err := fileutil.EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("stat after EnsureDir: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("EnsureDir created %q but it is not a directory", nested)
	}

	// Calling again on an existing directory must not fail.
	if err := fileutil.EnsureDir(nested); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}

func TestRemoveIfExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "temp_export.pdf")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := fileutil.RemoveIfExists(file); err != nil {
		t.Fatalf("RemoveIfExists() error = %v", err)
	}
	if fileutil.FileExists(file) {
		t.Errorf("file still exists after RemoveIfExists")
	}

	// Removing a missing file is not an error.
	if err := fileutil.RemoveIfExists(file); err != nil {
		t.Errorf("RemoveIfExists() on missing file error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestTrailingNumber / TestGlobSortedByNumber
// ---------------------------------------------------------------------------

func TestTrailingNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "simple", path: "slide-3.png", want: 3},
		{name: "zero padded", path: "slide-07.png", want: 7},
		{name: "multi digit", path: "/out/slide-12.png", want: 12},
		{name: "no number", path: "slide.png", want: 0},
		{name: "number mid-name only", path: "slide-2-final.png", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileutil.TrailingNumber(tt.path); got != tt.want {
				t.Errorf("TrailingNumber(%q) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestGlobSortedByNumber(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// Written out of order and with mixed padding: numeric order must win
	// over lexicographic order (slide-10 sorts before slide-2 as a string).
	for _, name := range []string{"slide-10.png", "slide-2.png", "slide-1.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
	}

	got, err := fileutil.GlobSortedByNumber(filepath.Join(dir, "slide-*.png"))
	if err != nil {
		t.Fatalf("GlobSortedByNumber() error = %v", err)
	}

	want := []string{"slide-1.png", "slide-2.png", "slide-10.png"}
	if len(got) != len(want) {
		t.Fatalf("got %d matches, want %d", len(got), len(want))
	}
	for i, w := range want {
		if filepath.Base(got[i]) != w {
			t.Errorf("match[%d] = %q, want %q", i, filepath.Base(got[i]), w)
		}
	}
}
