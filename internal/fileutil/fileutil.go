// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DirPermissions is the mode used when creating output directories.
const DirPermissions = 0o750

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// NonEmptyFile returns true if the path exists, is a regular file, and
// has a size greater than zero.
func NonEmptyFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirPermissions); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}

// RemoveIfExists removes the file if present. A missing file is not an
// error; anything else is reported.
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// GlobSortedByNumber returns the paths matching pattern, ordered by the
// trailing number in each file's base name. External rasterizers emit
// zero-padded or offset sequences (slide-01.png, slide-001.png), so a
// plain lexicographic sort would interleave pages; numeric order is the
// page order.
func GlobSortedByNumber(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", pattern, err)
	}
	sort.Slice(matches, func(i, j int) bool {
		return TrailingNumber(matches[i]) < TrailingNumber(matches[j])
	})
	return matches, nil
}

// TrailingNumber extracts the number at the end of a file's base name,
// ignoring the extension. Returns 0 if the name has no trailing digits.
func TrailingNumber(path string) int {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	end := len(name)
	for end > 0 && name[end-1] >= '0' && name[end-1] <= '9' {
		end--
	}
	if end == len(name) {
		return 0
	}
	n, _ := strconv.Atoi(name[end:])
	return n
}
