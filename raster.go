package pptx2pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-pptx2pdf/internal/fileutil"
)

// slidePattern is the output naming contract: slide-<n>.png for
// n = 1..pageCount, in page order, with no gaps.
const slidePrefix = "slide"

// SlideFileName returns the canonical name for page n (1-based).
func SlideFileName(n int) string {
	return fmt.Sprintf("%s-%d.png", slidePrefix, n)
}

// Strategy is one self-contained way of turning a PDF into per-page
// image files. Strategies are mutually exclusive alternatives: the
// chain runs exactly one per conversion.
type Strategy interface {
	// Name identifies the strategy in logs and outcomes.
	Name() string
	// Available probes the strategy's prerequisites without side
	// effects on the output directory.
	Available(ctx context.Context) bool
	// Rasterize renders every page of the PDF at the given DPI into
	// outDir and returns the produced files in page order, already
	// renamed to the slide-<n>.png contract.
	Rasterize(ctx context.Context, pdfPath, outDir string, dpi int) ([]string, error)
}

// Outcome reports a finished rasterization: the files produced in page
// order, which strategy produced them, and whether the run succeeded.
type Outcome struct {
	Files    []string
	Strategy string
	OK       bool
}

// Chain tries strategies in priority order and runs the first one whose
// availability probe succeeds. A failure after that commitment surfaces
// directly: the chain never patches together partial results from two
// strategies.
type Chain struct {
	strategies []Strategy
	logf       func(format string, args ...any)
}

// NewChain builds a chain over the given strategies in priority order.
func NewChain(logf func(string, ...any), strategies ...Strategy) *Chain {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Chain{strategies: strategies, logf: logf}
}

// Run rasterizes the PDF through the first available strategy.
func (c *Chain) Run(ctx context.Context, pdfPath, outDir string, dpi int) (Outcome, error) {
	for _, s := range c.strategies {
		if !s.Available(ctx) {
			c.logf("rasterizer %q unavailable, trying next", s.Name())
			continue
		}
		c.logf("rasterizing %s with %q at %d DPI", pdfPath, s.Name(), dpi)
		files, err := s.Rasterize(ctx, pdfPath, outDir, dpi)
		if err != nil {
			return Outcome{Strategy: s.Name()}, fmt.Errorf("%w: %s: %v", ErrRasterize, s.Name(), err)
		}
		return Outcome{Files: files, Strategy: s.Name(), OK: true}, nil
	}
	return Outcome{}, fmt.Errorf("%w: no rasterization backend available", ErrDependencyMissing)
}

// clearSlideImages removes slide images left in outDir by a previous
// run. Stale files would interleave with a fresh rasterizer sequence
// during renaming (canonical slide-10 sorts equal to padded slide-10),
// so the directory must hold no slide images when a strategy starts.
func clearSlideImages(outDir string) error {
	matches, err := fileutil.GlobSortedByNumber(filepath.Join(outDir, slidePrefix+"-*.png"))
	if err != nil {
		return err
	}
	for _, f := range matches {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("removing stale %s: %w", f, err)
		}
	}
	return nil
}

// normalizeSlideNames renames rasterizer output into the strict
// slide-<n>.png scheme. External tools pad or offset their sequence
// numbers (slide-01.png, slide-001.png), so files are taken in numeric
// order and renumbered from 1 with no gaps.
func normalizeSlideNames(outDir string) ([]string, error) {
	matches, err := fileutil.GlobSortedByNumber(filepath.Join(outDir, slidePrefix+"-*.png"))
	if err != nil {
		return nil, err
	}

	renamed := make([]string, 0, len(matches))
	for i, old := range matches {
		want := filepath.Join(outDir, SlideFileName(i+1))
		if old != want {
			if err := os.Rename(old, want); err != nil {
				return nil, fmt.Errorf("renaming %s: %w", old, err)
			}
		}
		renamed = append(renamed, want)
	}
	return renamed, nil
}
