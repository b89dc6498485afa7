package pptx2pdf

import (
	"context"
	"path/filepath"
	"strconv"
	"time"
)

// Poppler tool subprocess bounds.
const (
	popplerProbeTimeout = 2 * time.Second
	popplerRunTimeout   = 120 * time.Second
)

// PopplerStrategy rasterizes with the pdftoppm tool from poppler-utils.
// One subprocess call renders every page, which makes this the fastest
// and highest-fidelity backend; it sits first in the chain.
type PopplerStrategy struct {
	runner     CommandRunner
	runTimeout time.Duration
}

// NewPopplerStrategy creates the pdftoppm-backed strategy.
func NewPopplerStrategy(runner CommandRunner) *PopplerStrategy {
	return &PopplerStrategy{runner: runner, runTimeout: popplerRunTimeout}
}

func (s *PopplerStrategy) Name() string { return "pdftoppm" }

// Available probes the tool with a version query. The probe result is
// typed availability, not narration: a failing probe selects the next
// strategy and nothing else.
func (s *PopplerStrategy) Available(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, popplerProbeTimeout)
	defer cancel()

	_, _, err := s.runner.Run(probeCtx, "pdftoppm", "-v")
	return err == nil
}

// Rasterize renders all pages in a single pdftoppm invocation, then
// renames the tool's padded sequence into the slide-<n>.png contract.
func (s *PopplerStrategy) Rasterize(ctx context.Context, pdfPath, outDir string, dpi int) ([]string, error) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	args := []string{
		"-png",
		"-r", strconv.Itoa(dpi),
		pdfPath,
		filepath.Join(outDir, slidePrefix),
	}
	if _, _, err := s.runner.Run(runCtx, "pdftoppm", args...); err != nil {
		return nil, err
	}

	return normalizeSlideNames(outDir)
}
