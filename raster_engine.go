package pptx2pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// EngineStrategy is the last-resort backend: it re-imports the
// temporary PDF into the engine itself and exports each page through
// the engine's native page-to-image filter. Slow, but it needs nothing
// beyond the engine that is already running.
type EngineStrategy struct {
	session  *EngineSession
	opener   Opener
	exporter Exporter
}

// NewEngineStrategy creates the engine re-import strategy bound to a
// running session.
func NewEngineStrategy(session *EngineSession, opener Opener, exporter Exporter) *EngineStrategy {
	return &EngineStrategy{session: session, opener: opener, exporter: exporter}
}

func (s *EngineStrategy) Name() string { return "engine" }

// Available reports whether the owning session is still alive. The
// engine was a prerequisite of reaching this point at all, so this is
// effectively the chain's terminal strategy.
func (s *EngineStrategy) Available(_ context.Context) bool {
	return s.session.Running()
}

// Rasterize re-opens the PDF in the engine, splits it into single-page
// documents, and exports each page as PNG. The engine's image filter
// renders one page per invocation, hence the split. The engine filter
// uses its own raster geometry; the DPI parameter applies to the
// preceding strategies only.
func (s *EngineStrategy) Rasterize(ctx context.Context, pdfPath, outDir string, _ int) ([]string, error) {
	doc, err := s.opener.Open(ctx, s.session, pdfPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = doc.Close() }()

	splitDir, err := os.MkdirTemp("", "pptx2pdf-pages-*")
	if err != nil {
		return nil, fmt.Errorf("creating page dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(splitDir) }()

	if err := api.SplitFile(pdfPath, splitDir, 1, nil); err != nil {
		return nil, fmt.Errorf("splitting PDF: %w", err)
	}

	base := baseWithoutExt(pdfPath)
	files := make([]string, 0, doc.PageCount)
	for n := 1; n <= doc.PageCount; n++ {
		pagePDF := filepath.Join(splitDir, fmt.Sprintf("%s_%d.pdf", base, n))
		pageDoc := &Document{Path: pagePDF, PageCount: 1}

		target := filepath.Join(outDir, SlideFileName(n))
		if err := s.exporter.Export(ctx, s.session, pageDoc, NewPageImageRequest(target)); err != nil {
			_ = pageDoc.Close()
			return nil, fmt.Errorf("exporting page %d: %w", n, err)
		}
		_ = pageDoc.Close()
		files = append(files, target)
	}
	return files, nil
}
