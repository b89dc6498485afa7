package pptx2pdf

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"
)

// FitzStrategy rasterizes page-by-page with the MuPDF library. It needs
// no external tool and serves as the fallback when pdftoppm is not
// installed.
type FitzStrategy struct{}

// NewFitzStrategy creates the MuPDF-backed strategy.
func NewFitzStrategy() *FitzStrategy {
	return &FitzStrategy{}
}

func (s *FitzStrategy) Name() string { return "mupdf" }

// Available reports whether the library can be used. The binding is
// compiled in, so availability only depends on the build.
func (s *FitzStrategy) Available(_ context.Context) bool {
	return true
}

// Rasterize renders each page at the given DPI and writes it as a PNG
// directly under the final slide-<n>.png name.
func (s *FitzStrategy) Rasterize(ctx context.Context, pdfPath, outDir string, dpi int) ([]string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	files := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := doc.ImageDPI(n, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", n+1, err)
		}

		path := filepath.Join(outDir, SlideFileName(n+1))
		if err := writePNG(path, img); err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) // #nosec G304 -- path is built from the output dir
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
