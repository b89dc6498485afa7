package pptx2pdf

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gopresentation "github.com/VantageDataChat/GoPPT"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/alnah/go-pptx2pdf/internal/fileutil"
)

// Extensions the engine is known to load as presentations. The PDF
// entry exists for the re-import rasterization path.
var supportedExtensions = map[string]bool{
	".pptx": true,
	".pptm": true,
	".ppsx": true,
	".ppt":  true,
	".pps":  true,
	".odp":  true,
	".otp":  true,
	".pdf":  true,
}

// Document is an opened source document inside an engine session.
// Every opened Document must be closed exactly once; Close discards any
// state and is safe to call repeatedly.
type Document struct {
	Path      string
	PageCount int   // 0 when the page count could not be read
	WidthEMU  int64 // slide width in EMU, 0 when unknown
	HeightEMU int64 // slide height in EMU, 0 when unknown

	closed bool
}

// Close releases the document. Idempotent: closing an already-closed
// document is a no-op and never fails.
func (d *Document) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true
	return nil
}

// Opener opens source documents for an engine session.
type Opener interface {
	Open(ctx context.Context, session *EngineSession, path string) (*Document, error)
}

// documentOpener reads page count and slide geometry at open time: the
// count drives output verification and the geometry feeds the advisory
// size log. PPTX-family inputs are inspected directly (the file format
// is a zip archive the library can read without the engine); PDFs are
// inspected for the re-import path.
type documentOpener struct{}

func (documentOpener) Open(ctx context.Context, session *EngineSession, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !session.Running() {
		return nil, fmt.Errorf("%w: engine session is not running", ErrOpenDocument)
	}
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrOpenDocument, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrOpenDocument, ext)
	}

	doc := &Document{Path: path}

	switch ext {
	case ".pptx", ".pptm", ".ppsx":
		pres, err := gopresentation.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOpenDocument, err)
		}
		doc.PageCount = pres.GetSlideCount()
		if layout := pres.GetLayout(); layout != nil {
			doc.WidthEMU = layout.CX
			doc.HeightEMU = layout.CY
		}
		_ = pres.Close()
		if doc.PageCount == 0 {
			return nil, fmt.Errorf("%w: %s has no slides", ErrOpenDocument, path)
		}
	case ".pdf":
		n, err := api.PageCountFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOpenDocument, err)
		}
		doc.PageCount = n
	default:
		// Legacy binary formats: the engine can load them but we cannot
		// inspect them up front. PageCount stays unknown and output
		// verification falls back to a non-empty check.
	}

	return doc, nil
}

// FilterValue is one engine filter option in the engine's typed option
// syntax.
type FilterValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// FilterOptions is a set of engine filter options keyed by option name.
type FilterOptions map[string]FilterValue

// ExportRequest is an immutable description of a single export call:
// target path, target format, and the format's option set. Construct
// one per export; never reuse across documents.
type ExportRequest struct {
	TargetPath string
	Format     string // target extension without dot, e.g. "pdf", "png"
	Filter     string // engine filter name, empty = engine default
	Options    FilterOptions
}

// NewPDFExportRequest builds the PDF export request used for both the
// direct conversion and the rasterization chain's intermediate PDF.
//
// The option set pins PDF 1.4 output with tagged PDF, form fields and
// image downsampling off and quality at maximum: exact visual layout is
// preferred over file size or accessibility metadata.
func NewPDFExportRequest(targetPath string) ExportRequest {
	return ExportRequest{
		TargetPath: targetPath,
		Format:     "pdf",
		Filter:     "impress_pdf_Export",
		Options: FilterOptions{
			"SelectPdfVersion":      {Type: "long", Value: "1"}, // PDF 1.4
			"UseTaggedPDF":          {Type: "boolean", Value: "false"},
			"ExportFormFields":      {Type: "boolean", Value: "false"},
			"Quality":               {Type: "long", Value: "100"},
			"ReduceImageResolution": {Type: "boolean", Value: "false"},
		},
	}
}

// NewPageImageRequest builds a PNG export request for a single page,
// used by the engine-native rasterization fallback.
func NewPageImageRequest(targetPath string) ExportRequest {
	return ExportRequest{
		TargetPath: targetPath,
		Format:     "png",
	}
}

// ConvertToSpec renders the request as the engine's --convert-to
// argument: "<format>[:<filter>[:<options json>]]".
func (r ExportRequest) ConvertToSpec() (string, error) {
	if r.Filter == "" {
		return r.Format, nil
	}
	if len(r.Options) == 0 {
		return r.Format + ":" + r.Filter, nil
	}
	data, err := json.Marshal(r.Options)
	if err != nil {
		return "", fmt.Errorf("encoding filter options: %w", err)
	}
	return r.Format + ":" + r.Filter + ":" + string(data), nil
}

// Exporter performs single-shot exports through a running engine
// session.
type Exporter interface {
	Export(ctx context.Context, session *EngineSession, doc *Document, req ExportRequest) error
}

// engineExporter invokes the engine binary in convert mode bound to the
// session's user profile, so the request is served by the supervised
// instance rather than a second, conflicting one.
type engineExporter struct {
	binary string
	runner CommandRunner
	logf   func(format string, args ...any)
}

func newEngineExporter(binary string, runner CommandRunner, logf func(string, ...any)) *engineExporter {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &engineExporter{binary: binary, runner: runner, logf: logf}
}

func (e *engineExporter) Export(ctx context.Context, session *EngineSession, doc *Document, req ExportRequest) error {
	if !session.Running() {
		return fmt.Errorf("%w: engine session is not running", ErrExport)
	}
	if doc == nil || doc.closed {
		return fmt.Errorf("%w: document is closed", ErrExport)
	}

	spec, err := req.ConvertToSpec()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}

	outDir := filepath.Dir(req.TargetPath)
	args := []string{
		fmt.Sprintf("-env:UserInstallation=file://%s", session.profileDir),
		"--headless",
		"--convert-to", spec,
		"--outdir", outDir,
		doc.Path,
	}

	e.logf("exporting %s -> %s (%s)", doc.Path, req.TargetPath, req.Format)
	_, stderr, err := e.runner.Run(ctx, e.binary, args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrExport, strings.TrimSpace(stderr), err)
	}

	// The engine names its output after the source file; move it to the
	// requested target when they differ.
	produced := filepath.Join(outDir, baseWithoutExt(doc.Path)+"."+req.Format)
	if produced != req.TargetPath {
		if err := os.Rename(produced, req.TargetPath); err != nil {
			return fmt.Errorf("%w: renaming engine output: %v", ErrExport, err)
		}
	}

	if !fileutil.NonEmptyFile(req.TargetPath) {
		return fmt.Errorf("%w: engine produced no output at %s", ErrExport, req.TargetPath)
	}
	return nil
}

// baseWithoutExt returns the file name without directory or extension.
func baseWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
