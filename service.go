package pptx2pdf

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alnah/go-pptx2pdf/internal/fileutil"
)

// engineSupervisor is the lifecycle seam between the service and the
// engine process, for substitution in tests.
type engineSupervisor interface {
	Start(ctx context.Context) (*EngineSession, error)
	Stop(session *EngineSession) error
}

// controlConnector is the handshake seam between the service and the
// control endpoint.
type controlConnector interface {
	Connect(ctx context.Context, addr string) (*ControlHandle, error)
}

// rasterRunner runs a rasterization chain against an intermediate PDF.
type rasterRunner interface {
	Run(ctx context.Context, pdfPath, outDir string, dpi int) (Outcome, error)
}

// Service converts presentations through a supervised headless engine.
// A Service is safe for sequential reuse; each conversion owns its own
// engine session.
type Service struct {
	cfg serviceConfig

	runner     CommandRunner
	supervisor engineSupervisor
	connector  controlConnector
	opener     Opener
	exporter   Exporter

	// newChain builds the rasterization chain for a live session. Kept
	// as a constructor rather than a value because the engine-native
	// fallback needs the session that only exists mid-conversion.
	newChain func(session *EngineSession) rasterRunner
}

// New creates a Service configured by the given options.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			engineBinary:   defaultEngineBinary,
			enginePort:     defaultEnginePort,
			dpi:            DefaultDPI,
			connectRetries: defaultConnectAttempts,
			stopTimeout:    defaultStopTimeout,
			toolTimeout:    popplerRunTimeout,
			logw:           io.Discard,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	// Wire defaults for anything not injected.
	if s.runner == nil {
		s.runner = &ExecRunner{}
	}
	resolver := NewResolver()
	resolver.attempts = s.cfg.connectRetries
	if s.supervisor == nil {
		sup := NewSupervisor(s.cfg.engineBinary, s.cfg.enginePort, resolver, s.logf)
		sup.stopTimeout = s.cfg.stopTimeout
		s.supervisor = sup
	}
	if s.connector == nil {
		s.connector = resolver
	}
	if s.opener == nil {
		s.opener = documentOpener{}
	}
	if s.exporter == nil {
		s.exporter = newEngineExporter(s.cfg.engineBinary, s.runner, s.logf)
	}
	if s.newChain == nil {
		s.newChain = func(session *EngineSession) rasterRunner {
			poppler := NewPopplerStrategy(s.runner)
			poppler.runTimeout = s.cfg.toolTimeout
			return NewChain(s.logf,
				poppler,
				NewFitzStrategy(),
				NewEngineStrategy(session, s.opener, s.exporter),
			)
		}
	}
	return s
}

func (s *Service) logf(format string, args ...any) {
	fmt.Fprintf(s.cfg.logw, format+"\n", args...)
}

// ConvertToPDF converts the input presentation into a single PDF at
// outputPath. The engine session is torn down on every path, success or
// failure.
func (s *Service) ConvertToPDF(ctx context.Context, inputPath, outputPath string) error {
	// Checked before any engine work: a missing input must not cost an
	// engine launch.
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	session, err := s.supervisor.Start(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.supervisor.Stop(session) }()

	handle, err := s.connector.Connect(ctx, session.Addr)
	if err != nil {
		return err
	}
	defer handle.Close()

	doc, err := s.opener.Open(ctx, session, inputPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	if err := s.exporter.Export(ctx, session, doc, NewPDFExportRequest(outputPath)); err != nil {
		return err
	}
	s.logf("wrote %s", outputPath)
	return verifyTarget(outputPath)
}

// ExportSlides converts the input presentation into one PNG per slide
// under outDir, named slide-1.png through slide-N.png. The intermediate
// PDF is removed and the engine session torn down on every path.
func (s *Service) ExportSlides(ctx context.Context, inputPath, outDir string) (Outcome, error) {
	if !fileutil.FileExists(inputPath) {
		return Outcome{}, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}
	if err := fileutil.EnsureDir(outDir); err != nil {
		return Outcome{}, err
	}

	session, err := s.supervisor.Start(ctx)
	if err != nil {
		return Outcome{}, err
	}
	defer func() { _ = s.supervisor.Stop(session) }()

	handle, err := s.connector.Connect(ctx, session.Addr)
	if err != nil {
		return Outcome{}, err
	}
	defer handle.Close()

	doc, err := s.opener.Open(ctx, session, inputPath)
	if err != nil {
		return Outcome{}, err
	}
	defer doc.Close()

	tempPDF := filepath.Join(outDir, tempPDFName)
	defer func() { _ = fileutil.RemoveIfExists(tempPDF) }()

	if err := s.exporter.Export(ctx, session, doc, NewPDFExportRequest(tempPDF)); err != nil {
		return Outcome{}, err
	}
	if err := verifyTarget(tempPDF); err != nil {
		return Outcome{}, err
	}

	size := detectPageSize(doc, tempPDF)
	s.logf("slide size %.2f x %.2f in (%s)", size.WidthInches, size.HeightInches, size.Source)

	// A previous run's slide images would corrupt the fresh sequence
	// during renaming; the directory is cleared only once the new
	// intermediate PDF is known good.
	if err := clearSlideImages(outDir); err != nil {
		return Outcome{}, err
	}

	outcome, err := s.newChain(session).Run(ctx, tempPDF, outDir, s.cfg.dpi)
	if err != nil {
		return outcome, err
	}

	files, err := verifySlides(outDir, doc.PageCount)
	if err != nil {
		return Outcome{Strategy: outcome.Strategy}, err
	}
	outcome.Files = files
	s.logf("wrote %d slide image(s) to %s", len(files), outDir)
	return outcome, nil
}
