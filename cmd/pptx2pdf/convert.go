package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	pptx2pdf "github.com/alnah/go-pptx2pdf"
	"github.com/alnah/go-pptx2pdf/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file specified")
	ErrInvalidExtension = errors.New("file must be a presentation (.pptx, .pptm, .ppsx, .ppt, .pps, .odp, .otp)")
	ErrInvalidTimeout   = errors.New("invalid timeout value")
)

// presentationExtensions lists the input formats the CLI accepts.
var presentationExtensions = map[string]bool{
	".pptx": true,
	".pptm": true,
	".ppsx": true,
	".ppt":  true,
	".pps":  true,
	".odp":  true,
	".otp":  true,
}

// Converter is the interface for the conversion service.
type Converter interface {
	ConvertToPDF(ctx context.Context, inputPath, outputPath string) error
	ExportSlides(ctx context.Context, inputPath, outDir string) (pptx2pdf.Outcome, error)
}

// Compile-time interface implementation check.
var _ Converter = (*pptx2pdf.Service)(nil)

// loadEffectiveConfig resolves the configuration for a command run:
// file config when --config is given, defaults otherwise, with CLI
// flags overriding either.
func loadEffectiveConfig(flags *convertFlags, env *Environment) (*config.Config, error) {
	cfg := env.Config
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		// LoadConfig applies env overrides itself; the default path
		// needs them applied here.
		cfg.ApplyEnv()
	}

	// CLI flags win over config values.
	if flags.engine.binary != "" {
		cfg.Engine.Binary = flags.engine.binary
	}
	if flags.engine.port != 0 {
		cfg.Engine.Port = flags.engine.port
	}
	if flags.dpi != 0 {
		cfg.Raster.DPI = flags.dpi
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newService builds the conversion service from resolved config.
func newService(cfg *config.Config, flags *convertFlags, env *Environment) *pptx2pdf.Service {
	opts := []pptx2pdf.Option{
		pptx2pdf.WithEngineBinary(cfg.Engine.Binary),
		pptx2pdf.WithEnginePort(cfg.Engine.Port),
		pptx2pdf.WithDPI(cfg.Raster.DPI),
		pptx2pdf.WithConnectRetries(cfg.Engine.ConnectRetries),
		pptx2pdf.WithStopTimeout(time.Duration(cfg.Engine.StopTimeoutSec) * time.Second),
		pptx2pdf.WithToolTimeout(time.Duration(cfg.Raster.ToolTimeoutSec) * time.Second),
	}
	if flags.common.verbose {
		opts = append(opts, pptx2pdf.WithLogWriter(env.Stderr))
	}
	return pptx2pdf.New(opts...)
}

// commandContext derives the run context from the --timeout flag.
func commandContext(timeout string) (context.Context, context.CancelFunc, error) {
	if timeout == "" {
		return context.Background(), func() {}, nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil || d <= 0 {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, timeout)
	}
	ctx, cancel := context.WithTimeout(context.Background(), d)
	return ctx, cancel, nil
}

// resolveInput validates the positional input argument.
func resolveInput(positionalArgs []string) (string, error) {
	if len(positionalArgs) == 0 {
		return "", ErrNoInput
	}
	input := positionalArgs[0]
	ext := strings.ToLower(filepath.Ext(input))
	if !presentationExtensions[ext] {
		return "", fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return input, nil
}

// baseWithoutExt returns the file name without directory or extension.
func baseWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// runConvert converts a presentation to a single PDF.
func runConvert(positionalArgs []string, flags *convertFlags, svc Converter, env *Environment) error {
	input, err := resolveInput(positionalArgs)
	if err != nil {
		return err
	}

	// Output: --output flag, second positional argument, or derived
	// from the input name.
	output := flags.output
	if output == "" && len(positionalArgs) > 1 {
		output = positionalArgs[1]
	}
	if output == "" {
		output = filepath.Join(filepath.Dir(input), baseWithoutExt(input)+".pdf")
	}

	ctx, cancel, err := commandContext(flags.timeout)
	if err != nil {
		return err
	}
	defer cancel()

	start := time.Now()
	if err := svc.ConvertToPDF(ctx, input, output); err != nil {
		return err
	}

	if flags.common.quiet {
		return nil
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", input, output, time.Since(start).Round(time.Millisecond))
	} else {
		fmt.Fprintf(env.Stdout, "Created %s\n", output)
	}
	return nil
}

// runExportSlides converts a presentation into per-slide PNG images.
func runExportSlides(positionalArgs []string, flags *convertFlags, svc Converter, env *Environment) error {
	input, err := resolveInput(positionalArgs)
	if err != nil {
		return err
	}

	outDir := flags.output
	if outDir == "" && len(positionalArgs) > 1 {
		outDir = positionalArgs[1]
	}
	if outDir == "" {
		outDir = filepath.Join(filepath.Dir(input), baseWithoutExt(input)+"_slides")
	}

	ctx, cancel, err := commandContext(flags.timeout)
	if err != nil {
		return err
	}
	defer cancel()

	start := time.Now()
	outcome, err := svc.ExportSlides(ctx, input, outDir)
	if err != nil {
		return err
	}

	if flags.common.quiet {
		return nil
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "%s -> %d slide(s) in %s via %s (%v)\n",
			input, len(outcome.Files), outDir, outcome.Strategy, time.Since(start).Round(time.Millisecond))
	} else {
		fmt.Fprintf(env.Stdout, "Created %d slide image(s) in %s\n", len(outcome.Files), outDir)
	}
	return nil
}
