package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	pptx2pdf "github.com/alnah/go-pptx2pdf"
	"github.com/alnah/go-pptx2pdf/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "generic error", err: errors.New("boom"), want: ExitGeneral},
		{name: "rasterize error", err: pptx2pdf.ErrRasterize, want: ExitGeneral},
		{name: "incomplete output", err: pptx2pdf.ErrIncompleteOutput, want: ExitGeneral},
		{name: "dependency missing", err: pptx2pdf.ErrDependencyMissing, want: ExitGeneral},
		{name: "no input", err: ErrNoInput, want: ExitUsage},
		{name: "invalid extension", err: ErrInvalidExtension, want: ExitUsage},
		{name: "invalid timeout", err: ErrInvalidTimeout, want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "config invalid", err: config.ErrConfigInvalid, want: ExitUsage},
		{name: "input not found", err: pptx2pdf.ErrInputNotFound, want: ExitIO},
		{name: "os not exist", err: os.ErrNotExist, want: ExitIO},
		{name: "os permission", err: os.ErrPermission, want: ExitIO},
		{name: "engine start", err: pptx2pdf.ErrEngineStart, want: ExitEngine},
		{name: "engine connect", err: pptx2pdf.ErrConnect, want: ExitEngine},
		{name: "open document", err: pptx2pdf.ErrOpenDocument, want: ExitEngine},
		{name: "engine export", err: pptx2pdf.ErrExport, want: ExitEngine},
		{name: "wrapped engine error", err: fmt.Errorf("converting: %w", pptx2pdf.ErrConnect), want: ExitEngine},
		{name: "wrapped io error", err: fmt.Errorf("reading: %w", pptx2pdf.ErrInputNotFound), want: ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
