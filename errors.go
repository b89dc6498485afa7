package pptx2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrInputNotFound     = errors.New("input file not found")
	ErrEngineStart       = errors.New("failed to start conversion engine")
	ErrConnect           = errors.New("failed to connect to conversion engine")
	ErrOpenDocument      = errors.New("failed to open document")
	ErrExport            = errors.New("engine export failed")
	ErrDependencyMissing = errors.New("required dependency unavailable")
	ErrIncompleteOutput  = errors.New("conversion produced incomplete output")
	ErrRasterize         = errors.New("rasterization failed")
)
