package pptx2pdf

import (
	"io"
	"time"
)

// Raster defaults.
const (
	// DefaultDPI balances quality against file size for slide images.
	DefaultDPI = 150

	MinDPI = 36
	MaxDPI = 1200
)

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	engineBinary   string
	enginePort     int
	dpi            int
	connectRetries int
	stopTimeout    time.Duration
	toolTimeout    time.Duration
	logw           io.Writer
}

// WithEngineBinary sets the engine executable to launch.
// Panics if the path is empty (programmer error).
func WithEngineBinary(path string) Option {
	if path == "" {
		panic("pptx2pdf: WithEngineBinary path must not be empty")
	}
	return func(s *Service) {
		s.cfg.engineBinary = path
	}
}

// WithEnginePort sets the control endpoint port.
// Panics if the port is out of range (programmer error).
func WithEnginePort(port int) Option {
	if port < 1 || port > 65535 {
		panic("pptx2pdf: WithEnginePort port must be between 1 and 65535")
	}
	return func(s *Service) {
		s.cfg.enginePort = port
	}
}

// WithDPI sets the rasterization resolution for slide export.
// Panics if the value is out of range (programmer error).
func WithDPI(dpi int) Option {
	if dpi < MinDPI || dpi > MaxDPI {
		panic("pptx2pdf: WithDPI value out of range")
	}
	return func(s *Service) {
		s.cfg.dpi = dpi
	}
}

// WithConnectRetries sets the control endpoint handshake budget.
// Panics if the count is not positive (programmer error).
func WithConnectRetries(n int) Option {
	if n < 1 {
		panic("pptx2pdf: WithConnectRetries count must be at least 1")
	}
	return func(s *Service) {
		s.cfg.connectRetries = n
	}
}

// WithStopTimeout sets the graceful shutdown wait before the engine
// process group is force-killed. Panics if not positive (programmer
// error).
func WithStopTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pptx2pdf: WithStopTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.stopTimeout = d
	}
}

// WithToolTimeout bounds each external rasterizer tool run. Panics if
// not positive (programmer error).
func WithToolTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pptx2pdf: WithToolTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.toolTimeout = d
	}
}

// WithLogWriter directs diagnostic narration to w. Diagnostics are a
// side channel: nothing in the pipeline reads them back. By default
// they are discarded.
func WithLogWriter(w io.Writer) Option {
	if w == nil {
		panic("pptx2pdf: WithLogWriter writer must not be nil")
	}
	return func(s *Service) {
		s.cfg.logw = w
	}
}
