// Package config loads the optional YAML configuration for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-pptx2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrEmptyConfigPath = errors.New("config path cannot be empty")
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config value")
)

// Environment variable overrides, applied after the file is read.
const (
	EnvEngineBin = "PPTX2PDF_ENGINE_BIN"
	EnvRasterDPI = "PPTX2PDF_DPI"
)

// Config holds all configuration for the conversion pipeline.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Raster RasterConfig `yaml:"raster"`
}

// EngineConfig defines how the rendering engine process is run.
type EngineConfig struct {
	Binary         string `yaml:"binary"`         // soffice binary (default: "soffice")
	Port           int    `yaml:"port"`           // control endpoint port (default: 2002)
	ConnectRetries int    `yaml:"connectRetries"` // handshake attempts (default: 10)
	StopTimeoutSec int    `yaml:"stopTimeoutSec"` // graceful shutdown wait (default: 5)
}

// RasterConfig defines slide rasterization options.
type RasterConfig struct {
	DPI            int `yaml:"dpi"`            // raster resolution (default: 150)
	ToolTimeoutSec int `yaml:"toolTimeoutSec"` // external tool bound (default: 120)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Binary:         "soffice",
			Port:           2002,
			ConnectRetries: 10,
			StopTimeoutSec: 5,
		},
		Raster: RasterConfig{
			DPI:            150,
			ToolTimeoutSec: 120,
		},
	}
}

// Validate checks that numeric fields are in usable ranges.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if c.Engine.Binary == "" {
		return fmt.Errorf("%w: engine.binary cannot be empty", ErrConfigInvalid)
	}
	if c.Engine.Port < 1 || c.Engine.Port > 65535 {
		return fmt.Errorf("%w: engine.port must be between 1 and 65535, got %d", ErrConfigInvalid, c.Engine.Port)
	}
	if c.Engine.ConnectRetries < 1 {
		return fmt.Errorf("%w: engine.connectRetries must be at least 1, got %d", ErrConfigInvalid, c.Engine.ConnectRetries)
	}
	if c.Engine.StopTimeoutSec < 1 {
		return fmt.Errorf("%w: engine.stopTimeoutSec must be at least 1, got %d", ErrConfigInvalid, c.Engine.StopTimeoutSec)
	}
	if c.Raster.DPI < 36 || c.Raster.DPI > 1200 {
		return fmt.Errorf("%w: raster.dpi must be between 36 and 1200, got %d", ErrConfigInvalid, c.Raster.DPI)
	}
	if c.Raster.ToolTimeoutSec < 1 {
		return fmt.Errorf("%w: raster.toolTimeoutSec must be at least 1, got %d", ErrConfigInvalid, c.Raster.ToolTimeoutSec)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file. Missing fields keep
// their defaults; unknown fields are rejected. Returns an error if the
// file is not found (no silent fallback).
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyConfigPath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides config fields from environment variables.
// Invalid numeric values are ignored; validation catches out-of-range
// results afterwards.
func (c *Config) ApplyEnv() {
	if bin := os.Getenv(EnvEngineBin); bin != "" {
		c.Engine.Binary = bin
	}
	if dpi := os.Getenv(EnvRasterDPI); dpi != "" {
		var n int
		if _, err := fmt.Sscanf(dpi, "%d", &n); err == nil && n > 0 {
			c.Raster.DPI = n
		}
	}
}
