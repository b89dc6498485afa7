package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// doctorProbeTimeout bounds each version probe.
const doctorProbeTimeout = 5 * time.Second

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Engine   engineInfo `json:"engine"`
	Raster   rasterInfo `json:"raster"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// engineInfo holds engine binary detection results.
type engineInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// rasterInfo holds rasterizer tool detection results.
type rasterInfo struct {
	PdftoppmFound bool   `json:"pdftoppm_found"`
	PdftoppmPath  string `json:"pdftoppm_path,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	EngineBin string `json:"pptx2pdf_engine_bin"`
	DPI       string `json:"pptx2pdf_dpi"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			EngineBin: os.Getenv("PPTX2PDF_ENGINE_BIN"),
			DPI:       os.Getenv("PPTX2PDF_DPI"),
		},
	}

	checkEngine(result, env.Config.Engine.Binary)
	checkRasterTools(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkEngine detects the conversion engine binary.
func checkEngine(result *doctorResult, binary string) {
	if result.Env.EngineBin != "" {
		binary = result.Env.EngineBin
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("engine binary %q not found. Install LibreOffice or set PPTX2PDF_ENGINE_BIN", binary))
		return
	}
	result.Engine.Found = true
	result.Engine.Path = path

	ctx, cancel := context.WithTimeout(context.Background(), doctorProbeTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("engine found but version probe failed: %v", err))
		return
	}
	result.Engine.Version = strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
}

// checkRasterTools detects external rasterization tools. A missing
// pdftoppm is only a warning: the built-in rasterizer covers for it.
func checkRasterTools(result *doctorResult) {
	path, err := exec.LookPath("pdftoppm")
	if err != nil {
		result.Warnings = append(result.Warnings,
			"pdftoppm not found; slide export falls back to the built-in rasterizer")
		return
	}
	result.Raster.PdftoppmFound = true
	result.Raster.PdftoppmPath = path
}

// checkSystem verifies the temp directory is writable, which both the
// engine profile and the rasterization chain depend on.
func checkSystem(result *doctorResult) {
	f, err := os.CreateTemp("", "pptx2pdf-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("temp directory not writable: %v", err))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.System.TempWritable = true
}

// printDoctorResult renders the diagnostic report as text.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "Status: %s\n\n", result.Status)

	fmt.Fprintln(w, "Engine:")
	if result.Engine.Found {
		fmt.Fprintf(w, "  found: %s\n", result.Engine.Path)
		if result.Engine.Version != "" {
			fmt.Fprintf(w, "  version: %s\n", result.Engine.Version)
		}
	} else {
		fmt.Fprintln(w, "  not found")
	}

	fmt.Fprintln(w, "Rasterizer:")
	if result.Raster.PdftoppmFound {
		fmt.Fprintf(w, "  pdftoppm: %s\n", result.Raster.PdftoppmPath)
	} else {
		fmt.Fprintln(w, "  pdftoppm: not found (built-in rasterizer will be used)")
	}

	fmt.Fprintln(w, "System:")
	fmt.Fprintf(w, "  temp writable: %v\n", result.System.TempWritable)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\nWARNING: %s\n", warning)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(w, "\nERROR: %s\n", e)
	}
}
