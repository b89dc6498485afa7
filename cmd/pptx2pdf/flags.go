package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// engineFlags holds engine process flags.
type engineFlags struct {
	binary string
	port   int
}

// convertFlags holds all flags for the convert and export-slides
// commands. The two commands share a flag surface; dpi only affects
// export-slides.
type convertFlags struct {
	common  commonFlags
	engine  engineFlags
	output  string
	dpi     int
	timeout string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show engine and rasterizer diagnostics")
}

// addEngineFlags adds engine flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVar(&f.binary, "engine-bin", "", "engine executable (default: soffice)")
	fs.IntVar(&f.port, "port", 0, "engine control port (default: 2002)")
}

// parseConvertFlags parses convert-family command flags and returns
// positional args. name selects the usage text ("convert" or
// "export-slides").
func parseConvertFlags(name string, args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVar(&f.dpi, "dpi", 0, "raster resolution for slide images (default: 150)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "overall conversion timeout (e.g., 90s, 5m)")

	addCommonFlags(fs, &f.common)
	addEngineFlags(fs, &f.engine)

	fs.Usage = func() { printCommandUsage(os.Stderr, name) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
