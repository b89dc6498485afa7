package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pptx2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert        Convert a presentation to a single PDF")
	fmt.Fprintln(w, "  export-slides  Export each slide as a PNG image")
	fmt.Fprintln(w, "  doctor         Check engine and rasterizer availability")
	fmt.Fprintln(w, "  version        Show version information")
	fmt.Fprintln(w, "  help           Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pptx2pdf help <command>' for details on a specific command.")
}

// printCommandUsage prints usage for the convert-family commands.
func printCommandUsage(w io.Writer, name string) {
	switch name {
	case "convert":
		fmt.Fprintln(w, "Usage: pptx2pdf convert <input> [output.pdf] [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Convert a presentation to a single PDF.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Arguments:")
		fmt.Fprintln(w, "  input    Presentation file (.pptx, .pptm, .ppsx, .ppt, .pps, .odp, .otp)")
		fmt.Fprintln(w, "  output   Target PDF (default: input name with .pdf)")
	case "export-slides":
		fmt.Fprintln(w, "Usage: pptx2pdf export-slides <input> [output_dir] [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Export each slide as slide-1.png .. slide-N.png.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Arguments:")
		fmt.Fprintln(w, "  input       Presentation file (.pptx, .pptm, .ppsx, .ppt, .pps, .odp, .otp)")
		fmt.Fprintln(w, "  output_dir  Target directory, created if absent (default: <input>_slides)")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (convert) or directory (export-slides)")
	fmt.Fprintln(w, "  -c, --config <path>       Config file path")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Overall timeout (e.g., 90s, 5m)")
	fmt.Fprintln(w, "      --engine-bin <path>   Engine executable (default: soffice)")
	fmt.Fprintln(w, "      --port <n>            Engine control port (default: 2002)")
	fmt.Fprintln(w, "      --dpi <n>             Raster resolution for slide images (default: 150)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show engine and rasterizer diagnostics")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert", "export-slides":
		printCommandUsage(env.Stdout, args[0])
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: pptx2pdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that the conversion engine and rasterizer tools are available.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pptx2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: pptx2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
