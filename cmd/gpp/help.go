package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gpp [flags] [file ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A generic text preprocessor.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file    Input files, processed in order with shared macros.")
	fmt.Fprintln(w, "          \"-\" reads stdin; an argument starting with \":\" is")
	fmt.Fprintln(w, "          literal text to preprocess. Default: \"-\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Preset file name or path")
	fmt.Fprintln(w, "  -D, --define <NAME[=V]>   Define a macro (repeatable)")
	fmt.Fprintln(w, "  -e, --allow-exec          Allow the #exec and #in commands")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
