package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the gpp binary.
type cliFlags struct {
	allowExec   bool
	output      string
	config      string
	defines     []string
	showVersion bool
}

// parseFlags parses the command line and returns the flags plus the
// positional input arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("gpp", flag.ContinueOnError)
	f := &cliFlags{}

	fs.BoolVarP(&f.allowExec, "allow-exec", "e", false, "allow the #exec and #in commands")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.StringVarP(&f.config, "config", "c", "", "preset file name or path")
	fs.StringArrayVarP(&f.defines, "define", "D", nil, "define a macro: NAME or NAME=VALUE (repeatable)")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
