package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	gpp "github.com/alnah/go-gpp"
	"github.com/alnah/go-gpp/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrEmptyMacroDefine = errors.New("macro name cannot be empty")
	ErrCreateOutput     = errors.New("failed to create output file")
	ErrWriteOutput      = errors.New("failed to write output")
)

// Reserved input conventions: "-" reads standard input, and an
// argument starting with ":" is literal text to preprocess rather
// than a path.
const (
	stdinName     = "-"
	stdinLabel    = "<stdin>"
	literalPrefix = ":"
)

// run builds a Context from the flags, preprocesses each input in
// order through that shared Context, and writes the combined output.
func run(flags *cliFlags, inputs []string, stdin io.Reader, stdout io.Writer) error {
	ctx, err := buildContext(flags)
	if err != nil {
		return err
	}
	// Cleanup for early returns; the success path re-runs Close below
	// to surface abandoned #in blocks. Close is idempotent.
	defer func() { _ = ctx.Close() }()

	out, closeOut, err := openOutput(flags.output, stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}
	for _, input := range inputs {
		text, err := processInput(input, stdin, ctx)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, text); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	return ctx.Close()
}

// processInput routes one input argument to the matching engine entry
// point.
func processInput(input string, stdin io.Reader, ctx *gpp.Context) (string, error) {
	switch {
	case input == stdinName:
		return gpp.ProcessReader(stdin, stdinLabel, ctx)
	case strings.HasPrefix(input, literalPrefix):
		return gpp.ProcessString(strings.TrimPrefix(input, literalPrefix), ctx)
	default:
		return gpp.ProcessFile(input, ctx)
	}
}

// buildContext assembles the Context from preset and flags: preset
// macros first, then -D overrides; --allow-exec ORs with the preset.
func buildContext(flags *cliFlags) (*gpp.Context, error) {
	macros := make(map[string]string)
	allowExec := flags.allowExec

	if flags.config != "" {
		preset, err := config.Load(flags.config)
		if err != nil {
			return nil, err
		}
		for name, value := range preset.Macros {
			macros[name] = value
		}
		allowExec = allowExec || preset.AllowExec
	}

	for _, define := range flags.defines {
		name, value, _ := strings.Cut(define, "=")
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyMacroDefine, define)
		}
		macros[name] = value
	}

	opts := []gpp.Option{gpp.WithMacros(macros)}
	if allowExec {
		opts = append(opts, gpp.WithExec())
	}
	return gpp.New(opts...), nil
}

// openOutput returns the sink for processed text: the named file if
// --output was given, otherwise the provided default writer.
func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path) // #nosec G304 -- output path is user-provided
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCreateOutput, err)
	}
	return f, func() { _ = f.Close() }, nil
}
