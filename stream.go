package gpp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// stringSource labels errors from ProcessString, which has no file
// path to report.
const stringSource = "<string>"

// maxLineSize bounds a single input line (1 MiB). bufio.Scanner's
// default token limit is too small for generated input.
const maxLineSize = 1 << 20

// ProcessString preprocesses a multi-line string and returns the
// transformed text. Errors are located with the "<string>" label.
func ProcessString(s string, ctx *Context) (string, error) {
	return processLines(strings.NewReader(s), stringSource, ctx)
}

// ProcessReader preprocesses a line-buffered stream. The source label
// is used to locate errors, e.g. "<stdin>".
func ProcessReader(r io.Reader, source string, ctx *Context) (string, error) {
	return processLines(r, source, ctx)
}

// ProcessFile preprocesses a named file. The path is opened relative
// to the process working directory; #include uses this entry point, so
// include paths resolve against that same fixed directory, never
// against the including file's own location. The path doubles as the
// error source label.
func ProcessFile(path string, ctx *Context) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- include paths are document-provided by design
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return processLines(f, path, ctx)
}

// processLines drives the per-line processor over a stream,
// concatenating each line's contribution. The first error aborts the
// remaining lines and is wrapped with the source label and 0-based
// line number; partial output is discarded.
func processLines(r io.Reader, source string, ctx *Context) (string, error) {
	var out strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		processed, err := ProcessLine(scanner.Text(), ctx)
		if err != nil {
			return "", &LineError{Source: source, Line: line, Err: err}
		}
		out.WriteString(processed)
		line++
	}
	if err := scanner.Err(); err != nil {
		return "", &LineError{Source: source, Line: line, Err: err}
	}
	return out.String(), nil
}
