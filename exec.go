package gpp

import (
	"errors"
	"fmt"
	"os/exec"
	"unicode/utf8"

	"github.com/alnah/go-gpp/internal/shell"
)

// cmdExec runs the argument through the platform shell and waits for
// it to finish. Its captured standard output becomes the line's
// output; standard error is discarded, not shown. A non-zero exit is
// an error.
func cmdExec(ctx *Context, arg string) (string, error) {
	out, err := shell.Command(arg).Output()
	if err != nil {
		return "", childWaitError(arg, err)
	}
	return decodeChildOutput(out)
}

// childWaitError maps a Run/Wait failure to the right error kind:
// non-zero exits become ErrChildProcessFailed carrying the status,
// anything else (spawn failure, I/O) is wrapped as-is.
func childWaitError(command string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%w: exit status %d", ErrChildProcessFailed, exitErr.ExitCode())
	}
	return fmt.Errorf("running %q: %w", command, err)
}

// decodeChildOutput validates that captured child output is UTF-8
// text.
func decodeChildOutput(out []byte) (string, error) {
	if !utf8.Valid(out) {
		return "", ErrTextDecode
	}
	return string(out), nil
}
