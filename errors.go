package gpp

import (
	"errors"
	"fmt"
)

// Sentinel errors for preprocessing operations.
var (
	ErrInvalidCommand     = errors.New("invalid command")
	ErrTooManyParameters  = errors.New("too many parameters")
	ErrUnexpectedCommand  = errors.New("unexpected command")
	ErrChildProcessFailed = errors.New("child process failed")
	ErrPipeSetup          = errors.New("failed to set up child process pipe")
	ErrTextDecode         = errors.New("child process output is not valid UTF-8")
	ErrAbandonedPipes     = errors.New("context closed with open #in blocks")
)

// LineError wraps an error with the source label and 0-based line
// number where it occurred. Errors inside an #include chain nest: the
// innermost LineError carries the included file's own location, and
// each including stream re-wraps with its own.
type LineError struct {
	// Source identifies the input: a file path, "<string>", or the
	// label given to ProcessReader.
	Source string
	// Line is the 0-based line number within Source.
	Line int
	// Err is the underlying cause, possibly another *LineError.
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
