package main

import (
	"errors"
	"os"

	"github.com/alnah/go-gpp/internal/config"
)

// Exit codes for the gpp CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Output written
	ExitGeneral = 1 // Preprocessing error
	ExitUsage   = 2 // Invalid flags or preset
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrCreateOutput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/preset errors (exit 2)
	if errors.Is(err, config.ErrEmptyPresetName) ||
		errors.Is(err, config.ErrPresetNotFound) ||
		errors.Is(err, config.ErrPresetParse) ||
		errors.Is(err, config.ErrPresetTooLarge) ||
		errors.Is(err, config.ErrInvalidMacroName) ||
		errors.Is(err, ErrEmptyMacroDefine) {
		return ExitUsage
	}

	return ExitGeneral
}
