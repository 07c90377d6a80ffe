package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	gpp "github.com/alnah/go-gpp"
	"github.com/alnah/go-gpp/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"preprocessing error", fmt.Errorf("%w: %q", gpp.ErrInvalidCommand, "x"), ExitGeneral},
		{"wrapped line error", &gpp.LineError{Source: "<stdin>", Line: 0, Err: gpp.ErrTooManyParameters}, ExitGeneral},
		{"child failure", gpp.ErrChildProcessFailed, ExitGeneral},
		{"preset not found", fmt.Errorf("%w: site.yaml", config.ErrPresetNotFound), ExitUsage},
		{"preset parse", config.ErrPresetParse, ExitUsage},
		{"empty define", ErrEmptyMacroDefine, ExitUsage},
		{"missing input", fmt.Errorf("opening x: %w", os.ErrNotExist), ExitIO},
		{"write failure", ErrWriteOutput, ExitIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.err))
		})
	}
}
