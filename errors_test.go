package gpp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineErrorFormat(t *testing.T) {
	err := &LineError{
		Source: "file.txt",
		Line:   3,
		Err:    fmt.Errorf("%w: %q", ErrInvalidCommand, "bogus"),
	}
	assert.Equal(t, `file.txt:3: invalid command: "bogus"`, err.Error())
}

func TestLineErrorNesting(t *testing.T) {
	inner := &LineError{Source: "leaf.txt", Line: 0, Err: ErrTooManyParameters}
	outer := &LineError{Source: "root.txt", Line: 7, Err: inner}

	assert.Equal(t, "root.txt:7: leaf.txt:0: too many parameters", outer.Error())
	assert.ErrorIs(t, outer, ErrTooManyParameters)

	var got *LineError
	assert.True(t, errors.As(outer.Err, &got))
	assert.Equal(t, "leaf.txt", got.Source)
}
