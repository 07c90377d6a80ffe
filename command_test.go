package gpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralHashEscape(t *testing.T) {
	ctx := New()
	ctx.Macros["Foo"] = "Bar"

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"escaped command", "##define x", "#define x\n"},
		{"indentation kept", "  ## note", "  # note\n"},
		{"triple marker", "###", "##\n"},
		{"substitution still applies", "##Foo Foo", "#Bar Bar\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ProcessLine(tt.in, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestUnknownCommandErrors(t *testing.T) {
	_, err := ProcessLine("#bogus", New())
	assert.ErrorIs(t, err, ErrInvalidCommand)

	_, err = ProcessLine("#", New())
	assert.ErrorIs(t, err, ErrInvalidCommand)
}

func TestExecFamilyInvalidWithoutPermission(t *testing.T) {
	for _, line := range []string{"#exec echo hi", "#in cat", "#endin"} {
		_, err := ProcessLine(line, New())
		assert.ErrorIs(t, err, ErrInvalidCommand, "line %q", line)
	}
}

func TestDefine(t *testing.T) {
	ctx := New()

	out, err := ProcessString("#define Baz Quux\nBaz", ctx)
	require.NoError(t, err)
	assert.Equal(t, "Quux\n", out)
	assert.Equal(t, "Quux", ctx.Macros["Baz"])
}

func TestDefineWithoutValueBindsEmpty(t *testing.T) {
	ctx := New()

	_, err := ProcessString("#define Flag", ctx)
	require.NoError(t, err)

	value, defined := ctx.Macros["Flag"]
	require.True(t, defined)
	assert.Equal(t, "", value)

	// An empty-valued macro still satisfies #ifdef and vanishes from
	// plain text.
	out, err := ProcessString("#ifdef Flag\nFlag set\n#endif", ctx)
	require.NoError(t, err)
	assert.Equal(t, " set\n", out)
}

func TestDefineValueKeepsSpacesVerbatim(t *testing.T) {
	ctx := New()

	_, err := ProcessString("#define Name  spaced  out ", ctx)
	require.NoError(t, err)
	assert.Equal(t, " spaced  out ", ctx.Macros["Name"])
}

func TestDefineOverwrites(t *testing.T) {
	ctx := New()

	_, err := ProcessString("#define X one\n#define X two", ctx)
	require.NoError(t, err)
	assert.Equal(t, "two", ctx.Macros["X"])
}

func TestUndef(t *testing.T) {
	out, err := ProcessString("#define Baz Quux\n#undef Baz\nBaz", New())
	require.NoError(t, err)
	assert.Equal(t, "Baz\n", out)
}

func TestUndefUnknownNameIsNotAnError(t *testing.T) {
	_, err := ProcessString("#undef NeverDefined", New())
	assert.NoError(t, err)
}

func TestWhitespaceAroundMarkerAndName(t *testing.T) {
	out, err := ProcessString(" # define Baz Quux\nBaz", New())
	require.NoError(t, err)
	assert.Equal(t, "Quux\n", out)
}

func TestPlainTextPassesThrough(t *testing.T) {
	out, err := ProcessLine("no commands here", New())
	require.NoError(t, err)
	assert.Equal(t, "no commands here\n", out)
}

func TestProcessLineStripsOneTrailingTerminator(t *testing.T) {
	ctx := New()

	out, err := ProcessLine("text\n", ctx)
	require.NoError(t, err)
	assert.Equal(t, "text\n", out)

	out, err = ProcessLine("text\r\n", ctx)
	require.NoError(t, err)
	assert.Equal(t, "text\n", out)
}
