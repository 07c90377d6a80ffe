package gpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteMacros_WordBoundaries(t *testing.T) {
	macros := map[string]string{"Foo": "Bar"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"whole line", "Foo", "Bar"},
		{"inside identifier", "AFooB", "AFooB"},
		{"trailing underscore", "Foo_", "Foo_"},
		{"leading underscore", "_Foo", "_Foo"},
		{"between words", "One Foo Two", "One Bar Two"},
		{"punctuation flanks", "(Foo)", "(Bar)"},
		{"digit flank", "Foo9", "Foo9"},
		{"unicode letter flank", "éFooé", "éFooé"},
		{"later occurrence still matches", "AFooB Foo", "AFooB Bar"},
		{"multiple occurrences", "Foo Foo", "Bar Bar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, substituteMacros(tt.in, macros))
		})
	}
}

func TestSubstituteMacros_Recursive(t *testing.T) {
	macros := map[string]string{
		"A": "B one",
		"B": "two",
	}
	assert.Equal(t, "two one", substituteMacros("A", macros))
}

func TestSubstituteMacros_Idempotent(t *testing.T) {
	macros := map[string]string{"Foo": "Bar", "N": "42"}

	inputs := []string{"Foo and N", "nothing here", "AFooB", ""}
	for _, in := range inputs {
		once := substituteMacros(in, macros)
		assert.Equal(t, once, substituteMacros(once, macros), "input %q", in)
	}
}

func TestReplaceNextMacro_LeftmostWins(t *testing.T) {
	macros := map[string]string{"Right": "r", "Left": "l"}

	out, ok := replaceNextMacro("x Left Right", macros)
	assert.True(t, ok)
	assert.Equal(t, "x l Right", out)
}

func TestReplaceNextMacro_TieBreakLongestName(t *testing.T) {
	// Both names match at the same offset: "Foo" is a whole word there
	// because '-' is not a word character.
	macros := map[string]string{"Foo": "short", "Foo-Bar": "long"}

	out, ok := replaceNextMacro("Foo-Bar", macros)
	assert.True(t, ok)
	assert.Equal(t, "long", out)
}

func TestReplaceNextMacro_NoMatch(t *testing.T) {
	macros := map[string]string{"Foo": "Bar"}

	_, ok := replaceNextMacro("nothing to do", macros)
	assert.False(t, ok)

	_, ok = replaceNextMacro("AFooB", macros)
	assert.False(t, ok)
}

func TestSubstituteMacros_EmptyValueDisappears(t *testing.T) {
	macros := map[string]string{"Gone": ""}
	assert.Equal(t, "before  after", substituteMacros("before Gone after", macros))
}
