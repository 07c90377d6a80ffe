package gpp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// substituteMacros expands every macro occurrence in a line of plain
// text. After each single replacement the whole line is rescanned from
// the start, so replacement text is itself subject to substitution. A
// macro whose value contains its own name never terminates; that is an
// accepted property of the design, not guarded against here.
func substituteMacros(line string, macros map[string]string) string {
	for {
		next, ok := replaceNextMacro(line, macros)
		if !ok {
			return line
		}
		line = next
	}
}

// replaceNextMacro replaces one macro occurrence and reports whether a
// replacement happened.
//
// The occurrence chosen is deterministic: the leftmost whole-word
// match of any macro name wins; ties at the same position go to the
// longest name, then to the lexicographically smallest. Callers must
// not depend on the tie-break beyond determinism.
func replaceNextMacro(line string, macros map[string]string) (string, bool) {
	bestIndex := -1
	bestName := ""
	for name := range macros {
		if name == "" {
			continue
		}
		index := findWholeWord(line, name)
		if index < 0 {
			continue
		}
		switch {
		case bestIndex < 0 || index < bestIndex:
		case index > bestIndex:
			continue
		case len(name) > len(bestName):
		case len(name) < len(bestName):
			continue
		case name >= bestName:
			continue
		}
		bestIndex = index
		bestName = name
	}
	if bestIndex < 0 {
		return "", false
	}
	return line[:bestIndex] + macros[bestName] + line[bestIndex+len(bestName):], true
}

// findWholeWord returns the byte offset of the first occurrence of
// name in line that stands as a whole word, or -1. Occurrences that
// fail the boundary check are skipped, not fatal: "AFooB Foo" still
// matches the second Foo.
func findWholeWord(line, name string) int {
	for from := 0; ; {
		i := strings.Index(line[from:], name)
		if i < 0 {
			return -1
		}
		index := from + i
		if hasWordBoundaries(line, index, len(name)) {
			return index
		}
		from = index + 1
	}
}

// hasWordBoundaries reports whether the match at [pos, pos+length) is
// flanked by characters that are neither alphanumeric nor underscore.
// Matches at the start or end of the string qualify.
func hasWordBoundaries(s string, pos, length int) bool {
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:pos])
		if isWordChar(r) {
			return false
		}
	}
	if pos+length < len(s) {
		r, _ := utf8.DecodeRuneInString(s[pos+length:])
		if isWordChar(r) {
			return false
		}
	}
	return true
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
