// Package gpp is a generic, language-agnostic text preprocessor.
//
// It rewrites an input text stream line by line: named macros are
// expanded into plain text, #ifdef-style conditionals include or
// suppress regions based on macro existence, #include splices other
// files in place, and (when explicitly enabled) #exec and #in/#endin
// pipe text through external shell commands.
//
// Lines starting with # (after leading whitespace) are commands:
//
//	#define NAME [VALUE]
//	#undef NAME
//	#include PATH
//	#ifdef NAME / #ifndef NAME / #elifdef NAME / #elifndef NAME / #else / #endif
//	#exec CMD
//	#in CMD ... #endin
//
// A doubled marker (##) escapes the command syntax and emits a single
// literal #. Everything else is plain text, subject to macro
// substitution: each occurrence of a defined macro name that stands as
// a whole word (not flanked by letters, digits, or underscores) is
// replaced by its value, rescanning from the start of the line after
// every replacement. Substitution is recursive; a macro whose value
// contains its own name will not terminate.
//
// All state lives in a Context, which persists across calls so macros
// defined by one document are visible to the next:
//
//	ctx := gpp.New()
//	out, err := gpp.ProcessString("#define Name World\nHello Name!", ctx)
//	// out == "Hello Name!\n" with Name expanded to World
//
// Only existence tests are supported: there is no #if expression
// evaluation and no function-style macros with parameters.
package gpp
