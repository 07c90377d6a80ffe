package gpp

import (
	"fmt"
	"strings"
)

// commandMarker introduces a command at the (trimmed) start of a line.
// Doubling it escapes the command syntax and emits one literal marker.
const commandMarker = "#"

// commandSpec is one entry in the fixed command registry.
type commandSpec struct {
	// needsExec marks commands that are only recognized when the
	// Context was created with exec permission. Without it the name is
	// an invalid command, not a silent no-op.
	needsExec bool

	// runsWhileInactive marks the commands that are still processed
	// while a failed conditional is suppressing output. Only the
	// conditional controls themselves qualify; everything else is
	// skipped without side effects.
	runsWhileInactive bool

	handler func(ctx *Context, arg string) (string, error)
}

var commands map[string]commandSpec

func init() {
	commands = map[string]commandSpec{
		"define":   {handler: cmdDefine},
		"undef":    {handler: cmdUndef},
		"include":  {handler: cmdInclude},
		"ifdef":    {runsWhileInactive: true, handler: ifdefHandler(false)},
		"ifndef":   {runsWhileInactive: true, handler: ifdefHandler(true)},
		"elifdef":  {runsWhileInactive: true, handler: elifdefHandler(false)},
		"elifndef": {runsWhileInactive: true, handler: elifdefHandler(true)},
		"else":     {runsWhileInactive: true, handler: cmdElse},
		"endif":    {runsWhileInactive: true, handler: cmdEndif},
		"exec":     {needsExec: true, handler: cmdExec},
		"in":       {needsExec: true, handler: cmdIn},
		"endin":    {needsExec: true, handler: cmdEndin},
	}
}

func ifdefHandler(invert bool) func(*Context, string) (string, error) {
	return func(ctx *Context, arg string) (string, error) {
		return cmdIfdef(ctx, arg, invert)
	}
}

func elifdefHandler(invert bool) func(*Context, string) (string, error) {
	return func(ctx *Context, arg string) (string, error) {
		return cmdElifdef(ctx, arg, invert)
	}
}

// ProcessLine processes a single line of text, which must not contain
// a line terminator except possibly a trailing one. It returns the
// line's contribution to the output: plain text comes back with
// exactly one trailing newline, while commands and suppressed lines
// contribute the empty string. While an #in block is open, the
// contribution is redirected to the innermost child's input and
// ProcessLine returns the empty string instead.
func ProcessLine(line string, ctx *Context) (string, error) {
	out, err := processLine(line, ctx)
	if err != nil {
		return "", err
	}
	if out != "" && len(ctx.pipes) > 0 {
		if err := ctx.pipes[len(ctx.pipes)-1].write(out); err != nil {
			return "", err
		}
		return "", nil
	}
	return out, nil
}

// processLine computes a line's immediate output, before pipe routing.
func processLine(line string, ctx *Context) (string, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, commandMarker) {
		if strings.HasPrefix(trimmed, commandMarker+commandMarker) {
			// Literal escape: drop one marker, keep the indentation,
			// and treat the rest as plain text.
			line = strings.Replace(line, commandMarker, "", 1)
		} else {
			return dispatchCommand(trimmed[len(commandMarker):], ctx)
		}
	}

	if ctx.inactiveDepth > 0 {
		return "", nil
	}
	line = substituteMacros(line, ctx.Macros)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	return line, nil
}

// dispatchCommand parses the text after the marker into a command name
// and argument, then routes it through the registry. Whitespace is
// allowed between the marker and the name; the argument is the rest of
// the line with leading whitespace trimmed.
func dispatchCommand(afterMarker string, ctx *Context) (string, error) {
	name, arg, _ := strings.Cut(strings.TrimLeft(afterMarker, " \t"), " ")
	arg = strings.TrimLeft(arg, " \t")

	spec, known := commands[name]
	if !known || (spec.needsExec && !ctx.allowExec) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCommand, name)
	}
	if ctx.inactiveDepth > 0 && !spec.runsWhileInactive {
		return "", nil
	}
	return spec.handler(ctx, arg)
}

// cmdDefine binds a macro. The argument splits on the first space:
// everything before it is the name, everything after it (verbatim) is
// the value. With no space the value is the empty string, which still
// satisfies #ifdef.
func cmdDefine(ctx *Context, arg string) (string, error) {
	name, value, _ := strings.Cut(arg, " ")
	ctx.Macros[name] = value
	return "", nil
}

// cmdUndef removes a macro. Undefining an unknown name is not an
// error.
func cmdUndef(ctx *Context, arg string) (string, error) {
	delete(ctx.Macros, arg)
	return "", nil
}

// cmdInclude splices the fully processed contents of another file in
// place of the #include line. The included file shares this Context,
// and its path resolves against the process working directory, not the
// including file's directory. Errors inside it arrive already wrapped
// with the included file's own location and are re-wrapped by the
// including stream.
func cmdInclude(ctx *Context, arg string) (string, error) {
	return ProcessFile(arg, ctx)
}
