package gpp

import "fmt"

// Conditional-inclusion state machine. A group runs from #ifdef or
// #ifndef to the matching #endif, optionally passing through #elifdef,
// #elifndef, and #else branches; at most one branch of a group is ever
// active. State is the pair (inactiveDepth, groupSatisfied) on the
// Context. Malformed input is tolerated: a branch command with no open
// group suppresses, and #endif underflow clamps at zero.

// cmdIfdef opens a conditional group. invert selects #ifndef.
func cmdIfdef(ctx *Context, name string, invert bool) (string, error) {
	if ctx.inactiveDepth > 0 {
		// Nested inside a suppressed group; stays suppressed no matter
		// what the test says.
		ctx.inactiveDepth++
		return "", nil
	}
	if _, defined := ctx.Macros[name]; defined == invert {
		ctx.inactiveDepth = 1
		ctx.groupSatisfied = false
	} else {
		ctx.groupSatisfied = true
	}
	return "", nil
}

// cmdElifdef handles #elifdef and #elifndef. It only reactivates when
// the directly enclosing group is suppressed at depth one, no earlier
// branch fired, and the test passes now.
func cmdElifdef(ctx *Context, name string, invert bool) (string, error) {
	switch {
	case ctx.inactiveDepth == 0:
		// The previous branch was active, so this one is skipped.
		// Also covers an elifdef with no open group.
		ctx.inactiveDepth = 1
	case ctx.inactiveDepth == 1 && !ctx.groupSatisfied:
		if _, defined := ctx.Macros[name]; defined != invert {
			ctx.inactiveDepth = 0
			ctx.groupSatisfied = true
		}
	}
	return "", nil
}

// cmdElse behaves like an elifdef whose test always passes.
func cmdElse(ctx *Context, arg string) (string, error) {
	if arg != "" {
		return "", fmt.Errorf("%w: else", ErrTooManyParameters)
	}
	switch {
	case ctx.inactiveDepth == 0:
		ctx.inactiveDepth = 1
	case ctx.inactiveDepth == 1 && !ctx.groupSatisfied:
		ctx.inactiveDepth = 0
		ctx.groupSatisfied = true
	}
	return "", nil
}

// cmdEndif closes the innermost group.
func cmdEndif(ctx *Context, arg string) (string, error) {
	if arg != "" {
		return "", fmt.Errorf("%w: endif", ErrTooManyParameters)
	}
	if ctx.inactiveDepth > 0 {
		ctx.inactiveDepth--
	}
	return "", nil
}
