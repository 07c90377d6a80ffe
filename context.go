package gpp

import "fmt"

// Context holds all mutable state for one preprocessing session: the
// macro table, the conditional-inclusion state, the exec permission,
// and the stack of child processes opened by #in.
//
// A Context persists across process calls, so macros defined while
// processing one input remain visible to the next. Included files
// share the Context of the including file; there is no per-file macro
// scope. A Context must not be used from multiple goroutines.
type Context struct {
	// Macros maps macro names to their replacement text. Callers may
	// populate it directly; names added this way are not limited to
	// what #define can parse, but substitution still requires them to
	// stand as whole words in the text.
	Macros map[string]string

	// inactiveDepth counts enclosing conditional groups that are
	// currently suppressing output. Zero means lines are emitted.
	inactiveDepth int

	// groupSatisfied records whether some branch of the current
	// conditional group has already been taken, which keeps later
	// #elifdef/#else branches from reactivating. Groups cannot
	// interleave, so a single flag suffices.
	groupSatisfied bool

	// allowExec gates the #exec, #in, and #endin commands.
	allowExec bool

	// pipes is the stack of open #in children, innermost last.
	pipes []*pipedChild
}

// Option configures a Context at creation.
type Option func(*Context)

// WithExec enables the #exec, #in, and #endin commands. Without it
// they are reported as invalid commands.
func WithExec() Option {
	return func(c *Context) { c.allowExec = true }
}

// WithMacros seeds the macro table. The map is copied.
func WithMacros(macros map[string]string) Option {
	return func(c *Context) {
		for name, value := range macros {
			c.Macros[name] = value
		}
	}
}

// New creates an empty Context. By default the exec command family is
// disabled.
func New(opts ...Option) *Context {
	c := &Context{Macros: make(map[string]string)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewWithExec is shorthand for New(WithExec()).
func NewWithExec() *Context {
	return New(WithExec())
}

// Close releases any child processes still open on the pipe stack.
// Every #in should be matched by an #endin before the session ends;
// children found here were abandoned, so Close kills and reaps them
// and reports ErrAbandonedPipes with the count. A clean Context
// returns nil. Close is idempotent.
func (c *Context) Close() error {
	if len(c.pipes) == 0 {
		return nil
	}
	abandoned := len(c.pipes)
	for i := abandoned - 1; i >= 0; i-- {
		c.pipes[i].abandon()
	}
	c.pipes = nil
	return fmt.Errorf("%w: %d unterminated", ErrAbandonedPipes, abandoned)
}
