package testcase

import (
	"strconv"
	"sync/atomic"
)

// Context is a registration context. It owns the counter used to name
// anonymous test cases, so numbering is monotonic per context rather than
// per process. A Context is safe for concurrent use.
type Context struct {
	anonymous    atomic.Uint64
	filenameTags bool
}

// Option configures a Context.
type Option func(*Context)

// WithFilenameTags makes every test case registered through the context
// carry a "#<file stem>" tag derived from its source location.
func WithFilenameTags() Option {
	return func(c *Context) {
		c.filenameTags = true
	}
}

// NewContext creates a registration context.
func NewContext(opts ...Option) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registered returns how many anonymous numbers the context has used.
func (c *Context) Registered() uint64 {
	return c.anonymous.Load()
}

// anonymousName hands out the next anonymous name. Numbers whose name is
// taken are skipped.
func (c *Context) anonymousName(taken func(name string) bool) string {
	for {
		name := "Anonymous test case " + strconv.FormatUint(c.anonymous.Add(1), 10)
		if taken == nil || !taken(name) {
			return name
		}
	}
}
