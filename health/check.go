package health

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// CheckFunc probes a single health condition. It returns true when the
// condition holds. A non-nil error always means the check failed.
//
// The runner passes its context through unchanged and never imposes a
// deadline; a check that needs one must set it itself (see probe.WithTimeout).
type CheckFunc func(ctx context.Context) (bool, error)

// Check is a registered, immutable unit of work with a display name.
type Check struct {
	name     string
	fn       CheckFunc
	isolated bool
}

// NewCheck creates a check. An empty name is derived from the declared name
// of fn. Returns ErrInvalidCheck if fn is nil.
func NewCheck(name string, fn CheckFunc) (*Check, error) {
	if fn == nil {
		return nil, ErrInvalidCheck
	}
	if name == "" {
		name = Named(fn)
	}
	return &Check{name: name, fn: fn}, nil
}

// Name returns the display name of the check.
func (c *Check) Name() string {
	return c.name
}

// Func returns the underlying function, without isolation.
func (c *Check) Func() CheckFunc {
	return c.fn
}

// Isolated reports whether Call contains errors and panics.
func (c *Check) Isolated() bool {
	return c.isolated
}

// Call invokes the check directly. An isolated check reports any failure as
// false and never returns an error or panics; other checks are called as is.
// The Runner does not use Call: it always records the underlying error.
func (c *Check) Call(ctx context.Context) (bool, error) {
	if c.isolated {
		return invoke(ctx, c.name, c.fn).OK, nil
	}
	return c.fn(ctx)
}

// Named returns the declared name of fn without its package path, e.g.
// "checkDatabase" for a package-level func or "(*Store).Ping" for a method
// value. Anonymous functions yield names such as "main.func1".
func Named(fn CheckFunc) string {
	if fn == nil {
		return ""
	}
	rf := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if rf == nil {
		return ""
	}

	name := rf.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

// Outcome is the result of invoking a check under isolation: either OK is
// set, or the check failed and Err may describe why.
type Outcome struct {
	OK  bool
	Err error
}

// invoke calls fn and contains every way it can fail. Errors of any type and
// panics of any value are converted into a failed Outcome here and nowhere
// else.
func invoke(ctx context.Context, name string, fn CheckFunc) (out Outcome) {
	defer func() {
		if v := recover(); v != nil {
			out = Outcome{Err: &PanicError{Check: name, Value: v}}
		}
	}()

	ok, err := fn(ctx)
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{OK: ok}
}

// Isolate wraps fn so that it never returns an error or panics: any failure
// is reported as false. The error is dropped, so callers that want it should
// let the Runner invoke the raw check instead.
func Isolate(fn CheckFunc) CheckFunc {
	name := Named(fn)
	return func(ctx context.Context) (bool, error) {
		return invoke(ctx, name, fn).OK, nil
	}
}
