package check

import "github.com/pkg/errors"

// bailout is panicked to unwind out of the current Files/typecheck call on
// a fatal condition (out-of-memory, an internal invariant violation),
// mirroring the teacher's bailout type (check.go) and its
// panic/recover-based "early exit" mechanism (spec.md §7: fatal conditions
// "short-circuit remaining work").
type bailout struct{ err error }

// fatal reports a fatal (non-diagnostic) error and unwinds the stack via
// panic(bailout{...}); the caller's top-level recover (see
// Checker.Run) turns it into an error return, matching spec.md §5
// "Cancellation": "a best-effort bail-out, not a guarantee of termination
// at any particular point."
func (c *Checker) fatal(cause error) {
	panic(bailout{err: errors.Wrap(cause, "velac: fatal error during type checking")})
}

// assert panics with a bailout if cond is false; used for invariants that
// should never fail given a well-formed AST (spec.md §7 "internal
// invariant failure"), mirroring the teacher's use of a plain `assert`
// helper throughout types2.
func (c *Checker) assert(cond bool, msg string) {
	if !cond {
		c.fatal(errors.New("assertion failed: " + msg))
	}
}

// handleBailout recovers a bailout panic (or lets any other panic
// re-propagate, matching the teacher's handleBailout in check.go) and
// assigns *err accordingly.
func (c *Checker) handleBailout(err *error) {
	switch p := recover().(type) {
	case nil:
		// normal return
	case bailout:
		*err = p.err
	default:
		panic(p)
	}
}
