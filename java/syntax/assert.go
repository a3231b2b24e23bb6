package syntax

import "github.com/cockroachdb/errors"

// Assertf panics with an assertion failure when cond is false. It guards
// invariants whose violation means a programming error in the caller; such
// panics abort the current parse and are turned into errors by the parser's
// entry points.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
