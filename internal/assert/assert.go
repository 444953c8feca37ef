// Package assert checks internal invariants. Violations panic in builds
// tagged "debug" and are ignored otherwise, so callers never handle them.
package assert

import "fmt"

// That reports a violation when cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		violation(fmt.Sprintf(format, args...))
	}
}

// Fail reports an unconditional violation.
func Fail(format string, args ...any) {
	violation(fmt.Sprintf(format, args...))
}
