//go:build debug

package assert

// Enabled reports whether violations panic.
const Enabled = true

func violation(msg string) {
	panic("invariant violated: " + msg)
}
