//go:build !debug

package assert

// Enabled reports whether violations panic.
const Enabled = false

func violation(string) {}
