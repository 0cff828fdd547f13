//go:build !release

// Package invariant checks simulation invariants. Violations are programming
// errors: default builds panic, builds tagged "release" skip the checks.
package invariant

import "fmt"

// Enabled reports whether checks are compiled in.
const Enabled = true

// Check panics with a formatted message when cond is false.
func Check(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
