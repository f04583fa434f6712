//go:build !tkernel_debug

package mem

// assertInvariants is a no-op in release builds; invariant violations are
// undefined behavior per design, not a runtime-checked error path.
func assertInvariants() {}
