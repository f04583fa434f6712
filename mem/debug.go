//go:build tkernel_debug

package mem

// assertInvariants aborts the process on the first invariant violation.
// Compiled in only under the tkernel_debug build tag, mirroring the
// original allocator's #ifdef UNIT_TEST sanityCheck() calls at the end of
// every public entry point.
func assertInvariants() {
	if err := CheckInvariants(); err != nil {
		panic(err)
	}
}
