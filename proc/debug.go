//go:build tkernel_debug

package proc

func assertInvariants() {
	if err := CheckInvariants(); err != nil {
		panic(err)
	}
}
