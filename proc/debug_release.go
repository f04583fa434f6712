//go:build !tkernel_debug

package proc

func assertInvariants() {}
