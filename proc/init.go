package proc

import "github.com/nvenkat/tkernel/internal/klog"

// Init installs the calling goroutine as the bootstrap process (PID 0) and
// resets the process table. It must run after mem.Init and before any other
// proc call. Init is not safe to call concurrently with itself or any other
// proc operation.
func Init() {
	reset()

	boot := &pcb{
		magic: magicPCB,
		pid:   nextPID,
		state: Ready,
		turn:  make(chan struct{}),
	}
	nextPID++

	runningProc = boot
	initialized = true

	klog.L.Debug("proc initialized", "bootPID", boot.pid)
	assertInvariants()
}
