package proc

// Package-level singleton state, mirroring mem's single-region model: this
// toy kernel manages exactly one process table, not one per caller.
var (
	readyHead *pcb
	readyTail *pcb

	runningProc *pcb

	nextPID     int
	initialized bool
)

func reset() {
	readyHead = nil
	readyTail = nil
	runningProc = nil
	nextPID = 0
	initialized = false
}
