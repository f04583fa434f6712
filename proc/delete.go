package proc

import (
	"github.com/nvenkat/tkernel/internal/klog"
	"github.com/nvenkat/tkernel/mem"
)

// Delete removes pid from the process table and, in every case, runs the
// scheduler before returning — the caller may be preempted in favor of
// another ready process even when the deleted pid is neither the caller
// nor found at all.
//
// If pid names a ready (non-running) process, its stack and PCB backing are
// freed immediately, the scheduler runs, and Delete returns 0.
//
// If pid names the calling process itself, Delete never returns: the
// caller hands the scheduling token to the next ready process and its
// goroutine parks forever. Its stack and backing are deliberately never
// freed — a process cannot safely free the stack it is still executing on,
// so the toy kernel this is modeled on leaks it, and this port preserves
// that leak rather than silently fixing it.
//
// Deleting an unknown pid is a silent no-op beyond running the scheduler,
// which still returns 0.
func Delete(pid int) int {
	if !initialized {
		return 0
	}

	if runningProc != nil && runningProc.pid == pid {
		klog.L.Debug("proc self-delete", "pid", pid)
		runningProc = nil
		schedule()
		return 0 // unreachable
	}

	if victim := removeReady(pid); victim != nil {
		mem.Free(victim.stackAddr)
		mem.Free(victim.backing)
		klog.L.Debug("proc deleted", "pid", pid)
	}

	schedule()
	assertInvariants()
	return 0
}
