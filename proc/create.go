package proc

import (
	"github.com/nvenkat/tkernel/internal/klog"
	"github.com/nvenkat/tkernel/mem"
)

// Create allocates a PCB and a fixed-size stack for a new process running
// start, places it at the head of the ready queue, and immediately invokes
// the scheduler so the new process runs next. It returns the new process's
// PID, or -1 if either allocation fails or the manager has not been
// initialized.
//
// If start returns instead of calling Delete on its own PID, that return is
// treated as an implicit self-delete: the process's stack and backing are
// never reclaimed, matching the documented behavior of an explicit
// self-delete (see Delete).
func Create(start func() int) int {
	if !initialized {
		return -1
	}

	backing := mem.Alloc(pcbBackingSize)
	if backing == nil {
		klog.L.Warn("proc create failed: no room for PCB backing")
		return -1
	}

	stack := mem.Alloc(StackSize)
	if stack == nil {
		mem.Free(backing)
		klog.L.Warn("proc create failed: no room for stack")
		return -1
	}

	p := &pcb{
		magic:     magicPCB,
		pid:       nextPID,
		state:     Ready,
		stackAddr: stack,
		backing:   backing,
		turn:      make(chan struct{}),
	}
	nextPID++

	enqueueReadyHead(p)

	klog.L.Debug("proc created", "pid", p.pid)

	go runProcess(p, start)

	schedule()

	assertInvariants()
	return p.pid
}

// runProcess is the body every created process's goroutine executes. It
// waits for its first turn, runs start, and if start returns normally,
// self-deletes on its behalf.
func runProcess(p *pcb, start func() int) {
	<-p.turn
	_ = start()
	Delete(p.pid)
	// Unreachable: a self-delete of the running process never returns.
}
