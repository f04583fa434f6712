// Package proc implements a cooperative, single-threaded process manager: a
// ready queue of process control blocks (PCBs), round-robin scheduling, and
// explicit yield/create/delete operations. There is no preemption — a
// process runs until it calls Yield, Create or Delete (each of which runs
// the scheduler), or its start function returns.
//
// The original design saves and restores a raw machine stack pointer on
// every context switch. Go's stacks are garbage-collector-owned and move,
// so there is no safe way to stash one in a PCB and jump to it later.
// Instead every process body runs on its own goroutine, and a context
// switch is a synchronous handoff over a per-PCB channel: the goroutine
// being suspended sends on the channel of the goroutine being resumed,
// which is blocked receiving on it, and then blocks receiving on its own
// channel until its turn comes back. Exactly one goroutine ever holds
// the token, so despite running on top of the Go scheduler this behaves
// like a single logical thread of control — the same guarantee the
// original raw stack switch provided.
//
// Every PCB still reserves its stack (and a small bookkeeping block
// standing in for the PCB itself) from mem, so allocator pressure and
// Create failure semantics carry over unchanged: run mem.Init before
// calling proc.Init.
package proc
