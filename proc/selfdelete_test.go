package proc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvenkat/tkernel/mem"
)

// TestSelfDeleteLeaksResources reproduces the toy kernel's self-delete
// scenario: a process that deletes itself (here, implicitly, by letting its
// start function return) must never have its stack or PCB backing
// reclaimed, and the scheduler must keep functioning normally for every
// process created afterward.
func TestSelfDeleteLeaksResources(t *testing.T) {
	mem.Init(make([]byte, 1024*1024))
	Init()

	before := mem.CurrentStats()

	ran := make(chan struct{})
	pid := Create(func() int {
		close(ran)
		return 0
	})
	require.NotEqual(t, -1, pid)

	select {
	case <-ran:
	default:
		t.Fatal("self-deleting process never ran before Create returned")
	}

	after := mem.CurrentStats()
	assert.Less(t, after.FreeBytes, before.FreeBytes,
		"a self-deleted process's stack and PCB backing must never be reclaimed")
	require.NoError(t, CheckInvariants())

	var ran2 bool
	pid2 := Create(func() int {
		ran2 = true
		return 0
	})
	require.NotEqual(t, -1, pid2)
	assert.True(t, ran2, "the scheduler must keep running new processes after a self-delete")
	require.NoError(t, CheckInvariants())
}

// TestExplicitSelfDeleteMidRun exercises Delete called on the running
// process directly, rather than relying on the start function returning.
// Delete on the calling process never returns, so this test observes the
// handoff indirectly: the process left waiting in the ready queue must
// still get scheduled once bootstrap deletes itself.
func TestExplicitSelfDeleteMidRun(t *testing.T) {
	mem.Init(make([]byte, 1024*1024))
	Init()

	resumed := make(chan struct{})
	pid := Create(func() int {
		Yield()
		close(resumed)
		return 0
	})
	require.NotEqual(t, -1, pid)

	go Delete(BootPID) // never returns; hands the token to pid

	select {
	case <-resumed:
	case <-time.After(2 * time.Second):
		t.Fatal("process never resumed after bootstrap self-deleted")
	}
}
