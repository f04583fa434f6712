package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvenkat/tkernel/mem"
)

func TestInitInstallsBootstrapProcess(t *testing.T) {
	mem.Init(make([]byte, 64*1024))
	Init()

	require.NotNil(t, runningProc)
	assert.Equal(t, BootPID, runningProc.pid)
	assert.Nil(t, runningProc.stackAddr)
	assert.Nil(t, runningProc.backing)
	require.NoError(t, CheckInvariants())
}

func TestCreateBeforeInitFails(t *testing.T) {
	reset()
	pid := Create(func() int { return 0 })
	assert.Equal(t, -1, pid)
}

func TestYieldBeforeInitIsNoop(t *testing.T) {
	reset()
	assert.NotPanics(t, func() { Yield() })
}

func TestDeleteUnknownPidIsNoop(t *testing.T) {
	mem.Init(make([]byte, 64*1024))
	Init()

	assert.Equal(t, 0, Delete(999))
	require.NoError(t, CheckInvariants())
}

func TestCreateFailsWhenRegionExhausted(t *testing.T) {
	// Too small to fit even one stack allocation.
	mem.Init(make([]byte, 4*1024))
	Init()

	pid := Create(func() int { return 0 })
	assert.Equal(t, -1, pid, "stack allocation must fail in a region this small")
	require.NoError(t, CheckInvariants())
}

func TestCreateAssignsIncreasingPIDs(t *testing.T) {
	mem.Init(make([]byte, 1024*1024))
	Init()

	body := func() int {
		Yield()
		return 0
	}

	pidA := Create(body)
	pidB := Create(body)
	require.NotEqual(t, -1, pidA)
	require.NotEqual(t, -1, pidB)
	assert.Less(t, pidA, pidB)

	// Let both processes run to completion; each self-deletes on return.
	for i := 0; i < 4; i++ {
		Yield()
	}
}
