package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTightFitScenario reproduces the toy kernel's canonical tight-fit test:
// a region sized so that three allocations exactly consume it, a fourth
// must fail, and freeing everything restores a single free block covering
// the original payload.
func TestTightFitScenario(t *testing.T) {
	space := make([]byte, 610+3*int(headerSize))
	Init(space)
	initial := CurrentStats()

	p0 := Alloc(100)
	p1 := Alloc(200)
	p2 := Alloc(300)
	require.NotNil(t, p0)
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	require.NoError(t, CheckInvariants())

	p3 := Alloc(30)
	assert.Nil(t, p3, "fourth allocation must fail once the region is exhausted")

	Free(p0)
	Free(p2)
	Free(p1)
	Free(p3) // no-op, p3 is nil

	final := CurrentStats()
	assert.Equal(t, 1, final.FreeBlocks)
	assert.Equal(t, 0, final.UsedBlocks)
	assert.Equal(t, initial.FreeBytes, final.FreeBytes)
	require.NoError(t, CheckInvariants())
}
