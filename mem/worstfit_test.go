package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorstFitPicksLargestBlock reproduces S6: with two free blocks of very
// different sizes, an allocation that fits in either must come from the
// larger one, leaving the smaller untouched.
func TestWorstFitPicksLargestBlock(t *testing.T) {
	// Sized so that Alloc(500) then Alloc(1276) leaves exactly a 200-byte
	// free tail with no absorption on either split: the 2000-byte initial
	// payload is 500 + 12 + 1276 + 12 + 200.
	space := make([]byte, 2012)
	Init(space)

	a := Alloc(500)
	b := Alloc(1276)
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.Equal(t, 500, len(a))
	require.Equal(t, 1276, len(b))

	tailOff, ok := offsetOf(space, b)
	require.True(t, ok)
	tailFreeOff := tailOff + int32(len(b)) // successor of B, still free
	tailFreeHeader := readHeader(space, tailFreeOff)
	require.Equal(t, magicFree, tailFreeHeader.magic)
	require.Equal(t, int32(200), tailFreeHeader.size)

	Free(a)
	st := CurrentStats()
	require.Equal(t, 2, st.FreeBlocks)
	require.Equal(t, 500, st.LargestFree)

	p := Alloc(150)
	require.NotNil(t, p)
	require.NoError(t, CheckInvariants())

	off, ok := offsetOf(space, p)
	require.True(t, ok)
	assert.Equal(t, headerSize, off, "allocation must come from the freed 500-byte block at offset 0")

	// The untouched 200-byte tail must be exactly as it was.
	after := readHeader(space, tailFreeOff)
	assert.Equal(t, magicFree, after.magic)
	assert.Equal(t, int32(200), after.size)
}
