package mem

// Magic values identifying a block's state. These match the debugging
// convention of the toy kernel this allocator is modeled on: 'MEMU' for an
// in-use block, 'MEMF' for a free one.
const (
	magicUsed uint32 = 0x4D454D55 // 'MEMU'
	magicFree uint32 = 0x4D454D46 // 'MEMF'
)

const (
	// headerSize is magic(4) + prevOffset(4) + payloadSize(4).
	headerSize int32 = 12

	// linkPairSize is the two int32 offsets (larger, smaller) a free
	// block overlays onto the start of its own payload.
	linkPairSize int32 = 8

	// minFreeBlock is the split threshold: a block is split only when the
	// remainder (header plus payload) is larger than minFreeBlock; a
	// remainder of minFreeBlock bytes or less is absorbed into the
	// allocation instead.
	minFreeBlock = headerSize + linkPairSize

	// noOffset is the sentinel for "no block"/"no link", the offset
	// equivalent of a null pointer.
	noOffset int32 = -1
)
