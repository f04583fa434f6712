package mem

// Package-level state: the managed region and its two indexes (the
// address-ordered block chain, implicit in the region's bytes, and the
// size-ordered free list head). This mirrors the original toy kernel's
// file-scope globals (mcb, freelist) — the context-switch primitive in
// package proc assumes a singleton allocator, so this is wrapped as
// module-level state with explicit initialization rather than an
// instantiable type, per the design notes.
var (
	region   []byte
	freeHead int32 = noOffset
	ready    bool
)

// Init establishes a single FREE block covering the entire region minus one
// header, discarding any state from a previous call. The block's payload is
// rounded down to the integer alignment; the up to three trailing bytes of a
// region whose length is not aligned are left out of the managed region.
// It is undefined to
// call Init with a region too small to hold one header plus the minimum
// free payload (headerSize + linkPairSize bytes); Init degrades gracefully
// in that case by leaving the free list empty rather than corrupting the
// region, but callers must not rely on that behavior.
func Init(r []byte) {
	region = r
	freeHead = noOffset
	ready = false

	if int32(len(region)) < headerSize {
		return
	}

	size := (int32(len(region)) - headerSize) &^ 3
	region = region[:headerSize+size]
	writeHeader(region, 0, blockHeader{magic: magicFree, prev: noOffset, size: size})
	ready = true

	if size >= linkPairSize {
		writeFreeLinks(region, 0, noOffset, noOffset)
		freeHead = 0
	}
	assertInvariants()
}

// Stats summarizes the current state of the managed region, mainly for
// tests and the CLI demo; it has no analogue in the original API.
type Stats struct {
	RegionBytes int
	FreeBytes   int
	FreeBlocks  int
	UsedBlocks  int
	LargestFree int
}

// CurrentStats walks the block list and returns a snapshot. It never
// mutates state and is safe to call at any time after Init.
func CurrentStats() Stats {
	var st Stats
	st.RegionBytes = len(region)
	if !ready {
		return st
	}
	off := int32(0)
	for off != noOffset {
		h := readHeader(region, off)
		switch h.magic {
		case magicFree:
			st.FreeBlocks++
			st.FreeBytes += int(h.size)
			if int(h.size) > st.LargestFree {
				st.LargestFree = int(h.size)
			}
		case magicUsed:
			st.UsedBlocks++
		}
		off = successorOff(int32(len(region)), off, h)
	}
	return st
}
