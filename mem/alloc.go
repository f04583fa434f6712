package mem

import "github.com/nvenkat/tkernel/internal/kbin"

// Alloc returns a slice of at least size bytes, aligned to the integer
// alignment, freshly carved out of the region's largest free block, or nil
// if no free block is large enough.
//
// size is first raised to at least the free-list link-pair size (a free
// block must always be big enough to carry its own larger/smaller links)
// and then rounded up to the integer alignment.
func Alloc(size int) []byte {
	if !ready {
		return nil
	}
	if size < 0 {
		size = 0
	}
	req := int32(size)
	if req < linkPairSize {
		req = linkPairSize
	}
	req = kbin.AlignInt(req)

	m := freeHead
	if m == noOffset {
		return nil
	}
	mh := readHeader(region, m)
	if mh.size < req {
		return nil
	}

	balance := mh.size - req
	if balance > minFreeBlock {
		origSucc := successorOff(int32(len(region)), m, mh)

		newOff := payloadOff(m) + req
		newSize := balance - headerSize
		writeHeader(region, newOff, blockHeader{magic: magicFree, prev: m, size: newSize})
		writeFreeLinks(region, newOff, noOffset, noOffset)

		if origSucc != noOffset {
			sh := readHeader(region, origSucc)
			sh.prev = newOff
			writeHeader(region, origSucc, sh)
		}

		insertFree(newOff)
		mh.size = req
	} else {
		// Absorb the balance; internal fragmentation is bounded by
		// minFreeBlock. The successor, if any, doesn't move.
		req = mh.size
	}

	removeFree(m)
	mh.magic = magicUsed
	mh.size = req
	writeHeader(region, m, mh)

	assertInvariants()
	return region[payloadOff(m) : payloadOff(m)+mh.size]
}
