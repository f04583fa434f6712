package mem

import "fmt"

// CheckInvariants walks the block list and the free list and returns a
// descriptive error on the first violation found. It never mutates state.
// Unlike assertInvariants (which only runs in tkernel_debug builds), this is
// always compiled in so tests can call it directly after arbitrary
// sequences of Alloc/Free without needing a build tag.
func CheckInvariants() error {
	if !ready {
		return nil
	}
	regionLen := int32(len(region))

	freeSeen := make(map[int32]bool)
	var prevOff int32 = noOffset
	off := int32(0)
	prevWasFree := false
	blockCount := 0

	for {
		if off < 0 || off >= regionLen {
			return fmt.Errorf("mem: block chain left the region at offset %d", off)
		}
		h := readHeader(region, off)
		blockCount++

		if h.magic != magicUsed && h.magic != magicFree {
			return fmt.Errorf("mem: block at %d has invalid magic 0x%x", off, h.magic)
		}
		if h.prev != prevOff {
			return fmt.Errorf("mem: block at %d has prev=%d, want %d", off, h.prev, prevOff)
		}
		if h.size%4 != 0 {
			return fmt.Errorf("mem: block at %d has misaligned size %d", off, h.size)
		}

		isFree := h.magic == magicFree
		if isFree {
			if h.size < linkPairSize {
				return fmt.Errorf("mem: free block at %d has payload %d smaller than link pair", off, h.size)
			}
			if prevWasFree {
				return fmt.Errorf("mem: adjacent free blocks at %d and its predecessor", off)
			}
			freeSeen[off] = true
		}

		next := successorOff(regionLen, off, h)
		if next == noOffset {
			break
		}
		prevOff = off
		prevWasFree = isFree
		off = next
	}

	// Walk the free list via the smaller chain from freeHead and make sure
	// it is exactly freeSeen, in non-increasing size order, with mutually
	// consistent larger/smaller links.
	visited := make(map[int32]bool)
	var lastSize int32 = -1
	var prevInList int32 = noOffset
	cur := freeHead
	for cur != noOffset {
		if !freeSeen[cur] {
			return fmt.Errorf("mem: free list references non-free or unknown block at %d", cur)
		}
		if visited[cur] {
			return fmt.Errorf("mem: free list cycle at %d", cur)
		}
		visited[cur] = true

		h := readHeader(region, cur)
		if lastSize != -1 && h.size > lastSize {
			return fmt.Errorf("mem: free list not sorted at %d (size %d after %d)", cur, h.size, lastSize)
		}
		lastSize = h.size

		larger, smaller := readFreeLinks(region, cur)
		if larger != prevInList {
			return fmt.Errorf("mem: free block at %d has larger=%d, want %d", cur, larger, prevInList)
		}

		prevInList = cur
		cur = smaller
	}
	if len(visited) != len(freeSeen) {
		return fmt.Errorf("mem: free list has %d entries, block chain has %d free blocks", len(visited), len(freeSeen))
	}
	if len(freeSeen) > 0 {
		var headSize int32 = -1
		for off := range freeSeen {
			h := readHeader(region, off)
			if h.size > headSize {
				headSize = h.size
			}
		}
		if freeHead == noOffset {
			return fmt.Errorf("mem: free blocks exist but freeHead is nil")
		}
		fh := readHeader(region, freeHead)
		if fh.size != headSize {
			return fmt.Errorf("mem: freeHead size %d is not the largest free size %d", fh.size, headSize)
		}
	} else if freeHead != noOffset {
		return fmt.Errorf("mem: no free blocks but freeHead=%d", freeHead)
	}

	return nil
}
