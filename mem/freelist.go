package mem

// insertFree splices the block at off into the size-sorted free list.
//
// A plain O(n) linear scan is used deliberately: a self-balancing or
// skiplist-based index would need extra per-block pointers, and a bigger
// header directly reduces how much of the managed region is usable payload.
// For a didactic single-region allocator, keeping the header at 12 bytes is
// worth the O(n_free) insertion cost.
func insertFree(off int32) {
	h := readHeader(region, off)

	var larger int32 = noOffset
	smaller := freeHead
	for smaller != noOffset {
		sh := readHeader(region, smaller)
		if h.size >= sh.size {
			break
		}
		larger = smaller
		_, next := readFreeLinks(region, smaller)
		smaller = next
	}

	writeFreeLinks(region, off, larger, smaller)
	if larger != noOffset {
		l, _ := readFreeLinks(region, larger)
		writeFreeLinks(region, larger, l, off)
	} else {
		freeHead = off
	}
	if smaller != noOffset {
		_, s := readFreeLinks(region, smaller)
		writeFreeLinks(region, smaller, off, s)
	}
}

// removeFree splices the block at off out of the free list. It does not
// touch the block's magic; callers change that separately.
func removeFree(off int32) {
	larger, smaller := readFreeLinks(region, off)
	if smaller != noOffset {
		_, s := readFreeLinks(region, smaller)
		writeFreeLinks(region, smaller, larger, s)
	}
	if larger != noOffset {
		l, _ := readFreeLinks(region, larger)
		writeFreeLinks(region, larger, l, smaller)
	} else {
		freeHead = smaller
	}
	writeFreeLinks(region, off, noOffset, noOffset)
}
