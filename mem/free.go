package mem

import "unsafe"

// offsetOf reports the offset within region of p's first byte, and whether
// p actually lies within region at all. This is the Go equivalent of the
// original allocator's `addr - sizeof(mcb_t)` pointer arithmetic: since a
// payload slice returned by Alloc shares region's backing array, comparing
// raw addresses recovers the offset without the allocator having to hand
// out anything other than a plain []byte.
func offsetOf(buf, p []byte) (int32, bool) {
	if len(buf) == 0 || len(p) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(&buf[0]))
	ptr := uintptr(unsafe.Pointer(&p[0]))
	if ptr < base {
		return 0, false
	}
	off := ptr - base
	if off >= uintptr(len(buf)) {
		return 0, false
	}
	return int32(off), true
}

// Free releases a previously allocated payload back to the region. A nil or
// empty p is a no-op. A p whose header does not carry the USED magic is
// rejected silently — this is the allocator's only defense against
// double-free or a foreign pointer, and it must never corrupt state.
func Free(p []byte) {
	if !ready || len(p) == 0 {
		return
	}
	off, ok := offsetOf(region, p)
	if !ok {
		return
	}
	hoff := off - headerSize
	if hoff < 0 {
		return
	}
	h := readHeader(region, hoff)
	if h.magic != magicUsed {
		return
	}
	h.magic = magicFree

	if h.prev != noOffset {
		ph := readHeader(region, h.prev)
		if ph.magic == magicFree {
			removeFree(h.prev)
			ph.size += headerSize + h.size
			writeHeader(region, h.prev, ph)

			if succ := successorOff(int32(len(region)), hoff, h); succ != noOffset {
				sh := readHeader(region, succ)
				sh.prev = h.prev
				writeHeader(region, succ, sh)
			}

			hoff = h.prev
			h = ph
			insertFree(hoff)
		} else {
			writeHeader(region, hoff, h)
			insertFree(hoff)
		}
	} else {
		writeHeader(region, hoff, h)
		insertFree(hoff)
	}

	if succ := successorOff(int32(len(region)), hoff, h); succ != noOffset {
		sh := readHeader(region, succ)
		if sh.magic == magicFree {
			succNext := successorOff(int32(len(region)), succ, sh)
			removeFree(succ)
			removeFree(hoff)
			h.size += headerSize + sh.size
			writeHeader(region, hoff, h)
			if succNext != noOffset {
				snh := readHeader(region, succNext)
				snh.prev = hoff
				writeHeader(region, succNext, snh)
			}
			insertFree(hoff)
		}
	}

	assertInvariants()
}
