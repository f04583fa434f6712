package mem

import "github.com/nvenkat/tkernel/internal/kbin"

// blockHeader is the in-memory view of the fixed 12-byte header preceding
// every block, free or used. It is never held onto across calls that might
// mutate the region; read it, use it, write it back.
type blockHeader struct {
	magic uint32
	prev  int32 // offset of the address-ordered predecessor, or noOffset
	size  int32 // payload size in bytes
}

func readHeader(region []byte, off int32) blockHeader {
	if !kbin.InBounds(int32(len(region)), off, headerSize) {
		panic("mem: header read out of bounds")
	}
	return blockHeader{
		magic: kbin.ReadU32(region, off),
		prev:  kbin.ReadI32(region, off+4),
		size:  kbin.ReadI32(region, off+8),
	}
}

func writeHeader(region []byte, off int32, h blockHeader) {
	if !kbin.InBounds(int32(len(region)), off, headerSize) {
		panic("mem: header write out of bounds")
	}
	kbin.PutU32(region, off, h.magic)
	kbin.PutI32(region, off+4, h.prev)
	kbin.PutI32(region, off+8, h.size)
}

// payloadOff returns the offset of the first payload byte for the block
// header at off. off+headerSize is computed via overflow-checked addition
// since off comes from bytes stored inside the region and must never be
// trusted to wrap into a small, in-bounds-looking offset that then reads or
// writes the wrong memory.
func payloadOff(off int32) int32 {
	p, ok := kbin.AddOverflowSafe32(off, headerSize)
	if !ok {
		panic("mem: payload offset overflow")
	}
	return p
}

// successorOff returns the offset of the address-ordered successor of the
// block described by h at off, or noOffset if h ends exactly at the region
// boundary.
func successorOff(regionLen int32, off int32, h blockHeader) int32 {
	s, ok := kbin.AddOverflowSafe32(payloadOff(off), h.size)
	if !ok {
		panic("mem: successor offset overflow")
	}
	if s == regionLen {
		return noOffset
	}
	return s
}

// readFreeLinks reads the (larger, smaller) free-list link pair overlaid on
// a FREE block's payload. Callers must only call this for blocks currently
// marked FREE.
func readFreeLinks(region []byte, off int32) (larger, smaller int32) {
	p := payloadOff(off)
	if !kbin.InBounds(int32(len(region)), p, linkPairSize) {
		panic("mem: free-list link read out of bounds")
	}
	return kbin.ReadI32(region, p), kbin.ReadI32(region, p+4)
}

func writeFreeLinks(region []byte, off int32, larger, smaller int32) {
	p := payloadOff(off)
	if !kbin.InBounds(int32(len(region)), p, linkPairSize) {
		panic("mem: free-list link write out of bounds")
	}
	kbin.PutI32(region, p, larger)
	kbin.PutI32(region, p+4, smaller)
}
