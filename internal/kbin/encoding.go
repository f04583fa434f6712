// Package kbin provides little-endian binary encode/decode helpers and
// overflow-safe offset arithmetic for code that indexes directly into a
// byte buffer instead of dereferencing typed pointers.
//
// This is the "arena + byte index" pattern: headers live inside a shared
// []byte and are read/written through fixed offsets rather than through
// Go pointers into the slice, which keeps the allocator's bookkeeping
// entirely inside the region it manages.
package kbin

import "encoding/binary"

// PutU32 writes v to b at off in little-endian order.
func PutU32(b []byte, off int32, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// ReadU32 reads a little-endian uint32 from b at off.
func ReadU32(b []byte, off int32) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// PutI32 writes v to b at off in little-endian order.
func PutI32(b []byte, off int32, v int32) {
	PutU32(b, off, uint32(v))
}

// ReadI32 reads a little-endian int32 from b at off.
func ReadI32(b []byte, off int32) int32 {
	return int32(ReadU32(b, off))
}
