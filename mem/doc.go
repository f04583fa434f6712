// Package mem implements a worst-fit, coalescing, in-place block allocator
// over a single caller-supplied byte region.
//
// # Overview
//
// The allocator is handed one contiguous []byte at Init and never asks the
// Go runtime for more; every byte of bookkeeping (block headers, free-list
// links) lives inside that region. There is no auxiliary heap.
//
// The region is partitioned into a chain of blocks, each preceded by a small
// header (magic, back-link, payload size). Free blocks are additionally
// threaded onto a second, size-sorted list via two links that are overlaid on
// the block's own payload bytes — a free block never needs its payload for
// anything else. This keeps the header itself tiny (12 bytes) regardless of
// state.
//
// # Allocation strategy
//
// Alloc always looks at the largest free block first (the free list is kept
// sorted in decreasing size order, so this is O(1)) and splits it if the
// remainder would still be a useful free block. This is worst-fit: it
// deliberately leaves large, easily reusable free blocks behind rather than
// carving up small ones, at the cost of only ever being able to satisfy a
// request the largest available block can hold.
//
// # Coalescing
//
// Free always merges a freed block with any adjacent free neighbor,
// immediately, so the invariant "no two adjacent blocks are both free" holds
// after every call. This bounds the free list at roughly the number of
// used blocks plus one.
//
// # Thread safety
//
// None. Alloc, Free, and Init are not reentrant and must not be called
// concurrently or from within a signal handler; see proc's cooperative
// scheduler for why this is safe in this codebase (a context switch never
// occurs mid-allocation).
package mem
