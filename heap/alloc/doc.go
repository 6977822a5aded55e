// Package alloc implements best-fit block allocation over a single heap
// arena.
//
// # Overview
//
// The arena is an ordered sequence of variable-size blocks with no separate
// free-list structure: block identity and traversal derive purely from
// walking the size field embedded in each block's header. A one-word
// sentinel (raw value 1) marks the arena end.
//
// # Block Layout
//
// Every block starts with a 4-byte header packing the span size with two
// status bits (allocated, previous-block-allocated). Free blocks also carry
// a footer: a copy of the raw size in their last 4 bytes. The
// previous-block bit is the only backward neighbor state; there is no
// backward pointer.
//
// # Operations
//
//   - Init(size): carve the region into one free block bounded by the sentinel
//   - Alloc(size): best-fit scan with exact-match short-circuit, split on surplus
//   - Free(ref): mark free and clear the successor's previous-block bit
//   - Coalesce(): one forward pass merging runs of adjacent free blocks
//
// Coalescing is explicit: Free never merges, so adjacent free blocks may
// exist between Free and Coalesce calls.
//
// # Usage Example
//
//	bf := alloc.New()
//	if err := bf.Init(4096); err != nil {
//	    return err
//	}
//
//	ref, buf, err := bf.Alloc(256)
//	if err != nil {
//	    return err
//	}
//
//	// Write into buf...
//
//	err = bf.Free(ref)
//	merged := bf.Coalesce()
//
// # References
//
// Refs are payload offsets into the arena (uint32). Every returned ref is
// 8-byte aligned; the block header sits 4 bytes below it.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. There is no internal locking;
// callers must synchronize access externally.
package alloc
