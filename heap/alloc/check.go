package alloc

import (
	"fmt"

	"github.com/ShlokDesai33/Heap-Memory-Allocator/internal/format"
)

// Check walks the block sequence and validates the structural invariants:
//
//   - every span is a positive multiple of 8
//   - the entry block's previous-block bit is raised
//   - every other block's previous-block bit matches its predecessor's
//     allocation state
//   - every free block's footer equals its header size
//   - the spans sum exactly to the usable arena size, ending at the sentinel
//
// Check is read-only and exists for tests and the CLI; the allocator itself
// trusts its invariants and never calls it.
func (b *BestFit) Check() error {
	if !b.initialized {
		return ErrNotInitialized
	}

	data := b.arena.Bytes()
	sentinel := b.entry + int(b.allocSize)

	var sum int64
	prevAllocated := true // boundary condition for the entry block
	serial := 0

	for off := b.entry; off != sentinel; {
		serial++
		if off > sentinel-int(format.MinBlockSize) {
			return fmt.Errorf("%w: block %d at %#x runs past the sentinel", ErrInvariant, serial, off)
		}

		hdr := format.ParseHeader(data, off)
		if hdr.Size <= 0 || hdr.Size%format.Alignment != 0 {
			return fmt.Errorf("%w: block %d at %#x has size %d", ErrInvariant, serial, off, hdr.Size)
		}
		if hdr.PrevAllocated != prevAllocated {
			return fmt.Errorf("%w: block %d at %#x previous-block bit %v, predecessor allocated %v",
				ErrInvariant, serial, off, hdr.PrevAllocated, prevAllocated)
		}
		if !hdr.Allocated {
			if footer := format.ReadFooter(data, hdr.End(off)); footer != hdr.Size {
				return fmt.Errorf("%w: block %d at %#x footer %d != size %d",
					ErrInvariant, serial, off, footer, hdr.Size)
			}
		}

		sum += int64(hdr.Size)
		prevAllocated = hdr.Allocated
		off = hdr.End(off)
	}

	if sum != int64(b.allocSize) {
		return fmt.Errorf("%w: spans sum to %d, arena size is %d", ErrInvariant, sum, b.allocSize)
	}
	if !format.IsSentinel(data, sentinel) {
		return fmt.Errorf("%w: sentinel word at %#x is %#x", ErrInvariant, sentinel, format.ReadU32(data, sentinel))
	}
	return nil
}
