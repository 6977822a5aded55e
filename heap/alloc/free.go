package alloc

import (
	"fmt"

	"github.com/ShlokDesai33/Heap-Memory-Allocator/internal/format"
)

// Free marks the referenced block free and clears the successor's
// previous-block bit (unless the successor is the sentinel). Neighboring
// free blocks are left unmerged; merging is Coalesce's job.
//
// The ref must be a payload address previously returned by Alloc: non-zero,
// 8-byte aligned, and inside the arena. Freeing a block that is already
// free fails with ErrDoubleFree and changes nothing.
func (b *BestFit) Free(ref Ref) error {
	if !b.initialized {
		return ErrNotInitialized
	}

	if ref == 0 {
		return fmt.Errorf("%w: nil ref", ErrInvalidArgument)
	}
	if !format.Aligned(int(ref)) {
		return fmt.Errorf("%w: ref %#x not 8-byte aligned", ErrInvalidArgument, ref)
	}
	off := int(ref) - format.HeaderSize
	if off < b.entry || off >= b.entry+int(b.allocSize) {
		return fmt.Errorf("%w: ref %#x outside arena", ErrInvalidArgument, ref)
	}

	data := b.arena.Bytes()
	hdr := format.ParseHeader(data, off)
	if hdr.End(off) > b.entry+int(b.allocSize) {
		return fmt.Errorf("%w: ref %#x spans past the arena", ErrInvalidArgument, ref)
	}
	if !hdr.Allocated {
		return fmt.Errorf("%w: ref %#x", ErrDoubleFree, ref)
	}

	hdr.Allocated = false
	if err := hdr.Put(data, off); err != nil {
		return err
	}
	format.PutFooter(data, off, hdr.Size)

	next := hdr.End(off)
	if !format.IsSentinel(data, next) {
		nh := format.ParseHeader(data, next)
		nh.PrevAllocated = false
		if err := nh.Put(data, next); err != nil {
			return err
		}
	}

	b.stats.FreeCalls++
	b.stats.BytesFreed += int64(hdr.Size)

	if debugAlloc {
		logf("Free(%#x): size=%d", ref, hdr.Size)
	}
	return nil
}
