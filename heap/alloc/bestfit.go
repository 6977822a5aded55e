package alloc

import (
	"fmt"

	"github.com/ShlokDesai33/Heap-Memory-Allocator/heap"
	"github.com/ShlokDesai33/Heap-Memory-Allocator/internal/format"
)

// BestFit is the best-fit placement allocator. All metadata lives in the
// block headers themselves; the struct only carries the arena handle, the
// entry offset, and counters.
type BestFit struct {
	arena *heap.Arena

	// One-shot init guard. Set only on a successful Init; a failed first
	// call leaves the allocator reusable.
	initialized bool

	entry     int   // offset of the entry block header (lowest address)
	allocSize int32 // usable span between entry and sentinel

	stats Stats
}

var _ Allocator = (*BestFit)(nil)

// New returns an uninitialized allocator. Call Init exactly once before any
// other operation.
func New() *BestFit {
	return &BestFit{}
}

// Init acquires the arena region and carves it into a single free block
// bounded by the sentinel.
//
// The region is the smallest page-size multiple >= requestedSize; 8 bytes
// are reserved for the leading alignment pad and the sentinel word. The
// entry block keeps its previous-block bit fixed at 1 since no real
// predecessor exists.
func (b *BestFit) Init(requestedSize int) error {
	if b.initialized {
		return ErrAlreadyInitialized
	}
	if requestedSize <= 0 {
		return fmt.Errorf("%w: requested size %d is not positive", ErrInvalidArgument, requestedSize)
	}

	arena, err := heap.New(requestedSize)
	if err != nil {
		return err
	}

	data := arena.Bytes()
	allocSize := int32(arena.Size() - format.ReserveSize)
	entry := format.PadSize

	hdr := format.BlockHeader{
		Size:          allocSize,
		Allocated:     false,
		PrevAllocated: true,
	}
	if err := hdr.Put(data, entry); err != nil {
		_ = arena.Release()
		return err
	}
	format.PutFooter(data, entry, allocSize)
	format.PutSentinel(data, entry+int(allocSize))

	b.arena = arena
	b.entry = entry
	b.allocSize = allocSize
	b.stats.InitSize = allocSize
	b.initialized = true
	return nil
}

// Alloc allocates a block whose payload holds at least need bytes, using
// best-fit placement with an exact-match short-circuit:
//
//  1. The block size is need plus the header, rounded up to a multiple of 8.
//  2. A left-to-right scan visits every free block that fits. An exact size
//     match is selected immediately; otherwise the strictly smallest fit so
//     far is tracked (ties keep the earliest).
//  3. A best-fit candidate larger than the request is split, unless the
//     remainder would fall below the 8-byte minimum block size, in which
//     case the whole block is allocated.
//
// The returned ref is 8-byte aligned and the slice covers the full payload
// span (block size minus header), which may exceed need due to alignment.
func (b *BestFit) Alloc(need int) (Ref, []byte, error) {
	if !b.initialized {
		return 0, nil, ErrNotInitialized
	}
	b.stats.AllocCalls++

	if need <= 0 {
		return 0, nil, fmt.Errorf("%w: request size %d is not positive", ErrInvalidArgument, need)
	}
	if need > int(b.allocSize) {
		return 0, nil, fmt.Errorf("%w: request size %d > capacity %d", ErrTooLarge, need, b.allocSize)
	}

	blockSize := format.Align8I32(int32(need) + format.HeaderSize)
	data := b.arena.Bytes()

	// Scan the block sequence for the best fit. An exact match wins on the
	// spot; no later candidate can beat it.
	bestOff := -1
	var bestSize int32
	exact := false

	for off := b.entry; !format.IsSentinel(data, off); {
		hdr := format.ParseHeader(data, off)
		if !hdr.Allocated && hdr.Size >= blockSize {
			if hdr.Size == blockSize {
				bestOff, bestSize = off, hdr.Size
				exact = true
				break
			}
			if bestOff < 0 || hdr.Size < bestSize {
				bestOff, bestSize = off, hdr.Size
			}
		}
		off = hdr.End(off)
	}

	if bestOff < 0 {
		if logAlloc {
			logf("OOM: need=%d blockSize=%d capacity=%d", need, blockSize, b.allocSize)
		}
		return 0, nil, ErrOutOfMemory
	}

	rem := bestSize - blockSize
	if exact || rem < format.MinBlockSize {
		// Take the whole block. The successor's predecessor turns allocated,
		// so its previous-block bit must be raised unless it is the sentinel.
		if err := b.takeWhole(data, bestOff, bestSize); err != nil {
			return 0, nil, err
		}
		if exact {
			b.stats.ExactMatches++
		}
		blockSize = bestSize
	} else {
		if err := b.split(data, bestOff, blockSize, rem); err != nil {
			return 0, nil, err
		}
	}

	b.stats.AllocHits++
	b.stats.BytesAllocated += int64(blockSize)

	payload := uint32(bestOff + format.HeaderSize)
	return payload, data[bestOff+format.HeaderSize : bestOff+int(blockSize)], nil
}

// takeWhole marks the block at off allocated without splitting and raises
// the successor's previous-block bit.
func (b *BestFit) takeWhole(data []byte, off int, size int32) error {
	hdr := format.ParseHeader(data, off)
	hdr.Allocated = true
	if err := hdr.Put(data, off); err != nil {
		return err
	}

	next := off + int(size)
	if !format.IsSentinel(data, next) {
		nh := format.ParseHeader(data, next)
		nh.PrevAllocated = true
		return nh.Put(data, next)
	}
	return nil
}

// split carves a leading allocated sub-block of blockSize out of the free
// block at off and turns the surplus into a new free block behind it. The
// remainder's predecessor is the fresh allocation, so its previous-block
// bit starts raised; the block beyond the remainder keeps its bit clear
// since its predecessor stays free.
func (b *BestFit) split(data []byte, off int, blockSize, rem int32) error {
	hdr := format.ParseHeader(data, off)

	head := format.BlockHeader{
		Size:          blockSize,
		Allocated:     true,
		PrevAllocated: hdr.PrevAllocated,
	}
	if err := head.Put(data, off); err != nil {
		return err
	}

	tailOff := off + int(blockSize)
	tail := format.BlockHeader{
		Size:          rem,
		Allocated:     false,
		PrevAllocated: true,
	}
	if err := tail.Put(data, tailOff); err != nil {
		return err
	}
	format.PutFooter(data, tailOff, rem)

	b.stats.SplitCount++
	return nil
}

// Stats returns a copy of the allocator counters.
func (b *BestFit) Stats() Stats {
	return b.stats
}

// Capacity returns the usable arena span in bytes, or 0 before Init.
func (b *BestFit) Capacity() int {
	return int(b.allocSize)
}

// Arena exposes the underlying arena, primarily so tests and the CLI can
// release the mapping.
func (b *BestFit) Arena() *heap.Arena {
	return b.arena
}
