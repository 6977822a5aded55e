// Package format houses the low-level block-header encoding for the heap
// arena. The goal is to keep the bit-level layout in one place, independent
// from the public API, so the allocator package can work with decoded
// headers instead of raw flag arithmetic.
package format

const (
	// HeaderSize is the number of bytes used by the block header preceding
	// every block (free or in-use) within the arena.
	HeaderSize = 4

	// FooterSize is the number of bytes used by the trailing size copy that
	// free blocks carry at their highest addresses.
	FooterSize = 4

	// Alignment is the required alignment of block spans and payload
	// addresses. Every stored size is a multiple of 8, which also keeps the
	// two low header bits free for flags.
	Alignment = 8

	// AlignmentMask is Alignment-1, used by the align helpers.
	AlignmentMask = Alignment - 1

	// MinBlockSize is the smallest legal block span: one header plus one
	// footer. Split remainders below this threshold are absorbed by the
	// allocation instead of forming a degenerate free block.
	MinBlockSize = HeaderSize + FooterSize

	// PadSize is the leading padding before the entry block's header. With a
	// 4-byte header this puts every payload on an 8-byte boundary.
	PadSize = 4

	// ReserveSize is the number of bytes withheld from the mapped region for
	// the leading pad and the trailing sentinel word.
	ReserveSize = PadSize + HeaderSize

	// SentinelMark is the raw header word of the arena-end sentinel: size 0
	// with the allocated bit set. The sentinel is never split, freed, or
	// merged into.
	SentinelMark = 1

	// AllocatedBit marks the block itself as in use.
	AllocatedBit = 1 << 0

	// PrevAllocatedBit marks the immediately preceding block as in use. It is
	// the only backward neighbor state a block carries; there is no backward
	// pointer.
	PrevAllocatedBit = 1 << 1

	// FlagMask covers both status bits.
	FlagMask = AllocatedBit | PrevAllocatedBit
)
