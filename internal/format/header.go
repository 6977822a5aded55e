package format

import "fmt"

// BlockHeader is the decoded form of the one-word header that precedes every
// block in the arena.
//
// Stored layout (little-endian uint32):
//
//	bit 0      allocated flag (1 = in use)
//	bit 1      previous-block-allocated flag
//	bits 3..31 span size in bytes (always a multiple of 8, so the flag bits
//	           never overlap the size)
//
// The arena-end sentinel is the one exception: its raw word is exactly
// SentinelMark (size 0, allocated bit set).
type BlockHeader struct {
	// Size is the total block span in bytes: header plus payload, and for
	// free blocks the footer as well.
	Size int32

	// Allocated reports whether the block is currently in use.
	Allocated bool

	// PrevAllocated reports whether the immediately preceding block (lower
	// address) is in use. The entry block has no real predecessor and keeps
	// this fixed at true.
	PrevAllocated bool
}

// ParseHeader decodes the block header stored at off.
func ParseHeader(b []byte, off int) BlockHeader {
	raw := ReadU32(b, off)
	return BlockHeader{
		Size:          int32(raw &^ FlagMask),
		Allocated:     raw&AllocatedBit != 0,
		PrevAllocated: raw&PrevAllocatedBit != 0,
	}
}

// Put encodes the header into the buffer at off. The size must be a positive
// multiple of 8; the sentinel has its own writer and never goes through here.
func (h BlockHeader) Put(b []byte, off int) error {
	if h.Size <= 0 || h.Size%Alignment != 0 {
		return fmt.Errorf("%w: block size %d", ErrBadSize, h.Size)
	}
	raw := uint32(h.Size)
	if h.Allocated {
		raw |= AllocatedBit
	}
	if h.PrevAllocated {
		raw |= PrevAllocatedBit
	}
	PutU32(b, off, raw)
	return nil
}

// End returns the offset one past the block's last byte.
func (h BlockHeader) End(off int) int {
	return off + int(h.Size)
}

// IsSentinel reports whether the raw word at off is the arena-end mark.
func IsSentinel(b []byte, off int) bool {
	return ReadU32(b, off) == SentinelMark
}

// PutSentinel writes the arena-end mark at off.
func PutSentinel(b []byte, off int) {
	PutU32(b, off, SentinelMark)
}

// PutFooter writes the free-block footer: a copy of the raw size (no flag
// bits) in the last word of the block starting at off.
func PutFooter(b []byte, off int, size int32) {
	PutI32(b, off+int(size)-FooterSize, size)
}

// ReadFooter reads the footer of the free block whose span ends at end.
func ReadFooter(b []byte, end int) int32 {
	return ReadI32(b, end-FooterSize)
}
