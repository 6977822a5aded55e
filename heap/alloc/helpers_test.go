package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShlokDesai33/Heap-Memory-Allocator/internal/format"
)

// newTestAllocator initializes a fresh arena of the requested size and
// registers the mapping for cleanup.
func newTestAllocator(t *testing.T, size int) *BestFit {
	t.Helper()
	bf := New()
	require.NoError(t, bf.Init(size))
	t.Cleanup(func() {
		_ = bf.Arena().Release()
	})
	return bf
}

// carveFreeSpans lays out free blocks of the given spans at increasing
// addresses, each separated by a small allocated block so Coalesce cannot
// merge them. Returns the payload refs of the free blocks in layout order.
//
// Spans must be multiples of 8 and at least 16 so the carve allocation does
// not degenerate.
func carveFreeSpans(t *testing.T, bf *BestFit, spans []int32) []Ref {
	t.Helper()

	refs := make([]Ref, 0, len(spans))
	for _, span := range spans {
		require.Zero(t, span%format.Alignment, "spans must be 8-byte multiples")
		ref, _, err := bf.Alloc(int(span) - format.HeaderSize)
		require.NoError(t, err)
		refs = append(refs, ref)

		// Separator keeps neighbors allocated.
		_, _, err = bf.Alloc(8)
		require.NoError(t, err)
	}
	for _, ref := range refs {
		require.NoError(t, bf.Free(ref))
	}
	assertInvariants(t, bf)
	return refs
}

// assertInvariants runs the structural invariant walk after a mutation.
func assertInvariants(t *testing.T, bf *BestFit) {
	t.Helper()
	require.NoError(t, bf.Check())
}

// blockAt returns the block whose header sits at the given begin offset.
func blockAt(t *testing.T, bf *BestFit, begin int) BlockInfo {
	t.Helper()
	blocks, err := bf.Blocks()
	require.NoError(t, err)
	for _, blk := range blocks {
		if blk.Begin == begin {
			return blk
		}
	}
	t.Fatalf("no block with header at offset %#x", begin)
	return BlockInfo{}
}

// headerOff converts a payload ref to its block header offset.
func headerOff(ref Ref) int {
	return int(ref) - format.HeaderSize
}
