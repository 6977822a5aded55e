package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFree_MarksFreeAndClearsSuccessorBit verifies the two header updates a
// free performs: the block's own allocated bit and the successor's
// previous-block bit.
func TestFree_MarksFreeAndClearsSuccessorBit(t *testing.T) {
	bf := newTestAllocator(t, 4096)

	first, _, err := bf.Alloc(24)
	require.NoError(t, err)
	second, _, err := bf.Alloc(24)
	require.NoError(t, err)

	require.NoError(t, bf.Free(first))

	freed := blockAt(t, bf, headerOff(first))
	assert.False(t, freed.Allocated)

	successor := blockAt(t, bf, headerOff(second))
	assert.False(t, successor.PrevAllocated, "successor must see its predecessor as free")
	assert.True(t, successor.Allocated, "successor itself stays allocated")

	assertInvariants(t, bf)
}

// TestFree_DoubleFree verifies that the second free of the same ref fails
// with ErrDoubleFree and leaves the block state untouched.
func TestFree_DoubleFree(t *testing.T) {
	bf := newTestAllocator(t, 4096)

	ref, _, err := bf.Alloc(32)
	require.NoError(t, err)
	require.NoError(t, bf.Free(ref))

	before, err := bf.Blocks()
	require.NoError(t, err)

	require.ErrorIs(t, bf.Free(ref), ErrDoubleFree)

	after, err := bf.Blocks()
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed free must not mutate any block")
}

// TestFree_RejectsBadRefs covers nil, misaligned, and out-of-range targets;
// none may mutate the arena.
func TestFree_RejectsBadRefs(t *testing.T) {
	bf := newTestAllocator(t, 4096)

	ref, _, err := bf.Alloc(32)
	require.NoError(t, err)

	before, err := bf.Blocks()
	require.NoError(t, err)

	assert.ErrorIs(t, bf.Free(0), ErrInvalidArgument, "nil ref")
	assert.ErrorIs(t, bf.Free(ref+4), ErrInvalidArgument, "misaligned ref")
	assert.ErrorIs(t, bf.Free(Ref(bf.Capacity()+4096)), ErrInvalidArgument, "ref beyond the arena")

	after, err := bf.Blocks()
	require.NoError(t, err)
	assert.Equal(t, before, after, "rejected frees must not mutate any block")
}

// TestFree_LastBlockBeforeSentinel verifies that freeing the block adjacent
// to the sentinel skips the successor update and stays consistent.
func TestFree_LastBlockBeforeSentinel(t *testing.T) {
	bf := newTestAllocator(t, 1)

	// Fill the arena exactly so the allocation's successor is the sentinel.
	ref, _, err := bf.Alloc(bf.Capacity() - 4)
	require.NoError(t, err)

	require.NoError(t, bf.Free(ref))
	assertInvariants(t, bf)

	blocks, err := bf.Blocks()
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.False(t, blocks[0].Allocated)
}

// TestFree_DoesNotMerge verifies that free leaves adjacent free blocks
// unmerged; merging belongs to Coalesce.
func TestFree_DoesNotMerge(t *testing.T) {
	bf := newTestAllocator(t, 4096)

	a, _, err := bf.Alloc(24)
	require.NoError(t, err)
	b, _, err := bf.Alloc(24)
	require.NoError(t, err)
	_, _, err = bf.Alloc(24) // keeps the trailing free block detached
	require.NoError(t, err)

	require.NoError(t, bf.Free(a))
	require.NoError(t, bf.Free(b))

	blocks, err := bf.Blocks()
	require.NoError(t, err)

	var freeRun int
	for _, blk := range blocks {
		if !blk.Allocated && (blk.Begin == headerOff(a) || blk.Begin == headerOff(b)) {
			freeRun++
		}
	}
	assert.Equal(t, 2, freeRun, "both blocks stay separate until Coalesce")

	assertInvariants(t, bf)
}
