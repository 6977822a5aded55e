package alloc

// Ref is a payload offset into the arena, always 8-byte aligned. The block
// header sits format.HeaderSize bytes below the referenced address.
type Ref = uint32

// Allocator is the operation surface of the heap allocator.
//
// Implementations:
//   - BestFit: best-fit placement with exact-match short-circuit
//
// The interface keeps the CLI and tests independent from the placement
// policy.
type Allocator interface {
	// Init carves the arena into one free block bounded by the sentinel.
	// A second call after a prior success fails with ErrAlreadyInitialized
	// and performs no action.
	Init(requestedSize int) error

	// Alloc allocates a block whose payload holds at least need bytes.
	// Returns the payload ref, a slice over the payload, and any error.
	Alloc(need int) (Ref, []byte, error)

	// Free marks the referenced block free. It never merges neighbors;
	// merging is deferred to Coalesce.
	Free(ref Ref) error

	// Coalesce merges every run of adjacent free blocks in one forward
	// pass. Reports whether any merge occurred.
	Coalesce() bool
}

// Stats holds internal allocator counters for testing and instrumentation.
type Stats struct {
	InitSize       int32 // Usable arena span after reserve (bytes)
	AllocCalls     int   // Total Alloc() calls
	AllocHits      int   // Alloc() calls that returned a block
	FreeCalls      int   // Total successful Free() calls
	CoalesceRuns   int   // Coalesce() invocations
	ExactMatches   int   // Allocations satisfied by an exact-size block
	SplitCount     int   // Number of block splits
	MergeCount     int   // Blocks absorbed across all Coalesce() runs
	BytesAllocated int64 // Total bytes allocated (including headers)
	BytesFreed     int64 // Total bytes freed
}
