// Package heap provides the arena container for the user-space allocator.
//
// # Overview
//
// An Arena is one contiguous byte region obtained from the operating system
// exactly once and held for the process lifetime. The package owns region
// acquisition and raw byte access only; carving the region into blocks and
// every allocation decision belongs to the alloc subpackage.
//
// # Region Layout
//
// The mapped region is a page-size multiple. The allocator reserves 8 bytes
// of it for a leading alignment pad and the trailing sentinel word:
//
//	[pad 4B] [entry block ... blocks ...] [sentinel 4B]
//
// # Opening an Arena
//
//	a, err := heap.New(4096)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Release()
//
// Release exists for test cleanup; production arenas live until process
// exit and are reclaimed by the OS.
package heap
