package alloc

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive request size or a free
	// target that is nil, misaligned, or outside the arena.
	ErrInvalidArgument = errors.New("alloc: invalid argument")

	// ErrTooLarge indicates a request exceeding the total arena capacity.
	ErrTooLarge = errors.New("alloc: request exceeds arena capacity")

	// ErrAlreadyInitialized indicates a second Init call after a prior success.
	ErrAlreadyInitialized = errors.New("alloc: arena already initialized")

	// ErrNotInitialized indicates an operation on an allocator before Init.
	ErrNotInitialized = errors.New("alloc: arena not initialized")

	// ErrOutOfMemory indicates that no free block large enough was found.
	ErrOutOfMemory = errors.New("alloc: no free block large enough")

	// ErrDoubleFree indicates an attempt to free a block that is already free.
	ErrDoubleFree = errors.New("alloc: block already free")

	// ErrInvariant indicates a block-sequence invariant violation found by Check.
	ErrInvariant = errors.New("alloc: invariant violation")
)
