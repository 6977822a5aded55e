package heap

import (
	"fmt"

	"github.com/ShlokDesai33/Heap-Memory-Allocator/internal/region"
)

// Arena is the mapped memory region, backed by anonymous mmap (unix) or a
// byte slice (others). Capacity is fixed at creation; there is no grow or
// shrink operation.
type Arena struct {
	data    []byte
	size    int
	release func() error
}

// New acquires a region of at least requested bytes, rounded up to the next
// page-size multiple. The bytes are committed and zero-filled.
func New(requested int) (*Arena, error) {
	if requested <= 0 {
		return nil, fmt.Errorf("heap: requested size %d is not positive", requested)
	}
	size := region.Round(requested)
	data, release, err := region.Acquire(size)
	if err != nil {
		return nil, err
	}
	return &Arena{
		data:    data,
		size:    size,
		release: release,
	}, nil
}

// Bytes returns the backing region. Mutations write straight into the
// mapping.
func (a *Arena) Bytes() []byte { return a.data }

// Size returns the mapped region length in bytes (a page-size multiple).
func (a *Arena) Size() int { return a.size }

// Contains reports whether off falls inside the mapped region.
func (a *Arena) Contains(off int) bool {
	return off >= 0 && off < a.size
}

// Release unmaps the region. Intended for test cleanup only; the allocator
// contract keeps arenas alive for the process lifetime.
func (a *Arena) Release() error {
	if a == nil || a.release == nil {
		return nil
	}
	err := a.release()
	a.release = nil
	a.data = nil
	return err
}
