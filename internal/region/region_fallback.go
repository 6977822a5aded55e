//go:build !unix

package region

import (
	"fmt"
	"os"
)

// Acquire returns n zeroed bytes from the Go heap on platforms without
// anonymous mmap support. Committed-memory semantics match the unix path
// closely enough for the allocator: the bytes are zero-filled and stable for
// the process lifetime.
func Acquire(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: non-positive size %d", ErrAcquire, n)
	}
	data := make([]byte, n)
	return data, func() error { return nil }, nil
}

// PageSize returns the OS page size.
func PageSize() int {
	return os.Getpagesize()
}
