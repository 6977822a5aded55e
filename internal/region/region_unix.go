//go:build unix

package region

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Acquire maps n committed, zero-filled bytes of anonymous private memory.
// The mapping is page-aligned by construction; callers pass a page-multiple
// size (see Round). The returned release func unmaps the region and exists
// for test cleanup only.
func Acquire(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: non-positive size %d", ErrAcquire, n)
	}
	data, err := unix.Mmap(
		-1,
		0,
		n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: mmap: %v", ErrAcquire, err)
	}
	release := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		data = nil
		return err
	}
	return data, release, nil
}

// PageSize returns the OS page size.
func PageSize() int {
	return unix.Getpagesize()
}
