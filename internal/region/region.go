// Package region acquires the arena's backing memory from the operating
// system: committed, zero-filled, page-aligned bytes obtained once and held
// for the process lifetime.
package region

import "errors"

// ErrAcquire indicates the OS could not supply the requested region.
var ErrAcquire = errors.New("region: cannot acquire memory region")

// Round returns n rounded up to the next multiple of the OS page size.
func Round(n int) int {
	page := PageSize()
	pad := n % page
	pad = (page - pad) % page
	return n + pad
}
