package format

import "errors"

var (
	// ErrBadSize indicates a block size that is not a positive multiple of 8.
	ErrBadSize = errors.New("format: block size must be a positive multiple of 8")
)
