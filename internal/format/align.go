package format

// Alignment utilities for the arena block layout. Block spans and payload
// addresses must sit on 8-byte boundaries.

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + AlignmentMask) & ^AlignmentMask
}

// Align8I32 returns n aligned up to the next 8-byte boundary.
// int32 version for use in allocator code that carries offsets as int32.
func Align8I32(n int32) int32 {
	return (n + AlignmentMask) & ^AlignmentMask
}

// Aligned reports whether n sits on an 8-byte boundary.
func Aligned(n int) bool {
	return n&AlignmentMask == 0
}
