package alloc

import "github.com/ShlokDesai33/Heap-Memory-Allocator/internal/format"

// Coalesce walks the block sequence once, front to back, and merges every
// run of adjacent free blocks into its first member. The merged block keeps
// the first member's previous-block bit and gets a refreshed footer; blocks
// past the run are unaffected since their predecessor stays free.
//
// Running Coalesce again with no Free in between merges nothing. Reports
// whether any merge occurred.
func (b *BestFit) Coalesce() bool {
	if !b.initialized {
		return false
	}
	b.stats.CoalesceRuns++

	data := b.arena.Bytes()
	merged := false

	for off := b.entry; !format.IsSentinel(data, off); {
		hdr := format.ParseHeader(data, off)

		if !hdr.Allocated {
			absorbed := false
			next := hdr.End(off)
			for !format.IsSentinel(data, next) {
				nh := format.ParseHeader(data, next)
				if nh.Allocated {
					break
				}
				hdr.Size += nh.Size
				next = nh.End(next)
				absorbed = true
				b.stats.MergeCount++
			}

			if absorbed {
				merged = true
				// The summed size is a sum of validated multiples of 8, so
				// Put cannot fail while the invariants hold.
				if err := hdr.Put(data, off); err != nil {
					return merged
				}
				format.PutFooter(data, off, hdr.Size)
				if debugAlloc {
					logf("Coalesce: merged run at %#x, new size=%d", off, hdr.Size)
				}
			}
		}

		off = hdr.End(off)
	}

	return merged
}
