package alloc

import (
	"fmt"
	"io"

	"github.com/ShlokDesai33/Heap-Memory-Allocator/internal/format"
)

// BlockInfo is one row of the heap visualization: a block's position and
// status in address order.
type BlockInfo struct {
	Serial        int   // 1-based position in the block sequence
	Begin         int   // offset of the first byte (the header)
	End           int   // offset of the last byte
	Size          int32 // total span in bytes
	Allocated     bool
	PrevAllocated bool
}

// Blocks returns the live block sequence in address order, sentinel
// excluded. Read-only.
func (b *BestFit) Blocks() ([]BlockInfo, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}

	data := b.arena.Bytes()
	var blocks []BlockInfo

	serial := 1
	for off := b.entry; !format.IsSentinel(data, off); {
		hdr := format.ParseHeader(data, off)
		blocks = append(blocks, BlockInfo{
			Serial:        serial,
			Begin:         off,
			End:           hdr.End(off) - 1,
			Size:          hdr.Size,
			Allocated:     hdr.Allocated,
			PrevAllocated: hdr.PrevAllocated,
		})
		off = hdr.End(off)
		serial++
	}
	return blocks, nil
}

// Dump writes the block list in address order followed by used/free/total
// byte counts. It reflects live state without mutating it.
func (b *BestFit) Dump(w io.Writer) error {
	blocks, err := b.Blocks()
	if err != nil {
		return err
	}

	var used, free int64

	fmt.Fprintln(w, "*********************************** Block List **********************************")
	fmt.Fprintln(w, "No.\tStatus\tPrev\tt_Begin\t\tt_End\t\tt_Size")
	fmt.Fprintln(w, "---------------------------------------------------------------------------------")

	for _, blk := range blocks {
		status := "FREE "
		if blk.Allocated {
			status = "alloc"
			used += int64(blk.Size)
		} else {
			free += int64(blk.Size)
		}
		prev := "FREE "
		if blk.PrevAllocated {
			prev = "alloc"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t0x%08x\t0x%08x\t%4d\n",
			blk.Serial, status, prev, blk.Begin, blk.End, blk.Size)
	}

	fmt.Fprintln(w, "---------------------------------------------------------------------------------")
	fmt.Fprintln(w, "*********************************************************************************")
	fmt.Fprintf(w, "Total used size = %4d\n", used)
	fmt.Fprintf(w, "Total free size = %4d\n", free)
	fmt.Fprintf(w, "Total size      = %4d\n", used+free)
	fmt.Fprintln(w, "*********************************************************************************")
	return nil
}
