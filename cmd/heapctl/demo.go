package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ShlokDesai33/Heap-Memory-Allocator/heap/alloc"
)

var (
	demoSize     int
	demoAllocs   string
	demoFreeOdd  bool
	demoCoalesce bool
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoSize, "size", 4096, "Requested arena size in bytes (rounded up to a page)")
	cmd.Flags().StringVar(&demoAllocs, "allocs", "24,32,48,16,64", "Comma-separated payload sizes to allocate")
	cmd.Flags().BoolVar(&demoFreeOdd, "free-odd", true, "Free every other allocation before dumping")
	cmd.Flags().BoolVar(&demoCoalesce, "coalesce", true, "Run coalesce after freeing and dump again")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted workload and print the block list",
		Long: `The demo command initializes a fresh arena, performs a scripted
allocate/free/coalesce workload, and prints the heap block list after each
phase.

Example:
  heapctl demo
  heapctl demo --size 8192 --allocs 100,200,300
  heapctl demo --free-odd=false --coalesce=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	sizes, err := parseSizes(demoAllocs)
	if err != nil {
		return err
	}

	bf := alloc.New()
	if err := bf.Init(demoSize); err != nil {
		return fmt.Errorf("init failed: %w", err)
	}

	printInfo("Arena initialized: %s usable (requested %s)\n",
		humanize.IBytes(uint64(bf.Capacity())), humanize.IBytes(uint64(demoSize)))

	refs := make([]alloc.Ref, 0, len(sizes))
	for _, n := range sizes {
		ref, _, allocErr := bf.Alloc(n)
		if allocErr != nil {
			return fmt.Errorf("alloc %d failed: %w", n, allocErr)
		}
		printVerbose("alloc(%d) -> ref %#x\n", n, ref)
		refs = append(refs, ref)
	}

	printInfo("\nAfter %d allocations:\n", len(refs))
	if err := bf.Dump(os.Stdout); err != nil {
		return err
	}

	if demoFreeOdd {
		for i, ref := range refs {
			if i%2 == 1 {
				continue
			}
			if freeErr := bf.Free(ref); freeErr != nil {
				return fmt.Errorf("free %#x failed: %w", ref, freeErr)
			}
			printVerbose("free(%#x)\n", ref)
		}
		printInfo("\nAfter freeing every other block:\n")
		if err := bf.Dump(os.Stdout); err != nil {
			return err
		}
	}

	if demoCoalesce {
		merged := bf.Coalesce()
		printInfo("\nCoalesce merged anything: %v\n", merged)
		if err := bf.Dump(os.Stdout); err != nil {
			return err
		}
	}

	stats := bf.Stats()
	printInfo("\nStats: %d allocs (%d exact, %d splits), %d frees, %s allocated, %s freed\n",
		stats.AllocCalls, stats.ExactMatches, stats.SplitCount, stats.FreeCalls,
		humanize.IBytes(uint64(stats.BytesAllocated)), humanize.IBytes(uint64(stats.BytesFreed)))

	return bf.Check()
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid allocation size %q", p)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no allocation sizes given")
	}
	return sizes, nil
}
