package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nvenkat/tkernel/internal/region"
	"github.com/nvenkat/tkernel/mem"
)

var memRegionSize int

func init() {
	cmd := &cobra.Command{
		Use:   "mem",
		Short: "Exercise the byte-region allocator",
	}
	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run a small allocate/free session and print the resulting stats",
		RunE:  runMemDemo,
	}
	demo.Flags().IntVar(&memRegionSize, "size", 64*1024, "region size in bytes")
	cmd.AddCommand(demo)
	rootCmd.AddCommand(cmd)
}

func runMemDemo(cmd *cobra.Command, args []string) error {
	r, err := region.New(memRegionSize)
	if err != nil {
		return fmt.Errorf("mem demo: %w", err)
	}
	defer r.Close()

	mem.Init(r.Bytes)

	p := message.NewPrinter(language.English)

	sizes := []int{100, 200, 300}
	var ptrs [][]byte
	for _, sz := range sizes {
		buf := mem.Alloc(sz)
		if buf == nil {
			printInfo("alloc(%d) failed: region exhausted\n", sz)
			continue
		}
		ptrs = append(ptrs, buf)
		p.Fprintf(os.Stdout, "allocated %d bytes\n", sz)
	}

	// Free every other block to demonstrate coalescing before the final
	// report.
	for i, buf := range ptrs {
		if i%2 == 0 {
			mem.Free(buf)
		}
	}

	st := mem.CurrentStats()
	p.Fprintf(os.Stdout, "\nregion:      %d bytes\n", st.RegionBytes)
	p.Fprintf(os.Stdout, "free:        %d bytes across %d blocks\n", st.FreeBytes, st.FreeBlocks)
	p.Fprintf(os.Stdout, "used blocks: %d\n", st.UsedBlocks)
	p.Fprintf(os.Stdout, "largest free block: %d bytes\n", st.LargestFree)

	if err := mem.CheckInvariants(); err != nil {
		return fmt.Errorf("mem demo: invariant check failed: %w", err)
	}
	return nil
}
