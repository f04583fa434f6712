package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nvenkat/tkernel/internal/region"
	"github.com/nvenkat/tkernel/mem"
	"github.com/nvenkat/tkernel/proc"
)

func init() {
	cmd := &cobra.Command{
		Use:   "proc",
		Short: "Exercise the cooperative process manager",
	}
	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run two round-robin processes and print their interleaved output",
		RunE:  runProcDemo,
	}
	cmd.AddCommand(demo)
	rootCmd.AddCommand(cmd)
}

func runProcDemo(cmd *cobra.Command, args []string) error {
	r, err := region.New(512 * 1024)
	if err != nil {
		return fmt.Errorf("proc demo: %w", err)
	}
	defer r.Close()

	mem.Init(r.Bytes)
	proc.Init()

	p := message.NewPrinter(language.English)

	body := func(name string, rounds int) func() int {
		return func() int {
			for i := 0; i < rounds; i++ {
				p.Fprintf(os.Stdout, "%s: round %d\n", name, i)
				proc.Yield()
			}
			return 0
		}
	}

	pidA := proc.Create(body("A", 3))
	pidB := proc.Create(body("B", 3))
	if pidA == -1 || pidB == -1 {
		return fmt.Errorf("proc demo: process creation failed")
	}

	for i := 0; i < 8; i++ {
		proc.Yield()
	}

	if err := proc.CheckInvariants(); err != nil {
		return fmt.Errorf("proc demo: invariant check failed: %w", err)
	}
	return nil
}
