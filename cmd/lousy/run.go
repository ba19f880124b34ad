package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/travisbca/lousy-go/process"
	"github.com/travisbca/lousy-go/vtty"
)

func newRunCmd() *cobra.Command {
	var emulation string
	var rows, cols int
	var usePty bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "run -- <command> [args...]",
		Short: "Run a command behind a virtual terminal and dump the resulting screen",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tty, err := vtty.New(emulation, rows, cols)
			if err != nil {
				return err
			}

			p, err := process.Start(process.Config{
				Path:   args[0],
				Args:   args[1:],
				UsePty: usePty,
				Rows:   rows,
				Cols:   cols,
				Mirror: tty,
			})
			if err != nil {
				return fmt.Errorf("starting %s: %w", args[0], err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			if err := p.WaitForTermination(ctx); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}

			tty.DumpTo(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&emulation, "emulation", "typical", "emulation to run (dumb, vt05, vt100, typical)")
	cmd.Flags().IntVar(&rows, "rows", 24, "screen rows")
	cmd.Flags().IntVar(&cols, "cols", 80, "screen columns")
	cmd.Flags().BoolVar(&usePty, "pty", true, "spawn the child behind a pseudo-terminal")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to wait for the command to finish")

	return cmd
}
