package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// supportedEmulations mirrors vtty's internal registry; kept as a plain
// list here rather than importing vtty's unexported map so this command
// has no dependency on vtty's internals.
var supportedEmulations = []string{"dumb", "vt05", "vt100", "typical"}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the emulations this build supports",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range supportedEmulations {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
