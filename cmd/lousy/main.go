// Command lousy is a small CLI front end to the emulator library, offering
// "list" and "run" subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "lousy",
		Short: "Drive a child program through a virtual terminal and print what it would show on screen.",
	}
	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
