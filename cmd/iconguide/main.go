// iconguide prints the manual steps for producing the Quickdrop icon files
// with the browser generator page. It takes no arguments; any given are ignored.
// Usage: go run ./cmd/iconguide
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mavwarf/quickdrop-iconguide/internal/guide"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "iconguide",
		Short: "Print the steps for generating the Quickdrop icons",
		// Arguments, --help included, never change the output.
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return guide.Write(cmd.OutOrStdout())
		},
	}
}

// run prints the guide and returns the process exit code. Command-line
// arguments are dropped before cobra sees them so its hidden __complete
// command can never be selected.
func run(_ []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs([]string{})
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
