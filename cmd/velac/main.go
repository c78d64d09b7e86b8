// Command velac drives the semantic analysis core over a package
// directory (SPEC_FULL.md AMBIENT STACK: a small cobra command tree, the
// same library _examples/termfx-morfx's demo command is built on).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "velac",
		Short: "velac checks Vela source packages",
	}
	cmd.AddCommand(newCheckCmd())
	return cmd
}
