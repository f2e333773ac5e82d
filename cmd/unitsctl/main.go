// Command unitsctl exposes the units library's parsing, conversion and
// interval-validation operations from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "unitsctl",
		Short:         "Parse, render and validate physical quantities and units",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newValidateCmd())
	return root
}
