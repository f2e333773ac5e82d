package main

import (
	"fmt"

	"github.com/gopherunits/units"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <unit expression>",
		Short: "Parse a unit expression and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := units.ParseUnit(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (scalar %g)\n", u.Render(), u.Scalar)
			return nil
		},
	}
}
