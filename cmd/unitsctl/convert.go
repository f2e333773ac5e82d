package main

import (
	"fmt"

	"github.com/gopherunits/units"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value between two units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromUnit, err := units.ParseUnit(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			toUnit, err := units.ParseUnit(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			ratio, err := fromUnit.To(toUnit)
			if err != nil {
				return err
			}

			var value float64
			if _, err := fmt.Sscanf(args[0], "%g", &value); err != nil {
				return fmt.Errorf("%w: %q is not a number", units.ErrNotANumber, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g %s = %g %s\n", value, fromUnit.Render(), value*ratio, toUnit.Render())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source unit expression")
	cmd.Flags().StringVar(&to, "to", "", "target unit expression")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}
