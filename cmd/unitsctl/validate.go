package main

import (
	"fmt"

	"github.com/gopherunits/units"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var spec string
	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Check a value against a unit-labelled list of intervals",
		Long: "Validate checks whether <value> falls within any interval of a spec\n" +
			`such as "kg: [0, 10), [10, 100]".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator, err := units.ParseIntervals(spec)
			if err != nil {
				return err
			}

			var value float64
			if _, err := fmt.Sscanf(args[0], "%g", &value); err != nil {
				return fmt.Errorf("%w: %q is not a number", units.ErrNotANumber, args[0])
			}

			if validator.IsValidFloat(value) {
				fmt.Fprintf(cmd.OutOrStdout(), "%g %s is valid\n", value, validator.Unit.Render())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g %s is not within %s\n", value, validator.Unit.Render(), validator.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&spec, "intervals", "", `interval spec, e.g. "kg: [0, 10), [10, 100]"`)
	cmd.MarkFlagRequired("intervals")
	return cmd
}
