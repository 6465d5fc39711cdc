package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agegate/internal/platform/config"
)

func yearsCommand(cfg *config.Config) *cobra.Command {
	var reference string

	cmd := &cobra.Command{
		Use:   "years",
		Short: "Prints the accepted birth years, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newValidator(cfg, reference)
			if err != nil {
				return err
			}
			for _, y := range v.YearsRange() {
				fmt.Fprintln(cmd.OutOrStdout(), y)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reference, "reference", "", "Reference date YYYY-MM-DD (default: AGEGATE_REFERENCE_DATE or today)")
	return cmd
}
