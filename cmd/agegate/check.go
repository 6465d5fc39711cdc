package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"agegate/internal/dob/service"
	"agegate/internal/platform/config"
)

func checkCommand(cfg *config.Config) *cobra.Command {
	var day, month, year, reference string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Checks one date of birth and exits non-zero when it is not eligible",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newValidator(cfg, reference)
			if err != nil {
				return err
			}
			svc, err := service.New(service.Fixed(v))
			if err != nil {
				return err
			}

			res := svc.ValidateDateOfBirth(cmd.Context(), service.BirthDateInput{Day: day, Month: month, Year: year})
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "reference: %s\n", v.ReferenceDate().Format(time.DateOnly))
			fmt.Fprintf(out, "day: %t\nmonth: %t\nyear: %t\ndate: %t\n",
				res.DayValid, res.MonthValid, res.YearValid, res.DateValid)
			if !res.Eligible {
				fmt.Fprintln(out, "eligible: false")
				return errNotEligible
			}
			fmt.Fprintf(out, "eligible: true\nage: %d\n", *res.Age)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day of month as typed")
	cmd.Flags().StringVar(&month, "month", "", "Month (1-12) as typed")
	cmd.Flags().StringVar(&year, "year", "", "Four-digit year as typed")
	cmd.Flags().StringVar(&reference, "reference", "", "Reference date YYYY-MM-DD (default: AGEGATE_REFERENCE_DATE or today)")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
