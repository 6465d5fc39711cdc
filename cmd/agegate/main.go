// Package main provides the CLI entrypoint for the date-of-birth gate.
// It wires subcommands (serve, check, years) and loads configuration from the
// environment.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agegate/internal/platform/config"
	"agegate/pkg/dob"
)

// errNotEligible makes `check` exit non-zero without printing usage.
var errNotEligible = errors.New("date of birth is outside the age window")

func newRootCommand() *cobra.Command {
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:           "agegate",
		Short:         "Validates dates of birth against an age window",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = *loaded
			return nil
		},
	}
	rootCmd.SetHelpTemplate(rootCmd.HelpTemplate() + "\nEnvironment:\n" + config.Usage() + "\n")

	rootCmd.AddCommand(
		serveCommand(&cfg),
		checkCommand(&cfg),
		yearsCommand(&cfg),
	)
	return rootCmd
}

// newValidator anchors the window at reference, falling back to the configured
// reference date and then to today.
func newValidator(cfg *config.Config, reference string) (*dob.Validator, error) {
	if reference == "" {
		reference = cfg.DOB.ReferenceDate
	}
	opts := []dob.Option{dob.WithAgeBounds(cfg.Bounds())}
	if reference != "" {
		opts = append(opts, dob.WithReferenceDate(reference))
	}
	return dob.New(opts...)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errNotEligible) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
