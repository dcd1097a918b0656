package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func cycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle",
		Short: "Run a poll cycle now",
		Long: "Asks the server to evaluate every active search once and waits for the report.\n" +
			"Exits non-zero when any search failed.",
		Example: `  medwatchctl cycle
  medwatchctl cycle --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			res, err := newClient().RunCycle(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				err = outputJSON(res)
			} else {
				err = printCycleReport(os.Stdout, res)
			}
			if err != nil {
				return err
			}

			if res.Failed > 0 {
				return fmt.Errorf("%d searches failed", res.Failed)
			}
			return nil
		},
	}
}

func exclusionsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "exclusions",
		Short: "Work with exclusion strings",
	}

	root.AddCommand(&cobra.Command{
		Use:     "validate <exclusions>",
		Short:   "Validate an exclusion string on the server",
		Example: `  medwatchctl exclusions validate "doctor:12,34;clinic:7"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res, err := newClient().ValidateExclusions(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			if !res.Valid {
				return errors.New(res.Error)
			}
			fmt.Println(res.Canonical)
			return nil
		},
	})

	return root
}
