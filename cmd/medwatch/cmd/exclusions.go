package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func exclusionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclusions",
		Short: "Work with exclusion strings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "validate EXCLUSIONS",
		Short:   "Parse an exclusion string and print its canonical form",
		Example: `  medwatch exclusions validate "doctor:12,34;clinic:7"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := domain.ParseExclusionSet(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), set.String())
			return nil
		},
	})

	return cmd
}

func init() {
	rootCmd.AddCommand(exclusionsCmd())
}
