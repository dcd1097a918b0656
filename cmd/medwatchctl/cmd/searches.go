package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func searchCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "search",
		Short: "Operate on a search of either kind",
	}

	root.AddCommand(
		searchSetActiveCmd("activate", true),
		searchSetActiveCmd("deactivate", false),
		searchEvaluateCmd(),
	)

	return root
}

func searchSetActiveCmd(verb string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:     verb + " <id>",
		Short:   fmt.Sprintf("%s a watch or medicine search", verb),
		Example: fmt.Sprintf("  medwatchctl search %s 0b6c...", verb),
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().SetActive(context.Background(), args[0], active); err != nil {
				return err
			}
			fmt.Printf("Search %s %sd.\n", args[0], verb)
			return nil
		},
	}
}

func searchEvaluateCmd() *cobra.Command {
	var listingsPath string

	cmd := &cobra.Command{
		Use:   "evaluate <id>",
		Short: "Dry-run listings against a stored search",
		Long: "Sends a JSON array of raw listings to the server, which evaluates them against\n" +
			"the search and its fingerprints. Nothing is notified, booked or committed.",
		Example: `  medwatchctl search evaluate 0b6c... --listings listings.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(listingsPath) //nolint:gosec // path from trusted CLI flag
			if err != nil {
				return fmt.Errorf("reading listings: %w", err)
			}
			var raws []domain.RawListing
			if err := json.Unmarshal(data, &raws); err != nil {
				return fmt.Errorf("parsing listings: %w", err)
			}

			ev, err := newClient().Evaluate(context.Background(), args[0], raws)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(ev)
			}
			if err := printDecisionTable(os.Stdout, ev.Decisions); err != nil {
				return err
			}
			fmt.Printf("\n%d fingerprints would be committed.\n", ev.Commit)
			return nil
		},
	}
	cmd.Flags().StringVar(&listingsPath, "listings", "", "JSON array of raw listings")
	cobra.CheckErr(cmd.MarkFlagRequired("listings"))

	return cmd
}
