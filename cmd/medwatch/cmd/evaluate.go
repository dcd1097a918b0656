package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/medwatch/internal/engine"
	"github.com/donaldgifford/medwatch/pkg/dedup"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

const offlineSearchID = "offline"

// searchFile is the on-disk form of a search: exactly one of the two keys.
type searchFile struct {
	Watch    *domain.WatchSpec    `json:"watch"`
	Medicine *domain.MedicineSpec `json:"medicine"`
}

func evaluateCmd() *cobra.Command {
	var (
		searchPath   string
		listingsPath string
		seenPath     string
		threshold    float64
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate listings against a search offline",
		Long: "Runs normalization, matching, deduplication and the decider over a JSON file of " +
			"listings without touching the database, the collector or any notifier.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSearch(searchPath)
			if err != nil {
				return err
			}

			var raws []domain.RawListing
			if err := readJSON(listingsPath, &raws); err != nil {
				return fmt.Errorf("reading listings: %w", err)
			}

			var seen []domain.Fingerprint
			if seenPath != "" {
				if err := readJSON(seenPath, &seen); err != nil {
					return fmt.Errorf("reading fingerprints: %w", err)
				}
			}

			eng := engine.NewEngine(nil, nil, nil, nil, engine.WithSimilarityThreshold(threshold))
			ev, err := eng.Evaluate(s, raws, seen)
			if err != nil {
				return fmt.Errorf("evaluating: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ev.Outcome)
			}
			return printDecisions(cmd.OutOrStdout(), ev.Outcome.Decisions)
		},
	}

	cmd.Flags().StringVar(&searchPath, "search", "", `search file: {"watch": {...}} or {"medicine": {...}}`)
	cmd.Flags().StringVar(&listingsPath, "listings", "", "JSON array of raw listings")
	cmd.Flags().StringVar(&seenPath, "seen", "", "JSON array of fingerprints already notified")
	cmd.Flags().Float64Var(&threshold, "threshold", dedup.DefaultSimilarityThreshold, "pharmacy name similarity threshold")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full outcome as JSON")
	cobra.CheckErr(cmd.MarkFlagRequired("search"))
	cobra.CheckErr(cmd.MarkFlagRequired("listings"))

	return cmd
}

func init() {
	rootCmd.AddCommand(evaluateCmd())
}

func loadSearch(path string) (domain.Search, error) {
	var f searchFile
	if err := readJSON(path, &f); err != nil {
		return nil, fmt.Errorf("reading search: %w", err)
	}

	switch {
	case f.Watch != nil && f.Medicine == nil:
		if f.Watch.ID == "" {
			f.Watch.ID = offlineSearchID
		}
		return domain.NewWatch(*f.Watch)
	case f.Medicine != nil && f.Watch == nil:
		if f.Medicine.ID == "" {
			f.Medicine.ID = offlineSearchID
		}
		return domain.NewMedicineSearch(*f.Medicine)
	default:
		return nil, errors.New(`search file must hold exactly one of "watch" or "medicine"`)
	}
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path from trusted CLI flag
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func printDecisions(w io.Writer, ds []domain.Decision) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ACTION\tREASON\tKIND\tRECORD\n")
	for i := range ds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ds[i].Action, ds[i].Reason, ds[i].Record.Kind, describe(&ds[i].Record))
	}
	return tw.Flush()
}

func describe(r *domain.CanonicalRecord) string {
	if r.Kind == domain.KindPharmacy {
		return fmt.Sprintf("%s, %s", r.PharmacyName, r.AddressKey)
	}
	return fmt.Sprintf("%s %s, %s", r.DateTime.Format("2006-01-02 15:04"), r.DoctorName, r.ClinicName)
}
