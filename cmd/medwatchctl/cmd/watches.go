package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/medwatch/internal/api/client"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func watchCmd() *cobra.Command {
	watchRoot := &cobra.Command{
		Use:   "watches",
		Short: "Manage appointment watches",
		Long: "Manage watches that describe the appointment slots to look for: region,\n" +
			"specialties, optional clinic and doctor, a date window, a daily time range\n" +
			"and exclusions.",
	}

	watchRoot.AddCommand(
		watchListCmd(),
		watchGetCmd(),
		watchCreateCmd(),
		watchDeleteCmd(),
	)

	return watchRoot
}

func watchListCmd() *cobra.Command {
	var (
		activeOnly bool
		limit      int
		offset     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List watches",
		Example: `  medwatchctl watches list
  medwatchctl watches list --active --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p := &client.ListParams{Limit: limit, Offset: offset}
			if activeOnly {
				p.Active = &activeOnly
			}
			res, err := newClient().ListWatches(context.Background(), p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			if len(res.Watches) == 0 {
				fmt.Println("No watches found.")
				return nil
			}
			return printWatchTable(os.Stdout, res.Watches)
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active watches")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size (server default 50)")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")

	return cmd
}

func watchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show watch details",
		Example: `  medwatchctl watches get 0b6c...
  medwatchctl watches get 0b6c... --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			w, err := newClient().GetWatch(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(w)
			}
			return printWatchDetail(os.Stdout, w)
		},
	}
}

func watchCreateCmd() *cobra.Command {
	var spec domain.WatchSpec

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new watch",
		Long: "Create a new watch. It is active by default and is evaluated on the next\n" +
			"poll cycle. The server validates every field and reports all problems at once.",
		Example: `  # Any cardiologist in region 204 in November, mornings only
  medwatchctl watches create --region 204 --specialty 16 \
    --from 2026-11-01 --to 2026-11-30 --time-range 08:00-12:00

  # A general practitioner, skipping one doctor, booked automatically
  medwatchctl watches create --region 204 --gp --exclusions doctor:1234 \
    --auto-book --account main`,
		RunE: func(_ *cobra.Command, _ []string) error {
			created, err := newClient().CreateWatch(context.Background(), &spec)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Watch created: %s (region %d)\n", created.ID, created.RegionID)
			return nil
		},
	}

	f := cmd.Flags()
	f.Int64Var(&spec.RegionID, "region", 0, "region id")
	f.StringVar(&spec.City, "city", "", "city name")
	f.Int64SliceVar(&spec.Specialties, "specialty", nil, "specialty ids")
	f.BoolVar(&spec.GeneralPractitioner, "gp", false, "match any general practitioner specialty")
	f.Int64Var(&spec.ClinicID, "clinic", 0, "clinic id")
	f.Int64Var(&spec.DoctorID, "doctor", 0, "doctor id")
	f.StringVar(&spec.StartDate, "from", "", "first day, YYYY-MM-DD")
	f.StringVar(&spec.EndDate, "to", "", "last day, YYYY-MM-DD")
	f.StringVar(&spec.TimeRange, "time-range", "", "daily window, HH:MM-HH:MM")
	f.BoolVar(&spec.Examination, "examination", false, "look for examinations instead of visits")
	f.BoolVar(&spec.AutoBook, "auto-book", false, "book the first matching slot")
	f.StringVar(&spec.Exclusions, "exclusions", "", `exclusions, e.g. "doctor:1,2;clinic:3"`)
	f.StringVar(&spec.Account, "account", "", "account used for booking")
	cobra.CheckErr(cmd.MarkFlagRequired("region"))

	return cmd
}

func watchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a watch and its fingerprints",
		Example: `  medwatchctl watches delete 0b6c...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().DeleteWatch(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Watch %s deleted.\n", args[0])
			return nil
		},
	}
}
