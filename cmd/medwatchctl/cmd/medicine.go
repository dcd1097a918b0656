package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/medwatch/internal/api/client"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func medicineCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "medicine",
		Aliases: []string{"med"},
		Short:   "Manage medicine searches",
		Long: "Manage searches for a medicine in pharmacies near a location, with optional\n" +
			"dosage, package size, price cap and minimum availability.",
	}

	root.AddCommand(
		medicineListCmd(),
		medicineGetCmd(),
		medicineCreateCmd(),
		medicineDeleteCmd(),
	)

	return root
}

func medicineListCmd() *cobra.Command {
	var (
		activeOnly bool
		limit      int
		offset     int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List medicine searches",
		Example: `  medwatchctl medicine list --active`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p := &client.ListParams{Limit: limit, Offset: offset}
			if activeOnly {
				p.Active = &activeOnly
			}
			res, err := newClient().ListMedicine(context.Background(), p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			if len(res.Searches) == 0 {
				fmt.Println("No medicine searches found.")
				return nil
			}
			return printMedicineTable(os.Stdout, res.Searches)
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active searches")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size (server default 50)")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")

	return cmd
}

func medicineGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show medicine search details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := newClient().GetMedicine(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(m)
			}
			return printMedicineDetail(os.Stdout, m)
		},
	}
}

func medicineCreateCmd() *cobra.Command {
	var spec domain.MedicineSpec

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new medicine search",
		Example: `  medwatchctl medicine create --name Euthyrox --dosage "50 mcg" --amount "100 tabl." \
    --location Warszawa --radius 5 --max-price 25 --deactivate-after 3`,
		RunE: func(_ *cobra.Command, _ []string) error {
			created, err := newClient().CreateMedicine(context.Background(), &spec)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Medicine search created: %s (%s)\n", created.ID, fullName(&created.MedicineSpec))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&spec.Name, "name", "", "medicine name")
	f.StringVar(&spec.Dosage, "dosage", "", `dosage, e.g. "50 mcg"`)
	f.StringVar(&spec.Amount, "amount", "", `package size, e.g. "100 tabl."`)
	f.StringVar(&spec.Location, "location", "", "address or city to search around")
	f.Float64Var(&spec.RadiusKM, "radius", 0, "search radius in km (server default applies)")
	f.StringVar(&spec.MaxPrice, "max-price", "", "highest acceptable full price")
	f.StringVar(&spec.MinAvailability, "min-availability", "", "none, low or high")
	f.IntVar(&spec.DeactivateAfter, "deactivate-after", 0, "matches that deactivate the search (default 1, negative never)")
	f.StringVar(&spec.Exclusions, "exclusions", "", "exclusion string")
	f.StringVar(&spec.Title, "title", "", "title used in notifications")
	cobra.CheckErr(cmd.MarkFlagRequired("name"))
	cobra.CheckErr(cmd.MarkFlagRequired("location"))

	return cmd
}

func medicineDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a medicine search and its fingerprints",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().DeleteMedicine(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Medicine search %s deleted.\n", args[0])
			return nil
		},
	}
}
