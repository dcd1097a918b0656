package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/donaldgifford/medwatch/internal/api/client"
	"github.com/donaldgifford/medwatch/internal/api/handlers"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printWatchTable(w io.Writer, watches []handlers.WatchView) error {
	tw := newTabWriter(w)
	tw.writef("ID\tREGION\tSPECIALTIES\tDATES\tSTATUS\tACTIVE\tAUTO-BOOK\tLAST SEARCH\n")
	for i := range watches {
		v := &watches[i]
		tw.writef("%s\t%d\t%s\t%s\t%s\t%v\t%v\t%s\n",
			v.ID,
			v.RegionID,
			specialties(&v.WatchSpec),
			dateWindow(v.StartDate, v.EndDate),
			v.Status,
			v.Active == nil || *v.Active,
			v.AutoBook,
			ago(v.LastSearchAt),
		)
	}
	return tw.finish()
}

func printWatchDetail(w io.Writer, v *handlers.WatchView) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", v.ID)
	tw.writef("Region:\t%d\n", v.RegionID)
	tw.writef("City:\t%s\n", dash(v.City))
	tw.writef("Specialties:\t%s\n", specialties(&v.WatchSpec))
	tw.writef("Clinic:\t%s\n", optionalID(v.ClinicID))
	tw.writef("Doctor:\t%s\n", optionalID(v.DoctorID))
	tw.writef("Dates:\t%s\n", dateWindow(v.StartDate, v.EndDate))
	tw.writef("Time Range:\t%s\n", dash(v.TimeRange))
	tw.writef("Examination:\t%v\n", v.Examination)
	tw.writef("Exclusions:\t%s\n", dash(v.Exclusions))
	tw.writef("Auto-book:\t%v\n", v.AutoBook)
	tw.writef("Account:\t%s\n", dash(v.Account))
	tw.writef("Status:\t%s\n", v.Status)
	tw.writef("Active:\t%v\n", v.Active == nil || *v.Active)
	tw.writef("Last Search:\t%s\n", ago(v.LastSearchAt))
	return tw.finish()
}

func printMedicineTable(w io.Writer, searches []handlers.MedicineView) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tLOCATION\tMAX PRICE\tMIN AVAIL\tACTIVE\tLAST SEARCH\n")
	for i := range searches {
		v := &searches[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%v\t%s\n",
			v.ID,
			truncate(fullName(&v.MedicineSpec), 40),
			v.Location,
			dash(v.MaxPrice),
			dash(v.MinAvailability),
			v.Active == nil || *v.Active,
			ago(v.LastSearchAt),
		)
	}
	return tw.finish()
}

func printMedicineDetail(w io.Writer, v *handlers.MedicineView) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", v.ID)
	tw.writef("Name:\t%s\n", fullName(&v.MedicineSpec))
	tw.writef("Title:\t%s\n", dash(v.Title))
	tw.writef("Location:\t%s\n", v.Location)
	tw.writef("Radius:\t%.1f km\n", v.RadiusKM)
	tw.writef("Max Price:\t%s\n", dash(v.MaxPrice))
	tw.writef("Min Availability:\t%s\n", dash(v.MinAvailability))
	tw.writef("Deactivate After:\t%s\n", optionalID(int64(v.DeactivateAfter)))
	tw.writef("Exclusions:\t%s\n", dash(v.Exclusions))
	tw.writef("Active:\t%v\n", v.Active == nil || *v.Active)
	tw.writef("Last Search:\t%s\n", ago(v.LastSearchAt))
	return tw.finish()
}

func printDecisionTable(w io.Writer, ds []handlers.DecisionView) error {
	tw := newTabWriter(w)
	tw.writef("ACTION\tREASON\tRECORD\tAMBIGUOUS\n")
	for i := range ds {
		tw.writef("%s\t%s\t%s\t%s\n",
			ds[i].Action,
			ds[i].Reason,
			truncate(recordSummary(&ds[i].Record), 60),
			dash(strings.Join(ds[i].Record.Ambiguities, ",")),
		)
	}
	return tw.finish()
}

func printCycleReport(w io.Writer, r *client.CycleResult) error {
	tw := newTabWriter(w)
	tw.writef("Searches:\t%d\n", r.Searches)
	tw.writef("Evaluated:\t%d\n", r.Evaluated)
	tw.writef("Failed:\t%d\n", r.Failed)
	for _, a := range domain.ActionPriority {
		if n := r.Decisions[a]; n > 0 {
			tw.writef("%s:\t%d\n", a, n)
		}
	}
	if r.Error != "" {
		tw.writef("Errors:\t%s\n", r.Error)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func recordSummary(r *handlers.RecordView) string {
	if r.Kind == domain.KindPharmacy {
		return fmt.Sprintf("%s, %s %s", r.PharmacyName, dash(r.PriceFull), r.Availability)
	}
	when := "-"
	if r.DateTime != nil {
		when = r.DateTime.Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("%s clinic %d doctor %d", when, r.ClinicID, r.DoctorID)
}

func specialties(s *domain.WatchSpec) string {
	parts := make([]string, 0, len(s.Specialties)+1)
	if s.GeneralPractitioner {
		parts = append(parts, "GP")
	}
	for _, id := range s.Specialties {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return dash(strings.Join(parts, ","))
}

func fullName(s *domain.MedicineSpec) string {
	return strings.TrimSpace(strings.Join([]string{s.Name, s.Dosage, s.Amount}, " "))
}

func dateWindow(start, end string) string {
	if start == "" && end == "" {
		return "any"
	}
	return dash(start) + ".." + dash(end)
}

func ago(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return time.Since(*t).Truncate(time.Second).String() + " ago"
}

func optionalID(id int64) string {
	if id == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", id)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
