package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/medwatch/internal/api/client"
	"github.com/donaldgifford/medwatch/internal/api/handlers"
	"github.com/donaldgifford/medwatch/internal/engine"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func TestPrintWatchTable(t *testing.T) {
	t.Parallel()

	inactive := false
	var buf bytes.Buffer
	err := printWatchTable(&buf, []handlers.WatchView{
		{
			WatchSpec: domain.WatchSpec{ID: "w1", RegionID: 204, Specialties: []int64{16}, StartDate: "2026-11-01"},
			Status:    domain.WatchStatusActive,
		},
		{
			WatchSpec: domain.WatchSpec{ID: "w2", RegionID: 5, GeneralPractitioner: true, Active: &inactive},
			Status:    domain.WatchStatusActive,
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "LAST SEARCH")
	assert.Contains(t, out, "2026-11-01..-")
	assert.Contains(t, out, "GP")
	assert.Contains(t, out, "never")
	assert.Contains(t, out, "false")
}

func TestPrintDecisionTable(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 11, 2, 9, 30, 0, 0, time.UTC)
	var buf bytes.Buffer
	err := printDecisionTable(&buf, []handlers.DecisionView{
		{
			Action: domain.ActionNotify,
			Reason: domain.ReasonMatched,
			Record: handlers.RecordView{Kind: domain.KindAppointment, ClinicID: 7, DoctorID: 12, DateTime: &at},
		},
		{
			Action: domain.ActionSkip,
			Reason: domain.ReasonPriceUnknown,
			Record: handlers.RecordView{
				Kind:         domain.KindPharmacy,
				PharmacyName: "Apteka",
				Availability: "low",
				Ambiguities:  []string{"price_full", "phone"},
			},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2026-11-02 09:30 clinic 7 doctor 12")
	assert.Contains(t, out, "Apteka, - low")
	assert.Contains(t, out, "price_full,phone")
}

func TestPrintCycleReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printCycleReport(&buf, &client.CycleResult{
		CycleReport: engine.CycleReport{
			Searches:  3,
			Evaluated: 2,
			Failed:    1,
			Decisions: map[domain.Action]int{domain.ActionSkip: 4, domain.ActionNotify: 1},
		},
		Error: "search m1: boom",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Searches:")
	assert.Contains(t, out, "notify:")
	assert.NotContains(t, out, "auto_book:")
	assert.Contains(t, out, "search m1: boom")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("notify")), bytes.Index(buf.Bytes(), []byte("skip")))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
