package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/donaldgifford/medwatch/internal/metrics"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

const bookingsPath = "/v1/bookings"

// Book implements Booker by asking the collector to reserve rec's slot for
// the watch's account. A 409 means the slot went to someone else.
func (c *CollectorClient) Book(ctx context.Context, w *domain.Watch, rec domain.CanonicalRecord) error {
	if rec.Kind != domain.KindAppointment {
		return fmt.Errorf("booking %s record: only appointments can be booked", rec.Kind)
	}

	if err := c.wait(ctx); err != nil {
		return err
	}
	metrics.SourceRequestsTotal.WithLabelValues("booking").Inc()

	payload, err := json.Marshal(bookingRequest{
		Account:     w.Account,
		RegionID:    rec.RegionID,
		SpecialtyID: rec.SpecialtyID,
		ClinicID:    rec.ClinicID,
		DoctorID:    rec.DoctorID,
		StartsAt:    rec.DateTime,
		Examination: rec.Examination,
		SlotID:      rec.SourceID,
	})
	if err != nil {
		return fmt.Errorf("marshaling booking request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+bookingsPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.BookingsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("executing booking request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		metrics.BookingsTotal.WithLabelValues("taken").Inc()
		return fmt.Errorf("booking slot %s at clinic %d: %w",
			rec.DateTime.Format("2006-01-02 15:04"), rec.ClinicID, ErrSlotTaken)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		metrics.BookingsTotal.WithLabelValues("error").Inc()
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck // best-effort error body
		return fmt.Errorf("booking error (status %d): %s", resp.StatusCode, string(body))
	}

	metrics.BookingsTotal.WithLabelValues("booked").Inc()
	return nil
}
