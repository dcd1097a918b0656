package source_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/medwatch/internal/source"
	"github.com/donaldgifford/medwatch/internal/source/mocks"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func TestCollectorClient_FetchPage(t *testing.T) {
	t.Parallel()

	watchQuery := source.Query{
		Kind:   domain.KindAppointment,
		Params: map[string][]string{"region_id": {"204"}},
	}
	medicineQuery := source.Query{
		Kind:   domain.KindPharmacy,
		Params: map[string][]string{"name": {"Euthyrox"}},
	}

	tests := []struct {
		name         string
		query        source.Query
		cursor       string
		handler      http.HandlerFunc
		wantErr      bool
		errContain   string
		wantListings int
		wantNext     string
	}{
		{
			name:   "appointment page with cursor",
			query:  watchQuery,
			cursor: "abc",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/appointments", r.URL.Path)
				assert.Equal(t, "204", r.URL.Query().Get("region_id"))
				assert.Equal(t, "abc", r.URL.Query().Get("cursor"))
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"slots": [
						{"id": "s1", "regionId": 204, "specialtyId": 9, "clinic": {"id": 1, "name": "A"}, "doctor": {"id": 7, "name": "Dr X"}, "startsAt": "2026-11-02T09:00:00Z"},
						{"id": "s2", "regionId": 204, "specialtyId": 9, "clinic": {"id": 2, "name": "B"}, "startsAt": "2026-11-02T10:00:00Z"}
					],
					"next": "def"
				}`))
			},
			wantListings: 2,
			wantNext:     "def",
		},
		{
			name:  "pharmacy last page",
			query: medicineQuery,
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/pharmacy-offers", r.URL.Path)
				assert.Equal(t, "Euthyrox", r.URL.Query().Get("name"))
				assert.Empty(t, r.URL.Query().Get("cursor"))

				_, _ = w.Write([]byte(`{
					"offers": [
						{"id": "o1", "pharmacy": "Apteka", "dosage": "50 mcg | 50 tabl.", "address": "ul. Długa 5, 00-001 Warszawa", "phone": "22 123 45 67", "prices": {"full": "12,99 zł"}, "availability": "dużo"}
					]
				}`))
			},
			wantListings: 1,
		},
		{
			name:  "server error",
			query: watchQuery,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`upstream down`))
			},
			wantErr:    true,
			errContain: "status 502",
		},
		{
			name:  "malformed json",
			query: watchQuery,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			wantErr:    true,
			errContain: "parsing collector response",
		},
		{
			name:       "unsupported kind",
			query:      source.Query{Kind: "car"},
			handler:    func(http.ResponseWriter, *http.Request) { t.Error("unexpected request") },
			wantErr:    true,
			errContain: "unsupported listing kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			t.Cleanup(srv.Close)

			c := source.NewCollectorClient(srv.URL+"/",
				source.WithTokenProvider(source.StaticToken("test-token")),
				source.WithHTTPClient(srv.Client()),
			)

			page, err := c.FetchPage(context.Background(), tt.query, tt.cursor)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			assert.Len(t, page.Listings, tt.wantListings)
			assert.Equal(t, tt.wantNext, page.Next)
			for _, l := range page.Listings {
				assert.Equal(t, tt.query.Kind, l.Kind)
			}
		})
	}
}

func TestCollectorClient_FetchPage_TokenError(t *testing.T) {
	t.Parallel()

	tokens := mocks.NewMockTokenProvider(t)
	tokens.EXPECT().Token(mock.Anything).Return("", errors.New("expired credentials"))

	c := source.NewCollectorClient("http://127.0.0.1:1", source.WithTokenProvider(tokens))

	_, err := c.FetchPage(context.Background(), source.Query{Kind: domain.KindPharmacy}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting auth token")
}

func TestCollectorClient_FetchPage_DailyLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"slots": []}`))
	}))
	t.Cleanup(srv.Close)

	c := source.NewCollectorClient(srv.URL,
		source.WithHTTPClient(srv.Client()),
		source.WithRateLimiter(source.NewRateLimiter(100, 10, 1)),
	)

	q := source.Query{Kind: domain.KindAppointment}
	_, err := c.FetchPage(context.Background(), q, "")
	require.NoError(t, err)

	_, err = c.FetchPage(context.Background(), q, "")
	require.ErrorIs(t, err, source.ErrDailyLimitReached)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCollectorClient_Book(t *testing.T) {
	t.Parallel()

	startsAt := time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC)
	rec := domain.CanonicalRecord{
		Kind:        domain.KindAppointment,
		SourceID:    "s1",
		RegionID:    204,
		SpecialtyID: 9,
		ClinicID:    3,
		DoctorID:    7,
		DateTime:    startsAt,
	}
	watch := &domain.Watch{ID: "w1", Account: "primary"}

	tests := []struct {
		name       string
		rec        domain.CanonicalRecord
		status     int
		wantErr    bool
		wantTaken  bool
		errContain string
	}{
		{name: "booked", rec: rec, status: http.StatusCreated},
		{name: "slot taken", rec: rec, status: http.StatusConflict, wantErr: true, wantTaken: true},
		{name: "server error", rec: rec, status: http.StatusInternalServerError, wantErr: true, errContain: "status 500"},
		{
			name:       "pharmacy record rejected",
			rec:        domain.CanonicalRecord{Kind: domain.KindPharmacy},
			wantErr:    true,
			errContain: "only appointments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/bookings", r.URL.Path)

				var body map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "primary", body["account"])
				assert.Equal(t, "s1", body["slotId"])
				assert.EqualValues(t, 3, body["clinicId"])

				w.WriteHeader(tt.status)
			}))
			t.Cleanup(srv.Close)

			c := source.NewCollectorClient(srv.URL, source.WithHTTPClient(srv.Client()))

			err := c.Book(context.Background(), watch, tt.rec)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantTaken, errors.Is(err, source.ErrSlotTaken))
			if tt.errContain != "" {
				assert.Contains(t, err.Error(), tt.errContain)
			}
		})
	}
}
