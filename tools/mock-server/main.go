// Package main implements a mock listing collector for local development.
// It serves appointment slots and pharmacy offers from a JSON fixture,
// issues client-credentials tokens and accepts bookings, so medwatch can
// run end to end without a real collector.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/donaldgifford/medwatch/internal/source"
)

const defaultPageSize = 20

type fixture struct {
	Slots  []source.SlotSummary  `json:"slots"`
	Offers []source.OfferSummary `json:"offers"`
}

type pageResponse struct {
	Slots  []source.SlotSummary  `json:"slots,omitempty"`
	Offers []source.OfferSummary `json:"offers,omitempty"`
	Next   string                `json:"next"`
}

type bookingRequest struct {
	Account  string    `json:"account"`
	ClinicID int64     `json:"clinicId"`
	DoctorID int64     `json:"doctorId"`
	StartsAt time.Time `json:"startsAt"`
	SlotID   string    `json:"slotId"`
}

// collector holds the fixture and the set of slots booked so far.
type collector struct {
	log      *slog.Logger
	fx       *fixture
	pageSize int

	mu     sync.Mutex
	booked map[string]bool
}

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/listings.json", "path to listings fixture")
	pageSize := flag.Int("page-size", defaultPageSize, "records per page")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "slots", len(fx.Slots), "offers", len(fx.Offers))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock collector", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newCollector(logger, fx, *pageSize).routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newCollector(log *slog.Logger, fx *fixture, pageSize int) *collector {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &collector{log: log, fx: fx, pageSize: pageSize, booked: make(map[string]bool)}
}

func (c *collector) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", c.token)
	mux.HandleFunc("GET /v1/appointments", c.appointments)
	mux.HandleFunc("GET /v1/pharmacy-offers", c.offers)
	mux.HandleFunc("POST /v1/bookings", c.book)
	return mux
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func (c *collector) token(w http.ResponseWriter, r *http.Request) {
	// Basic Auth must be present; credentials are not checked.
	if _, _, ok := r.BasicAuth(); !ok {
		c.log.Warn("token request missing Basic Auth header")
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "client authentication failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": "mock-token-" + strconv.FormatInt(int64(os.Getpid()), 16),
		"expires_in":   3600,
		"token_type":   "Bearer",
	})
	c.log.Info("issued mock token")
}

func (c *collector) appointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	c.mu.Lock()
	var matched []source.SlotSummary
	for i := range c.fx.Slots {
		s := &c.fx.Slots[i]
		if !c.booked[s.ID] && slotMatches(s, q) {
			matched = append(matched, *s)
		}
	}
	c.mu.Unlock()

	page, next := paginate(matched, q.Get("cursor"), c.pageSize)
	writeJSON(w, http.StatusOK, pageResponse{Slots: page, Next: next})
	c.log.Info("appointments", "matched", len(matched), "returned", len(page), "next", next)
}

func (c *collector) offers(w http.ResponseWriter, r *http.Request) {
	page, next := paginate(c.fx.Offers, r.URL.Query().Get("cursor"), c.pageSize)
	writeJSON(w, http.StatusOK, pageResponse{Offers: page, Next: next})
	c.log.Info("pharmacy offers", "name", r.URL.Query().Get("name"), "returned", len(page), "next", next)
}

func (c *collector) book(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.fx.Slots, func(s source.SlotSummary) bool { return s.ID == req.SlotID })
	if i < 0 || c.booked[req.SlotID] {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "slot no longer available"})
		c.log.Info("booking rejected", "slot_id", req.SlotID)
		return
	}

	c.booked[req.SlotID] = true
	writeJSON(w, http.StatusCreated, map[string]string{"id": "booking-" + req.SlotID})
	c.log.Info("booked", "slot_id", req.SlotID, "account", req.Account, "starts_at", req.StartsAt)
}

func slotMatches(s *source.SlotSummary, q map[string][]string) bool {
	if v := first(q, "region_id"); v != "" && v != strconv.FormatInt(s.RegionID, 10) {
		return false
	}
	if ids := q["specialty_id"]; len(ids) > 0 && !slices.Contains(ids, strconv.FormatInt(s.SpecialtyID, 10)) {
		return false
	}
	if v := first(q, "clinic_id"); v != "" && (s.Clinic == nil || v != strconv.FormatInt(s.Clinic.ID, 10)) {
		return false
	}
	if v := first(q, "doctor_id"); v != "" && (s.Doctor == nil || v != strconv.FormatInt(s.Doctor.ID, 10)) {
		return false
	}
	day := s.StartsAt.Format("2006-01-02")
	if v := first(q, "date_from"); v != "" && day < v {
		return false
	}
	if v := first(q, "date_to"); v != "" && day > v {
		return false
	}
	if first(q, "examination") == "true" && !s.Examination {
		return false
	}
	return true
}

// paginate returns the page starting at the offset encoded in cursor and
// the cursor of the following page, empty on the last one.
func paginate[T any](items []T, cursor string, size int) ([]T, string) {
	offset, _ := strconv.Atoi(strings.TrimPrefix(cursor, "o")) //nolint:errcheck // bad cursor restarts at 0
	if offset < 0 || offset >= len(items) {
		return []T{}, ""
	}

	end := min(offset+size, len(items))
	next := ""
	if end < len(items) {
		next = "o" + strconv.Itoa(end)
	}
	return items[offset:end], next
}

func first(q map[string][]string, key string) string {
	if vs := q[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
