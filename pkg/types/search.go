package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Search is a stored, recurring search. It is a closed variant: the only
// implementations are *Watch and *MedicineSearch.
type Search interface {
	SearchID() string
	Kind() ListingKind
	IsActive() bool
	Blocklist() ExclusionSet
	isSearch()
}

// GeneralPractitionerSpecialties is the specialty id set a general
// practitioner watch expands to.
var GeneralPractitionerSpecialties = []int64{9, 1586, 7338}

// WatchStatus is the date-derived status of a Watch.
type WatchStatus string

// Watch status constants.
const (
	WatchStatusActive   WatchStatus = "active"
	WatchStatusInactive WatchStatus = "inactive"
	WatchStatusExpired  WatchStatus = "expired"
)

// WatchLookahead is how far ahead a watch's start date may lie and still be
// evaluated.
const WatchLookahead = 14 * 24 * time.Hour

// Watch is a stored search for medical appointments.
type Watch struct {
	ID                  string       `json:"id"`
	RegionID            int64        `json:"region_id"`
	City                string       `json:"city,omitempty"`
	Specialties         []int64      `json:"specialties,omitempty"`
	GeneralPractitioner bool         `json:"general_practitioner,omitempty"`
	ClinicID            int64        `json:"clinic_id,omitempty"`
	DoctorID            int64        `json:"doctor_id,omitempty"`
	StartDate           time.Time    `json:"start_date,omitzero"`
	EndDate             time.Time    `json:"end_date,omitzero"`
	TimeRange           TimeRange    `json:"time_range"`
	Examination         bool         `json:"examination,omitempty"`
	AutoBook            bool         `json:"auto_book"`
	Exclusions          ExclusionSet `json:"exclusions"`
	Account             string       `json:"account,omitempty"`
	Active              bool         `json:"active"`
	LastSearchAt        *time.Time   `json:"last_search_at,omitempty"`
	CreatedAt           time.Time    `json:"created_at,omitzero"`
	UpdatedAt           time.Time    `json:"updated_at,omitzero"`
}

// SearchID implements Search.
func (w *Watch) SearchID() string { return w.ID }

// Kind implements Search.
func (*Watch) Kind() ListingKind { return KindAppointment }

// IsActive implements Search.
func (w *Watch) IsActive() bool { return w.Active }

// Blocklist implements Search.
func (w *Watch) Blocklist() ExclusionSet { return w.Exclusions }

func (*Watch) isSearch() {}

// SpecialtySet returns the resolved specialty ids, expanding the general
// practitioner mode to gp when no explicit ids were configured.
func (w *Watch) SpecialtySet(gp []int64) []int64 {
	if w.GeneralPractitioner && len(w.Specialties) == 0 {
		return gp
	}
	return w.Specialties
}

// Status derives whether the watch should be evaluated on the given day.
func (w *Watch) Status(now time.Time) WatchStatus {
	today := dateOf(now)
	if !w.StartDate.IsZero() && w.StartDate.After(today.Add(WatchLookahead)) {
		return WatchStatusInactive
	}
	if !w.EndDate.IsZero() && w.EndDate.Before(today) {
		return WatchStatusExpired
	}
	return WatchStatusActive
}

// InDateRange reports whether t falls on a day within the inclusive range.
func (w *Watch) InDateRange(t time.Time) bool {
	d := dateOf(t)
	if !w.StartDate.IsZero() && d.Before(w.StartDate) {
		return false
	}
	if !w.EndDate.IsZero() && d.After(w.EndDate) {
		return false
	}
	return true
}

// MedicineSearch is a stored search for pharmacy stock of a named medicine.
type MedicineSearch struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Dosage          Quantity            `json:"dosage"`
	Amount          Quantity            `json:"amount"`
	Location        string              `json:"location"`
	RadiusKM        float64             `json:"radius_km"`
	MaxPrice        decimal.NullDecimal `json:"max_price"`
	MinAvailability Availability        `json:"min_availability"`
	DeactivateAfter int                 `json:"deactivate_after"`
	Exclusions      ExclusionSet        `json:"exclusions"`
	Title           string              `json:"title,omitempty"`
	Active          bool                `json:"active"`
	LastSearchAt    *time.Time          `json:"last_search_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at,omitzero"`
	UpdatedAt       time.Time           `json:"updated_at,omitzero"`
}

// SearchID implements Search.
func (m *MedicineSearch) SearchID() string { return m.ID }

// Kind implements Search.
func (*MedicineSearch) Kind() ListingKind { return KindPharmacy }

// IsActive implements Search.
func (m *MedicineSearch) IsActive() bool { return m.Active }

// Blocklist implements Search.
func (m *MedicineSearch) Blocklist() ExclusionSet { return m.Exclusions }

func (*MedicineSearch) isSearch() {}

// DefaultDeactivateAfter is the number of qualifying matches that
// deactivates a medicine search when none is configured.
const DefaultDeactivateAfter = 1

// DeactivationThreshold returns how many qualifying matches deactivate the
// search. A negative DeactivateAfter disables auto-deactivation.
func (m *MedicineSearch) DeactivationThreshold() (int, bool) {
	switch {
	case m.DeactivateAfter < 0:
		return 0, false
	case m.DeactivateAfter == 0:
		return DefaultDeactivateAfter, true
	default:
		return m.DeactivateAfter, true
	}
}

// FullName is the name with dosage and amount, as shown to users.
func (m *MedicineSearch) FullName() string {
	parts := []string{m.Name}
	if m.Dosage.Known {
		parts = append(parts, m.Dosage.String())
	}
	if m.Amount.Known {
		parts = append(parts, m.Amount.String())
	}
	return strings.Join(parts, " ")
}

func dateOf(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
