// Package match evaluates canonical records against stored searches.
//
// Inclusion criteria are checked first; unspecified criteria are wildcards.
// The exclusion set is consulted only after inclusion passes and always
// wins, so adding an exclusion can never widen the set of matching records.
package match

import (
	"slices"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// Facts carries results computed by other collaborators for a record.
type Facts struct {
	// WithinRadius is the geography collaborator's verdict. Nil means it was
	// not evaluated and the location criterion passes.
	WithinRadius *bool
}

// Result is the outcome of matching one record against one search.
type Result struct {
	Matched bool          `json:"matched"`
	Reason  domain.Reason `json:"reason"`
}

var matched = Result{Matched: true, Reason: domain.ReasonMatched}

func reject(r domain.Reason) Result { return Result{Reason: r} }

// Option configures a Matcher.
type Option func(*Matcher)

// WithGeneralPractitionerSpecialties overrides the specialty ids a general
// practitioner watch expands to.
func WithGeneralPractitionerSpecialties(ids []int64) Option {
	return func(m *Matcher) {
		if len(ids) > 0 {
			m.gp = slices.Clone(ids)
		}
	}
}

// Matcher evaluates records against searches. It is stateless and safe for
// concurrent use.
type Matcher struct {
	gp []int64
}

// New creates a Matcher.
func New(opts ...Option) *Matcher {
	m := &Matcher{gp: domain.GeneralPractitionerSpecialties}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Matches reports whether rec satisfies search.
func (m *Matcher) Matches(rec *domain.CanonicalRecord, search domain.Search, facts Facts) bool {
	return m.Match(rec, search, facts).Matched
}

// Match evaluates rec against search and explains the result.
func (m *Matcher) Match(rec *domain.CanonicalRecord, search domain.Search, facts Facts) Result {
	if rec.Kind != search.Kind() {
		return reject(domain.ReasonKindMismatch)
	}

	var res Result
	switch s := search.(type) {
	case *domain.Watch:
		res = m.matchWatch(rec, s)
	case *domain.MedicineSearch:
		res = matchMedicine(rec, s, facts)
	default:
		return reject(domain.ReasonKindMismatch)
	}
	if !res.Matched {
		return res
	}

	if excluded(rec, search.Blocklist()) {
		return reject(domain.ReasonExcluded)
	}
	return matched
}

func (m *Matcher) matchWatch(rec *domain.CanonicalRecord, w *domain.Watch) Result {
	if w.RegionID != 0 && rec.RegionID != w.RegionID {
		return reject(domain.ReasonRegionMismatch)
	}
	if specs := w.SpecialtySet(m.gp); len(specs) > 0 && !slices.Contains(specs, rec.SpecialtyID) {
		return reject(domain.ReasonSpecialtyMismatch)
	}
	if w.ClinicID != 0 && rec.ClinicID != w.ClinicID {
		return reject(domain.ReasonClinicMismatch)
	}
	if w.DoctorID != 0 && rec.DoctorID != w.DoctorID {
		return reject(domain.ReasonDoctorMismatch)
	}
	if rec.DateTime.IsZero() || !w.InDateRange(rec.DateTime) {
		return reject(domain.ReasonDateOutOfRange)
	}
	if !w.TimeRange.Contains(rec.DateTime) {
		return reject(domain.ReasonTimeOutOfRange)
	}
	if rec.Examination != w.Examination {
		return reject(domain.ReasonExaminationMismatch)
	}
	return matched
}

func matchMedicine(rec *domain.CanonicalRecord, s *domain.MedicineSearch, facts Facts) Result {
	if s.Dosage.Known && !rec.Dosage.Equal(s.Dosage) {
		return reject(domain.ReasonDosageMismatch)
	}
	if s.Amount.Known && !rec.Package.Equal(s.Amount) {
		return reject(domain.ReasonPackageMismatch)
	}
	if facts.WithinRadius != nil && !*facts.WithinRadius {
		return reject(domain.ReasonOutsideRadius)
	}
	if s.MaxPrice.Valid {
		price, ok := rec.LowestPrice()
		if !ok {
			return reject(domain.ReasonPriceUnknown)
		}
		if price.GreaterThan(s.MaxPrice.Decimal) {
			return reject(domain.ReasonPriceExceeded)
		}
	}
	if !rec.Availability.AtLeast(s.MinAvailability) {
		return reject(domain.ReasonAvailabilityBelow)
	}
	return matched
}

func excluded(rec *domain.CanonicalRecord, set domain.ExclusionSet) bool {
	return (rec.DoctorID != 0 && set.Excludes(domain.ExcludeDoctor, rec.DoctorID)) ||
		(rec.ClinicID != 0 && set.Excludes(domain.ExcludeClinic, rec.ClinicID))
}

// SelectForBooking picks the single record to book among matches: earliest
// date-time, then lowest clinic id, then input order. It returns -1 for an
// empty slice.
func SelectForBooking(recs []domain.CanonicalRecord) int {
	best := -1
	for i := range recs {
		if best < 0 || bookBefore(&recs[i], &recs[best]) {
			best = i
		}
	}
	return best
}

func bookBefore(a, b *domain.CanonicalRecord) bool {
	if !a.DateTime.Equal(b.DateTime) {
		return a.DateTime.Before(b.DateTime)
	}
	return a.ClinicID < b.ClinicID
}
