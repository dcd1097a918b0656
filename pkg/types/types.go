// Package domain defines the core business types for medwatch: raw and
// canonical listings, stored searches, exclusions, fingerprints and the
// decisions the engine emits.
package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ListingKind distinguishes the two families of records the engine handles.
type ListingKind string

// Listing kind constants.
const (
	KindAppointment ListingKind = "appointment"
	KindPharmacy    ListingKind = "pharmacy"
)

// Unit is a canonical measurement unit for dosages and package amounts.
type Unit string

// Dosage units.
const (
	UnitMg      Unit = "mg"
	UnitMcg     Unit = "mcg"
	UnitGram    Unit = "g"
	UnitPercent Unit = "%"
	UnitMl      Unit = "ml"
	UnitLiter   Unit = "l"
)

// Package units. ml and g are shared with the dosage set.
const (
	UnitTablet  Unit = "tabl."
	UnitPiece   Unit = "szt."
	UnitCapsule Unit = "kaps."
	UnitAmpoule Unit = "amp."
)

const unknownLabel = "unknown"

// DosageUnits is the closed set of units accepted for a dosage.
var DosageUnits = []Unit{UnitMg, UnitMcg, UnitGram, UnitPercent, UnitMl, UnitLiter}

// PackageUnits is the closed set of units accepted for a package amount.
var PackageUnits = []Unit{UnitTablet, UnitPiece, UnitCapsule, UnitAmpoule, UnitMl, UnitGram}

// Quantity is a numeric amount with a canonical unit. The zero value is the
// explicit "unknown" quantity.
type Quantity struct {
	Value float64 `json:"value,omitempty"`
	Unit  Unit    `json:"unit,omitempty"`
	Known bool    `json:"known"`
}

// NewQuantity returns a known quantity.
func NewQuantity(v float64, u Unit) Quantity {
	return Quantity{Value: v, Unit: u, Known: true}
}

// Equal reports whether both quantities are known and identical.
func (q Quantity) Equal(o Quantity) bool {
	return q.Known && o.Known && q.Unit == o.Unit && q.Value == o.Value
}

// String renders the quantity in the same text grammar the normalizer reads,
// so a canonical value re-normalizes to itself.
func (q Quantity) String() string {
	if !q.Known {
		return unknownLabel
	}
	return strconv.FormatFloat(q.Value, 'f', -1, 64) + " " + string(q.Unit)
}

// Availability is the normalized stock level of a pharmacy listing.
type Availability int

// Availability levels, ordered none < low < high. Unknown sorts below none.
const (
	AvailabilityUnknown Availability = iota - 1
	AvailabilityNone
	AvailabilityLow
	AvailabilityHigh
)

// String returns the lowercase label.
func (a Availability) String() string {
	switch a {
	case AvailabilityNone:
		return "none"
	case AvailabilityLow:
		return "low"
	case AvailabilityHigh:
		return "high"
	default:
		return unknownLabel
	}
}

// AtLeast reports whether a reaches min. A threshold of none or unknown is
// always met; otherwise unknown never satisfies it.
func (a Availability) AtLeast(min Availability) bool {
	if min <= AvailabilityNone {
		return true
	}
	return a != AvailabilityUnknown && a >= min
}

// ParseAvailability parses a configuration value (none, low, high).
func ParseAvailability(s string) (Availability, error) {
	switch s {
	case "none":
		return AvailabilityNone, nil
	case "low":
		return AvailabilityLow, nil
	case "high":
		return AvailabilityHigh, nil
	default:
		return AvailabilityUnknown, fmt.Errorf("availability %q: must be one of none, low, high", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Availability) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Availability) UnmarshalText(b []byte) error {
	if string(b) == unknownLabel || len(b) == 0 {
		*a = AvailabilityUnknown
		return nil
	}
	v, err := ParseAvailability(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// RawListing is a record as extracted by the scraping or API collaborator.
// All free-text fields are kept verbatim; the engine never mutates it.
type RawListing struct {
	Kind     ListingKind `json:"kind"`
	SourceID string      `json:"source_id,omitempty"`

	// Pharmacy fields.
	PharmacyName     string `json:"pharmacy_name,omitempty"`
	Dosage           string `json:"dosage,omitempty"`
	Package          string `json:"package,omitempty"`
	Address          string `json:"address,omitempty"`
	Phone            string `json:"phone,omitempty"`
	PriceFull        string `json:"price_full,omitempty"`
	PriceRefunded    string `json:"price_refunded,omitempty"`
	Availability     string `json:"availability,omitempty"`
	PrescriptionNote string `json:"prescription_note,omitempty"`
	RefundNote       string `json:"refund_note,omitempty"`

	// Appointment fields, structured at the source.
	RegionID    int64     `json:"region_id,omitempty"`
	SpecialtyID int64     `json:"specialty_id,omitempty"`
	ClinicID    int64     `json:"clinic_id,omitempty"`
	ClinicName  string    `json:"clinic_name,omitempty"`
	DoctorID    int64     `json:"doctor_id,omitempty"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	DateTime    time.Time `json:"date_time,omitzero" required:"false"`
	Examination bool      `json:"examination,omitempty"`
	VisitType   string    `json:"visit_type,omitempty"`
}

// Ambiguity records a sub-field that could not be parsed and was resolved to
// unknown during normalization.
type Ambiguity struct {
	Field string `json:"field"`
	Raw   string `json:"raw"`
}

// CanonicalRecord is the normalized, comparable projection of a RawListing.
type CanonicalRecord struct {
	Kind     ListingKind `json:"kind"`
	SourceID string      `json:"source_id,omitempty"`

	PharmacyName  string              `json:"pharmacy_name,omitempty"`
	Dosage        Quantity            `json:"dosage"`
	Package       Quantity            `json:"package"`
	AddressKey    string              `json:"address_key,omitempty"`
	PostalCode    string              `json:"postal_code,omitempty"`
	PhoneE164     string              `json:"phone_e164,omitempty"`
	PriceFull     decimal.NullDecimal `json:"price_full"`
	PriceRefunded decimal.NullDecimal `json:"price_refunded"`
	Availability  Availability        `json:"availability"`
	Prescription  string              `json:"prescription,omitempty"`
	Refund        string              `json:"refund,omitempty"`

	RegionID    int64     `json:"region_id,omitempty"`
	SpecialtyID int64     `json:"specialty_id,omitempty"`
	ClinicID    int64     `json:"clinic_id,omitempty"`
	ClinicName  string    `json:"clinic_name,omitempty"`
	DoctorID    int64     `json:"doctor_id,omitempty"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	DateTime    time.Time `json:"date_time,omitzero"`
	Examination bool      `json:"examination,omitempty"`
	VisitType   string    `json:"visit_type,omitempty"`

	Ambiguities []Ambiguity `json:"ambiguities,omitempty"`
}

// LowestPrice returns the lower of the known price variants.
func (r *CanonicalRecord) LowestPrice() (decimal.Decimal, bool) {
	switch {
	case r.PriceFull.Valid && r.PriceRefunded.Valid:
		return decimal.Min(r.PriceFull.Decimal, r.PriceRefunded.Decimal), true
	case r.PriceFull.Valid:
		return r.PriceFull.Decimal, true
	case r.PriceRefunded.Valid:
		return r.PriceRefunded.Decimal, true
	default:
		return decimal.Decimal{}, false
	}
}

// HasPhone reports whether a phone number was recognized.
func (r *CanonicalRecord) HasPhone() bool { return r.PhoneE164 != "" }

// HasAddress reports whether an address key is available.
func (r *CanonicalRecord) HasAddress() bool { return r.AddressKey != "" }

// Populated counts the fields carrying known data. Used to pick the richer of
// two records describing the same entity.
func (r *CanonicalRecord) Populated() int {
	n := 0
	for _, ok := range []bool{
		r.PharmacyName != "",
		r.Dosage.Known,
		r.Package.Known,
		r.AddressKey != "",
		r.PostalCode != "",
		r.PhoneE164 != "",
		r.PriceFull.Valid,
		r.PriceRefunded.Valid,
		r.Availability != AvailabilityUnknown,
		r.Prescription != "",
		r.Refund != "",
		r.ClinicName != "",
		r.DoctorName != "",
		r.VisitType != "",
	} {
		if ok {
			n++
		}
	}
	return n
}
