// Package normalize converts raw extracted listing text into canonical,
// comparable values. Normalization is total and deterministic: every field
// that cannot be parsed becomes an explicit unknown and is recorded as an
// ambiguity on the record, never as an error.
package normalize

import (
	"regexp"
	"strings"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// Ambiguity field names.
const (
	FieldDosage        = "dosage"
	FieldPackage       = "package"
	FieldAddress       = "address"
	FieldPhone         = "phone"
	FieldPriceFull     = "price_full"
	FieldPriceRefunded = "price_refunded"
	FieldAvailability  = "availability"
)

// combinedRe matches "<number><unit> | <number><unit>".
var combinedRe = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?\s*[^\s\d|]+)\s*\|\s*(\d+(?:[.,]\d+)?\s*[^\s\d|]+)\s*$`)

// Normalize maps a raw listing to its canonical record.
func Normalize(raw domain.RawListing) domain.CanonicalRecord {
	rec := domain.CanonicalRecord{
		Kind:         raw.Kind,
		SourceID:     strings.TrimSpace(raw.SourceID),
		PharmacyName: collapse(raw.PharmacyName),
		Prescription: collapse(raw.PrescriptionNote),
		Refund:       collapse(raw.RefundNote),

		RegionID:    raw.RegionID,
		SpecialtyID: raw.SpecialtyID,
		ClinicID:    raw.ClinicID,
		ClinicName:  collapse(raw.ClinicName),
		DoctorID:    raw.DoctorID,
		DoctorName:  collapse(raw.DoctorName),
		DateTime:    raw.DateTime,
		Examination: raw.Examination,
		VisitType:   collapse(raw.VisitType),
	}
	if rec.Kind == "" {
		rec.Kind = domain.KindPharmacy
	}

	n := &normalizer{rec: &rec}
	n.quantities(raw.Dosage, raw.Package)
	n.address(raw.Address)
	n.phone(raw.Phone)
	rec.PriceFull = n.price(FieldPriceFull, raw.PriceFull)
	rec.PriceRefunded = n.price(FieldPriceRefunded, raw.PriceRefunded)
	rec.Availability = n.availability(raw.Availability)

	return rec
}

// NormalizeAll normalizes a batch, preserving order.
func NormalizeAll(raws []domain.RawListing) []domain.CanonicalRecord {
	out := make([]domain.CanonicalRecord, len(raws))
	for i := range raws {
		out[i] = Normalize(raws[i])
	}
	return out
}

// Render turns a canonical record back into raw text fields. Normalizing the
// result yields the same record, minus ambiguities.
func Render(rec *domain.CanonicalRecord) domain.RawListing {
	raw := domain.RawListing{
		Kind:             rec.Kind,
		SourceID:         rec.SourceID,
		PharmacyName:     rec.PharmacyName,
		PrescriptionNote: rec.Prescription,
		RefundNote:       rec.Refund,
		Phone:            rec.PhoneE164,
		Address:          strings.TrimSpace(rec.AddressKey + " " + rec.PostalCode),

		RegionID:    rec.RegionID,
		SpecialtyID: rec.SpecialtyID,
		ClinicID:    rec.ClinicID,
		ClinicName:  rec.ClinicName,
		DoctorID:    rec.DoctorID,
		DoctorName:  rec.DoctorName,
		DateTime:    rec.DateTime,
		Examination: rec.Examination,
		VisitType:   rec.VisitType,
	}
	if rec.Dosage.Known {
		raw.Dosage = rec.Dosage.String()
	}
	if rec.Package.Known {
		raw.Package = rec.Package.String()
	}
	if rec.PriceFull.Valid {
		raw.PriceFull = rec.PriceFull.Decimal.String()
	}
	if rec.PriceRefunded.Valid {
		raw.PriceRefunded = rec.PriceRefunded.Decimal.String()
	}
	if rec.Availability != domain.AvailabilityUnknown {
		raw.Availability = rec.Availability.String()
	}
	return raw
}

type normalizer struct {
	rec *domain.CanonicalRecord
}

func (n *normalizer) ambiguous(field, raw string) {
	n.rec.Ambiguities = append(n.rec.Ambiguities, domain.Ambiguity{Field: field, Raw: raw})
}

// quantities parses dosage and package amount. The combined form is tried on
// either field first; otherwise both fields are parsed independently.
func (n *normalizer) quantities(dosage, pkg string) {
	for _, s := range []string{dosage, pkg} {
		m := combinedRe.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n.rec.Dosage = n.quantity(FieldDosage, m[1], domain.DosageUnits)
		n.rec.Package = n.quantity(FieldPackage, m[2], domain.PackageUnits)
		return
	}

	n.rec.Dosage = n.quantity(FieldDosage, dosage, domain.DosageUnits)
	n.rec.Package = n.quantity(FieldPackage, pkg, domain.PackageUnits)
}

func (n *normalizer) quantity(field, s string, allowed []domain.Unit) domain.Quantity {
	if strings.TrimSpace(s) == "" {
		return domain.Quantity{}
	}
	q, ok := domain.ParseQuantity(s, allowed)
	if !ok {
		n.ambiguous(field, s)
	}
	return q
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
