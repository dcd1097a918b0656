package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Medicine search limits.
var (
	MinMaxPrice = decimal.RequireFromString("0.01")
	MaxMaxPrice = decimal.NewFromInt(10000)
)

// DefaultRadiusKM is the search radius used when none is configured.
const DefaultRadiusKM = 10

// WatchSpec is the string-typed configuration of a Watch as it arrives from
// the API, the CLI or the database.
type WatchSpec struct {
	ID                  string  `json:"id,omitempty"`
	RegionID            int64   `json:"region_id"`
	City                string  `json:"city,omitempty"`
	Specialties         []int64 `json:"specialties,omitempty"`
	GeneralPractitioner bool    `json:"general_practitioner,omitempty"`
	ClinicID            int64   `json:"clinic_id,omitempty"`
	DoctorID            int64   `json:"doctor_id,omitempty"`
	StartDate           string  `json:"start_date,omitempty"`
	EndDate             string  `json:"end_date,omitempty"`
	TimeRange           string  `json:"time_range,omitempty"`
	Examination         bool    `json:"examination,omitempty"`
	AutoBook            bool    `json:"auto_book,omitempty"`
	Exclusions          string  `json:"exclusions,omitempty"`
	Account             string  `json:"account,omitempty"`
	Active              *bool   `json:"active,omitempty"`
}

// NewWatch validates spec and builds a Watch. All problems are reported
// together; every one of them unwraps to ErrConfiguration.
func NewWatch(spec WatchSpec) (*Watch, error) {
	var errs []error

	if spec.RegionID <= 0 {
		errs = append(errs, configErr("region_id", "", "must be a positive id"))
	}
	if len(spec.Specialties) == 0 && !spec.GeneralPractitioner {
		errs = append(errs, configErr("specialties", "", "at least one specialty id or general_practitioner is required"))
	}
	for _, id := range spec.Specialties {
		if id <= 0 {
			errs = append(errs, configErr("specialties", "", "ids must be positive"))
			break
		}
	}
	if spec.ClinicID < 0 {
		errs = append(errs, configErr("clinic_id", "", "must not be negative"))
	}
	if spec.DoctorID < 0 {
		errs = append(errs, configErr("doctor_id", "", "must not be negative"))
	}

	start, err := parseDate("start_date", spec.StartDate)
	if err != nil {
		errs = append(errs, err)
	}
	end, err := parseDate("end_date", spec.EndDate)
	if err != nil {
		errs = append(errs, err)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, configErr("end_date", spec.EndDate, "must not be before start_date"))
	}

	tr, err := ParseTimeRange(spec.TimeRange)
	if err != nil {
		errs = append(errs, err)
	}
	excl, err := ParseExclusionSet(spec.Exclusions)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Watch{
		ID:                  spec.ID,
		RegionID:            spec.RegionID,
		City:                strings.TrimSpace(spec.City),
		Specialties:         spec.Specialties,
		GeneralPractitioner: spec.GeneralPractitioner,
		ClinicID:            spec.ClinicID,
		DoctorID:            spec.DoctorID,
		StartDate:           start,
		EndDate:             end,
		TimeRange:           tr,
		Examination:         spec.Examination,
		AutoBook:            spec.AutoBook,
		Exclusions:          excl,
		Account:             spec.Account,
		Active:              spec.Active == nil || *spec.Active,
	}, nil
}

// MedicineSpec is the string-typed configuration of a MedicineSearch.
type MedicineSpec struct {
	ID              string  `json:"id,omitempty"`
	Name            string  `json:"name"`
	Dosage          string  `json:"dosage,omitempty"`
	Amount          string  `json:"amount,omitempty"`
	Location        string  `json:"location"`
	RadiusKM        float64 `json:"radius_km,omitempty"`
	MaxPrice        string  `json:"max_price,omitempty"`
	MinAvailability string  `json:"min_availability,omitempty"`
	DeactivateAfter int     `json:"deactivate_after,omitempty"`
	Exclusions      string  `json:"exclusions,omitempty"`
	Title           string  `json:"title,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

// NewMedicineSearch validates spec and builds a MedicineSearch, applying the
// radius and availability defaults.
func NewMedicineSearch(spec MedicineSpec) (*MedicineSearch, error) {
	var errs []error

	name := strings.TrimSpace(spec.Name)
	if name == "" {
		errs = append(errs, configErr("name", "", "is required"))
	}
	location := strings.TrimSpace(spec.Location)
	if location == "" {
		errs = append(errs, configErr("location", "", "is required"))
	}

	var dosage, amount Quantity
	if strings.TrimSpace(spec.Dosage) != "" {
		q, ok := ParseQuantity(spec.Dosage, DosageUnits)
		if !ok {
			errs = append(errs, configErr("dosage", spec.Dosage, `expected "<number> <unit>" with unit mg, mcg, g, %, ml or l`))
		}
		dosage = q
	}
	if strings.TrimSpace(spec.Amount) != "" {
		q, ok := ParseQuantity(spec.Amount, PackageUnits)
		if !ok {
			errs = append(errs, configErr("amount", spec.Amount, `expected "<number> <unit>" with unit tabl., szt., kaps., amp., ml or g`))
		}
		amount = q
	}

	radius := spec.RadiusKM
	switch {
	case radius == 0:
		radius = DefaultRadiusKM
	case radius < 0:
		errs = append(errs, configErr("radius_km", "", "must be positive"))
	}

	var maxPrice decimal.NullDecimal
	if s := strings.TrimSpace(spec.MaxPrice); s != "" {
		d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
		switch {
		case err != nil:
			errs = append(errs, configErr("max_price", spec.MaxPrice, "not a number"))
		case d.LessThan(MinMaxPrice) || d.GreaterThan(MaxMaxPrice):
			errs = append(errs, configErr("max_price", spec.MaxPrice, "must be between 0.01 and 10000"))
		default:
			maxPrice = decimal.NewNullDecimal(d)
		}
	}

	minAvail := AvailabilityLow
	if s := strings.TrimSpace(spec.MinAvailability); s != "" {
		a, err := ParseAvailability(strings.ToLower(s))
		if err != nil {
			errs = append(errs, configErr("min_availability", spec.MinAvailability, "must be one of none, low, high"))
		}
		minAvail = a
	}

	excl, err := ParseExclusionSet(spec.Exclusions)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &MedicineSearch{
		ID:              spec.ID,
		Name:            name,
		Dosage:          dosage,
		Amount:          amount,
		Location:        location,
		RadiusKM:        radius,
		MaxPrice:        maxPrice,
		MinAvailability: minAvail,
		DeactivateAfter: spec.DeactivateAfter,
		Exclusions:      excl,
		Title:           spec.Title,
		Active:          spec.Active == nil || *spec.Active,
	}, nil
}

// Spec returns the string-typed form of the watch, the inverse of NewWatch.
func (w *Watch) Spec() WatchSpec {
	active := w.Active
	return WatchSpec{
		ID:                  w.ID,
		RegionID:            w.RegionID,
		City:                w.City,
		Specialties:         w.Specialties,
		GeneralPractitioner: w.GeneralPractitioner,
		ClinicID:            w.ClinicID,
		DoctorID:            w.DoctorID,
		StartDate:           formatDate(w.StartDate),
		EndDate:             formatDate(w.EndDate),
		TimeRange:           w.TimeRange.String(),
		Examination:         w.Examination,
		AutoBook:            w.AutoBook,
		Exclusions:          w.Exclusions.String(),
		Account:             w.Account,
		Active:              &active,
	}
}

// Spec returns the string-typed form of the search, the inverse of
// NewMedicineSearch.
func (m *MedicineSearch) Spec() MedicineSpec {
	active := m.Active
	spec := MedicineSpec{
		ID:              m.ID,
		Name:            m.Name,
		Location:        m.Location,
		RadiusKM:        m.RadiusKM,
		MinAvailability: m.MinAvailability.String(),
		DeactivateAfter: m.DeactivateAfter,
		Exclusions:      m.Exclusions.String(),
		Title:           m.Title,
		Active:          &active,
	}
	if m.Dosage.Known {
		spec.Dosage = m.Dosage.String()
	}
	if m.Amount.Known {
		spec.Amount = m.Amount.String()
	}
	if m.MaxPrice.Valid {
		spec.MaxPrice = m.MaxPrice.Decimal.String()
	}
	return spec
}

func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, configErr(field, s, "expected YYYY-MM-DD")
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
