package source

import (
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

const dateLayout = "2006-01-02"

// Query is the collector request derived from a search.
type Query struct {
	Kind   domain.ListingKind
	Params url.Values
}

// QueryFor builds the collector query for s. gp is the specialty set a
// general practitioner watch expands to.
func QueryFor(s domain.Search, gp []int64) Query {
	params := url.Values{}

	switch v := s.(type) {
	case *domain.Watch:
		params.Set("region_id", strconv.FormatInt(v.RegionID, 10))
		for _, id := range v.SpecialtySet(gp) {
			params.Add("specialty_id", strconv.FormatInt(id, 10))
		}
		setID(params, "clinic_id", v.ClinicID)
		setID(params, "doctor_id", v.DoctorID)
		if !v.StartDate.IsZero() {
			params.Set("date_from", v.StartDate.Format(dateLayout))
		}
		if !v.EndDate.IsZero() {
			params.Set("date_to", v.EndDate.Format(dateLayout))
		}
		if v.Examination {
			params.Set("examination", "true")
		}
		if v.City != "" {
			params.Set("city", v.City)
		}
		if v.Account != "" {
			params.Set("account", v.Account)
		}

	case *domain.MedicineSearch:
		params.Set("name", v.Name)
		if v.Dosage.Known {
			params.Set("dosage", v.Dosage.String())
		}
		if v.Amount.Known {
			params.Set("amount", v.Amount.String())
		}
		params.Set("location", v.Location)
		params.Set("radius_km", strconv.FormatFloat(v.RadiusKM, 'f', -1, 64))
	}

	return Query{Kind: s.Kind(), Params: params}
}

func setID(params url.Values, key string, id int64) {
	if id > 0 {
		params.Set(key, strconv.FormatInt(id, 10))
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
