package source

import (
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// SlotsToListings converts collector slots into raw appointment listings.
func SlotsToListings(slots []SlotSummary) []domain.RawListing {
	listings := make([]domain.RawListing, 0, len(slots))
	for i := range slots {
		listings = append(listings, slotToListing(&slots[i]))
	}
	return listings
}

func slotToListing(s *SlotSummary) domain.RawListing {
	l := domain.RawListing{
		Kind:        domain.KindAppointment,
		SourceID:    s.ID,
		RegionID:    s.RegionID,
		SpecialtyID: s.SpecialtyID,
		DateTime:    s.StartsAt,
		Examination: s.Examination,
		VisitType:   s.VisitType,
	}

	if s.Clinic != nil {
		l.ClinicID = s.Clinic.ID
		l.ClinicName = s.Clinic.Name
	}
	if s.Doctor != nil {
		l.DoctorID = s.Doctor.ID
		l.DoctorName = s.Doctor.Name
	}

	return l
}

// OffersToListings converts collector offers into raw pharmacy listings.
func OffersToListings(offers []OfferSummary) []domain.RawListing {
	listings := make([]domain.RawListing, 0, len(offers))
	for i := range offers {
		listings = append(listings, offerToListing(&offers[i]))
	}
	return listings
}

func offerToListing(o *OfferSummary) domain.RawListing {
	l := domain.RawListing{
		Kind:             domain.KindPharmacy,
		SourceID:         o.ID,
		PharmacyName:     o.Pharmacy,
		Dosage:           o.Dosage,
		Package:          o.Package,
		Address:          o.Address,
		Phone:            o.Phone,
		Availability:     o.Availability,
		PrescriptionNote: o.Prescription,
		RefundNote:       o.Refund,
	}

	if o.Prices != nil {
		l.PriceFull = o.Prices.Full
		l.PriceRefunded = o.Prices.Refunded
	}

	return l
}
