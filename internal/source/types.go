package source

import "time"

// SlotSummary is one free appointment slot as returned by the collector.
type SlotSummary struct {
	ID          string     `json:"id"`
	RegionID    int64      `json:"regionId"`
	SpecialtyID int64      `json:"specialtyId"`
	Clinic      *SlotPlace `json:"clinic,omitempty"`
	Doctor      *SlotPlace `json:"doctor,omitempty"`
	StartsAt    time.Time  `json:"startsAt"`
	Examination bool       `json:"examination"`
	VisitType   string     `json:"visitType,omitempty"`
}

// SlotPlace is an id and display name pair.
type SlotPlace struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OfferSummary is one pharmacy offer as returned by the collector. Every
// field is the text extracted from the page, untouched.
type OfferSummary struct {
	ID           string       `json:"id"`
	Pharmacy     string       `json:"pharmacy"`
	Dosage       string       `json:"dosage"`
	Package      string       `json:"package"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"`
	Prices       *OfferPrices `json:"prices,omitempty"`
	Availability string       `json:"availability"`
	Prescription string       `json:"prescription,omitempty"`
	Refund       string       `json:"refund,omitempty"`
}

// OfferPrices holds the price variants shown for an offer.
type OfferPrices struct {
	Full     string `json:"full"`
	Refunded string `json:"refunded,omitempty"`
}

type pageResponse struct {
	Slots  []SlotSummary  `json:"slots"`
	Offers []OfferSummary `json:"offers"`
	Next   string         `json:"next"`
}

type bookingRequest struct {
	Account     string    `json:"account,omitempty"`
	RegionID    int64     `json:"regionId"`
	SpecialtyID int64     `json:"specialtyId"`
	ClinicID    int64     `json:"clinicId"`
	DoctorID    int64     `json:"doctorId"`
	StartsAt    time.Time `json:"startsAt"`
	Examination bool      `json:"examination"`
	SlotID      string    `json:"slotId,omitempty"`
}
