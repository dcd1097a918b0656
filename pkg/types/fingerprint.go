package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Fingerprint identifies a real-world entity across scrape passes. Key is a
// stable hash of the components; the components themselves are kept so that
// pharmacy fingerprints can be compared fuzzily.
type Fingerprint struct {
	Kind ListingKind `json:"kind"`
	Key  string      `json:"key"`

	AddressKey string `json:"address_key,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`

	ClinicID    int64     `json:"clinic_id,omitempty"`
	DoctorID    int64     `json:"doctor_id,omitempty"`
	DateTime    time.Time `json:"date_time,omitzero"`
	Examination bool      `json:"examination,omitempty"`
}

// FingerprintOf derives the fingerprint of a canonical record. A pharmacy
// record with neither address nor phone yields a fingerprint with an empty
// Key, which never matches anything.
func FingerprintOf(r *CanonicalRecord) Fingerprint {
	fp := Fingerprint{Kind: r.Kind}
	switch r.Kind {
	case KindAppointment:
		fp.ClinicID = r.ClinicID
		fp.DoctorID = r.DoctorID
		fp.DateTime = r.DateTime.UTC()
		fp.Examination = r.Examination
	default:
		fp.AddressKey = r.AddressKey
		fp.PostalCode = r.PostalCode
		fp.Phone = r.PhoneE164
		if !r.HasAddress() && !r.HasPhone() {
			return fp
		}
	}
	fp.Key = fp.computeKey()
	return fp
}

// Discriminating reports whether the fingerprint carries at least one field
// that can identify an entity.
func (f Fingerprint) Discriminating() bool {
	if f.Kind == KindAppointment {
		return f.Key != ""
	}
	return f.AddressKey != "" || f.Phone != ""
}

// SameComponents reports whether two fingerprints were built from identical
// components.
func (f Fingerprint) SameComponents(o Fingerprint) bool {
	return f.Kind == o.Kind &&
		f.AddressKey == o.AddressKey &&
		f.PostalCode == o.PostalCode &&
		f.Phone == o.Phone &&
		f.ClinicID == o.ClinicID &&
		f.DoctorID == o.DoctorID &&
		f.DateTime.Equal(o.DateTime) &&
		f.Examination == o.Examination
}

func (f Fingerprint) computeKey() string {
	var parts []string
	switch f.Kind {
	case KindAppointment:
		parts = []string{
			string(f.Kind),
			strconv.FormatInt(f.ClinicID, 10),
			strconv.FormatInt(f.DoctorID, 10),
			f.DateTime.UTC().Format(time.RFC3339),
			strconv.FormatBool(f.Examination),
		}
	default:
		parts = []string{string(f.Kind), f.AddressKey, f.PostalCode, f.Phone}
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
