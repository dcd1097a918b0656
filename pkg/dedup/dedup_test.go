package dedup_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/medwatch/pkg/dedup"
	"github.com/donaldgifford/medwatch/pkg/normalize"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func pharmacy(address, phone string) domain.CanonicalRecord {
	return normalize.Normalize(domain.RawListing{
		Kind:    domain.KindPharmacy,
		Address: address,
		Phone:   phone,
	})
}

func newIndex(t *testing.T, kind domain.ListingKind, seen []domain.Fingerprint, opts ...dedup.Option) *dedup.Index {
	t.Helper()
	ix, err := dedup.NewIndex("search-1", kind, seen, opts...)
	require.NoError(t, err)
	return ix
}

func TestClassify_AddressVariantsWithSamePhone(t *testing.T) {
	t.Parallel()

	a := pharmacy("ul. Marszałkowska 126/134, 00-008 Warszawa", "22 123 45 67")
	b := pharmacy("ul Marszalkowska 126/134 00-008 Warszawa", "tel. 221234567")

	ix := newIndex(t, domain.KindPharmacy, nil)

	out, fpA := ix.Classify(&a)
	assert.Equal(t, dedup.New, out)

	out, fpB := ix.Classify(&b)
	assert.Equal(t, dedup.DuplicateInBatch, out)
	assert.Equal(t, fpA.Key, fpB.Key)

	next := newIndex(t, domain.KindPharmacy, []domain.Fingerprint{fpA})
	out, _ = next.Classify(&b)
	assert.Equal(t, dedup.DuplicateOfSeen, out)
}

func TestClassify_Pharmacy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		first domain.CanonicalRecord
		then  domain.CanonicalRecord
		want  dedup.Outcome
	}{
		{
			name:  "identical address and phone",
			first: pharmacy("Grunwaldzka 82, 80-244 Gdańsk", "583410000"),
			then:  pharmacy("Grunwaldzka 82, 80-244 Gdańsk", "583410000"),
			want:  dedup.DuplicateInBatch,
		},
		{
			name:  "address typo without phone",
			first: pharmacy("Grunwaldzka 82, Gdańsk", ""),
			then:  pharmacy("Grunwaldska 82, Gdańsk", ""),
			want:  dedup.DuplicateInBatch,
		},
		{
			name:  "different street without phone",
			first: pharmacy("Grunwaldzka 82, Gdańsk", ""),
			then:  pharmacy("Długa 1, Gdańsk", ""),
			want:  dedup.New,
		},
		{
			name:  "same street different postal code",
			first: pharmacy("Grunwaldzka 82, 80-244 Gdańsk", ""),
			then:  pharmacy("Grunwaldzka 82, 80-245 Gdańsk", ""),
			want:  dedup.New,
		},
		{
			name:  "same street different building number",
			first: pharmacy("ul. Marszałkowska 12, 00-008 Warszawa", ""),
			then:  pharmacy("ul. Marszałkowska 21, 00-008 Warszawa", ""),
			want:  dedup.New,
		},
		{
			name:  "same address different phone",
			first: pharmacy("Grunwaldzka 82, Gdańsk", "583410000"),
			then:  pharmacy("Grunwaldzka 82, Gdańsk", "583410001"),
			want:  dedup.New,
		},
		{
			name:  "same phone different street",
			first: pharmacy("Grunwaldzka 82, Gdańsk", "583410000"),
			then:  pharmacy("Długa 1, Gdańsk", "583410000"),
			want:  dedup.New,
		},
		{
			name:  "missing address is a wildcard when phone agrees",
			first: pharmacy("Grunwaldzka 82, Gdańsk", "583410000"),
			then:  pharmacy("", "58 341 00 00"),
			want:  dedup.DuplicateInBatch,
		},
		{
			name:  "missing phone is a wildcard when address agrees",
			first: pharmacy("Grunwaldzka 82, Gdańsk", "583410000"),
			then:  pharmacy("Grunwaldzka 82 Gdańsk", ""),
			want:  dedup.DuplicateInBatch,
		},
		{
			name:  "address only against phone only never collapses",
			first: pharmacy("Grunwaldzka 82, Gdańsk", ""),
			then:  pharmacy("", "583410000"),
			want:  dedup.New,
		},
		{
			name:  "no discriminating fields",
			first: pharmacy("", ""),
			then:  pharmacy("", ""),
			want:  dedup.New,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ix := newIndex(t, domain.KindPharmacy, nil)
			out, _ := ix.Classify(&tt.first)
			require.Equal(t, dedup.New, out)

			out, _ = ix.Classify(&tt.then)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestClassify_Appointments(t *testing.T) {
	t.Parallel()

	slot := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)
	rec := domain.CanonicalRecord{Kind: domain.KindAppointment, ClinicID: 17, DoctorID: 456, DateTime: slot}

	ix := newIndex(t, domain.KindAppointment, nil)
	out, fp := ix.Classify(&rec)
	assert.Equal(t, dedup.New, out)

	same := rec
	same.ClinicName = "renamed"
	out, _ = ix.Classify(&same)
	assert.Equal(t, dedup.DuplicateInBatch, out)

	later := rec
	later.DateTime = slot.Add(15 * time.Minute)
	out, _ = ix.Classify(&later)
	assert.Equal(t, dedup.New, out)

	exam := rec
	exam.Examination = true
	out, _ = ix.Classify(&exam)
	assert.Equal(t, dedup.New, out)

	next := newIndex(t, domain.KindAppointment, []domain.Fingerprint{fp})
	out, _ = next.Classify(&rec)
	assert.Equal(t, dedup.DuplicateOfSeen, out)
}

func TestClassify_IdenticalRecordsNeverNew(t *testing.T) {
	t.Parallel()

	addresses := []string{
		"ul. Marszałkowska 126/134, 00-008 Warszawa",
		"Al. Jerozolimskie 44",
		"Piękna 12/14/3",
		"a",
	}
	phones := []string{"221234567", "601 234 567", ""}

	for _, addr := range addresses {
		for _, phone := range phones {
			rec := pharmacy(addr, phone)

			ix := newIndex(t, domain.KindPharmacy, nil)
			ix.Classify(&rec)
			out, fp := ix.Classify(&rec)
			assert.NotEqual(t, dedup.New, out, "address %q phone %q", addr, phone)

			seen := newIndex(t, domain.KindPharmacy, []domain.Fingerprint{fp})
			out, _ = seen.Classify(&rec)
			assert.Equal(t, dedup.DuplicateOfSeen, out, "address %q phone %q", addr, phone)
		}
	}
}

func TestClassifyBatch_RicherRecordWins(t *testing.T) {
	t.Parallel()

	poor := pharmacy("Grunwaldzka 82, Gdańsk", "583410000")
	rich := normalize.Normalize(domain.RawListing{
		Kind:         domain.KindPharmacy,
		PharmacyName: "Apteka Gdańska",
		Address:      "Grunwaldzka 82, Gdańsk",
		Phone:        "583410000",
		PriceFull:    "12,99",
		Availability: "dużo",
	})
	other := pharmacy("Długa 1, Gdańsk", "")
	tie := pharmacy("Grunwaldzka 82, Gdańsk", "583410000")

	ix := newIndex(t, domain.KindPharmacy, nil)
	got := ix.ClassifyBatch([]domain.CanonicalRecord{poor, other, rich, tie})

	require.Len(t, got, 4)
	assert.Equal(t, dedup.DuplicateInBatch, got[0].Outcome)
	assert.Equal(t, dedup.New, got[1].Outcome)
	assert.Equal(t, dedup.New, got[2].Outcome)
	assert.Equal(t, dedup.DuplicateInBatch, got[3].Outcome)
	assert.Equal(t, "Apteka Gdańska", got[2].Record.PharmacyName)
}

func TestClassifyBatch_TieKeepsFirst(t *testing.T) {
	t.Parallel()

	a := pharmacy("Grunwaldzka 82, Gdańsk", "583410000")
	b := pharmacy("Grunwaldzka 82 Gdańsk", "58-341-00-00")

	ix := newIndex(t, domain.KindPharmacy, nil)
	got := ix.ClassifyBatch([]domain.CanonicalRecord{a, b})

	assert.Equal(t, dedup.New, got[0].Outcome)
	assert.Equal(t, dedup.DuplicateInBatch, got[1].Outcome)
}

func TestClassifyBatch_NeighbouringBuildings(t *testing.T) {
	t.Parallel()

	batch := []domain.CanonicalRecord{
		pharmacy("ul. Marszałkowska 12, 00-008 Warszawa", ""),
		pharmacy("ul. Marszałkowska 21, 00-008 Warszawa", ""),
		pharmacy("ul. Marszałkowska 13, 00-008 Warszawa", ""),
	}

	ix := newIndex(t, domain.KindPharmacy, nil)
	got := ix.ClassifyBatch(batch)

	require.Len(t, got, 3)
	for i, c := range got {
		assert.Equal(t, dedup.New, c.Outcome, "record %d", i)
	}

	seen := make([]domain.Fingerprint, 0, len(got))
	for _, c := range got {
		seen = append(seen, c.Fingerprint)
	}
	next := newIndex(t, domain.KindPharmacy, seen)
	again := pharmacy("ul. Marszałkowska 21, 00-008 Warszawa", "")
	out, fp := next.Classify(&again)
	assert.Equal(t, dedup.DuplicateOfSeen, out)
	assert.Equal(t, got[1].Fingerprint.Key, fp.Key)
}

func TestNewIndex_Violations(t *testing.T) {
	t.Parallel()

	rec := pharmacy("Grunwaldzka 82, Gdańsk", "583410000")
	fp := domain.FingerprintOf(&rec)

	conflicting := fp
	conflicting.Phone = "+48583410001"

	appt := domain.CanonicalRecord{Kind: domain.KindAppointment, ClinicID: 1}

	tests := []struct {
		name string
		seen []domain.Fingerprint
	}{
		{name: "empty key", seen: []domain.Fingerprint{{Kind: domain.KindPharmacy, AddressKey: "x"}}},
		{name: "kind mismatch", seen: []domain.Fingerprint{domain.FingerprintOf(&appt)}},
		{name: "conflicting components", seen: []domain.Fingerprint{fp, conflicting}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ix, err := dedup.NewIndex("search-1", domain.KindPharmacy, tt.seen)
			require.ErrorIs(t, err, domain.ErrDuplicatePolicyViolation)
			assert.Contains(t, err.Error(), "search-1")
			assert.Nil(t, ix)
		})
	}

	ix, err := dedup.NewIndex("search-1", domain.KindPharmacy, []domain.Fingerprint{fp, fp})
	require.NoError(t, err)
	assert.Len(t, ix.Seen(), 1)
}

func TestIndex_CommitAndReset(t *testing.T) {
	t.Parallel()

	a := pharmacy("Grunwaldzka 82, Gdańsk", "583410000")

	ix := newIndex(t, domain.KindPharmacy, nil)
	out, fp := ix.Classify(&a)
	require.Equal(t, dedup.New, out)

	ix.Commit([]domain.Fingerprint{fp, fp, {Kind: domain.KindPharmacy}})
	assert.Len(t, ix.Seen(), 1)

	ix.Reset()
	out, _ = ix.Classify(&a)
	assert.Equal(t, dedup.DuplicateOfSeen, out)
}

func TestWithSimilarityThreshold(t *testing.T) {
	t.Parallel()

	a := pharmacy("Grunwaldzka 82, Gdańsk", "")
	b := pharmacy("Grunwaldska 82, Gdańsk", "")

	strict := newIndex(t, domain.KindPharmacy, nil, dedup.WithSimilarityThreshold(1))
	strict.Classify(&a)
	out, _ := strict.Classify(&b)
	assert.Equal(t, dedup.New, out)

	loose := newIndex(t, domain.KindPharmacy, nil, dedup.WithSimilarityThreshold(0.5))
	loose.Classify(&a)
	out, _ = loose.Classify(&b)
	assert.Equal(t, dedup.DuplicateInBatch, out)
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, dedup.Similarity("abc", "abc"), 1e-9)
	assert.InDelta(t, 1.0, dedup.Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.75, dedup.Similarity("abcd", "abce"), 1e-9)
	assert.InDelta(t, 0.0, dedup.Similarity("abc", ""), 1e-9)
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "new", dedup.New.String())
	assert.Equal(t, "duplicate_seen", dedup.DuplicateOfSeen.String())
	assert.Equal(t, "duplicate_in_batch", dedup.DuplicateInBatch.String())
}
