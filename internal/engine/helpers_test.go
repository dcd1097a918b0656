package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	notifyMocks "github.com/donaldgifford/medwatch/internal/notify/mocks"
	sourceMocks "github.com/donaldgifford/medwatch/internal/source/mocks"
	storeMocks "github.com/donaldgifford/medwatch/internal/store/mocks"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testDeps struct {
	store    *storeMocks.MockStore
	fps      *storeMocks.MockFingerprintStore
	source   *sourceMocks.MockSource
	notifier *notifyMocks.MockNotifier
	booker   *sourceMocks.MockBooker
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	return &testDeps{
		store:    storeMocks.NewMockStore(t),
		fps:      storeMocks.NewMockFingerprintStore(t),
		source:   sourceMocks.NewMockSource(t),
		notifier: notifyMocks.NewMockNotifier(t),
		booker:   sourceMocks.NewMockBooker(t),
	}
}

func (d *testDeps) engine(opts ...EngineOption) *Engine {
	base := []EngineOption{
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return testNow }),
		WithBooker(d.booker),
	}
	return NewEngine(d.store, d.fps, d.source, d.notifier, append(base, opts...)...)
}

func at(day, hour int) time.Time {
	return time.Date(2026, 10, day, hour, 0, 0, 0, time.UTC)
}

func slot(clinic, doctor int64, when time.Time) domain.RawListing {
	return domain.RawListing{
		Kind:        domain.KindAppointment,
		RegionID:    204,
		SpecialtyID: 9,
		ClinicID:    clinic,
		DoctorID:    doctor,
		DateTime:    when,
	}
}

func offer(pharmacy, address, phone, availability string) domain.RawListing {
	return domain.RawListing{
		Kind:         domain.KindPharmacy,
		PharmacyName: pharmacy,
		Dosage:       "50 mcg",
		Package:      "100 tabl.",
		Address:      address,
		Phone:        phone,
		PriceFull:    "12,99 zł",
		Availability: availability,
	}
}

func testWatch(t *testing.T, autoBook bool) *domain.Watch {
	t.Helper()
	w, err := domain.NewWatch(domain.WatchSpec{
		ID:          "w1",
		RegionID:    204,
		Specialties: []int64{9},
		AutoBook:    autoBook,
	})
	require.NoError(t, err)
	return w
}

func testMedicine(t *testing.T, deactivateAfter int) *domain.MedicineSearch {
	t.Helper()
	m, err := domain.NewMedicineSearch(domain.MedicineSpec{
		ID:              "m1",
		Name:            "Euthyrox",
		Dosage:          "50 mcg",
		Location:        "Warszawa",
		DeactivateAfter: deactivateAfter,
	})
	require.NoError(t, err)
	return m
}

func actions(ds []domain.Decision) []domain.Action {
	out := make([]domain.Action, len(ds))
	for i, d := range ds {
		out[i] = d.Action
	}
	return out
}

func reasons(ds []domain.Decision) []domain.Reason {
	out := make([]domain.Reason, len(ds))
	for i, d := range ds {
		out[i] = d.Reason
	}
	return out
}
