//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/medwatch/internal/store"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("medwatch_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testWatch(t *testing.T) *domain.Watch {
	t.Helper()
	w, err := domain.NewWatch(domain.WatchSpec{
		RegionID:    204,
		City:        "Gdańsk",
		Specialties: []int64{112},
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-31",
		TimeRange:   "08:00-16:00",
		AutoBook:    true,
		Exclusions:  "doctor:123;clinic:7",
	})
	require.NoError(t, err)
	return w
}

func testMedicine(t *testing.T) *domain.MedicineSearch {
	t.Helper()
	m, err := domain.NewMedicineSearch(domain.MedicineSpec{
		Name:            "Apap",
		Dosage:          "500 mg",
		Amount:          "24 tabl.",
		Location:        "Gdańsk",
		MaxPrice:        "19,99",
		MinAvailability: "high",
		DeactivateAfter: 3,
	})
	require.NoError(t, err)
	return m
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_WatchCRUD(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	// Create.
	w := testWatch(t)
	require.NoError(t, s.CreateWatch(ctx, w))
	assert.NotEmpty(t, w.ID)

	// Get.
	got, err := s.GetWatch(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.Spec(), got.Spec())
	assert.True(t, got.Exclusions.Excludes(domain.ExcludeDoctor, 123))

	// Update.
	got.DoctorID = 456
	got.AutoBook = false
	require.NoError(t, s.UpdateWatch(ctx, got))

	updated, err := s.GetWatch(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(456), updated.DoctorID)
	assert.False(t, updated.AutoBook)

	// List with filters.
	watches, total, err := s.ListWatches(ctx, &store.WatchQuery{RegionID: ptr(int64(204))})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, watches, 1)

	// Deactivate through the kind-agnostic path.
	require.NoError(t, s.SetSearchActive(ctx, w.ID, false))
	active, err := s.ListActiveSearches(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Delete.
	require.NoError(t, s.DeleteWatch(ctx, w.ID))
	_, err = s.GetWatch(ctx, w.ID)
	require.ErrorIs(t, err, domain.ErrSearchNotFound)
}

func TestPostgresStore_MedicineCRUD(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	m := testMedicine(t)
	require.NoError(t, s.CreateMedicineSearch(ctx, m))

	got, err := s.GetMedicineSearch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Spec(), got.Spec())
	assert.Equal(t, "19.99", got.MaxPrice.Decimal.String())
	assert.Equal(t, domain.AvailabilityHigh, got.MinAvailability)

	when := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.MarkSearched(ctx, m.ID, when))

	search, err := s.GetSearch(ctx, m.ID)
	require.NoError(t, err)
	med, ok := search.(*domain.MedicineSearch)
	require.True(t, ok)
	require.NotNil(t, med.LastSearchAt)
	assert.True(t, when.Equal(*med.LastSearchAt))

	list, total, err := s.ListMedicineSearches(ctx, &store.MedicineQuery{Name: ptr("ap")})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteMedicineSearch(ctx, m.ID))
	require.ErrorIs(t, s.DeleteMedicineSearch(ctx, m.ID), domain.ErrSearchNotFound)
}

func TestPostgresStore_GetSearchUnknown(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	_, err := s.GetSearch(ctx, "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrSearchNotFound)

	_, err = s.GetSearch(ctx, "6f1c1d6e-8d3e-4a4e-9d43-1f0f3c1b2a10")
	require.ErrorIs(t, err, domain.ErrSearchNotFound)

	err = s.SetSearchActive(ctx, "6f1c1d6e-8d3e-4a4e-9d43-1f0f3c1b2a10", true)
	require.ErrorIs(t, err, domain.ErrSearchNotFound)
}

func TestPostgresStore_Fingerprints(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	m := testMedicine(t)
	require.NoError(t, s.CreateMedicineSearch(ctx, m))

	rec := domain.CanonicalRecord{
		Kind:       domain.KindPharmacy,
		AddressKey: "grunwaldzka 82 gdansk",
		PhoneE164:  "+48583410000",
	}
	slot := domain.CanonicalRecord{
		Kind:     domain.KindAppointment,
		ClinicID: 17,
		DoctorID: 456,
		DateTime: time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC),
	}
	fps := []domain.Fingerprint{domain.FingerprintOf(&rec), domain.FingerprintOf(&slot)}

	require.NoError(t, s.CommitFingerprints(ctx, m.ID, fps))
	require.NoError(t, s.CommitFingerprints(ctx, m.ID, fps[:1]))

	got, err := s.LoadFingerprints(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byKey := make(map[string]domain.Fingerprint, len(got))
	for _, fp := range got {
		byKey[fp.Key] = fp
	}
	for _, fp := range fps {
		stored, ok := byKey[fp.Key]
		require.True(t, ok)
		assert.True(t, fp.SameComponents(stored))
	}

	require.NoError(t, s.DeleteMedicineSearch(ctx, m.ID))
	got, err = s.LoadFingerprints(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func ptr[T any](v T) *T { return &v }
