//go:build integration

package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/medwatch/internal/store"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func setupRedis(t *testing.T, opts ...store.RedisOption) *store.RedisFingerprintStore {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := store.NewRedisClient(ctx, fmt.Sprintf("redis://%s/0", endpoint))
	require.NoError(t, err)

	fps := store.NewRedisFingerprintStore(client, opts...)
	t.Cleanup(func() {
		_ = fps.Close()
	})

	return fps
}

func TestRedisFingerprintStore_RoundTrip(t *testing.T) {
	r := setupRedis(t)
	ctx := context.Background()

	a := domain.CanonicalRecord{Kind: domain.KindPharmacy, AddressKey: "dluga 1 gdansk"}
	b := domain.CanonicalRecord{Kind: domain.KindPharmacy, PhoneE164: "+48583410000"}
	fps := []domain.Fingerprint{domain.FingerprintOf(&a), domain.FingerprintOf(&b)}

	require.NoError(t, r.Ping(ctx))
	require.NoError(t, r.CommitFingerprints(ctx, "search-1", fps))
	require.NoError(t, r.CommitFingerprints(ctx, "search-1", fps))
	require.NoError(t, r.CommitFingerprints(ctx, "search-1", nil))

	got, err := r.LoadFingerprints(ctx, "search-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Less(t, got[0].Key, got[1].Key)

	other, err := r.LoadFingerprints(ctx, "search-2")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, r.ClearFingerprints(ctx, "search-1"))
	got, err = r.LoadFingerprints(ctx, "search-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisFingerprintStore_TTL(t *testing.T) {
	r := setupRedis(t, store.WithTTL(time.Second), store.WithKeyPrefix("test:"))
	ctx := context.Background()

	slot := domain.CanonicalRecord{
		Kind:     domain.KindAppointment,
		ClinicID: 17,
		DateTime: time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC),
	}
	fp := domain.FingerprintOf(&slot)
	require.NoError(t, r.CommitFingerprints(ctx, "search-1", []domain.Fingerprint{fp}))

	got, err := r.LoadFingerprints(ctx, "search-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, fp.SameComponents(got[0]))

	assert.Eventually(t, func() bool {
		got, err := r.LoadFingerprints(ctx, "search-1")
		return err == nil && len(got) == 0
	}, 5*time.Second, 100*time.Millisecond)
}
