package source_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/medwatch/internal/source"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{name: "allows calls within rate", rate: 100, burst: 10, daily: 5000, calls: 3},
		{name: "allows burst", rate: 100, burst: 5, daily: 5000, calls: 5},
		{name: "no daily quota", rate: 100, burst: 10, daily: 0, calls: 20},
		{name: "rejects when daily limit reached", rate: 100, burst: 10, daily: 2, calls: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := source.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.ErrorIs(t, lastErr, source.ErrDailyLimitReached)
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}

func TestRateLimiter_CanceledContextDoesNotCount(t *testing.T) {
	t.Parallel()

	rl := source.NewRateLimiter(0.001, 1, 10)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, rl.Wait(ctx))
	assert.Equal(t, int64(1), rl.DailyCount())
	assert.Equal(t, int64(9), rl.Remaining())
}

func TestRateLimiter_ResetsAtMidnight(t *testing.T) {
	t.Parallel()

	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	var mu sync.Mutex
	now := time.Date(2026, 10, 15, 23, 30, 0, 0, warsaw)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	rl := source.NewRateLimiter(100, 10, 2,
		source.WithLocation(warsaw),
		source.WithRateLimiterNowFunc(clock),
	)

	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))
	require.ErrorIs(t, rl.Wait(context.Background()), source.ErrDailyLimitReached)
	assert.Equal(t, int64(0), rl.Remaining())
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, warsaw), rl.ResetAt())

	mu.Lock()
	now = now.Add(time.Hour)
	mu.Unlock()

	assert.Equal(t, int64(0), rl.DailyCount())
	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.Remaining())
}

func TestRateLimiter_NoQuotaRemaining(t *testing.T) {
	t.Parallel()

	rl := source.NewRateLimiter(100, 10, 0)
	assert.Equal(t, int64(-1), rl.Remaining())
}
