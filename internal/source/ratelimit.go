package source

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the collector's daily call quota has
// been exhausted.
var ErrDailyLimitReached = errors.New("daily source limit reached")

// RateLimiter paces collector calls with a token bucket and enforces a daily
// quota that resets at midnight in the limiter's location. A zero daily
// limit disables the quota.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	loc      *time.Location
	nowFunc  func() time.Time

	mu    sync.Mutex
	day   time.Time
	count int64
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// WithLocation sets the time zone whose midnight resets the daily quota.
func WithLocation(loc *time.Location) RateLimiterOption {
	return func(r *RateLimiter) {
		r.loc = loc
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size and daily limit.
func NewRateLimiter(perSecond float64, burst int, maxDaily int64, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		loc:      time.UTC,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.day = r.today()
	return r
}

// Wait blocks until the token bucket allows the call, or the context is
// canceled. The call is counted against the daily quota once admitted.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.reserve(); err != nil {
		return err
	}
	if err := r.limiter.Wait(ctx); err != nil {
		r.release()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// DailyCount returns the number of calls admitted today.
func (r *RateLimiter) DailyCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollLocked()
	return r.count
}

// Remaining returns the calls left today, or -1 without a daily quota.
func (r *RateLimiter) Remaining() int64 {
	if r.maxDaily <= 0 {
		return -1
	}
	return max(r.maxDaily-r.DailyCount(), 0)
}

// ResetAt returns the next quota reset.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollLocked()
	return r.day.AddDate(0, 0, 1)
}

func (r *RateLimiter) reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollLocked()

	if r.maxDaily > 0 && r.count >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.count, r.maxDaily)
	}
	r.count++
	return nil
}

func (r *RateLimiter) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count > 0 {
		r.count--
	}
}

func (r *RateLimiter) rollLocked() {
	if today := r.today(); today.After(r.day) {
		r.day = today
		r.count = 0
	}
}

func (r *RateLimiter) today() time.Time {
	now := r.nowFunc().In(r.loc)
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.loc)
}
