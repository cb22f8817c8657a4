package avito

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily request quota is used up.
var ErrDailyLimitReached = errors.New("daily API limit reached")

const quotaWindow = 24 * time.Hour

// RateLimiter paces API requests with a token bucket and caps them with a
// rolling 24-hour quota that starts counting at construction.
type RateLimiter struct {
	limiter *rate.Limiter
	nowFunc func() time.Time

	mu       sync.Mutex
	used     int64
	maxDaily int64
	resetAt  time.Time
}

// Quota is a snapshot of the daily quota.
type Quota struct {
	Limit     int64
	Used      int64
	Remaining int64
	ResetAt   time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter allowing perSecond requests with the
// given burst and at most maxDaily requests per window.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(quotaWindow)
	return r
}

// Wait blocks until a request is allowed or ctx is done. It returns
// ErrDailyLimitReached once the window's quota is spent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.reserveDaily(); err != nil {
		return err
	}
	if err := r.limiter.Wait(ctx); err != nil {
		r.releaseDaily()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

func (r *RateLimiter) reserveDaily() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollLocked()
	if r.used >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.used, r.maxDaily)
	}
	r.used++
	return nil
}

func (r *RateLimiter) releaseDaily() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used > 0 {
		r.used--
	}
}

func (r *RateLimiter) rollLocked() {
	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.used = 0
		r.resetAt = now.Add(quotaWindow)
	}
}

// DailyCount returns the number of requests made in the current window.
func (r *RateLimiter) DailyCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.used
}

// Quota returns the current quota snapshot.
func (r *RateLimiter) Quota() Quota {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollLocked()
	return Quota{
		Limit:     r.maxDaily,
		Used:      r.used,
		Remaining: max(r.maxDaily-r.used, 0),
		ResetAt:   r.resetAt,
	}
}
