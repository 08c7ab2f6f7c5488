package scrape

import (
	"context"
	"time"

	"github.com/jobscout/jobscout"
	"golang.org/x/time/rate"
)

var _ jobscout.Throttler = (*PauseLimiter)(nil)

// PauseLimiter enforces a fixed delay between consecutive page requests
// using a token bucket with a burst of 1. The first Wait never blocks; every
// later Wait blocks until the configured pause has elapsed since the
// previous one. Pauses below jobscout.MinPause are raised to the floor, so
// the throttle cannot be weakened per call.
type PauseLimiter struct {
	limiter *rate.Limiter
}

// NewPauseLimiter creates a PauseLimiter with the given inter-request pause.
func NewPauseLimiter(pause time.Duration) *PauseLimiter {
	if pause < jobscout.MinPause {
		pause = jobscout.MinPause
	}
	return &PauseLimiter{
		limiter: rate.NewLimiter(rate.Every(pause), 1),
	}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *PauseLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
