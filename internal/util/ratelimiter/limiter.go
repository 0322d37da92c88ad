package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Limiter spaces out outgoing requests so that consecutive requests start
// at least one interval apart. A zero interval disables limiting.
// It is safe for concurrent use.
type Limiter struct {
	mu          sync.Mutex
	interval    time.Duration
	lastAllowed time.Time
}

// New creates a limiter with the given minimum spacing
func New(interval time.Duration) *Limiter {
	return &Limiter{
		interval: interval,
	}
}

// Allow reports whether a request may start now.
// On success the current time is recorded; otherwise the remaining wait is returned.
func (l *Limiter) Allow() (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if l.interval <= 0 || l.lastAllowed.IsZero() {
		l.lastAllowed = now
		return true, 0
	}

	if since := now.Sub(l.lastAllowed); since < l.interval {
		return false, l.interval - since
	}

	l.lastAllowed = now
	return true, 0
}

// Wait blocks until a request may start or ctx is done
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		allowed, wait := l.Allow()
		if allowed {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Interval returns the configured spacing
func (l *Limiter) Interval() time.Duration {
	return l.interval
}
