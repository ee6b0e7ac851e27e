package ratelimit

import (
	"sync"
	"time"
)

// Limiter counts requests per key within a fixed window. Counters are
// process-local and reset when their window rolls over.
type Limiter struct {
	mu        sync.Mutex
	max       int
	window    time.Duration
	now       func() time.Time
	buckets   map[string]*bucket
	lastPrune time.Time
}

type bucket struct {
	count int
	start time.Time
}

// New creates a limiter allowing max requests per key per window.
func New(max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		max:     max,
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether the request identified by key may proceed. When
// denied, retryAfter tells how long until the window resets.
func (l *Limiter) Allow(key string) (allowed bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPrune) >= l.window {
		l.pruneLocked(now)
		l.lastPrune = now
	}

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) >= l.window {
		l.buckets[key] = &bucket{count: 1, start: now}
		return true, 0
	}

	if b.count >= l.max {
		return false, b.start.Add(l.window).Sub(now)
	}

	b.count++
	return true, 0
}

// pruneLocked drops expired buckets so the map does not grow unbounded
// across many distinct client IPs. Runs at most once per window, on any
// request. Caller must hold the mutex.
func (l *Limiter) pruneLocked(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.start) >= l.window {
			delete(l.buckets, key)
		}
	}
}
