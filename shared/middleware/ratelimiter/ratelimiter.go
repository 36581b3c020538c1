// Package ratelimiter implements a per-identity token bucket limiter.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

// Limiter tracks one token bucket per identity (IP, email, user id, ...).
// Idle buckets are dropped after ttl so the map does not grow without bound.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens per second
	capacity float64
	ttl      time.Duration
	now      func() time.Time
}

// New creates a limiter refilling at rate tokens/second up to capacity.
func New(rate, capacity float64, ttl time.Duration) *Limiter {
	return &Limiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// OncePerSecond allows a sustained request per second with no burst.
func OncePerSecond() *Limiter { return New(1, 1, time.Hour) }

// PerSecond allows n sustained requests per second with a burst of n.
func PerSecond(n float64) *Limiter { return New(n, n, time.Hour) }

// Allow reports whether the identity may proceed and consumes a token if so.
func (l *Limiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[identity]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[identity] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * l.rate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastRefill = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// sweep drops buckets idle longer than ttl. Called under l.mu.
func (l *Limiter) sweep(now time.Time) {
	for id, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.ttl {
			delete(l.buckets, id)
		}
	}
}
