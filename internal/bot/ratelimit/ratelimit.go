// Package ratelimit throttles inbound actions per user.
package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// idleTTL is how long an unused limiter is kept.
const idleTTL = 10 * time.Minute

// Limiter hands out one token bucket per user. Buckets of idle users are
// evicted, so memory is bounded by capacity.
type Limiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[int64, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New returns a Limiter allowing perSecond actions with the given burst.
// A non-positive perSecond disables limiting.
func New(perSecond float64, burst, capacity int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	if capacity < 1 {
		capacity = 1
	}
	return &Limiter{
		limiters: expirable.NewLRU[int64, *rate.Limiter](capacity, nil, idleTTL),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

// Allow reports whether userID may act now.
func (l *Limiter) Allow(userID int64) bool {
	if l == nil || l.rate <= 0 {
		return true
	}
	return l.get(userID).Allow()
}

func (l *Limiter) get(userID int64) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters.Get(userID)
	if !ok {
		lim = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(userID, lim)
	}
	return lim
}
