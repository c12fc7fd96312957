package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowBurst(t *testing.T) {
	l := New(0.001, 3, 10)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(1), "call %d", i)
	}
	assert.False(t, l.Allow(1))

	// Other users have their own bucket.
	assert.True(t, l.Allow(2))
}

func TestDisabled(t *testing.T) {
	l := New(0, 1, 10)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow(1))
	}

	var nilLimiter *Limiter
	assert.True(t, nilLimiter.Allow(1))
}

func TestEvictionResetsBucket(t *testing.T) {
	l := New(0.001, 1, 1)

	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1))

	// User 2 pushes user 1 out of the cache.
	assert.True(t, l.Allow(2))
	assert.True(t, l.Allow(1))
}
