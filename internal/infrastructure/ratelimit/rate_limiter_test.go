package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginBucketExhausts(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 10; i++ {
		allowed, _ := rl.Allow("10.0.0.1", "login")
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}

	allowed, wait := rl.Allow("10.0.0.1", "login")
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestBucketsArePerClient(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 10; i++ {
		rl.Allow("10.0.0.1", "login")
	}
	allowed, _ := rl.Allow("10.0.0.1", "login")
	assert.False(t, allowed)

	allowed, _ = rl.Allow("10.0.0.2", "login")
	assert.True(t, allowed)
}

func TestBucketRefill(t *testing.T) {
	tb := NewTokenBucket(2, 2, 10*time.Millisecond)

	allowed, _ := tb.Allow()
	assert.True(t, allowed)
	allowed, _ = tb.Allow()
	assert.True(t, allowed)
	allowed, _ = tb.Allow()
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)

	allowed, _ = tb.Allow()
	assert.True(t, allowed)
}

func TestCleanupDropsStaleBuckets(t *testing.T) {
	rl := NewRateLimiter()
	rl.Allow("10.0.0.1", "login")

	rl.mutex.Lock()
	for _, bucket := range rl.buckets {
		bucket.lastRefill = time.Now().Add(-2 * time.Hour)
	}
	rl.mutex.Unlock()

	rl.Cleanup()

	rl.mutex.RLock()
	defer rl.mutex.RUnlock()
	assert.Empty(t, rl.buckets)
}
