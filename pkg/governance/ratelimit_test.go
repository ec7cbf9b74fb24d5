package governance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is an adjustable time source for window tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	limiter := NewRateLimiter(clock.Now)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("tenant-a", "netsuite.suiteql", 5), "call %d", i+1)
	}
	assert.False(t, limiter.Allow("tenant-a", "netsuite.suiteql", 5), "call over limit")
}

func TestRateLimiter_WindowRecovery(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	limiter := NewRateLimiter(clock.Now)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("tenant-a", "tool", 3))
	}
	assert.False(t, limiter.Allow("tenant-a", "tool", 3))

	// Just inside the window: still denied
	clock.Advance(59 * time.Second)
	assert.False(t, limiter.Allow("tenant-a", "tool", 3))

	// Past the window: the earliest timestamps expire
	clock.Advance(2 * time.Second)
	assert.True(t, limiter.Allow("tenant-a", "tool", 3))
}

func TestRateLimiter_DenialDoesNotExtendWindow(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	limiter := NewRateLimiter(clock.Now)

	assert.True(t, limiter.Allow("tenant-a", "tool", 1))
	// Repeated denied attempts must not push the recovery point out
	for i := 0; i < 10; i++ {
		clock.Advance(5 * time.Second)
		limiter.Allow("tenant-a", "tool", 1)
	}
	clock.Advance(11 * time.Second) // 61s after the single allowed call
	assert.True(t, limiter.Allow("tenant-a", "tool", 1))
}

func TestRateLimiter_IsolatesTenantsAndTools(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	limiter := NewRateLimiter(clock.Now)

	assert.True(t, limiter.Allow("tenant-a", "tool", 1))
	assert.False(t, limiter.Allow("tenant-a", "tool", 1))
	assert.True(t, limiter.Allow("tenant-b", "tool", 1), "other tenant has its own window")
	assert.True(t, limiter.Allow("tenant-a", "other_tool", 1), "other tool has its own window")
}

func TestRateLimiter_ZeroLimitUnbounded(t *testing.T) {
	limiter := NewRateLimiter(nil)
	for i := 0; i < 100; i++ {
		assert.True(t, limiter.Allow("tenant-a", "health", 0))
	}
}
