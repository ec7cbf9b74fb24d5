// Package governance enforces per-tool rate limits, parameter validation,
// auditing, and output redaction around every local tool call.
package governance

import (
	"sync"
	"time"
)

// Window is the sliding rate-limit window.
const Window = 60 * time.Second

// Clock is an injectable monotonic time source.
type Clock func() time.Time

// RateLimiter tracks call timestamps per (tenant, tool) over a sliding
// window. State is process-wide; expired timestamps are compacted lazily
// on each check.
type RateLimiter struct {
	clock Clock

	mu      sync.Mutex
	windows map[rateKey]*rateWindow
}

type rateKey struct {
	tenantID string
	tool     string
}

type rateWindow struct {
	mu    sync.Mutex
	calls []time.Time
}

// NewRateLimiter creates a limiter. A nil clock uses the wall clock.
func NewRateLimiter(clock Clock) *RateLimiter {
	if clock == nil {
		clock = time.Now
	}
	return &RateLimiter{
		clock:   clock,
		windows: make(map[rateKey]*rateWindow),
	}
}

// Allow records a call attempt and reports whether it fits within limit
// calls per window. Denied attempts are not recorded, so a denial does not
// extend the window.
func (r *RateLimiter) Allow(tenantID, tool string, limit int) bool {
	if limit <= 0 {
		return true
	}

	key := rateKey{tenantID: tenantID, tool: tool}
	r.mu.Lock()
	w, ok := r.windows[key]
	if !ok {
		w = &rateWindow{}
		r.windows[key] = w
	}
	r.mu.Unlock()

	now := r.clock()
	cutoff := now.Add(-Window)

	w.mu.Lock()
	defer w.mu.Unlock()

	// Lazy compaction: drop timestamps outside the window.
	kept := w.calls[:0]
	for _, t := range w.calls {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.calls = kept

	if len(w.calls) >= limit {
		return false
	}
	w.calls = append(w.calls, now)
	return true
}
