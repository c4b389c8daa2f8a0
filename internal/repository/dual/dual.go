// Package dual composes the remote backend and the local fallback
// store behind the plain repository contracts. Each operation attempts
// the remote first when one is configured; on a remote failure it is
// retried once against the local store so the user's action is never
// silently lost. On remote success the local store is refreshed as a
// best-effort mirror of the last known-good state, so a later outage
// still serves recent data. Consumers never branch on which backend is
// active except to render the status indicator fed by Health.
package dual

import (
	"sync"
)

// Health tracks which backend is effectively serving requests. It backs
// the status indicator shown to the user and nothing else.
type Health struct {
	mu               sync.RWMutex
	remoteConfigured bool
	usingFallback    bool
	lastErr          string
}

// NewHealth creates a Health tracker. remoteConfigured is false when
// the system runs in local-only mode from the start.
func NewHealth(remoteConfigured bool) *Health {
	return &Health{remoteConfigured: remoteConfigured}
}

// Mode reports "remote" or "local".
func (h *Health) Mode() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.remoteConfigured && !h.usingFallback {
		return "remote"
	}
	return "local"
}

// RemoteConfigured reports whether a remote backend was configured at
// startup at all.
func (h *Health) RemoteConfigured() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.remoteConfigured
}

// LastError returns the most recent remote failure message, empty when
// the remote path is healthy.
func (h *Health) LastError() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastErr
}

func (h *Health) reportFailure(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.usingFallback = true
	h.lastErr = err.Error()
}

func (h *Health) reportSuccess() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.usingFallback = false
	h.lastErr = ""
}
