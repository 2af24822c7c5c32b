// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for the executor's run loop: a handful of
// point-in-time gauges (run-queue depth, registration count) and a
// handful of monotonic counters (poll cycles, tasks spawned/settled)
// that accumulate across the run loop's lifetime.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set records a point-in-time gauge, replacing whatever was there before.
// Use Increment instead for a value that only ever accumulates.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Increment adds delta to the named counter and returns its new value.
// A key with no prior value, or a prior value that isn't an int64, starts
// fresh at delta: the run loop's poll-cycle and task counters are always
// int64, so a type mismatch here only happens if a caller reused a gauge
// key by mistake, and silently resetting beats panicking on a metrics path.
func (mr *MetricsRegistry) Increment(key string, delta int64) int64 {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	next := delta
	if cur, ok := mr.metrics[key].(int64); ok {
		next = cur + delta
	}
	mr.metrics[key] = next
	mr.updated = time.Now()
	return next
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// LastUpdated reports when a metric was last Set or Incremented, the
// zero Time if neither has ever been called.
func (mr *MetricsRegistry) LastUpdated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
