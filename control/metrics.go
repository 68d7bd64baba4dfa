// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for buffer-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/mirrorbuf/api"
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

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Publish copies one ring's counter snapshot into the registry under
// the given name prefix.
func (mr *MetricsRegistry) Publish(name string, s api.Stats) {
	mr.mu.Lock()
	mr.metrics[name+".bytes_written"] = s.BytesWritten
	mr.metrics[name+".bytes_read"] = s.BytesRead
	mr.metrics[name+".overflows"] = s.Overflows
	mr.metrics[name+".underflows"] = s.Underflows
	mr.metrics[name+".clears"] = s.Clears
	mr.updated = time.Now()
	mr.mu.Unlock()
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
