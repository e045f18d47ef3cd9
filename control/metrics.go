// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for transport-level monitoring.
// Counters are registered dynamically and read as an atomic snapshot.

package control

import (
	"sync"
	"time"
)

// Counter names emitted by the plaintext transport.
const (
	MetricBytesSent     = "transport.bytes_sent"
	MetricBytesReceived = "transport.bytes_received"
	MetricPollTimeouts  = "transport.poll_timeouts"
	MetricPeerCloses    = "transport.peer_closes"
	MetricHardErrors    = "transport.hard_errors"
	MetricConnects      = "transport.connects"
	MetricDisconnects   = "transport.disconnects"
)

// MetricsRegistry holds monotonically increasing counters.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]uint64
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]uint64),
	}
}

// Add increments a counter by delta.
func (mr *MetricsRegistry) Add(key string, delta uint64) {
	mr.mu.Lock()
	mr.counters[key] += delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Inc increments a counter by one.
func (mr *MetricsRegistry) Inc(key string) {
	mr.Add(key, 1)
}

// Get returns the current value of one counter.
func (mr *MetricsRegistry) Get(key string) uint64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.counters[key]
}

// GetSnapshot returns a copy of all counters.
func (mr *MetricsRegistry) GetSnapshot() map[string]uint64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]uint64, len(mr.counters))
	for k, v := range mr.counters {
		out[k] = v
	}
	return out
}

// Updated reports when a counter last changed.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
