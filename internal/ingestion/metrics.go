package ingestion

import (
	"sync"
	"time"
)

// IngestMetrics tracks ping intake performance.
type IngestMetrics struct {
	PingsReceived   int64
	PingsProcessed  int64
	PingsFailed     int64
	LastProcessedAt time.Time
	BufferSize      int
}

// MetricsTracker is a goroutine-safe wrapper around IngestMetrics.
type MetricsTracker struct {
	mu      sync.RWMutex
	metrics IngestMetrics
}

func NewMetricsTracker() *MetricsTracker {
	return &MetricsTracker{}
}

// Update applies a mutation under the lock.
func (t *MetricsTracker) Update(fn func(*IngestMetrics)) {
	if fn == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.metrics)
}

// Snapshot returns a copy of the current metrics.
func (t *MetricsTracker) Snapshot() IngestMetrics {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.metrics
}
