package rank

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting ranking metrics.
// Implement it to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordQuery is called after each batch scoring run. scored is the
	// number of postings evaluated, duration is the total time taken, err is
	// nil if successful.
	RecordQuery(scored int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordQuery(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection, useful
// for debugging without external dependencies.
type BasicMetricsCollector struct {
	QueryCount      atomic.Int64
	QueryErrors     atomic.Int64
	DocsScored      atomic.Int64
	QueryTotalNanos atomic.Int64
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(scored int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.DocsScored.Add(int64(scored))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// AvgQueryNanos returns the mean query duration in nanoseconds, or 0 before
// the first query.
func (b *BasicMetricsCollector) AvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}
