package scanio

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    recordCounter prometheus.Counter
//	    readHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRead(records int, bytes int64, duration time.Duration, err error) {
//	    p.recordCounter.Add(float64(records))
//	    p.readHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordRead is called after each file scan.
	// records is the number of complete records visited, bytes the mapped
	// file size, err is nil if successful.
	RecordRead(records int, bytes int64, duration time.Duration, err error)

	// RecordOpen is called after opening a column file.
	// kind is "fixed" or "strings".
	RecordOpen(kind string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRead(int, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordOpen(string, time.Duration, error)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ReadCount      atomic.Int64
	ReadErrors     atomic.Int64
	ReadRecords    atomic.Int64
	ReadBytes      atomic.Int64
	ReadTotalNanos atomic.Int64
	OpenCount      atomic.Int64
	OpenErrors     atomic.Int64
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(records int, bytes int64, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
		return
	}
	b.ReadRecords.Add(int64(records))
	b.ReadBytes.Add(bytes)
}

// RecordOpen implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOpen(kind string, duration time.Duration, err error) {
	b.OpenCount.Add(1)
	if err != nil {
		b.OpenErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReadCount:    b.ReadCount.Load(),
		ReadErrors:   b.ReadErrors.Load(),
		ReadRecords:  b.ReadRecords.Load(),
		ReadBytes:    b.ReadBytes.Load(),
		ReadAvgNanos: b.getAvgReadNanos(),
		OpenCount:    b.OpenCount.Load(),
		OpenErrors:   b.OpenErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgReadNanos() int64 {
	count := b.ReadCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ReadCount    int64
	ReadErrors   int64
	ReadRecords  int64
	ReadBytes    int64
	ReadAvgNanos int64
	OpenCount    int64
	OpenErrors   int64
}
