package carwash

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
//	    stepCounter  prometheus.Counter
//	    runHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordStep(step string, dropped int, duration time.Duration) {
//	    p.stepCounter.Inc()
//	    // ... record dropped rows, duration, etc.
//	}
type MetricsCollector interface {
	// RecordStep is called after each cleaning step.
	// dropped is the number of rows the step removed.
	RecordStep(step string, dropped int, duration time.Duration)

	// RecordRun is called after each full pipeline run.
	// rowsIn/rowsOut are the table sizes before and after, err is nil
	// if successful.
	RecordRun(rowsIn, rowsOut int, duration time.Duration, err error)

	// RecordMatch is called after the model matching step with the
	// memoization cache counters.
	RecordMatch(cacheHits, cacheMisses int64)

	// RecordRead is called after each table read through a store.
	RecordRead(rows int, duration time.Duration, err error)

	// RecordWrite is called after each table write through a store.
	RecordWrite(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(string, int, time.Duration)    {}
func (NoopMetricsCollector) RecordRun(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordMatch(int64, int64)                 {}
func (NoopMetricsCollector) RecordRead(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordWrite(int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StepCount      atomic.Int64
	StepTotalNanos atomic.Int64
	RowsDropped    atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunTotalNanos  atomic.Int64
	CacheHits      atomic.Int64
	CacheMisses    atomic.Int64
	ReadCount      atomic.Int64
	ReadErrors     atomic.Int64
	WriteCount     atomic.Int64
	WriteErrors    atomic.Int64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(step string, dropped int, duration time.Duration) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	b.RowsDropped.Add(int64(dropped))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(rowsIn, rowsOut int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatch(cacheHits, cacheMisses int64) {
	b.CacheHits.Store(cacheHits)
	b.CacheMisses.Store(cacheMisses)
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(rows int, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(rows int, duration time.Duration, err error) {
	b.WriteCount.Add(1)
	if err != nil {
		b.WriteErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StepCount:    b.StepCount.Load(),
		StepAvgNanos: b.getAvgStepNanos(),
		RowsDropped:  b.RowsDropped.Load(),
		RunCount:     b.RunCount.Load(),
		RunErrors:    b.RunErrors.Load(),
		CacheHits:    b.CacheHits.Load(),
		CacheMisses:  b.CacheMisses.Load(),
		ReadCount:    b.ReadCount.Load(),
		ReadErrors:   b.ReadErrors.Load(),
		WriteCount:   b.WriteCount.Load(),
		WriteErrors:  b.WriteErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgStepNanos() int64 {
	count := b.StepCount.Load()
	if count == 0 {
		return 0
	}
	return b.StepTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	StepCount    int64
	StepAvgNanos int64
	RowsDropped  int64
	RunCount     int64
	RunErrors    int64
	CacheHits    int64
	CacheMisses  int64
	ReadCount    int64
	ReadErrors   int64
	WriteCount   int64
	WriteErrors  int64
}
