package mutelems

import (
	"errors"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting validation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordValidate is called after every index set validation.
	// k is the number of requested indices, n the buffer length,
	// strategy the duplicate check that ran, err is nil if the set was accepted.
	RecordValidate(k, n int, strategy Strategy, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordValidate(int, int, Strategy, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ValidateCount      atomic.Int64
	ValidateTotalNanos atomic.Int64
	IndicesTotal       atomic.Int64
	OutOfBoundsCount   atomic.Int64
	DuplicateCount     atomic.Int64
	strategyCounts     [numStrategies]atomic.Int64
}

// RecordValidate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordValidate(k, _ int, strategy Strategy, duration time.Duration, err error) {
	b.ValidateCount.Add(1)
	b.ValidateTotalNanos.Add(duration.Nanoseconds())
	b.IndicesTotal.Add(int64(k))
	if strategy < numStrategies {
		b.strategyCounts[strategy].Add(1)
	}
	switch {
	case err == nil:
	case errors.Is(err, ErrIndexOutOfBounds):
		b.OutOfBoundsCount.Add(1)
	case errors.Is(err, ErrDuplicateIndex):
		b.DuplicateCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		ValidateCount:    b.ValidateCount.Load(),
		ValidateAvgNanos: b.getAvgValidateNanos(),
		IndicesTotal:     b.IndicesTotal.Load(),
		OutOfBoundsCount: b.OutOfBoundsCount.Load(),
		DuplicateCount:   b.DuplicateCount.Load(),
		StrategyCounts:   make(map[Strategy]int64, numStrategies),
	}
	for i := range b.strategyCounts {
		if c := b.strategyCounts[i].Load(); c > 0 {
			s.StrategyCounts[Strategy(i)] = c
		}
	}
	return s
}

func (b *BasicMetricsCollector) getAvgValidateNanos() int64 {
	count := b.ValidateCount.Load()
	if count == 0 {
		return 0
	}
	return b.ValidateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ValidateCount    int64
	ValidateAvgNanos int64
	IndicesTotal     int64
	OutOfBoundsCount int64
	DuplicateCount   int64
	// StrategyCounts holds the number of validations per duplicate check.
	// Bounds failures are counted under the strategy that would have run.
	StrategyCounts map[Strategy]int64
}
