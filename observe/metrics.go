package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records cache-decision metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordDecision records one decision with its outcome and duration.
	RecordDecision(ctx context.Context, meta GoalMeta, outcome string, duration time.Duration)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	decisions    metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates a Metrics instance recording through the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	decisions, err := meter.Int64Counter(
		"goal.cache.decisions",
		metric.WithDescription("Total number of cache-eligibility decisions"),
		metric.WithUnit("{decision}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"goal.cache.decide.duration_ms",
		metric.WithDescription("Cache decision duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		decisions:    decisions,
		durationHist: durationHist,
	}, nil
}

// RecordDecision records metrics for one decision.
func (m *metricsImpl) RecordDecision(ctx context.Context, meta GoalMeta, outcome string, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("goal.id", meta.GoalID()),
		attribute.String("decision.outcome", outcome),
	}
	opt := metric.WithAttributes(attrs...)

	m.decisions.Add(ctx, 1, opt)
	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000.0, opt)
}

// NewNoopMetrics creates a metrics implementation that records nothing.
func NewNoopMetrics() Metrics { return &noopMetrics{} }

type noopMetrics struct{}

func (m *noopMetrics) RecordDecision(ctx context.Context, meta GoalMeta, outcome string, duration time.Duration) {
}
