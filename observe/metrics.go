package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records check execution metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCheck records one check invocation with its duration and outcome.
	RecordCheck(ctx context.Context, meta CheckMeta, duration time.Duration, ok bool)
}

type metricsImpl struct {
	totalCount   metric.Int64Counter
	failureCount metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates Metrics backed by the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"check.run.total",
		metric.WithDescription("Total number of check invocations"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, err
	}

	failureCount, err := meter.Int64Counter(
		"check.run.failures",
		metric.WithDescription("Total number of failed check invocations"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"check.run.duration_ms",
		metric.WithDescription("Check duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:   totalCount,
		failureCount: failureCount,
		durationHist: durationHist,
	}, nil
}

func (m *metricsImpl) RecordCheck(ctx context.Context, meta CheckMeta, duration time.Duration, ok bool) {
	opt := metric.WithAttributes(attribute.String("check.name", meta.Name))

	m.totalCount.Add(ctx, 1, opt)
	if !ok {
		m.failureCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000, opt)
}

type noopMetrics struct{}

// NoopMetrics returns a Metrics that records nothing.
func NoopMetrics() Metrics {
	return noopMetrics{}
}

func (noopMetrics) RecordCheck(context.Context, CheckMeta, time.Duration, bool) {}
