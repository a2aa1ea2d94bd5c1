package observe

import (
	"context"
	"time"
)

// ExecuteFunc is the signature of a check invocation that Middleware wraps.
type ExecuteFunc func(ctx context.Context, meta CheckMeta) (bool, error)

// Middleware wraps check invocations with tracing, metrics and logging.
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe ExecuteFunc.
//   - Context: Propagates the span context into the check.
//   - Errors: Outcomes of the wrapped function are recorded and returned unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware. Nil components are replaced with no-ops.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = NoopTracer()
	}
	if metrics == nil {
		metrics = NoopMetrics()
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps an ExecuteFunc with tracing, metrics and logging.
func (m *Middleware) Wrap(fn ExecuteFunc) ExecuteFunc {
	return func(ctx context.Context, meta CheckMeta) (bool, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		ok, err := fn(ctx, meta)
		duration := time.Since(start)
		healthy := ok && err == nil

		m.tracer.EndSpan(span, healthy, err)
		m.metrics.RecordCheck(ctx, meta, duration, healthy)

		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Microseconds()) / 1000},
			{Key: "success", Value: healthy},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
		}
		// The runner logs failures at error level; this is the trace line.
		m.logger.WithCheck(meta).Debug(ctx, "check completed", fields...)

		return ok, err
	}
}

// WithLogger returns a copy of m that logs to l. Tracing and metrics are
// shared with m.
func (m *Middleware) WithLogger(l Logger) *Middleware {
	if l == nil {
		l = NopLogger()
	}
	return &Middleware{tracer: m.tracer, metrics: m.metrics, logger: l}
}

// StartRun opens the run span that parents the spans of every check in the
// run. The returned function closes it with the run's counts.
func (m *Middleware) StartRun(ctx context.Context, total int) (context.Context, func(successes, failures int)) {
	ctx, span := m.tracer.StartRun(ctx, total)
	start := time.Now()

	return ctx, func(successes, failures int) {
		m.tracer.EndRun(span, successes, failures)
		m.logger.Debug(ctx, "run completed",
			Field{Key: "checks.total", Value: total},
			Field{Key: "checks.failures", Value: failures},
			Field{Key: "duration_ms", Value: float64(time.Since(start).Microseconds()) / 1000},
		)
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
