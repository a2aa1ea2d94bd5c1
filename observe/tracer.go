package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// CheckMeta describes a check invocation for telemetry purposes.
type CheckMeta struct {
	Name  string // display name of the check (required)
	Index int    // 1-based position in the run, 0 if unknown
}

// RunSpanName is the name of the span that parents every check span of a run.
const RunSpanName = "check.run"

// SpanName returns the deterministic span name for this check.
// Format: check.run.<name>
func (m CheckMeta) SpanName() string {
	return "check.run." + m.Name
}

// Tracer wraps OpenTelemetry tracing with check-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a check invocation.
	StartSpan(ctx context.Context, meta CheckMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording the outcome.
	EndSpan(span trace.Span, ok bool, err error)

	// StartRun starts the span covering a run of total checks.
	StartRun(ctx context.Context, total int) (context.Context, trace.Span)

	// EndRun ends the run span with the run's counts.
	EndRun(span trace.Span, successes, failures int)
}

type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartSpan(ctx context.Context, meta CheckMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("check.name", meta.Name),
		attribute.Bool("check.success", false),
	}
	if meta.Index > 0 {
		attrs = append(attrs, attribute.Int("check.index", meta.Index))
	}

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracerImpl) EndSpan(span trace.Span, ok bool, err error) {
	switch {
	case err != nil:
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	case !ok:
		span.SetStatus(codes.Error, "check reported unhealthy")
	default:
		span.SetStatus(codes.Ok, "")
		span.SetAttributes(attribute.Bool("check.success", true))
	}
	span.End()
}

func (t *tracerImpl) StartRun(ctx context.Context, total int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, RunSpanName,
		trace.WithAttributes(attribute.Int("checks.total", total)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracerImpl) EndRun(span trace.Span, successes, failures int) {
	span.SetAttributes(
		attribute.Int("checks.successes", successes),
		attribute.Int("checks.failures", failures),
	)
	if failures > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d of %d checks failed", failures, successes+failures))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

type noopTracer struct {
	noop trace.Tracer
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() Tracer {
	return &noopTracer{noop: tracenoop.NewTracerProvider().Tracer("noop")}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta CheckMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, _ bool, _ error) {
	span.End()
}

func (t *noopTracer) StartRun(ctx context.Context, _ int) (context.Context, trace.Span) {
	return t.noop.Start(ctx, RunSpanName)
}

func (t *noopTracer) EndRun(span trace.Span, _, _ int) {
	span.End()
}
