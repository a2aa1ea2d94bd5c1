package observe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/jonwraymond/appcheck/observe/exporters"
)

// ScopeName is the instrumentation scope of every span and instrument.
const ScopeName = "github.com/jonwraymond/appcheck/health"

// Config describes the telemetry of one check process.
type Config struct {
	ServiceName string
	Version     string
	Tracing     TracingConfig
	Metrics     MetricsConfig
	Logging     LoggingConfig

	// Output receives stdout exporter data, the Prometheus text dump and log
	// lines. Default: os.Stderr, so telemetry never mixes with the report.
	Output io.Writer
}

// TracingConfig configures span export.
type TracingConfig struct {
	Enabled   bool
	Exporter  string  // otlp|jaeger|stdout|none
	SamplePct float64 // fraction of runs traced, 0.0-1.0
}

// MetricsConfig configures metric export.
type MetricsConfig struct {
	Enabled  bool
	Exporter string // otlp|prometheus|stdout|none
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Enabled bool
	Level   string // debug|info|warn|error
}

var (
	tracingExporters = []string{"otlp", "jaeger", "stdout", "none"}
	metricsExporters = []string{"otlp", "prometheus", "stdout", "none"}
	logLevels        = []string{"debug", "info", "warn", "error"}
)

// oneOf accepts v when it is empty or listed.
func oneOf(v string, allowed []string) bool {
	return v == "" || slices.Contains(allowed, v)
}

// Validate reports the first invalid setting. Settings of disabled
// subsystems are not checked.
func (c *Config) Validate() error {
	switch {
	case c.ServiceName == "":
		return ErrMissingServiceName
	case c.Tracing.Enabled && !oneOf(c.Tracing.Exporter, tracingExporters):
		return fmt.Errorf("%w: %q", ErrInvalidTracingExporter, c.Tracing.Exporter)
	case c.Tracing.Enabled && (c.Tracing.SamplePct < 0 || c.Tracing.SamplePct > 1):
		return fmt.Errorf("%w, got: %f", ErrInvalidSamplePct, c.Tracing.SamplePct)
	case c.Metrics.Enabled && !oneOf(c.Metrics.Exporter, metricsExporters):
		return fmt.Errorf("%w: %q", ErrInvalidMetricsExporter, c.Metrics.Exporter)
	case c.Logging.Enabled && !oneOf(c.Logging.Level, logLevels):
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return nil
}

// Observer hands out the telemetry primitives of a check process.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Shutdown must honor cancellation/deadlines.
// - Errors: Shutdown is idempotent; later calls return the first result.
type Observer interface {
	Tracer() trace.Tracer
	Meter() metric.Meter
	Logger() Logger

	// Shutdown flushes pending spans and metrics, then stops the providers.
	Shutdown(ctx context.Context) error
}

type observer struct {
	tracer trace.Tracer
	meter  metric.Meter
	logger Logger

	// stops run in order on Shutdown.
	stops []namedStop

	once        sync.Once
	shutdownErr error
}

type namedStop struct {
	name string
	stop func(context.Context) error
}

// NewObserver builds the providers enabled in cfg and installs them as the
// global OpenTelemetry providers. Disabled subsystems get no-op primitives.
func NewObserver(ctx context.Context, cfg Config) (Observer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	obs := &observer{
		tracer: tracenoop.NewTracerProvider().Tracer(ScopeName),
		meter:  noop.NewMeterProvider().Meter(ScopeName),
		logger: NopLogger(),
	}
	if cfg.Logging.Enabled {
		obs.logger = NewLoggerWithWriter(cfg.Logging.Level, cfg.Output)
	}
	if !cfg.Tracing.Enabled && !cfg.Metrics.Enabled {
		return obs, nil
	}

	res, err := checkResource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if cfg.Tracing.Enabled {
		tp, err := newTracerProvider(ctx, cfg, res)
		if err != nil {
			return nil, fmt.Errorf("failed to setup tracing: %w", err)
		}
		otel.SetTracerProvider(tp)
		obs.tracer = tp.Tracer(ScopeName)
		obs.stops = append(obs.stops, namedStop{"tracer", tp.Shutdown})
	}

	if cfg.Metrics.Enabled {
		mp, err := newMeterProvider(ctx, cfg, res)
		if err != nil {
			_ = obs.Shutdown(ctx)
			return nil, fmt.Errorf("failed to setup metrics: %w", err)
		}
		otel.SetMeterProvider(mp)
		obs.meter = mp.Meter(ScopeName)
		obs.stops = append(obs.stops, namedStop{"meter", mp.Shutdown})
	}

	return obs, nil
}

// checkResource identifies the process whose checks are being observed:
// the service, its version and the host and process running the checks.
func checkResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
		),
		resource.WithHost(),
		resource.WithProcessPID(),
		resource.WithTelemetrySDK(),
	)
}

// newTracerProvider samples whole runs: the run span decides and every check
// span follows its parent.
func newTracerProvider(ctx context.Context, cfg Config, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := exporters.NewTracingExporter(ctx, cfg.Tracing.Exporter, cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Tracing.SamplePct))),
		// A check process exits right after one run; a batcher could drop spans.
		sdktrace.WithSyncer(exporter),
	), nil
}

func newMeterProvider(ctx context.Context, cfg Config, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	reader, err := exporters.NewMetricsReader(ctx, cfg.Metrics.Exporter, cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics reader: %w", err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	), nil
}

func (o *observer) Tracer() trace.Tracer { return o.tracer }
func (o *observer) Meter() metric.Meter  { return o.meter }
func (o *observer) Logger() Logger       { return o.logger }

func (o *observer) Shutdown(ctx context.Context) error {
	o.once.Do(func() {
		var errs []error
		for _, s := range o.stops {
			if err := s.stop(ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s shutdown: %w", s.name, err))
			}
		}
		o.shutdownErr = errors.Join(errs...)
	})
	return o.shutdownErr
}
