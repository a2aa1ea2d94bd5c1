package observe

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func traceSpanValid(ctx context.Context) bool {
	return trace.SpanContextFromContext(ctx).IsValid()
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg: Config{
				ServiceName: "appcheck",
				Tracing:     TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.0},
				Metrics:     MetricsConfig{Enabled: true, Exporter: "stdout"},
				Logging:     LoggingConfig{Enabled: true, Level: "info"},
			},
		},
		{
			name:    "missing service name",
			cfg:     Config{},
			wantErr: ErrMissingServiceName,
		},
		{
			name: "unknown tracing exporter",
			cfg: Config{
				ServiceName: "appcheck",
				Tracing:     TracingConfig{Enabled: true, Exporter: "zipkin"},
			},
			wantErr: ErrInvalidTracingExporter,
		},
		{
			name: "sample pct out of range",
			cfg: Config{
				ServiceName: "appcheck",
				Tracing:     TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.5},
			},
			wantErr: ErrInvalidSamplePct,
		},
		{
			name: "unknown metrics exporter",
			cfg: Config{
				ServiceName: "appcheck",
				Metrics:     MetricsConfig{Enabled: true, Exporter: "statsd"},
			},
			wantErr: ErrInvalidMetricsExporter,
		},
		{
			name: "unknown log level",
			cfg: Config{
				ServiceName: "appcheck",
				Logging:     LoggingConfig{Enabled: true, Level: "trace"},
			},
			wantErr: ErrInvalidLogLevel,
		},
		{
			name: "disabled sections are not validated",
			cfg: Config{
				ServiceName: "appcheck",
				Tracing:     TracingConfig{Exporter: "zipkin"},
				Logging:     LoggingConfig{Level: "trace"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewObserver_Disabled(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{ServiceName: "appcheck"})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}

	if obs.Tracer() == nil || obs.Meter() == nil || obs.Logger() == nil {
		t.Fatal("observer returned nil primitives")
	}
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNewObserver_StdoutExporters(t *testing.T) {
	var buf bytes.Buffer
	obs, err := NewObserver(context.Background(), Config{
		ServiceName: "appcheck",
		Version:     "test",
		Tracing:     TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.0},
		Metrics:     MetricsConfig{Enabled: true, Exporter: "stdout"},
		Logging:     LoggingConfig{Enabled: true, Level: "debug"},
		Output:      &buf,
	})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}

	mw, err := MiddlewareFromObserver(obs)
	if err != nil {
		t.Fatalf("MiddlewareFromObserver() error = %v", err)
	}
	_, _ = mw.Wrap(func(ctx context.Context, meta CheckMeta) (bool, error) {
		return true, nil
	})(context.Background(), CheckMeta{Name: "checkStdout"})

	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("check.run.checkStdout")) {
		t.Errorf("expected span in exporter output, got: %s", buf.String())
	}
}

func TestNewObserver_InvalidConfig(t *testing.T) {
	if _, err := NewObserver(context.Background(), Config{}); !errors.Is(err, ErrMissingServiceName) {
		t.Errorf("err = %v, want ErrMissingServiceName", err)
	}
}

func TestNewObserver_RunSpanCarriesResource(t *testing.T) {
	var buf bytes.Buffer
	obs, err := NewObserver(context.Background(), Config{
		ServiceName: "appcheck",
		Version:     "1.2.3",
		Tracing:     TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.0},
		Output:      &buf,
	})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}

	mw, err := MiddlewareFromObserver(obs)
	if err != nil {
		t.Fatalf("MiddlewareFromObserver() error = %v", err)
	}
	_, end := mw.StartRun(context.Background(), 0)
	end(0, 0)

	if err := obs.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"check.run"`, "service.version", "1.2.3", "host.name", "process.pid"} {
		if !strings.Contains(out, want) {
			t.Errorf("exporter output missing %q:\n%s", want, out)
		}
	}
}
