package exporters

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// prometheusReader is the OpenTelemetry Prometheus exporter bound to its own
// registry. A check process has no scrape endpoint, so the registry is
// written out once, on Shutdown.
type prometheusReader struct {
	sdkmetric.Reader
	registry *prometheus.Registry
	out      io.Writer
}

func newPrometheusReader(out io.Writer) (sdkmetric.Reader, error) {
	registry := prometheus.NewRegistry()
	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}
	return &prometheusReader{Reader: exp, registry: registry, out: out}, nil
}

// Shutdown writes the collected metrics before stopping the exporter, which
// reports nothing once stopped.
func (r *prometheusReader) Shutdown(ctx context.Context) error {
	return errors.Join(r.dump(), r.Reader.Shutdown(ctx))
}

func (r *prometheusReader) dump() error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather prometheus metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(r.out, mf); err != nil {
			return fmt.Errorf("write prometheus metrics: %w", err)
		}
	}
	return nil
}
