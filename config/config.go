package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/appcheck/observe"
)

// DefaultConfigFilename is read when Load is given an empty path.
const DefaultConfigFilename = "appcheck.yaml"

// Config holds everything the appcheck command needs for one run.
type Config struct {
	Silent  bool          `yaml:"silent" toml:"silent"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Tracing TracingConfig `yaml:"tracing" toml:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
	Checks  []CheckConfig `yaml:"checks" toml:"checks"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"` // debug|info|warn|error
}

// TracingConfig configures span export.
type TracingConfig struct {
	Enabled   bool    `yaml:"enabled" toml:"enabled"`
	Exporter  string  `yaml:"exporter" toml:"exporter"`     // otlp|jaeger|stdout|none
	SamplePct float64 `yaml:"sample_pct" toml:"sample_pct"` // 0.0-1.0
}

// MetricsConfig configures metric export. The prometheus exporter has no
// scrape endpoint: it prints the collected metrics in the Prometheus text
// format to stderr when the run ends.
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled" toml:"enabled"`
	Exporter string `yaml:"exporter" toml:"exporter"` // otlp|prometheus|stdout|none
}

// Check types.
const (
	TypeTCP    = "tcp"
	TypeHTTP   = "http"
	TypeMemory = "memory"
	TypeS3     = "s3"
)

// CheckConfig describes one check. Which fields apply depends on Type.
type CheckConfig struct {
	Name string `yaml:"name" toml:"name"` // display name; derived from the target when empty
	Type string `yaml:"type" toml:"type"`

	// Timeout is a Go duration string such as "2s". Empty means the probe default.
	Timeout string `yaml:"timeout" toml:"timeout"`

	Address string `yaml:"address" toml:"address"` // tcp

	URL            string `yaml:"url" toml:"url"`                         // http
	ExpectedStatus int    `yaml:"expected_status" toml:"expected_status"` // http

	Threshold float64 `yaml:"threshold" toml:"threshold"` // memory

	Bucket      string `yaml:"bucket" toml:"bucket"`               // s3
	Region      string `yaml:"region" toml:"region"`               // s3
	Endpoint    string `yaml:"endpoint" toml:"endpoint"`           // s3
	AccessKeyID string `yaml:"access_key_id" toml:"access_key_id"` // s3
	SecretKey   string `yaml:"secret_key" toml:"secret_key"`       // s3
}

// Default returns the configuration used when no file is present: a single
// memory check, error-level logging and no telemetry export.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "error"},
		Tracing: TracingConfig{Exporter: "stdout", SamplePct: 1.0},
		Metrics: MetricsConfig{Exporter: "stdout"},
		Checks: []CheckConfig{
			{Type: TypeMemory},
		},
	}
}

// Load reads, expands and decodes the file at path, then validates it.
//
// An empty path reads DefaultConfigFilename and falls back to Default when
// that file does not exist. An explicit path that does not exist is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Format selects the decoder used by Parse.
type Format int

const (
	YAML Format = iota
	TOML
)

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOML
	}
	return YAML
}

// Parse decodes data in the given format on top of Default and validates the result.
// Only the checks listed in data are run; the default memory check applies
// when no file exists at all.
func Parse(data []byte, format Format) (Config, error) {
	expanded, err := ExpandEnv(string(data))
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.Checks = nil

	switch format {
	case TOML:
		md, err := toml.Decode(expanded, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: %s", ErrUnknownField, undecoded[0].String())
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			if strings.Contains(err.Error(), "not found in type") {
				return Config{}, fmt.Errorf("%w: %v", ErrUnknownField, err)
			}
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	obs := c.Observe("appcheck", "")
	if err := obs.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	for i, check := range c.Checks {
		if err := check.Validate(); err != nil {
			return fmt.Errorf("checks[%d]: %w", i, err)
		}
	}
	return nil
}

// Observe converts the telemetry settings into an observe.Config.
func (c *Config) Observe(serviceName, version string) observe.Config {
	return observe.Config{
		ServiceName: serviceName,
		Version:     version,
		Tracing: observe.TracingConfig{
			Enabled:   c.Tracing.Enabled,
			Exporter:  c.Tracing.Exporter,
			SamplePct: c.Tracing.SamplePct,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  c.Metrics.Enabled,
			Exporter: c.Metrics.Exporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   c.Logging.Level,
		},
	}
}

// Validate checks the fields required by the check's type.
func (c CheckConfig) Validate() error {
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	switch c.Type {
	case TypeTCP:
		if c.Address == "" {
			return fmt.Errorf("%w: address (type %s)", ErrMissingField, c.Type)
		}
	case TypeHTTP:
		if c.URL == "" {
			return fmt.Errorf("%w: url (type %s)", ErrMissingField, c.Type)
		}
		if c.ExpectedStatus != 0 && (c.ExpectedStatus < 100 || c.ExpectedStatus > 599) {
			return fmt.Errorf("%w: %d", ErrInvalidStatus, c.ExpectedStatus)
		}
	case TypeMemory:
		if c.Threshold < 0 || c.Threshold > 1 {
			return fmt.Errorf("%w: %g", ErrInvalidThreshold, c.Threshold)
		}
	case TypeS3:
		if c.Bucket == "" {
			return fmt.Errorf("%w: bucket (type %s)", ErrMissingField, c.Type)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCheckType, c.Type)
	}
	return nil
}

// TimeoutDuration parses Timeout. It returns zero when Timeout is empty.
func (c CheckConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Timeout)
	}
	return d, nil
}
