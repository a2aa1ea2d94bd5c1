package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonwraymond/appcheck/observe"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

const yamlConfig = `
silent: true
logging:
  level: debug
tracing:
  enabled: true
  exporter: stdout
  sample_pct: 0.5
checks:
  - type: tcp
    address: localhost:5432
    timeout: 2s
  - name: api
    type: http
    url: http://localhost:8080/healthz
    expected_status: 204
  - type: memory
    threshold: 0.8
  - type: s3
    bucket: backups
    region: auto
    endpoint: ${APPCHECK_S3_ENDPOINT}
    access_key_id: key
    secret_key: ${APPCHECK_S3_SECRET}
`

const tomlConfig = `
silent = true

[logging]
level = "debug"

[tracing]
enabled = true
exporter = "stdout"
sample_pct = 0.5

[[checks]]
type = "tcp"
address = "localhost:5432"
timeout = "2s"

[[checks]]
name = "api"
type = "http"
url = "http://localhost:8080/healthz"
expected_status = 204

[[checks]]
type = "memory"
threshold = 0.8

[[checks]]
type = "s3"
bucket = "backups"
region = "auto"
endpoint = "${APPCHECK_S3_ENDPOINT}"
access_key_id = "key"
secret_key = "${APPCHECK_S3_SECRET}"
`

func TestLoad_Formats(t *testing.T) {
	t.Setenv("APPCHECK_S3_ENDPOINT", "https://s3.example.com")
	t.Setenv("APPCHECK_S3_SECRET", "s3cr$t")

	tests := []struct {
		file    string
		content string
	}{
		{"appcheck.yaml", yamlConfig},
		{"appcheck.yml", yamlConfig},
		{"appcheck.toml", tomlConfig},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if !cfg.Silent {
				t.Error("Silent = false, want true")
			}
			if cfg.Logging.Level != "debug" {
				t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
			}
			if !cfg.Tracing.Enabled || cfg.Tracing.SamplePct != 0.5 {
				t.Errorf("Tracing = %+v", cfg.Tracing)
			}
			if cfg.Metrics.Exporter != "stdout" {
				t.Errorf("Metrics.Exporter = %q, want default stdout", cfg.Metrics.Exporter)
			}
			if len(cfg.Checks) != 4 {
				t.Fatalf("len(Checks) = %d, want 4", len(cfg.Checks))
			}

			tcp := cfg.Checks[0]
			if d, _ := tcp.TimeoutDuration(); tcp.Address != "localhost:5432" || d != 2*time.Second {
				t.Errorf("tcp check = %+v", tcp)
			}
			if api := cfg.Checks[1]; api.Name != "api" || api.ExpectedStatus != 204 {
				t.Errorf("http check = %+v", api)
			}
			if mem := cfg.Checks[2]; mem.Threshold != 0.8 {
				t.Errorf("memory check = %+v", mem)
			}
			s3 := cfg.Checks[3]
			if s3.Endpoint != "https://s3.example.com" || s3.SecretKey != "s3cr$t" {
				t.Errorf("s3 check = %+v", s3)
			}
		})
	}
}

func TestLoad_MissingEnv(t *testing.T) {
	path := writeFile(t, "appcheck.yaml", yamlConfig)
	if _, err := Load(path); !errors.Is(err, ErrMissingEnv) {
		t.Errorf("Load() err = %v, want ErrMissingEnv", err)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := Load(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() err = %v, want os.ErrNotExist", err)
	}
}

func TestLoad_DefaultPathFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Checks) != 1 || cfg.Checks[0].Type != TypeMemory {
		t.Errorf("Checks = %+v, want default memory check", cfg.Checks)
	}
}

func TestLoad_DefaultPathRead(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(DefaultConfigFilename, []byte("checks:\n  - type: tcp\n    address: db:5432\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Checks) != 1 || cfg.Checks[0].Address != "db:5432" {
		t.Errorf("Checks = %+v", cfg.Checks)
	}
}

func TestParse_UnknownField(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml top level", "verbose: true\n", YAML},
		{"yaml check", "checks:\n  - type: memory\n    limit: 3\n", YAML},
		{"toml top level", "verbose = true\n", TOML},
		{"toml check", "[[checks]]\ntype = \"memory\"\nlimit = 3\n", TOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), tt.format); !errors.Is(err, ErrUnknownField) {
				t.Errorf("Parse() err = %v, want ErrUnknownField", err)
			}
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil, YAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.Checks) != 0 {
		t.Errorf("Checks = %+v, want none", cfg.Checks)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want default error", cfg.Logging.Level)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("checks: [\n"), YAML); err == nil {
		t.Error("Parse(yaml) err = nil, want an error")
	}
	if _, err := Parse([]byte("checks = [\n"), TOML); err == nil {
		t.Error("Parse(toml) err = nil, want an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "default",
			cfg:  Default(),
		},
		{
			name:    "bad log level",
			cfg:     Config{Logging: LoggingConfig{Level: "trace"}},
			wantErr: observe.ErrInvalidLogLevel,
		},
		{
			name:    "bad tracing exporter",
			cfg:     Config{Tracing: TracingConfig{Enabled: true, Exporter: "zipkin"}},
			wantErr: observe.ErrInvalidTracingExporter,
		},
		{
			name:    "bad metrics exporter",
			cfg:     Config{Metrics: MetricsConfig{Enabled: true, Exporter: "statsd"}},
			wantErr: observe.ErrInvalidMetricsExporter,
		},
		{
			name:    "unknown type",
			cfg:     Config{Checks: []CheckConfig{{Type: "ping"}}},
			wantErr: ErrUnknownCheckType,
		},
		{
			name:    "tcp without address",
			cfg:     Config{Checks: []CheckConfig{{Type: TypeTCP}}},
			wantErr: ErrMissingField,
		},
		{
			name:    "http without url",
			cfg:     Config{Checks: []CheckConfig{{Type: TypeHTTP}}},
			wantErr: ErrMissingField,
		},
		{
			name:    "http bad status",
			cfg:     Config{Checks: []CheckConfig{{Type: TypeHTTP, URL: "http://x", ExpectedStatus: 700}}},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "memory bad threshold",
			cfg:     Config{Checks: []CheckConfig{{Type: TypeMemory, Threshold: 2}}},
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "s3 without bucket",
			cfg:     Config{Checks: []CheckConfig{{Type: TypeS3}}},
			wantErr: ErrMissingField,
		},
		{
			name:    "unparsable timeout",
			cfg:     Config{Checks: []CheckConfig{{Type: TypeMemory, Timeout: "soon"}}},
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative timeout",
			cfg:     Config{Checks: []CheckConfig{{Type: TypeMemory, Timeout: "-1s"}}},
			wantErr: ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() err = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestObserve(t *testing.T) {
	cfg := Default()
	cfg.Metrics.Enabled = true

	obs := cfg.Observe("appcheck", "1.2.3")
	if obs.ServiceName != "appcheck" || obs.Version != "1.2.3" {
		t.Errorf("Observe() = %+v", obs)
	}
	if !obs.Logging.Enabled || obs.Logging.Level != "error" {
		t.Errorf("Logging = %+v", obs.Logging)
	}
	if !obs.Metrics.Enabled || obs.Metrics.Exporter != "stdout" {
		t.Errorf("Metrics = %+v", obs.Metrics)
	}
	if obs.Tracing.Enabled {
		t.Error("Tracing.Enabled = true, want false")
	}
}
