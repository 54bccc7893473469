// Package config assembles the application configuration from an optional
// YAML file and environment variables, and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"pressroom/internal/infra/db"
	"pressroom/internal/observability/metrics"
	pkgconfig "pressroom/pkg/config"
)

// EnvConfigFile names the YAML file whose values act as defaults for the
// environment.
const EnvConfigFile = "CONFIG_FILE"

// Config is the complete runtime configuration of the API server.
type Config struct {
	Version string        `yaml:"version"`
	HTTP    HTTPConfig    `yaml:"http"`
	DB      DBConfig      `yaml:"database"`
	CORS    CORSConfig    `yaml:"cors"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// HTTPConfig configures the listener and request handling.
type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes      int           `yaml:"max_body_bytes"`
	WriteRateLimit    float64       `yaml:"write_rate_limit"` // sustained writes per second per client
	WriteRateBurst    int           `yaml:"write_rate_burst"`
}

// DBConfig selects the storage backend and tunes its pool.
type DBConfig struct {
	Driver          string        `yaml:"driver"`
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	Seed            bool          `yaml:"seed"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// MetricsConfig controls the periodic refresh of gauge metrics.
type MetricsConfig struct {
	RefreshSchedule string `yaml:"refresh_schedule"`
}

// TracingConfig controls OpenTelemetry sampling.
type TracingConfig struct {
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	pool := db.DefaultConnectionConfig()
	return Config{
		Version: "dev",
		HTTP: HTTPConfig{
			Addr:              ":8000",
			ReadHeaderTimeout: 5 * time.Second,
			RequestTimeout:    30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			MaxBodyBytes:      1 << 20,
			WriteRateLimit:    5,
			WriteRateBurst:    10,
		},
		DB: DBConfig{
			Driver:          db.DriverMemory,
			MaxOpenConns:    pool.MaxOpenConns,
			MaxIdleConns:    pool.MaxIdleConns,
			ConnMaxLifetime: pool.ConnMaxLifetime,
			ConnMaxIdleTime: pool.ConnMaxIdleTime,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Metrics: MetricsConfig{RefreshSchedule: metrics.DefaultRefreshSchedule},
		Tracing: TracingConfig{ServiceName: "pressroom", SampleRatio: 1.0},
	}
}

// Load builds the configuration: defaults, then the file named by
// CONFIG_FILE if set, then environment variables. The result is validated.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return Config{}, err
		}
	}

	cfg = applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path onto base. Keys absent from
// the file keep their value from base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	cfg.Version = pkgconfig.GetEnvString("VERSION", cfg.Version)

	cfg.HTTP.Addr = pkgconfig.GetEnvString("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.RequestTimeout = pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", cfg.HTTP.RequestTimeout)
	cfg.HTTP.ShutdownTimeout = pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)
	cfg.HTTP.MaxBodyBytes = pkgconfig.GetEnvInt("MAX_BODY_BYTES", cfg.HTTP.MaxBodyBytes)
	cfg.HTTP.WriteRateLimit = pkgconfig.GetEnvFloat("WRITE_RATE_LIMIT", cfg.HTTP.WriteRateLimit)
	cfg.HTTP.WriteRateBurst = pkgconfig.GetEnvInt("WRITE_RATE_BURST", cfg.HTTP.WriteRateBurst)

	cfg.DB.Driver = pkgconfig.GetEnvString("DB_DRIVER", cfg.DB.Driver)
	cfg.DB.URL = pkgconfig.GetEnvString("DATABASE_URL", cfg.DB.URL)
	cfg.DB.MaxOpenConns = pkgconfig.GetEnvInt("DB_MAX_OPEN_CONNS", cfg.DB.MaxOpenConns)
	cfg.DB.MaxIdleConns = pkgconfig.GetEnvInt("DB_MAX_IDLE_CONNS", cfg.DB.MaxIdleConns)
	cfg.DB.ConnMaxLifetime = pkgconfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.DB.ConnMaxLifetime)
	cfg.DB.ConnMaxIdleTime = pkgconfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.DB.ConnMaxIdleTime)
	cfg.DB.Seed = pkgconfig.GetEnvBool("DB_SEED", cfg.DB.Seed)

	cfg.CORS.AllowedOrigins = pkgconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", cfg.CORS.AllowedOrigins)

	cfg.Metrics.RefreshSchedule = pkgconfig.GetEnvString("METRICS_REFRESH_SCHEDULE", cfg.Metrics.RefreshSchedule)

	cfg.Tracing.ServiceName = pkgconfig.GetEnvString("OTEL_SERVICE_NAME", cfg.Tracing.ServiceName)
	cfg.Tracing.SampleRatio = pkgconfig.GetEnvFloat("TRACE_SAMPLE_RATIO", cfg.Tracing.SampleRatio)
	return cfg
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if c.HTTP.Addr == "" {
		add(errors.New("HTTP_ADDR must not be empty"))
	}
	add(pkgconfig.ValidatePositiveDuration("REQUEST_TIMEOUT", c.HTTP.RequestTimeout))
	add(pkgconfig.ValidatePositiveDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout))
	add(pkgconfig.ValidatePositiveDuration("READ_HEADER_TIMEOUT", c.HTTP.ReadHeaderTimeout))
	add(pkgconfig.ValidatePositiveInt("MAX_BODY_BYTES", c.HTTP.MaxBodyBytes))
	if c.HTTP.WriteRateLimit <= 0 {
		add(fmt.Errorf("WRITE_RATE_LIMIT must be positive, got %v", c.HTTP.WriteRateLimit))
	}
	add(pkgconfig.ValidatePositiveInt("WRITE_RATE_BURST", c.HTTP.WriteRateBurst))

	add(pkgconfig.ValidateOneOf("DB_DRIVER", c.DB.Driver, db.DriverPostgres, db.DriverSQLite, db.DriverMemory))
	if c.DB.Driver != db.DriverMemory && c.DB.URL == "" {
		add(fmt.Errorf("DATABASE_URL is required when DB_DRIVER=%s", c.DB.Driver))
	}
	add(pkgconfig.ValidatePositiveInt("DB_MAX_OPEN_CONNS", c.DB.MaxOpenConns))
	if c.DB.MaxIdleConns < 0 || c.DB.MaxIdleConns > c.DB.MaxOpenConns {
		add(fmt.Errorf("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS (%d), got %d",
			c.DB.MaxOpenConns, c.DB.MaxIdleConns))
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		add(errors.New("CORS_ALLOWED_ORIGINS must list at least one origin"))
	}

	if err := metrics.ValidateSchedule(c.Metrics.RefreshSchedule); err != nil {
		add(fmt.Errorf("METRICS_REFRESH_SCHEDULE: %w", err))
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		add(fmt.Errorf("TRACE_SAMPLE_RATIO must be within [0, 1], got %v", c.Tracing.SampleRatio))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Pool converts the pool settings for infra/db.Open.
func (c DBConfig) Pool() db.ConnectionConfig {
	return db.ConnectionConfig{
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
	}
}
