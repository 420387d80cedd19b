// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Store     StoreConfig     `koanf:"store"`
	Identity  IdentityConfig  `koanf:"identity"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	I18n      I18nConfig      `koanf:"i18n"`
	Notify    NotifyConfig    `koanf:"notify"`
}

// ServerConfig holds HTTP server settings. WriteTimeout bounds regular
// requests; streaming endpoints are exempt and send a heartbeat comment every
// StreamHeartbeat instead.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	StreamHeartbeat time.Duration `koanf:"stream_heartbeat"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds outbound HTTP client settings. BaseURL points at the
// remote identity API; the analytics collector reuses the same policy with
// its own endpoint.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting. Zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Store drivers.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// StoreConfig selects the persistence adapter.
type StoreConfig struct {
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
}

// Identity providers.
const (
	IdentityLocal  = "local"
	IdentityRemote = "remote"
)

// IdentityConfig selects the identity provider and configures sessions.
// FederatedSecrets maps a provider ID (e.g. "google") to the HMAC secret the
// local provider uses to verify that provider's ID tokens.
type IdentityConfig struct {
	Provider          string            `koanf:"provider"`
	APIKey            string            `koanf:"api_key"`
	Issuer            string            `koanf:"issuer"`
	SessionSecret     string            `koanf:"session_secret"`
	SessionTTL        time.Duration     `koanf:"session_ttl"`
	MinPasswordLength int               `koanf:"min_password_length"`
	FederatedSecrets  map[string]string `koanf:"federated_secrets"`
}

// Analytics sinks.
const (
	SinkLog  = "log"
	SinkOtel = "otel"
	SinkHTTP = "http"
)

// AnalyticsConfig configures the optional analytics sink.
type AnalyticsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Sink      string `koanf:"sink"`
	Endpoint  string `koanf:"endpoint"`
	QueueSize int    `koanf:"queue_size"`
}

// I18nConfig holds localization settings.
type I18nConfig struct {
	DefaultLocale string `koanf:"default_locale"`
}

// NotifyConfig holds notification feed settings.
type NotifyConfig struct {
	Duration time.Duration `koanf:"duration"`
}
