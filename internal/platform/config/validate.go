package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Store.validate(),
		c.Identity.validate(),
		c.Analytics.validate(),
		c.I18n.validate(),
		c.Notify.validate(),
		c.validateAnalyticsTelemetry(),
	)
}

// validateAnalyticsTelemetry rejects the otel sink without a meter provider
// to record into.
func (c *Config) validateAnalyticsTelemetry() error {
	if c.Analytics.Enabled && c.Analytics.Sink == SinkOtel && !c.Telemetry.Enabled {
		return errors.New("analytics.sink otel requires telemetry.enabled")
	}
	return nil
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.StreamHeartbeat <= 0 {
		errs = append(errs, errors.New("server.stream_heartbeat must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be >= 0, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, errors.New("client.rate_limit.burst_size must be >= 1 when rate limiting is enabled"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case StoreMemory:
		return nil
	case StoreSQLite:
		if s.DSN == "" {
			return errors.New("store.dsn must not be empty when driver is sqlite")
		}
		return nil
	default:
		return fmt.Errorf("store.driver must be one of: memory, sqlite; got %q", s.Driver)
	}
}

const minSessionSecretLength = 32

func (i *IdentityConfig) validate() error {
	var errs []error

	switch i.Provider {
	case IdentityLocal:
		// No remote settings needed.
	case IdentityRemote:
		if i.APIKey == "" {
			errs = append(errs, errors.New("identity.api_key must not be empty when provider is remote"))
		}
	default:
		errs = append(errs, fmt.Errorf("identity.provider must be one of: local, remote; got %q", i.Provider))
	}

	if len(i.SessionSecret) < minSessionSecretLength {
		errs = append(errs, fmt.Errorf("identity.session_secret must be at least %d bytes", minSessionSecretLength))
	}
	if i.SessionTTL <= 0 {
		errs = append(errs, errors.New("identity.session_ttl must be positive"))
	}
	if i.MinPasswordLength < 1 {
		errs = append(errs, fmt.Errorf("identity.min_password_length must be >= 1, got %d", i.MinPasswordLength))
	}
	for provider, secret := range i.FederatedSecrets {
		if secret == "" {
			errs = append(errs, fmt.Errorf("identity.federated_secrets.%s must not be empty", provider))
		}
	}

	return errors.Join(errs...)
}

func (a *AnalyticsConfig) validate() error {
	if !a.Enabled {
		return nil
	}

	var errs []error

	switch a.Sink {
	case SinkLog, SinkOtel:
		// No extra settings.
	case SinkHTTP:
		if a.Endpoint == "" {
			errs = append(errs, errors.New("analytics.endpoint must not be empty when sink is http"))
		}
	default:
		errs = append(errs, fmt.Errorf("analytics.sink must be one of: log, otel, http; got %q", a.Sink))
	}
	if a.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("analytics.queue_size must be >= 1, got %d", a.QueueSize))
	}

	return errors.Join(errs...)
}

func (l *I18nConfig) validate() error {
	if _, err := language.Parse(l.DefaultLocale); err != nil {
		return fmt.Errorf("i18n.default_locale %q is not a valid language tag: %w", l.DefaultLocale, err)
	}
	return nil
}

func (n *NotifyConfig) validate() error {
	if n.Duration <= 0 {
		return errors.New("notify.duration must be positive")
	}
	return nil
}
