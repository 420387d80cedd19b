package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMinPasswordLength  = 6
	defaultAnalyticsQueueSize = 256
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.stream_heartbeat": "15s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "https://identitytoolkit.googleapis.com",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todotags",

		"store.driver": StoreMemory,
		"store.dsn":    "",

		"identity.provider":            IdentityLocal,
		"identity.api_key":             "",
		"identity.api_key_file":        "",
		"identity.session_secret":      "",
		"identity.session_secret_file": "",
		"identity.issuer":              "todotags",
		"identity.session_ttl":         "24h",
		"identity.min_password_length": defaultMinPasswordLength,

		"analytics.enabled":    false,
		"analytics.sink":       SinkLog,
		"analytics.endpoint":   "",
		"analytics.queue_size": defaultAnalyticsQueueSize,

		"i18n.default_locale": "ja",

		"notify.duration": "5s",
	}
}
