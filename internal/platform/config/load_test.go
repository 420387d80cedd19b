package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/todotags/internal/platform/config"
)

const testSessionSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_IDENTITY_SESSION_SECRET", testSessionSecret)

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Store.Driver != config.StoreSQLite {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, config.StoreSQLite)
	}
	if cfg.Identity.SessionSecret != testSessionSecret {
		t.Error("Identity.SessionSecret was not taken from the environment")
	}
}

func TestLoad_ProdProfileRequiresSessionSecret(t *testing.T) {
	t.Chdir("../../..")

	if _, err := config.Load("prod"); err == nil {
		t.Fatal("Load(\"prod\") returned nil error without a session secret, want error")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// Not set in any YAML file.
	if cfg.Server.StreamHeartbeat != 15*time.Second {
		t.Errorf("Server.StreamHeartbeat = %v, want 15s (default)", cfg.Server.StreamHeartbeat)
	}
	if cfg.Notify.Duration != 5*time.Second {
		t.Errorf("Notify.Duration = %v, want 5s (default)", cfg.Notify.Duration)
	}
	if cfg.I18n.DefaultLocale != "ja" {
		t.Errorf("I18n.DefaultLocale = %q, want \"ja\" (default)", cfg.I18n.DefaultLocale)
	}
	if cfg.Identity.MinPasswordLength != 6 {
		t.Errorf("Identity.MinPasswordLength = %d, want 6 (default)", cfg.Identity.MinPasswordLength)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_EnvOverrideFederatedSecret(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_IDENTITY_FEDERATED_SECRETS_GOOGLE", "override-google-secret")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := cfg.Identity.FederatedSecrets["google"]; got != "override-google-secret" {
		t.Errorf("Identity.FederatedSecrets[google] = %q, want env override", got)
	}
}

func TestLoad_SessionSecretFromFile(t *testing.T) {
	secretPath := filepath.Join(t.TempDir(), "session_secret")
	if err := os.WriteFile(secretPath, []byte(testSessionSecret+"\n"), 0o600); err != nil {
		t.Fatalf("writing secret file: %v", err)
	}

	t.Chdir("../../..")
	t.Setenv("APP_IDENTITY_SESSION_SECRET", "env-value-loses-to-the-file-0000")
	t.Setenv("APP_IDENTITY_SESSION_SECRET_FILE", secretPath)

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}
	if cfg.Identity.SessionSecret != testSessionSecret {
		t.Errorf("Identity.SessionSecret = %q, want the trimmed file contents", cfg.Identity.SessionSecret)
	}
}

func TestLoad_MissingSecretFile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_IDENTITY_SESSION_SECRET_FILE", filepath.Join(t.TempDir(), "absent"))

	_, err := config.Load("local")
	if err == nil {
		t.Fatal("Load() error = nil, want error for missing secret file")
	}
	if !strings.Contains(err.Error(), "identity.session_secret_file") {
		t.Errorf("error %q should name the file key", err)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_Sections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown store driver", func(c *config.Config) { c.Store.Driver = "postgres" }},
		{"sqlite without dsn", func(c *config.Config) { c.Store.Driver = config.StoreSQLite; c.Store.DSN = "" }},
		{"unknown identity provider", func(c *config.Config) { c.Identity.Provider = "ldap" }},
		{"remote identity without api key", func(c *config.Config) { c.Identity.Provider = config.IdentityRemote }},
		{"short session secret", func(c *config.Config) { c.Identity.SessionSecret = "short" }},
		{"zero session ttl", func(c *config.Config) { c.Identity.SessionTTL = 0 }},
		{"zero password length", func(c *config.Config) { c.Identity.MinPasswordLength = 0 }},
		{"empty federated secret", func(c *config.Config) {
			c.Identity.FederatedSecrets = map[string]string{"google": ""}
		}},
		{"unknown analytics sink", func(c *config.Config) {
			c.Analytics.Enabled = true
			c.Analytics.Sink = "kafka"
		}},
		{"http analytics without endpoint", func(c *config.Config) {
			c.Analytics.Enabled = true
			c.Analytics.Sink = config.SinkHTTP
		}},
		{"otel analytics without telemetry", func(c *config.Config) {
			c.Analytics.Enabled = true
			c.Analytics.Sink = config.SinkOtel
			c.Telemetry.Enabled = false
		}},
		{"invalid locale", func(c *config.Config) { c.I18n.DefaultLocale = "not a locale!" }},
		{"zero notice duration", func(c *config.Config) { c.Notify.Duration = 0 }},
		{"zero stream heartbeat", func(c *config.Config) { c.Server.StreamHeartbeat = 0 }},
		{"rate limit without burst", func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_DisabledAnalyticsIgnoresSink(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Analytics.Sink = "kafka"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for disabled analytics: %v", err)
	}
}

func TestValidate_OtelAnalyticsWithTelemetry(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Analytics.Enabled = true
	cfg.Analytics.Sink = config.SinkOtel
	cfg.Telemetry.Enabled = true

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for otel sink with telemetry: %v", err)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			StreamHeartbeat: 15 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Store: config.StoreConfig{
			Driver: config.StoreMemory,
		},
		Identity: config.IdentityConfig{
			Provider:          config.IdentityLocal,
			Issuer:            "todotags",
			SessionSecret:     testSessionSecret,
			SessionTTL:        24 * time.Hour,
			MinPasswordLength: 6,
		},
		Analytics: config.AnalyticsConfig{
			Sink:      config.SinkLog,
			QueueSize: 256,
		},
		I18n: config.I18nConfig{
			DefaultLocale: "ja",
		},
		Notify: config.NotifyConfig{
			Duration: 5 * time.Second,
		},
	}
}
