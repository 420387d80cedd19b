// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todotags/internal/adapters/http"
	"github.com/jsamuelsen11/todotags/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todotags/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/todotags/internal/adapters/analytics"
	"github.com/jsamuelsen11/todotags/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/todotags/internal/adapters/identity"
	"github.com/jsamuelsen11/todotags/internal/adapters/notify"
	"github.com/jsamuelsen11/todotags/internal/adapters/store/memory"
	"github.com/jsamuelsen11/todotags/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/todotags/internal/app"
	"github.com/jsamuelsen11/todotags/internal/platform/config"
	"github.com/jsamuelsen11/todotags/internal/platform/health"
	"github.com/jsamuelsen11/todotags/internal/platform/httpclient"
	"github.com/jsamuelsen11/todotags/internal/platform/i18n"
	"github.com/jsamuelsen11/todotags/internal/platform/logging"
	"github.com/jsamuelsen11/todotags/internal/platform/session"
	"github.com/jsamuelsen11/todotags/internal/platform/telemetry"
	"github.com/jsamuelsen11/todotags/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout    = 15 * time.Second
	analyticsShutdownTimeout = 5 * time.Second
	otelShutdownTimeout      = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[dataStore](injector))
	if checker, ok := do.MustInvoke[ports.IdentityProvider](injector).(ports.HealthChecker); ok {
		registry.Register(checker)
	}
	if sink, ok := do.MustInvoke[ports.AnalyticsSink](injector).(*analytics.HTTPSink); ok {
		registry.Register(health.Optional(sink))
	}

	// Streams end before the server waits for idle connections.
	streams := do.MustInvoke[*handlers.StreamRegistry](injector)
	server.OnShutdown(streams.Shutdown)

	logger.Info("service configured",
		slog.String("profile", profile),
		slog.String("store", cfg.Store.Driver),
		slog.String("identity", cfg.Identity.Provider),
		slog.Bool("analytics", cfg.Analytics.Enabled),
		slog.String("default_locale", cfg.I18n.DefaultLocale),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	closeDependencies(injector, logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// dataStore is the persistence adapter selected by store.driver.
type dataStore interface {
	ports.TodoStore
	ports.TagStore
	ports.HealthChecker
	Close() error
}

func openStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger, metrics *telemetry.Metrics) (dataStore, error) {
	switch cfg.Driver {
	case config.StoreSQLite:
		s, err := sqlite.Open(ctx, cfg.DSN, logger, metrics)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, nil
	default:
		return memory.New(logger, metrics), nil
	}
}

func newIdentityProvider(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) ports.IdentityProvider {
	if cfg.Identity.Provider == config.IdentityRemote {
		client := httpclient.New(&cfg.Client, "identity-toolkit", metrics, logger)
		return acl.NewIdentityClient(client, cfg.Identity.APIKey, logger)
	}
	return identity.NewLocal(identity.Options{
		MinPasswordLength: cfg.Identity.MinPasswordLength,
		FederatedSecrets:  cfg.Identity.FederatedSecrets,
		Logger:            logger,
	})
}

func newAnalyticsSink(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) ports.AnalyticsSink {
	if !cfg.Analytics.Enabled {
		return analytics.Noop{}
	}
	switch cfg.Analytics.Sink {
	case config.SinkOtel:
		return analytics.NewOtelSink(metrics)
	case config.SinkHTTP:
		client := httpclient.New(&cfg.Client, "analytics", metrics, logger,
			httpclient.WithBaseURL(cfg.Analytics.Endpoint),
		)
		return analytics.NewHTTPSink(client, cfg.Analytics.QueueSize, logger)
	default:
		return analytics.NewLogSink(logger)
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*i18n.Translator, error) {
		return i18n.New(cfg.I18n.DefaultLocale)
	})

	do.Provide(injector, func(i do.Injector) (dataStore, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return openStore(context.Background(), cfg.Store, logger, metrics)
	})

	do.Provide(injector, func(i do.Injector) (ports.IdentityProvider, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return newIdentityProvider(cfg, logger, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AnalyticsSink, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return newAnalyticsSink(cfg, logger, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (*notify.Center, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return notify.New(cfg.Notify.Duration, logger, metrics), nil
	})

	do.Provide(injector, func(_ do.Injector) (*session.Manager, error) {
		return session.NewManager(session.Config{
			Secret: []byte(cfg.Identity.SessionSecret),
			Issuer: cfg.Identity.Issuer,
			TTL:    cfg.Identity.SessionTTL,
		})
	})

	do.Provide(injector, func(i do.Injector) (*app.Feedback, error) {
		center := do.MustInvoke[*notify.Center](i)
		sink := do.MustInvoke[ports.AnalyticsSink](i)
		tr := do.MustInvoke[*i18n.Translator](i)
		return app.NewFeedback(center, sink, tr, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		store := do.MustInvoke[dataStore](i)
		feedback := do.MustInvoke[*app.Feedback](i)
		return app.NewTodoService(store, store, feedback, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TagService, error) {
		store := do.MustInvoke[dataStore](i)
		feedback := do.MustInvoke[*app.Feedback](i)
		return app.NewTagService(store, store, feedback, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		idp := do.MustInvoke[ports.IdentityProvider](i)
		sessions := do.MustInvoke[*session.Manager](i)
		feedback := do.MustInvoke[*app.Feedback](i)
		return app.NewAuthService(idp, sessions, feedback, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*handlers.StreamRegistry, error) {
		return handlers.NewStreamRegistry(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		tr := do.MustInvoke[*i18n.Translator](i)
		todos := do.MustInvoke[ports.TodoService](i)
		tags := do.MustInvoke[ports.TagService](i)
		auth := do.MustInvoke[ports.AuthService](i)
		center := do.MustInvoke[*notify.Center](i)
		feedback := do.MustInvoke[*app.Feedback](i)
		streams := do.MustInvoke[*handlers.StreamRegistry](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)

		return adapthttp.Handlers{
			Auth:  handlers.NewAuthHandler(auth, tr),
			Todos: handlers.NewTodoHandler(todos, tr),
			Tags:  handlers.NewTagHandler(tags, tr),
			Feed: handlers.NewFeedHandler(handlers.FeedHandlerConfig{
				Todos:     todos,
				Tags:      tags,
				Auth:      auth,
				Tracker:   feedback,
				Streams:   streams,
				Heartbeat: cfg.Server.StreamHeartbeat,
				Localizer: tr,
			}),
			Notifications: handlers.NewNotificationHandler(center, auth, streams, cfg.Server.StreamHeartbeat, tr),
			Health:        handlers.NewHealthHandler(registry, streams),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		tr := do.MustInvoke[*i18n.Translator](i)
		auth := do.MustInvoke[ports.AuthService](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			adapthttp.RouterConfig{
				Authenticate: middleware.Auth(auth, tr),
				Timeout:      middleware.Timeout(cfg.Server.WriteTimeout, tr),
			},
			middleware.Recovery(logger, tr),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Locale(tr),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// closeDependencies releases the adapters that hold goroutines or file
// handles once the server has stopped serving.
func closeDependencies(injector do.Injector, logger *slog.Logger) {
	if sink, ok := do.MustInvoke[ports.AnalyticsSink](injector).(*analytics.HTTPSink); ok {
		ctx, cancel := context.WithTimeout(context.Background(), analyticsShutdownTimeout)
		defer cancel()
		if err := sink.Close(ctx); err != nil {
			logger.Error("analytics shutdown error", slog.Any("error", err))
		}
	}

	do.MustInvoke[*notify.Center](injector).Close()

	if err := do.MustInvoke[dataStore](injector).Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}
}
