// Package analytics implements the usage-event sinks: a no-op sink when
// analytics is disabled, a structured-log sink, an OpenTelemetry counter sink
// and an HTTP collector sink. No sink reports failures to its caller.
package analytics

import (
	"context"
	"log/slog"
	"maps"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todotags/internal/platform/telemetry"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.AnalyticsSink = Noop{}
	_ ports.AnalyticsSink = (*LogSink)(nil)
	_ ports.AnalyticsSink = (*OtelSink)(nil)
	_ ports.AnalyticsSink = (*HTTPSink)(nil)
	_ ports.HealthChecker = (*HTTPSink)(nil)
)

// Noop discards every event.
type Noop struct{}

// Track does nothing.
func (Noop) Track(context.Context, ports.AnalyticsEvent) {}

// Identify does nothing.
func (Noop) Identify(context.Context, string, map[string]any) {}

// LogSink writes events as structured log records.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogSink{logger: logger.With(slog.String("component", "analytics"))}
}

// Track logs the event at info level.
func (s *LogSink) Track(ctx context.Context, e ports.AnalyticsEvent) {
	s.logger.InfoContext(ctx, "analytics event",
		slog.String("event", e.Name),
		slog.String("user_id", e.UserID),
		slog.Any("properties", e.Properties),
	)
}

// Identify logs the user properties at info level.
func (s *LogSink) Identify(ctx context.Context, userID string, props map[string]any) {
	s.logger.InfoContext(ctx, "analytics identify",
		slog.String("user_id", userID),
		slog.Any("properties", props),
	)
}

// OtelSink counts events per name on the analytics.events counter. Event
// properties are dropped to keep metric cardinality bounded.
type OtelSink struct {
	metrics *telemetry.Metrics
}

// NewOtelSink creates an OtelSink. If metrics is nil, events are dropped.
func NewOtelSink(metrics *telemetry.Metrics) *OtelSink {
	return &OtelSink{metrics: metrics}
}

// Track increments the counter for the event name.
func (s *OtelSink) Track(ctx context.Context, e ports.AnalyticsEvent) {
	if s.metrics == nil || s.metrics.AnalyticsEvents == nil {
		return
	}
	s.metrics.AnalyticsEvents.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrEventName.String(e.Name)),
	)
}

// Identify is not recorded as a metric.
func (s *OtelSink) Identify(context.Context, string, map[string]any) {}

// copyProps detaches caller-owned property maps before they cross goroutines.
func copyProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	return maps.Clone(props)
}
