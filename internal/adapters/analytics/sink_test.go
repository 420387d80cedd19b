package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/todotags/internal/platform/config"
	"github.com/jsamuelsen11/todotags/internal/platform/httpclient"
	"github.com/jsamuelsen11/todotags/internal/platform/telemetry"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

func testClientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	var s ports.AnalyticsSink = Noop{}
	s.Track(context.Background(), ports.AnalyticsEvent{Name: ports.EventLogin})
	s.Identify(context.Background(), "u1", nil)
}

func TestLogSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	s.Track(context.Background(), ports.AnalyticsEvent{
		Name:       ports.EventTodoCreated,
		UserID:     "u1",
		Properties: map[string]any{"has_tags": true},
	})
	s.Identify(context.Background(), "u1", map[string]any{"email": "a@example.com"})

	out := buf.String()
	for _, want := range []string{`"event":"todo_created"`, `"has_tags":true`, `"msg":"analytics identify"`, `"component":"analytics"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestOtelSink_CountsByName(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	s := NewOtelSink(metrics)
	ctx := context.Background()
	s.Track(ctx, ports.AnalyticsEvent{Name: ports.EventLogin})
	s.Track(ctx, ports.AnalyticsEvent{Name: ports.EventLogin})
	s.Track(ctx, ports.AnalyticsEvent{Name: ports.EventLogout})

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "analytics.events" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("analytics.events data = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				name, _ := dp.Attributes.Value(telemetry.AttrEventName)
				counts[name.AsString()] = dp.Value
			}
		}
	}

	if counts[ports.EventLogin] != 2 || counts[ports.EventLogout] != 1 {
		t.Errorf("counts = %v, want login=2 logout=1", counts)
	}
}

func TestOtelSink_NilMetrics(t *testing.T) {
	t.Parallel()

	NewOtelSink(nil).Track(context.Background(), ports.AnalyticsEvent{Name: ports.EventLogin})
}

type collector struct {
	mu       sync.Mutex
	payloads []payload
	status   int
}

func (c *collector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err == nil {
		c.mu.Lock()
		c.payloads = append(c.payloads, p)
		c.mu.Unlock()
	}
	if c.status != 0 {
		w.WriteHeader(c.status)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (c *collector) received() []payload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]payload(nil), c.payloads...)
}

func newHTTPSink(t *testing.T, h http.Handler, queueSize int) *HTTPSink {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client := httpclient.New(testClientConfig(), "analytics-collector", nil, nil, httpclient.WithBaseURL(srv.URL))
	return NewHTTPSink(client, queueSize, nil)
}

func TestHTTPSink_PostsAndDrainsOnClose(t *testing.T) {
	t.Parallel()

	c := &collector{}
	s := newHTTPSink(t, c, 16)

	ctx, cancel := context.WithCancel(context.Background())
	s.Track(ctx, ports.AnalyticsEvent{
		Name:       ports.EventTagCreated,
		UserID:     "u1",
		Properties: map[string]any{"k": "v"},
	})
	s.Identify(ctx, "u1", map[string]any{"email": "a@example.com"})
	// A finished request must not cancel queued deliveries.
	cancel()

	closeCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := s.Close(closeCtx); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	got := c.received()
	if len(got) != 2 {
		t.Fatalf("received %d payloads, want 2", len(got))
	}
	if got[0].Type != payloadTrack || got[0].Name != ports.EventTagCreated || got[0].Properties["k"] != "v" {
		t.Errorf("payload[0] = %+v, want track tag_created", got[0])
	}
	if got[1].Type != payloadIdentify || got[1].UserID != "u1" {
		t.Errorf("payload[1] = %+v, want identify u1", got[1])
	}
	if got[0].Time.IsZero() {
		t.Error("payload time is zero")
	}
}

func TestHTTPSink_DropsWhenFull(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var mu sync.Mutex
	hits := 0
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		<-release
		w.WriteHeader(http.StatusAccepted)
	})
	s := newHTTPSink(t, h, 1)

	ctx := context.Background()
	// One in flight, one queued, the rest dropped.
	for range 10 {
		s.Track(ctx, ports.AnalyticsEvent{Name: ports.EventTodoCreated})
	}
	close(release)

	closeCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := s.Close(closeCtx); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if hits >= 10 || hits < 1 {
		t.Errorf("collector hits = %d, want between 1 and 9", hits)
	}
}

func TestHTTPSink_CollectorErrorIsSwallowed(t *testing.T) {
	t.Parallel()

	c := &collector{status: http.StatusBadRequest}
	s := newHTTPSink(t, c, 4)

	s.Track(context.Background(), ports.AnalyticsEvent{Name: ports.EventException})

	closeCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := s.Close(closeCtx); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if len(c.received()) != 1 {
		t.Errorf("received %d payloads, want 1", len(c.received()))
	}
}

func TestHTTPSink_TrackAfterCloseIsIgnored(t *testing.T) {
	t.Parallel()

	c := &collector{}
	s := newHTTPSink(t, c, 4)

	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	s.Track(context.Background(), ports.AnalyticsEvent{Name: ports.EventLogin})
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if len(c.received()) != 0 {
		t.Errorf("received %d payloads, want 0", len(c.received()))
	}
}

func TestHTTPSink_HealthCheckFollowsBreaker(t *testing.T) {
	t.Parallel()

	s := newHTTPSink(t, &collector{}, 4)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	if s.Name() != "analytics" {
		t.Errorf("Name() = %q, want %q", s.Name(), "analytics")
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil with a closed breaker", err)
	}
}
