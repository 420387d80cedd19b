package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todotags/internal/platform/health"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
	statusDraining = "draining"

	degradedPrefix = "degraded: "
)

// readinessResponse is the body of GET /health/ready. Feeds counts the open
// live todo streams.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Feeds  int               `json:"feeds"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	streams  *StreamRegistry
}

// NewHealthHandler creates a new HealthHandler. streams may be nil, in which
// case readiness never reports draining.
func NewHealthHandler(registry ports.HealthRegistry, streams *StreamRegistry) *HealthHandler {
	return &HealthHandler{registry: registry, streams: streams}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all required checks
// pass and the server is not shutting down, 503 otherwise. Failed optional
// checks are listed with a "degraded: " prefix.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	for name, err := range results {
		if health.IsDegraded(err) {
			resp.Checks[name] = degradedPrefix + err.Error()
			continue
		}
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = statusNotReady
			continue
		}
		resp.Checks[name] = statusOK
	}

	if h.streams != nil {
		resp.Feeds = h.streams.Len()
		if h.streams.Draining() {
			resp.Status = statusDraining
		}
	}

	code := http.StatusOK
	if resp.Status != statusReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
