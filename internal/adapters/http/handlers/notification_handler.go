package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/notice"
	"github.com/jsamuelsen11/todotags/internal/platform/logging"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// NotificationHandler serves the user's transient notices.
type NotificationHandler struct {
	notices   ports.NotificationService
	auth      ports.AuthService
	streams   *StreamRegistry
	heartbeat time.Duration
	loc       dto.Localizer
}

// NewNotificationHandler creates a new NotificationHandler. A nil streams
// gets a private registry; a non-positive heartbeat defaults to 15 seconds.
func NewNotificationHandler(notices ports.NotificationService, auth ports.AuthService, streams *StreamRegistry, heartbeat time.Duration, loc dto.Localizer) *NotificationHandler {
	if streams == nil {
		streams = NewStreamRegistry()
	}
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &NotificationHandler{notices: notices, auth: auth, streams: streams, heartbeat: heartbeat, loc: loc}
}

// ListNotices handles GET /api/v1/notifications.
func (h *NotificationHandler) ListNotices(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNoticeListResponse(h.notices.ListNotices(r.Context(), s.User.ID)))
}

// DismissNotice handles DELETE /api/v1/notifications/{id}.
func (h *NotificationHandler) DismissNotice(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	if !h.notices.DismissNotice(r.Context(), s.User.ID, chi.URLParam(r, "id")) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound, h.loc)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stream handles GET /api/v1/notifications/stream. It sends a notices event
// with the full active list on connect and after every change.
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}
	logger := logging.FromContext(r.Context())

	ctx, reason, stop := h.streams.streamContext(r.Context(), h.auth, s)
	defer stop()

	updates := newLatest[[]notice.Notice]()
	unsubscribe, err := h.notices.SubscribeNotices(ctx, s.User.ID, updates.offer)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}
	defer unsubscribe()

	es, err := openEventStream(w)
	if err != nil {
		logger.WarnContext(ctx, "failed to open event stream", slog.Any("error", err))
		return
	}

	err = pump(ctx, es, h.heartbeat, updates, eventNotices, func(ns []notice.Notice) any {
		return dto.ToNoticeListResponse(ns)
	})
	if why := reason(); why != "" {
		_ = es.send(eventEnd, endReason{Reason: why})
	}
	logger.DebugContext(r.Context(), "notification stream closed", slog.Any("reason", err))
}
