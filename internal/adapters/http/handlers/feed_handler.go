package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todotags/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todotags/internal/app/feed"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/platform/logging"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// FeedHandler serves the live todo list as server-sent events.
type FeedHandler struct {
	todos     ports.TodoService
	tags      ports.TagService
	auth      ports.AuthService
	tracker   feed.Tracker
	streams   *StreamRegistry
	heartbeat time.Duration
	loc       dto.Localizer
}

// FeedHandlerConfig holds the FeedHandler dependencies.
type FeedHandlerConfig struct {
	Todos     ports.TodoService
	Tags      ports.TagService
	Auth      ports.AuthService
	Tracker   feed.Tracker
	Streams   *StreamRegistry
	Heartbeat time.Duration
	Localizer dto.Localizer
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(cfg FeedHandlerConfig) *FeedHandler {
	streams := cfg.Streams
	if streams == nil {
		streams = NewStreamRegistry()
	}
	heartbeat := cfg.Heartbeat
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &FeedHandler{
		todos:     cfg.Todos,
		tags:      cfg.Tags,
		auth:      cfg.Auth,
		tracker:   cfg.Tracker,
		streams:   streams,
		heartbeat: heartbeat,
		loc:       cfg.Localizer,
	}
}

// Stream handles GET /api/v1/todos/stream. It sends a ready event carrying
// the stream ID, then a snapshot event whenever the filtered todos or the
// tags change. The stream ends when the client disconnects or the session ends.
func (h *FeedHandler) Stream(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}
	logger := logging.FromContext(r.Context())

	ctx, reason, stop := h.streams.streamContext(r.Context(), h.auth, s)
	defer stop()

	updates := newLatest[feed.Snapshot]()
	f := feed.New(h.todos, h.tags, h.tracker, s, logger)
	defer f.Close()

	if err := f.Start(ctx, dto.ParseTagIDs(r.URL.Query().Get("tags")), updates.offer); err != nil {
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	id := h.streams.add(s.User.ID, f)
	defer h.streams.remove(id)

	es, err := openEventStream(w)
	if err != nil {
		logger.WarnContext(ctx, "failed to open event stream", slog.Any("error", err))
		return
	}
	if err := es.send(eventReady, dto.StreamReadyResponse{StreamID: id}); err != nil {
		return
	}

	logger.DebugContext(ctx, "feed stream opened", slog.String("stream_id", id))
	err = pump(ctx, es, h.heartbeat, updates, eventSnapshot, func(snap feed.Snapshot) any {
		return dto.ToFeedSnapshotResponse(snap)
	})
	if why := reason(); why != "" {
		_ = es.send(eventEnd, endReason{Reason: why})
	}
	logger.DebugContext(r.Context(), "feed stream closed",
		slog.String("stream_id", id),
		slog.Any("reason", err),
	)
}

// SetFilter handles PUT /api/v1/todos/stream/{streamID}/filter. The stream
// resubscribes and emits a fresh snapshot for the new filter.
func (h *FeedHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.loc)
	if !ok {
		return
	}

	var req dto.SetFilterRequest
	if !decodeAndValidate(w, r, &req, h.loc) {
		return
	}

	f, ok := h.streams.lookup(s.User.ID, chi.URLParam(r, "streamID"))
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound, h.loc)
		return
	}

	if err := f.SetFilter(r.Context(), req.TagIDs); err != nil {
		if errors.Is(err, feed.ErrClosed) {
			err = domain.ErrNotFound
		}
		dto.WriteErrorResponse(w, r, err, h.loc)
		return
	}

	ids := f.Filter()
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, dto.FilterResponse{TagIDs: ids})
}
