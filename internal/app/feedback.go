package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/notice"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Localizer formats a catalog key in the language carried by ctx.
type Localizer interface {
	Sprintf(ctx context.Context, key string, args ...any) string
}

// Feedback publishes the outcome of user operations: localized notices to
// the user's feed and usage events to analytics. Every mutating service
// routes its success and failure through one Feedback.
type Feedback struct {
	notifier ports.Notifier
	sink     ports.AnalyticsSink
	localize Localizer
	logger   *slog.Logger
	now      func() time.Time
}

// NewFeedback creates a Feedback. A nil logger discards output.
func NewFeedback(notifier ports.Notifier, sink ports.AnalyticsSink, localize Localizer, logger *slog.Logger) *Feedback {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Feedback{
		notifier: notifier,
		sink:     sink,
		localize: localize,
		logger:   logger,
		now:      time.Now,
	}
}

// Success publishes a localized success notice to the user's feed.
func (f *Feedback) Success(ctx context.Context, userID, key string, args ...any) {
	f.notify(ctx, userID, notice.Success(f.localize.Sprintf(ctx, key, args...)))
}

// Info publishes a localized informational notice.
func (f *Feedback) Info(ctx context.Context, userID, key string, args ...any) {
	f.notify(ctx, userID, notice.Info(f.localize.Sprintf(ctx, key, args...)))
}

// Track records an analytics event for userID.
func (f *Feedback) Track(ctx context.Context, userID, name string, props map[string]any) {
	f.sink.Track(ctx, ports.AnalyticsEvent{
		Name:       name,
		UserID:     userID,
		Properties: props,
		Time:       f.now(),
	})
}

// Identify associates profile properties with userID.
func (f *Feedback) Identify(ctx context.Context, userID string, props map[string]any) {
	f.sink.Identify(ctx, userID, props)
}

// Normalize classifies err and returns a *domain.Error whose Message is the
// localized text for its kind. The original error is kept as Cause.
// Context cancellation passes through unchanged.
func (f *Feedback) Normalize(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	kind := domain.KindOf(err)
	return &domain.Error{
		Kind:    kind,
		Message: f.localize.Sprintf(ctx, KindMessage(kind)),
		Cause:   err,
	}
}

// Fail normalizes err, logs it, publishes an error notice (except for local
// validation failures, which the caller renders inline), and records an
// exception event. An empty userID skips the notice. The normalized error
// is returned.
func (f *Feedback) Fail(ctx context.Context, userID, operation string, err error) error {
	normalized := f.Normalize(ctx, err)
	if normalized == nil || errors.Is(normalized, context.Canceled) {
		return normalized
	}

	var derr *domain.Error
	errors.As(normalized, &derr)

	level := slog.LevelError
	if derr.Kind == domain.KindInvalidArgument || derr.Kind.IsAuth() || derr.Kind == domain.KindDuplicateName {
		level = slog.LevelWarn
	}
	f.logger.Log(ctx, level, "operation failed",
		slog.String("operation", operation),
		slog.String("kind", string(derr.Kind)),
		slog.Any("error", err),
	)

	if userID != "" && derr.Kind != domain.KindInvalidArgument {
		f.notify(ctx, userID, notice.Failure(derr.Message))
	}

	f.Track(ctx, userID, ports.EventException, map[string]any{
		"description": operation + ": " + string(derr.Kind),
		"fatal":       false,
	})

	return normalized
}

func (f *Feedback) notify(ctx context.Context, userID string, n notice.Notice) {
	if userID == "" {
		return
	}
	f.notifier.Notify(ctx, userID, n)
}
