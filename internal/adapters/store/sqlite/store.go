// Package sqlite implements the todo and tag store ports on SQLite through
// sqlx and the pure-Go modernc.org/sqlite driver. Todo tag references are
// stored as a JSON array and filtered with json_each, so the any-match tag
// query runs in the database.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/todotags/internal/adapters/store/changefeed"
	"github.com/jsamuelsen11/todotags/internal/domain"
	"github.com/jsamuelsen11/todotags/internal/domain/tag"
	"github.com/jsamuelsen11/todotags/internal/domain/todo"
	"github.com/jsamuelsen11/todotags/internal/platform/telemetry"
	"github.com/jsamuelsen11/todotags/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.TagStore      = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store persists todos and tags in a SQLite database.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
	tracer trace.Tracer

	todoHub *changefeed.Hub[[]todo.Todo]
	tagHub  *changefeed.Hub[[]tag.Tag]
}

// Open opens (or creates) the database at dsn, enables WAL mode and foreign
// keys, and applies pending migrations. If metrics is nil, metric recording
// is skipped.
func Open(ctx context.Context, dsn string, logger *slog.Logger, metrics *telemetry.Metrics) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("sqlite dsn is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Pragmas are per connection; a single connection keeps them in force
	// and serializes writers.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	s := &Store{
		db:      db,
		logger:  logger,
		tracer:  otel.GetTracerProvider().Tracer("store.sqlite"),
		todoHub: changefeed.NewHub[[]todo.Todo]("todos", logger, metrics),
		tagHub:  changefeed.NewHub[[]tag.Tag]("tags", logger, metrics),
	}

	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close ends every live subscription and closes the database.
func (s *Store) Close() error {
	s.todoHub.Close()
	s.tagHub.Close()
	return s.db.Close()
}

// Name identifies the store in readiness results.
func (s *Store) Name() string { return "store" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w", err)
	}
	return nil
}

// startSpan opens a span for one store operation. The returned func records
// *errp on the span and ends it.
func (s *Store) startSpan(ctx context.Context, op string) (context.Context, func(errp *error)) {
	ctx, span := s.tracer.Start(ctx, "sqlite."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", "sqlite")),
	)
	return ctx, func(errp *error) {
		if errp != nil && *errp != nil && !errors.Is(*errp, domain.ErrNotFound) {
			span.RecordError(*errp)
			span.SetStatus(codes.Error, (*errp).Error())
		}
		span.End()
	}
}

// translate maps driver errors onto domain kinds.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return domain.WrapError(domain.KindAlreadyExists, err)
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return domain.WrapError(domain.KindUnavailable, err)
		case sqlite3lib.SQLITE_FULL:
			return domain.WrapError(domain.KindResourceExhausted, err)
		}
	}
	return err
}

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
