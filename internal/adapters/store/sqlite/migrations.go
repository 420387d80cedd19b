package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
			CREATE TABLE IF NOT EXISTS schema_version (
				version    INTEGER PRIMARY KEY,
				applied_at INTEGER NOT NULL
			);

			CREATE TABLE todos (
				id          TEXT PRIMARY KEY,
				user_id     TEXT NOT NULL,
				title       TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				completed   INTEGER NOT NULL DEFAULT 0,
				tag_ids     TEXT NOT NULL DEFAULT '[]',
				created_at  INTEGER NOT NULL,
				updated_at  INTEGER NOT NULL
			);

			CREATE INDEX idx_todos_user_created ON todos (user_id, created_at DESC, id DESC);

			CREATE TABLE tags (
				id         TEXT PRIMARY KEY,
				user_id    TEXT NOT NULL,
				name       TEXT NOT NULL,
				color      TEXT NOT NULL,
				created_at INTEGER NOT NULL,
				updated_at INTEGER NOT NULL,
				UNIQUE (user_id, name)
			);

			CREATE INDEX idx_tags_user_created ON tags (user_id, created_at, id);`,
	},
}

// migrate reads the current schema version and applies each outstanding
// migration in its own transaction.
func (s *Store) migrate(ctx context.Context) error {
	currentVersion := 0

	var tableCount int
	err := s.db.GetContext(ctx, &tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'")
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.GetContext(ctx, &currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if err := s.apply(ctx, m); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "applied sqlite migration", slog.Int("version", m.version))
	}

	return nil
}

func (s *Store) apply(ctx context.Context, m migration) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration v%d: %w", m.version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.sql); err != nil {
		return fmt.Errorf("applying migration v%d: %w", m.version, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_version (version, applied_at) VALUES (?, ?)",
		m.version, time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("recording migration v%d: %w", m.version, err)
	}
	return tx.Commit()
}
