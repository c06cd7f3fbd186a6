// Package sqlite provides SQLite-based persistent storage for Bloom.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/bloom.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "bloom.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer. A one-connection pool also serializes the
	// protection consume transaction against concurrent callers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Activity log: append-only, one row per logged event.
		`CREATE TABLE IF NOT EXISTS activity_log (
			id          TEXT PRIMARY KEY,
			kind        TEXT NOT NULL,
			occurred_at INTEGER NOT NULL,
			score       INTEGER,
			tags        TEXT NOT NULL DEFAULT '',
			body        TEXT NOT NULL DEFAULT '',
			completed   BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_kind_time ON activity_log(kind, occurred_at)`,

		// Streak state: one row per kind, upserted by the streak service.
		// Day-valued columns are ISO dates ("2006-01-02") — calendar days,
		// not instants, so they survive timezone changes.
		`CREATE TABLE IF NOT EXISTS streaks (
			kind          TEXT PRIMARY KEY,
			current       INTEGER NOT NULL,
			longest       INTEGER NOT NULL,
			last_activity TEXT NOT NULL DEFAULT '',
			streak_start  TEXT NOT NULL DEFAULT '',
			updated_at    INTEGER NOT NULL
		)`,

		// Protection usages: append-only consumption ledger.
		`CREATE TABLE IF NOT EXISTS protection_usage (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			used_at INTEGER NOT NULL,
			reason  TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_protection_used ON protection_usage(used_at)`,

		// Badge awards: at most one row per badge, ever.
		`CREATE TABLE IF NOT EXISTS badge_awards (
			badge_id  TEXT PRIMARY KEY,
			earned_at INTEGER NOT NULL,
			metadata  TEXT NOT NULL DEFAULT ''
		)`,

		// Dismissed proactive triggers: the one durable piece of that
		// subsystem — keeps a dismissed trigger from reappearing until
		// its deterministic id changes.
		`CREATE TABLE IF NOT EXISTS dismissed_triggers (
			trigger_id   TEXT PRIMARY KEY,
			dismissed_at INTEGER NOT NULL
		)`,
	}

	for i, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
