package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
)

// ─── Activity Log ───────────────────────────────────────────────────────────
// Append-only. Rows are never updated; deletion is an explicit user action
// outside the analytics engine.

// InsertActivity appends one record to the activity log.
func (d *DB) InsertActivity(r domain.ActivityRecord) error {
	_, err := d.db.Exec(
		`INSERT INTO activity_log (id, kind, occurred_at, score, tags, body, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, string(r.Kind), r.OccurredAt.Unix(),
		r.Score, strings.Join(r.Tags, ","), r.Text, r.Completed,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// EntriesForDateRange returns records of kind with start ≤ occurred_at < end,
// oldest first.
func (d *DB) EntriesForDateRange(kind domain.Kind, start, end time.Time) ([]domain.ActivityRecord, error) {
	rows, err := d.db.Query(
		`SELECT id, kind, occurred_at, score, tags, body, completed
		 FROM activity_log
		 WHERE kind = ? AND occurred_at >= ? AND occurred_at < ?
		 ORDER BY occurred_at ASC`,
		string(kind), start.Unix(), end.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("query range: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

// EntriesForDay returns records of kind on the given calendar day.
func (d *DB) EntriesForDay(kind domain.Kind, day time.Time) ([]domain.ActivityRecord, error) {
	start := domain.DayOf(day)
	return d.EntriesForDateRange(kind, start, start.AddDate(0, 0, 1))
}

// EntriesForLastDays returns records of kind from the last n calendar days,
// including today.
func (d *DB) EntriesForLastDays(kind domain.Kind, n int, now time.Time) ([]domain.ActivityRecord, error) {
	start := domain.DayOf(now).AddDate(0, 0, -(n - 1))
	return d.EntriesForDateRange(kind, start, domain.DayOf(now).AddDate(0, 0, 1))
}

// AllEntries returns every record of kind, oldest first.
func (d *DB) AllEntries(kind domain.Kind) ([]domain.ActivityRecord, error) {
	rows, err := d.db.Query(
		`SELECT id, kind, occurred_at, score, tags, body, completed
		 FROM activity_log WHERE kind = ? ORDER BY occurred_at ASC`,
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("query all: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

// EntryCount returns the total number of records of kind.
func (d *DB) EntryCount(kind domain.Kind) (int, error) {
	var n int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM activity_log WHERE kind = ?`, string(kind)).Scan(&n)
	return n, err
}

// LastActivityAt returns the most recent occurred_at across every kind,
// or the zero time if nothing has been logged.
func (d *DB) LastActivityAt() (time.Time, error) {
	var ts sql.NullInt64
	err := d.db.QueryRow(`SELECT MAX(occurred_at) FROM activity_log`).Scan(&ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("query last activity: %w", err)
	}
	if !ts.Valid {
		return time.Time{}, nil
	}
	return time.Unix(ts.Int64, 0), nil
}

// ActivityTimestamps returns every occurred_at for kind, unordered use ok.
func (d *DB) ActivityTimestamps(kind domain.Kind) ([]time.Time, error) {
	rows, err := d.db.Query(`SELECT occurred_at FROM activity_log WHERE kind = ?`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("query timestamps: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var ts int64
		if err := rows.Scan(&ts); err != nil {
			return nil, err
		}
		out = append(out, time.Unix(ts, 0))
	}
	return out, rows.Err()
}

func scanActivities(rows *sql.Rows) ([]domain.ActivityRecord, error) {
	var out []domain.ActivityRecord
	for rows.Next() {
		var (
			r    domain.ActivityRecord
			kind string
			ts   int64
			tags string
		)
		if err := rows.Scan(&r.ID, &kind, &ts, &r.Score, &tags, &r.Text, &r.Completed); err != nil {
			return nil, err
		}
		r.Kind = domain.Kind(kind)
		r.OccurredAt = time.Unix(ts, 0)
		if tags != "" {
			r.Tags = strings.Split(tags, ",")
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
