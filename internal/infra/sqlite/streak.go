package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
)

// ─── Streak State ───────────────────────────────────────────────────────────

const dayLayout = "2006-01-02"

// GetStreak loads the streak row for kind.
// Returns a zero-valued state (not an error) if the kind has no row yet.
func (d *DB) GetStreak(kind domain.Kind) (domain.StreakState, error) {
	s := domain.StreakState{Kind: kind}

	var (
		last, start string
		updated     int64
	)
	err := d.db.QueryRow(
		`SELECT current, longest, last_activity, streak_start, updated_at
		 FROM streaks WHERE kind = ?`, string(kind),
	).Scan(&s.CurrentStreak, &s.LongestStreak, &last, &start, &updated)
	if err == sql.ErrNoRows {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("get streak %s: %w", kind, err)
	}

	s.UpdatedAt = time.Unix(updated, 0)
	if s.LastActivityDate, err = parseDay(last); err != nil {
		return s, fmt.Errorf("streak %s last_activity: %w", kind, err)
	}
	if s.StreakStartDate, err = parseDay(start); err != nil {
		return s, fmt.Errorf("streak %s streak_start: %w", kind, err)
	}
	return s, nil
}

// AllStreaks returns the streak rows for every tracked kind, including
// kinds that have no row yet (zero-valued).
func (d *DB) AllStreaks() ([]domain.StreakState, error) {
	var out []domain.StreakState
	for _, k := range domain.StreakKinds() {
		s, err := d.GetStreak(k)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// UpsertStreak writes the streak row for s.Kind.
func (d *DB) UpsertStreak(s domain.StreakState) error {
	_, err := d.db.Exec(
		`INSERT INTO streaks (kind, current, longest, last_activity, streak_start, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(kind) DO UPDATE SET
			current=excluded.current, longest=excluded.longest,
			last_activity=excluded.last_activity, streak_start=excluded.streak_start,
			updated_at=excluded.updated_at`,
		string(s.Kind), s.CurrentStreak, s.LongestStreak,
		formatDay(s.LastActivityDate), formatDay(s.StreakStartDate), s.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert streak %s: %w", s.Kind, err)
	}
	return nil
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dayLayout)
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dayLayout, s, time.Local)
}
