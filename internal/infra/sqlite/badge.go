package sqlite

import (
	"fmt"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
)

// ─── Badge Awards ───────────────────────────────────────────────────────────

// AwardBadge records a badge as earned.
// Returns false if already awarded (idempotent).
func (d *DB) AwardBadge(id string, at time.Time, metadata string) (bool, error) {
	result, err := d.db.Exec(
		`INSERT OR IGNORE INTO badge_awards (badge_id, earned_at, metadata) VALUES (?, ?, ?)`,
		id, at.Unix(), metadata,
	)
	if err != nil {
		return false, fmt.Errorf("award badge %s: %w", id, err)
	}
	n, _ := result.RowsAffected()
	return n > 0, nil // true = newly awarded
}

// IsBadgeAwarded checks whether a badge has been earned.
func (d *DB) IsBadgeAwarded(id string) (bool, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM badge_awards WHERE badge_id = ?`, id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AwardedBadgeIDs returns the set of earned badge IDs.
func (d *DB) AwardedBadgeIDs() (map[string]bool, error) {
	rows, err := d.db.Query(`SELECT badge_id FROM badge_awards`)
	if err != nil {
		return nil, fmt.Errorf("list awarded ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

// ListBadgeAwards returns all earned badges, newest first.
func (d *DB) ListBadgeAwards() ([]domain.BadgeAward, error) {
	rows, err := d.db.Query(
		`SELECT badge_id, earned_at, metadata FROM badge_awards ORDER BY earned_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}
	defer rows.Close()

	var out []domain.BadgeAward
	for rows.Next() {
		var (
			a  domain.BadgeAward
			ts int64
		)
		if err := rows.Scan(&a.BadgeID, &ts, &a.Metadata); err != nil {
			return nil, err
		}
		a.EarnedAt = time.Unix(ts, 0)
		out = append(out, a)
	}
	return out, rows.Err()
}

// BadgeAwardCount returns the number of earned badges.
func (d *DB) BadgeAwardCount() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM badge_awards`).Scan(&count)
	return count, err
}
