package sqlite

import (
	"fmt"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
)

// ─── Streak Protection ──────────────────────────────────────────────────────

// CountProtectionSince returns the number of usages at or after t.
func (d *DB) CountProtectionSince(t time.Time) (int, error) {
	var n int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM protection_usage WHERE used_at >= ?`, t.Unix(),
	).Scan(&n)
	return n, err
}

// ConsumeProtection atomically checks the monthly count and inserts a usage
// row if the cap is not yet reached. Returns true if a token was consumed.
// The check and insert run in one transaction on the single-writer
// connection, so concurrent callers can never both pass the cap check.
func (d *DB) ConsumeProtection(monthStart time.Time, cap int, reason string, now time.Time) (bool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin consume: %w", err)
	}
	defer tx.Rollback()

	var used int
	if err := tx.QueryRow(
		`SELECT COUNT(*) FROM protection_usage WHERE used_at >= ?`, monthStart.Unix(),
	).Scan(&used); err != nil {
		return false, fmt.Errorf("count usages: %w", err)
	}
	if used >= cap {
		return false, nil
	}

	if _, err := tx.Exec(
		`INSERT INTO protection_usage (used_at, reason) VALUES (?, ?)`,
		now.Unix(), reason,
	); err != nil {
		return false, fmt.Errorf("insert usage: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit consume: %w", err)
	}
	return true, nil
}

// ListProtectionUsages returns all usages at or after t, newest first.
func (d *DB) ListProtectionUsages(t time.Time) ([]domain.ProtectionUsage, error) {
	rows, err := d.db.Query(
		`SELECT id, used_at, reason FROM protection_usage
		 WHERE used_at >= ? ORDER BY used_at DESC`, t.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("list usages: %w", err)
	}
	defer rows.Close()

	var out []domain.ProtectionUsage
	for rows.Next() {
		var (
			u  domain.ProtectionUsage
			ts int64
		)
		if err := rows.Scan(&u.ID, &ts, &u.Reason); err != nil {
			return nil, err
		}
		u.UsedAt = time.Unix(ts, 0)
		out = append(out, u)
	}
	return out, rows.Err()
}
