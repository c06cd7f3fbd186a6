package sqlite

import (
	"fmt"
	"time"
)

// ─── Dismissed Triggers ─────────────────────────────────────────────────────

// DismissTrigger durably records a trigger ID as dismissed.
// Re-dismissing is a no-op.
func (d *DB) DismissTrigger(id string, at time.Time) error {
	_, err := d.db.Exec(
		`INSERT OR IGNORE INTO dismissed_triggers (trigger_id, dismissed_at) VALUES (?, ?)`,
		id, at.Unix(),
	)
	if err != nil {
		return fmt.Errorf("dismiss trigger %s: %w", id, err)
	}
	return nil
}

// DismissedTriggerIDs returns the set of dismissed trigger IDs.
func (d *DB) DismissedTriggerIDs() (map[string]bool, error) {
	rows, err := d.db.Query(`SELECT trigger_id FROM dismissed_triggers`)
	if err != nil {
		return nil, fmt.Errorf("list dismissed: %w", err)
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
