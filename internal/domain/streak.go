package domain

import "time"

// ─── Streak Types ───────────────────────────────────────────────────────────

// StreakState tracks consecutive days of activity for one kind.
// Invariant: LongestStreak ≥ CurrentStreak after every update.
// Mutated only by the streak service's Record operation.
type StreakState struct {
	Kind             Kind      `json:"kind"`
	CurrentStreak    int       `json:"current_streak"`
	LongestStreak    int       `json:"longest_streak"`
	LastActivityDate time.Time `json:"last_activity_date,omitzero"` // calendar day, zero if never
	StreakStartDate  time.Time `json:"streak_start_date,omitzero"`  // calendar day, zero if never
	UpdatedAt        time.Time `json:"updated_at"`
}

// Active reports whether the streak is still alive relative to today:
// the last activity was today or yesterday.
func (s StreakState) Active(today time.Time) bool {
	if s.LastActivityDate.IsZero() {
		return false
	}
	last := DayOf(s.LastActivityDate)
	day := DayOf(today)
	return last.Equal(day) || last.Equal(day.AddDate(0, 0, -1))
}

// ─── Streak Protection ──────────────────────────────────────────────────────

// DefaultMonthlyProtectionCap is the number of protection tokens granted
// each calendar month. Product constant.
const DefaultMonthlyProtectionCap = 3

// ProtectionUsage records one consumed protection token.
// Created only through the quota service's atomic consume; never updated.
type ProtectionUsage struct {
	ID     int64     `json:"id"`
	UsedAt time.Time `json:"used_at"`
	Reason string    `json:"reason,omitempty"`
}

// MonthStart returns the first instant of t's calendar month.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
