// Package streak implements the Bloom continuity streak tracker.
// One StreakState row per kind (mood, journal, exercise, overall); the
// Record operation is the only mutator — reads everywhere else are pure
// queries of the last computed state.
package streak

import (
	"fmt"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
	"github.com/bloomwell/bloom/internal/infra/metrics"
	"github.com/bloomwell/bloom/internal/infra/sqlite"
)

// Service manages per-kind streak state.
type Service struct {
	db *sqlite.DB
}

// NewService creates a streak service.
func NewService(db *sqlite.DB) *Service {
	return &Service{db: db}
}

// Get returns the streak state for kind (zero-valued if never updated).
func (s *Service) Get(kind domain.Kind) (domain.StreakState, error) {
	return s.db.GetStreak(kind)
}

// All returns the streak state for every tracked kind.
func (s *Service) All() ([]domain.StreakState, error) {
	return s.db.AllStreaks()
}

// Record applies one qualifying activity on activityDate to the streak of
// kind, incrementally from the previous state:
//   - same day as last activity: no-op (re-logging is idempotent)
//   - day after last activity: streak extends
//   - anything else: streak resets to 1 and restarts on activityDate
//
// longest ≥ current holds after every call. Callers must invoke this once
// per qualifying activity, not on every read.
func (s *Service) Record(kind domain.Kind, activityDate time.Time) (domain.StreakState, error) {
	st, err := s.db.GetStreak(kind)
	if err != nil {
		return st, fmt.Errorf("load streak %s: %w", kind, err)
	}

	day := domain.DayOf(activityDate)

	switch {
	case !st.LastActivityDate.IsZero() && sameDay(st.LastActivityDate, day):
		return st, nil // already counted today

	case !st.LastActivityDate.IsZero() && sameDay(st.LastActivityDate, day.AddDate(0, 0, -1)):
		st.CurrentStreak++ // consecutive day

	default:
		// First-ever entry, or the streak broke.
		st.CurrentStreak = 1
		st.StreakStartDate = day
	}

	st.LastActivityDate = day
	if st.CurrentStreak > st.LongestStreak {
		st.LongestStreak = st.CurrentStreak
	}
	st.UpdatedAt = time.Now()

	if err := s.db.UpsertStreak(st); err != nil {
		return st, err
	}
	metrics.StreakCurrent.WithLabelValues(string(kind)).Set(float64(st.CurrentStreak))
	return st, nil
}

// ConsecutiveDays computes a streak length from raw timestamps, anchored on
// "now": if neither today nor yesterday has an entry the streak is 0 (one
// day of grace tolerates entries logged just after midnight). Otherwise it
// walks backward one calendar day at a time, counting until the first gap.
// Duplicate same-day timestamps and input order do not matter; the input is
// not mutated.
func ConsecutiveDays(timestamps []time.Time, now time.Time) int {
	if len(timestamps) == 0 {
		return 0
	}

	days := make(map[string]bool, len(timestamps))
	for _, ts := range timestamps {
		days[dayKey(ts)] = true
	}

	anchor := domain.DayOf(now)
	if !days[dayKey(anchor)] {
		anchor = anchor.AddDate(0, 0, -1)
		if !days[dayKey(anchor)] {
			return 0
		}
	}

	n := 0
	for days[dayKey(anchor)] {
		n++
		anchor = anchor.AddDate(0, 0, -1)
	}
	return n
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func sameDay(a, b time.Time) bool {
	return dayKey(a) == dayKey(b)
}
