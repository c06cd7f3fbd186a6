// Package domain holds the core types of the Bloom wellness engine.
// Plain data structs only — behavior lives in the internal/app services.
package domain

import "time"

// ─── Activity Types ─────────────────────────────────────────────────────────

// Kind is one of the tracked activity categories.
type Kind string

const (
	KindMood     Kind = "mood"
	KindJournal  Kind = "journal"
	KindExercise Kind = "exercise"

	// KindOverall is the synthetic aggregate streak kind: any activity of
	// any kind counts toward it. Never used on ActivityRecord rows.
	KindOverall Kind = "overall"
)

// RecordKinds are the kinds an ActivityRecord may carry (excludes overall).
func RecordKinds() []Kind {
	return []Kind{KindMood, KindJournal, KindExercise}
}

// StreakKinds are all kinds that carry a StreakState row.
func StreakKinds() []Kind {
	return []Kind{KindMood, KindJournal, KindExercise, KindOverall}
}

// Valid reports whether k names a record kind.
func (k Kind) Valid() bool {
	switch k {
	case KindMood, KindJournal, KindExercise:
		return true
	}
	return false
}

// Mood score bounds. Scores are 1 (lowest) to 5 (highest).
const (
	MoodMin = 1
	MoodMax = 5
)

// ActivityRecord is one logged event. Immutable once created.
// Kind-specific payload: mood carries Score+Tags, journal carries Text,
// exercise carries Completed.
type ActivityRecord struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"` // full instant, keeps time-of-day

	Score     int      `json:"score,omitempty"`     // mood: 1–5
	Tags      []string `json:"tags,omitempty"`      // mood: activity tags
	Text      string   `json:"text,omitempty"`      // journal
	Completed bool     `json:"completed,omitempty"` // exercise
}

// Day returns the record's local calendar day (time-of-day dropped).
func (r ActivityRecord) Day() time.Time {
	return DayOf(r.OccurredAt)
}

// DayOf truncates t to its local calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DailySummary reduces one calendar day's mood entries to a mean score.
type DailySummary struct {
	Date       time.Time `json:"date"` // calendar day
	MeanMood   float64   `json:"mean_mood"`
	EntryCount int       `json:"entry_count"`
}
