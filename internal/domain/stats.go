package domain

// ─── Aggregate Stats ────────────────────────────────────────────────────────

// ActivityStats is a snapshot of aggregate user state fed to badge
// requirement evaluation. Built fresh by the stats collector each pass;
// requirement checks are pure functions of this snapshot.
type ActivityStats struct {
	MoodEntries     int `json:"mood_entries"`
	JournalEntries  int `json:"journal_entries"`
	ExerciseEntries int `json:"exercise_entries"`

	// Streak values per kind, copied from the streak rows at snapshot time.
	CurrentStreaks map[Kind]int `json:"current_streaks"`
	LongestStreaks map[Kind]int `json:"longest_streaks"`

	DaysTracked    int `json:"days_tracked"`    // distinct calendar days with any activity
	DistinctTags   int `json:"distinct_tags"`   // distinct activity tags ever used
	MoodValuesSeen int `json:"mood_values_seen"` // distinct scores 1–5 logged
}

// EntryCount returns the entry total for one record kind.
func (s ActivityStats) EntryCount(k Kind) int {
	switch k {
	case KindMood:
		return s.MoodEntries
	case KindJournal:
		return s.JournalEntries
	case KindExercise:
		return s.ExerciseEntries
	}
	return 0
}

// CurrentStreak returns the current streak for k, 0 if untracked.
func (s ActivityStats) CurrentStreak(k Kind) int {
	return s.CurrentStreaks[k]
}

// LongestStreak returns the longest streak for k, 0 if untracked.
func (s ActivityStats) LongestStreak(k Kind) int {
	return s.LongestStreaks[k]
}
