package stats_test

import (
	"testing"
	"time"

	"github.com/bloomwell/bloom/internal/app/stats"
	"github.com/bloomwell/bloom/internal/domain"
	"github.com/bloomwell/bloom/internal/infra/sqlite"
)

func testDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func insert(t *testing.T, db *sqlite.DB, r domain.ActivityRecord) {
	t.Helper()
	if err := db.InsertActivity(r); err != nil {
		t.Fatalf("insert: %v", err)
	}
}

func TestSnapshot_Aggregates(t *testing.T) {
	db := testDB(t)
	collector := stats.NewCollector(db)

	day := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	insert(t, db, domain.ActivityRecord{ID: "m1", Kind: domain.KindMood, OccurredAt: day, Score: 2, Tags: []string{"rain"}})
	insert(t, db, domain.ActivityRecord{ID: "m2", Kind: domain.KindMood, OccurredAt: day.Add(3 * time.Hour), Score: 4, Tags: []string{"yoga", "rain"}})
	insert(t, db, domain.ActivityRecord{ID: "m3", Kind: domain.KindMood, OccurredAt: day.AddDate(0, 0, 1), Score: 4})
	insert(t, db, domain.ActivityRecord{ID: "j1", Kind: domain.KindJournal, OccurredAt: day, Text: "long day"})
	insert(t, db, domain.ActivityRecord{ID: "e1", Kind: domain.KindExercise, OccurredAt: day.AddDate(0, 0, 2), Completed: true})

	if err := db.UpsertStreak(domain.StreakState{Kind: domain.KindOverall, CurrentStreak: 3, LongestStreak: 6}); err != nil {
		t.Fatalf("upsert streak: %v", err)
	}

	snap, err := collector.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if snap.MoodEntries != 3 || snap.JournalEntries != 1 || snap.ExerciseEntries != 1 {
		t.Errorf("entry counts: %+v", snap)
	}
	if snap.DaysTracked != 3 {
		t.Errorf("days tracked = %d, want 3", snap.DaysTracked)
	}
	if snap.DistinctTags != 2 {
		t.Errorf("distinct tags = %d, want 2", snap.DistinctTags)
	}
	if snap.MoodValuesSeen != 2 {
		t.Errorf("mood values seen = %d, want 2 (scores 2 and 4)", snap.MoodValuesSeen)
	}
	if snap.CurrentStreak(domain.KindOverall) != 3 || snap.LongestStreak(domain.KindOverall) != 6 {
		t.Errorf("streaks not copied into snapshot: %+v", snap)
	}
}

func TestSummarize_OneRowPerDaySortedOldestFirst(t *testing.T) {
	day := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	entries := []domain.ActivityRecord{
		{Kind: domain.KindMood, OccurredAt: day.AddDate(0, 0, 1), Score: 5},
		{Kind: domain.KindMood, OccurredAt: day, Score: 2},
		{Kind: domain.KindMood, OccurredAt: day.Add(6 * time.Hour), Score: 4},
	}

	got := stats.Summarize(entries)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if !got[0].Date.Before(got[1].Date) {
		t.Error("summaries not sorted oldest first")
	}
	if got[0].MeanMood != 3 || got[0].EntryCount != 2 {
		t.Errorf("first day summary = %+v, want mean 3 of 2 entries", got[0])
	}
	if got[1].MeanMood != 5 || got[1].EntryCount != 1 {
		t.Errorf("second day summary = %+v", got[1])
	}
}

func TestSummarize_Empty(t *testing.T) {
	if got := stats.Summarize(nil); len(got) != 0 {
		t.Errorf("expected no summaries for no entries, got %v", got)
	}
}
