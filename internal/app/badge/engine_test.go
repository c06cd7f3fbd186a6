package badge_test

import (
	"errors"
	"testing"

	"github.com/bloomwell/bloom/internal/app/badge"
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

func statsWith(mood int, streaks map[domain.Kind]int) domain.ActivityStats {
	return domain.ActivityStats{
		MoodEntries:    mood,
		CurrentStreaks: streaks,
		LongestStreaks: map[domain.Kind]int{},
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Evaluate
// ═══════════════════════════════════════════════════════════════════════════

func TestEvaluate_AwardsFirstMood(t *testing.T) {
	engine := badge.NewEngine(testDB(t))

	awards, err := engine.Evaluate(statsWith(1, nil))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(awards) != 1 || awards[0].BadgeID != "first_mood" {
		t.Fatalf("expected exactly [first_mood], got %v", awards)
	}

	has, err := engine.HasBadge("first_mood")
	if err != nil {
		t.Fatalf("has badge: %v", err)
	}
	if !has {
		t.Error("award not persisted")
	}
}

func TestEvaluate_IdempotentOnUnchangedStats(t *testing.T) {
	engine := badge.NewEngine(testDB(t))
	stats := statsWith(25, map[domain.Kind]int{domain.KindOverall: 3})

	first, err := engine.Evaluate(stats)
	if err != nil {
		t.Fatalf("first evaluate: %v", err)
	}
	if len(first) != 3 { // first_mood, mood_25, streak_3
		t.Fatalf("expected 3 new awards, got %d: %v", len(first), first)
	}

	second, err := engine.Evaluate(stats)
	if err != nil {
		t.Fatalf("second evaluate: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second pass with unchanged stats awarded %v", second)
	}
}

func TestEvaluate_ThresholdBoundary(t *testing.T) {
	engine := badge.NewEngine(testDB(t))

	awards, err := engine.Evaluate(statsWith(24, nil))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for _, a := range awards {
		if a.BadgeID == "mood_25" {
			t.Fatal("mood_25 awarded one entry early")
		}
	}

	awards, err = engine.Evaluate(statsWith(25, nil))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	found := false
	for _, a := range awards {
		if a.BadgeID == "mood_25" {
			found = true
		}
	}
	if !found {
		t.Error("mood_25 not awarded at exactly 25 entries")
	}
}

func TestEvaluate_Comeback(t *testing.T) {
	engine := badge.NewEngine(testDB(t))

	// A long streak that is still running is not a comeback.
	stats := domain.ActivityStats{
		CurrentStreaks: map[domain.Kind]int{domain.KindOverall: 8},
		LongestStreaks: map[domain.Kind]int{domain.KindOverall: 8},
	}
	awards, err := engine.Evaluate(stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for _, a := range awards {
		if a.BadgeID == "comeback" {
			t.Fatal("comeback awarded while original streak still running")
		}
	}

	// Lost a 10-day streak, rebuilt 3 days: comeback.
	stats = domain.ActivityStats{
		CurrentStreaks: map[domain.Kind]int{domain.KindOverall: 3},
		LongestStreaks: map[domain.Kind]int{domain.KindOverall: 10},
	}
	awards, err = engine.Evaluate(stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	found := false
	for _, a := range awards {
		if a.BadgeID == "comeback" {
			found = true
		}
	}
	if !found {
		t.Error("comeback not awarded after rebuilding a lost streak")
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Met / Progress
// ═══════════════════════════════════════════════════════════════════════════

func TestMet_UnknownRequirement(t *testing.T) {
	_, err := badge.Met(domain.Requirement{Type: "mystery"}, domain.ActivityStats{})
	if !errors.Is(err, domain.ErrUnknownRequirement) {
		t.Errorf("expected ErrUnknownRequirement, got %v", err)
	}
}

func TestMet_MoodRange(t *testing.T) {
	r := domain.Requirement{Type: domain.ReqMoodRange}

	met, err := badge.Met(r, domain.ActivityStats{MoodValuesSeen: 4})
	if err != nil {
		t.Fatalf("met: %v", err)
	}
	if met {
		t.Error("mood range met with only 4 of 5 values seen")
	}

	met, err = badge.Met(r, domain.ActivityStats{MoodValuesSeen: 5})
	if err != nil {
		t.Fatalf("met: %v", err)
	}
	if !met {
		t.Error("mood range not met with all 5 values seen")
	}
}

func TestProgress_EntryCount(t *testing.T) {
	r := domain.Requirement{Type: domain.ReqEntryCount, Kind: domain.KindMood, Threshold: 25}

	if got := badge.Progress(r, statsWith(0, nil)); got != 0 {
		t.Errorf("progress at 0 entries = %d, want 0", got)
	}
	if got := badge.Progress(r, statsWith(10, nil)); got != 40 {
		t.Errorf("progress at 10/25 = %d, want 40", got)
	}
	if got := badge.Progress(r, statsWith(200, nil)); got != 100 {
		t.Errorf("progress caps at 100, got %d", got)
	}
}

func TestProgress_ComebackStages(t *testing.T) {
	r := domain.Requirement{Type: domain.ReqSpecial, Special: domain.SpecialComeback}

	// Stage one: still building the qualifying long streak.
	early := domain.ActivityStats{
		LongestStreaks: map[domain.Kind]int{domain.KindOverall: 3},
		CurrentStreaks: map[domain.Kind]int{domain.KindOverall: 3},
	}
	if got := badge.Progress(r, early); got >= 50 {
		t.Errorf("stage-one progress = %d, want < 50", got)
	}

	// Fully met.
	done := domain.ActivityStats{
		LongestStreaks: map[domain.Kind]int{domain.KindOverall: 10},
		CurrentStreaks: map[domain.Kind]int{domain.KindOverall: 4},
	}
	if got := badge.Progress(r, done); got != 100 {
		t.Errorf("met comeback progress = %d, want 100", got)
	}
}

func TestProgressTowards_UnknownBadge(t *testing.T) {
	engine := badge.NewEngine(testDB(t))
	_, err := engine.ProgressTowards("nope", domain.ActivityStats{})
	if !errors.Is(err, domain.ErrBadgeNotFound) {
		t.Errorf("expected ErrBadgeNotFound, got %v", err)
	}
}

func TestCatalog_UniqueIDsAndValidRequirements(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range badge.Catalog() {
		if seen[def.ID] {
			t.Errorf("duplicate badge id %q", def.ID)
		}
		seen[def.ID] = true

		if _, err := badge.Met(def.Requirement, domain.ActivityStats{}); err != nil {
			t.Errorf("badge %q: requirement does not evaluate: %v", def.ID, err)
		}
	}
}
