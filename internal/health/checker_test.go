package health

import (
	"context"
	"testing"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
	"github.com/bloomwell/bloom/internal/infra/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ─── Checker Tests ──────────────────────────────────────────────────────────

func TestNewChecker(t *testing.T) {
	c := NewChecker(newTestDB(t), t.TempDir())
	if c == nil {
		t.Fatal("NewChecker() returned nil")
	}
	if len(c.checks) != 3 {
		t.Errorf("checks = %d, want 3", len(c.checks))
	}
}

func TestChecker_AllHealthy(t *testing.T) {
	c := NewChecker(newTestDB(t), t.TempDir())
	c.runAll(context.Background())

	if !c.IsHealthy() {
		t.Errorf("expected healthy, statuses: %+v", c.Statuses())
	}
	statuses := c.Statuses()
	if len(statuses) != 3 {
		t.Fatalf("statuses = %d, want 3", len(statuses))
	}
	for _, s := range statuses {
		if !s.Healthy {
			t.Errorf("check %s unhealthy: %s", s.Name, s.Error)
		}
		if s.CheckedAt.IsZero() {
			t.Errorf("check %s missing timestamp", s.Name)
		}
	}
}

func TestChecker_StreakInvariantViolation(t *testing.T) {
	db := newTestDB(t)
	bad := domain.StreakState{
		Kind:          domain.KindMood,
		CurrentStreak: 5,
		LongestStreak: 2, // corrupt: longest below current
		UpdatedAt:     time.Now(),
	}
	if err := db.UpsertStreak(bad); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	c := NewChecker(db, t.TempDir())
	c.runAll(context.Background())

	if c.IsHealthy() {
		t.Error("expected unhealthy with corrupt streak row")
	}
	found := false
	for _, s := range c.Statuses() {
		if s.Name == "streak_invariant" && !s.Healthy {
			found = true
		}
	}
	if !found {
		t.Error("streak_invariant check did not report the violation")
	}
}

func TestChecker_MissingDataDirIsFine(t *testing.T) {
	c := NewChecker(newTestDB(t), "/nonexistent/bloom-data")
	c.runAll(context.Background())

	for _, s := range c.Statuses() {
		if s.Name == "data_dir" && !s.Healthy {
			t.Errorf("data_dir should tolerate a missing directory: %s", s.Error)
		}
	}
}
