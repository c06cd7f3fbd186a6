// Package wellness is the engine facade: one service that orchestrates
// activity logging and the downstream analytics pass (streak updates,
// badge evaluation, pattern and trigger detection). UI surfaces — the CLI
// and the HTTP API — go through this service only.
package wellness

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bloomwell/bloom/internal/app/badge"
	"github.com/bloomwell/bloom/internal/app/insight"
	"github.com/bloomwell/bloom/internal/app/protection"
	"github.com/bloomwell/bloom/internal/app/stats"
	"github.com/bloomwell/bloom/internal/app/streak"
	"github.com/bloomwell/bloom/internal/app/trigger"
	"github.com/bloomwell/bloom/internal/domain"
	"github.com/bloomwell/bloom/internal/infra/metrics"
	"github.com/bloomwell/bloom/internal/infra/sqlite"
)

// Service wires the analytics engine's parts behind one handle.
type Service struct {
	db         *sqlite.DB
	streaks    *streak.Service
	protection *protection.Service
	badges     *badge.Engine
	stats      *stats.Collector
	triggers   *trigger.Service
}

// NewService creates the engine facade. protectionCap ≤ 0 selects the
// default monthly cap.
func NewService(db *sqlite.DB, protectionCap int) *Service {
	return &Service{
		db:         db,
		streaks:    streak.NewService(db),
		protection: protection.NewService(db, protectionCap),
		badges:     badge.NewEngine(db),
		stats:      stats.NewCollector(db),
		triggers:   trigger.NewService(db),
	}
}

// Sub-service accessors for surfaces that need direct reads.
func (s *Service) Streaks() *streak.Service        { return s.streaks }
func (s *Service) Protection() *protection.Service { return s.protection }
func (s *Service) Badges() *badge.Engine           { return s.badges }
func (s *Service) Stats() *stats.Collector         { return s.stats }
func (s *Service) Triggers() *trigger.Service      { return s.triggers }

// ─── Activity Logging ───────────────────────────────────────────────────────

// LogResult is what one logged activity produced: the stored record, the
// refreshed streak state for its kind, and any badges it unlocked. The
// caller surfaces celebrations — the engine has no UI side effects.
type LogResult struct {
	Record    domain.ActivityRecord `json:"record"`
	Streak    domain.StreakState    `json:"streak"`
	NewBadges []domain.BadgeAward   `json:"new_badges,omitempty"`
}

// LogMood records a mood entry (score 1–5 plus activity tags) and runs the
// downstream analytics pass.
func (s *Service) LogMood(score int, tags []string, at time.Time) (LogResult, error) {
	if score < domain.MoodMin || score > domain.MoodMax {
		return LogResult{}, domain.ErrInvalidMoodScore
	}
	return s.logActivity(domain.ActivityRecord{
		Kind:       domain.KindMood,
		OccurredAt: at,
		Score:      score,
		Tags:       tags,
	})
}

// LogJournal records a journal entry.
func (s *Service) LogJournal(text string, at time.Time) (LogResult, error) {
	if text == "" {
		return LogResult{}, domain.ErrEmptyJournal
	}
	return s.logActivity(domain.ActivityRecord{
		Kind:       domain.KindJournal,
		OccurredAt: at,
		Text:       text,
	})
}

// LogExercise records an exercise session.
func (s *Service) LogExercise(completed bool, at time.Time) (LogResult, error) {
	return s.logActivity(domain.ActivityRecord{
		Kind:       domain.KindExercise,
		OccurredAt: at,
		Completed:  completed,
	})
}

// logActivity appends the record, updates the kind and overall streaks,
// and evaluates badges. Streak updates and badge awards are idempotent by
// construction, so a retried call cannot corrupt state.
func (s *Service) logActivity(r domain.ActivityRecord) (LogResult, error) {
	r.ID = uuid.NewString()
	if r.OccurredAt.IsZero() {
		r.OccurredAt = time.Now()
	}

	if err := s.db.InsertActivity(r); err != nil {
		return LogResult{}, err
	}
	metrics.ActivitiesLogged.WithLabelValues(string(r.Kind)).Inc()

	st, err := s.streaks.Record(r.Kind, r.OccurredAt)
	if err != nil {
		return LogResult{}, fmt.Errorf("update %s streak: %w", r.Kind, err)
	}
	if _, err := s.streaks.Record(domain.KindOverall, r.OccurredAt); err != nil {
		return LogResult{}, fmt.Errorf("update overall streak: %w", err)
	}

	snapshot, err := s.stats.Snapshot()
	if err != nil {
		return LogResult{}, fmt.Errorf("stats snapshot: %w", err)
	}
	awards, err := s.badges.Evaluate(snapshot)
	if err != nil {
		return LogResult{}, fmt.Errorf("evaluate badges: %w", err)
	}

	return LogResult{Record: r, Streak: st, NewBadges: awards}, nil
}

// ─── Analysis ───────────────────────────────────────────────────────────────

// Insights runs the pattern detector over the full mood history.
// A data-access failure propagates; callers should treat it as "no
// insights this time", not as fatal.
func (s *Service) Insights() ([]domain.Insight, error) {
	entries, err := s.stats.MoodEntries()
	if err != nil {
		return nil, fmt.Errorf("load mood entries: %w", err)
	}

	found := insight.DetectPatterns(entries, stats.Summarize(entries))
	for _, in := range found {
		metrics.InsightsDetected.WithLabelValues(string(in.Type)).Inc()
	}
	return found, nil
}

// ActiveTriggers runs the proactive detector and filters dismissed IDs.
// Last check-in is the most recent logged activity of any kind.
func (s *Service) ActiveTriggers() ([]domain.ProactiveTrigger, error) {
	entries, err := s.stats.MoodEntries()
	if err != nil {
		return nil, fmt.Errorf("load mood entries: %w", err)
	}
	lastCheckIn, err := s.db.LastActivityAt()
	if err != nil {
		return nil, err
	}

	return s.triggers.Active(entries, stats.Summarize(entries), lastCheckIn, time.Now())
}
