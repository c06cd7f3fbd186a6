// Package stats builds the aggregate snapshots consumed by the badge
// engine and the pattern/trigger detectors: per-kind counts, streak
// values, distinct-value sets, and daily mood summaries.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
	"github.com/bloomwell/bloom/internal/infra/sqlite"
)

// Collector assembles ActivityStats snapshots from the activity log.
type Collector struct {
	db *sqlite.DB
}

// NewCollector creates a stats collector.
func NewCollector(db *sqlite.DB) *Collector {
	return &Collector{db: db}
}

// Snapshot computes a fresh aggregate stats snapshot. Requirement checks
// downstream are pure functions of this value.
func (c *Collector) Snapshot() (domain.ActivityStats, error) {
	var s domain.ActivityStats
	s.CurrentStreaks = make(map[domain.Kind]int)
	s.LongestStreaks = make(map[domain.Kind]int)

	streaks, err := c.db.AllStreaks()
	if err != nil {
		return s, fmt.Errorf("load streaks: %w", err)
	}
	for _, st := range streaks {
		s.CurrentStreaks[st.Kind] = st.CurrentStreak
		s.LongestStreaks[st.Kind] = st.LongestStreak
	}

	days := make(map[string]bool)
	tags := make(map[string]bool)
	moods := make(map[int]bool)

	for _, kind := range domain.RecordKinds() {
		entries, err := c.db.AllEntries(kind)
		if err != nil {
			return s, fmt.Errorf("load %s entries: %w", kind, err)
		}
		for _, e := range entries {
			days[e.Day().Format("2006-01-02")] = true
			if e.Kind == domain.KindMood {
				moods[e.Score] = true
				for _, tag := range e.Tags {
					tags[tag] = true
				}
			}
		}
		switch kind {
		case domain.KindMood:
			s.MoodEntries = len(entries)
		case domain.KindJournal:
			s.JournalEntries = len(entries)
		case domain.KindExercise:
			s.ExerciseEntries = len(entries)
		}
	}

	s.DaysTracked = len(days)
	s.DistinctTags = len(tags)
	s.MoodValuesSeen = len(moods)
	return s, nil
}

// MoodEntries returns all mood records, oldest first.
func (c *Collector) MoodEntries() ([]domain.ActivityRecord, error) {
	return c.db.AllEntries(domain.KindMood)
}

// Summarize reduces mood entries to one DailySummary per calendar day,
// sorted oldest first. Pure.
func Summarize(entries []domain.ActivityRecord) []domain.DailySummary {
	type acc struct {
		sum   float64
		count int
		day   time.Time
	}
	byDay := make(map[string]*acc)
	for _, e := range entries {
		key := e.Day().Format("2006-01-02")
		a, ok := byDay[key]
		if !ok {
			a = &acc{day: e.Day()}
			byDay[key] = a
		}
		a.sum += float64(e.Score)
		a.count++
	}

	out := make([]domain.DailySummary, 0, len(byDay))
	for _, a := range byDay {
		out = append(out, domain.DailySummary{
			Date:       a.day,
			MeanMood:   a.sum / float64(a.count),
			EntryCount: a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
