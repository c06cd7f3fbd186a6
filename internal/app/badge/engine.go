// Package badge implements the one-time achievement badge rule engine.
// Badges unlock by declarative requirements evaluated against an
// ActivityStats snapshot; awarding is idempotent — evaluating twice with
// unchanged data never double-awards.
package badge

import (
	"fmt"
	"log"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
	"github.com/bloomwell/bloom/internal/infra/metrics"
	"github.com/bloomwell/bloom/internal/infra/sqlite"
)

// Comeback condition constants: the user rebuilt at least minComebackDays
// of streak after losing a streak of comebackLongest or more.
const (
	comebackLongest = 7
	minComebackDays = 3
)

// Engine evaluates the badge catalog against stats snapshots.
type Engine struct {
	db   *sqlite.DB
	defs []domain.BadgeDef
}

// NewEngine creates a badge engine with the full catalog.
func NewEngine(db *sqlite.DB) *Engine {
	return &Engine{db: db, defs: Catalog()}
}

// Evaluate checks every not-yet-awarded badge against stats and persists
// any new awards. Returns only the newly awarded badges; surfacing
// celebration UI is the caller's concern. A malformed requirement is
// skipped with a warning, never awarded and never fatal.
func (e *Engine) Evaluate(stats domain.ActivityStats) ([]domain.BadgeAward, error) {
	awarded, err := e.db.AwardedBadgeIDs()
	if err != nil {
		return nil, fmt.Errorf("load awarded set: %w", err)
	}

	var newAwards []domain.BadgeAward
	for _, def := range e.defs {
		if awarded[def.ID] {
			continue
		}

		met, err := Met(def.Requirement, stats)
		if err != nil {
			// Unknown requirement variants are skipped, never awarded.
			log.Printf("badge %s: skipping requirement: %v", def.ID, err)
			continue
		}
		if !met {
			continue
		}

		now := time.Now()
		isNew, err := e.db.AwardBadge(def.ID, now, "")
		if err != nil {
			return nil, fmt.Errorf("award %s: %w", def.ID, err)
		}
		if isNew {
			newAwards = append(newAwards, domain.BadgeAward{BadgeID: def.ID, EarnedAt: now})
			metrics.BadgesAwarded.Inc()
		}
	}
	return newAwards, nil
}

// HasBadge reports whether the badge has been earned.
func (e *Engine) HasBadge(id string) (bool, error) {
	return e.db.IsBadgeAwarded(id)
}

// Awards returns all earned badges, newest first.
func (e *Engine) Awards() ([]domain.BadgeAward, error) {
	return e.db.ListBadgeAwards()
}

// Definitions returns the full catalog (for display).
func (e *Engine) Definitions() []domain.BadgeDef {
	return e.defs
}

// ProgressTowards estimates completion of a badge as 0–100, computed from
// the same stats the requirement check reads.
func (e *Engine) ProgressTowards(id string, stats domain.ActivityStats) (int, error) {
	for _, def := range e.defs {
		if def.ID == id {
			return Progress(def.Requirement, stats), nil
		}
	}
	return 0, domain.ErrBadgeNotFound
}

// Met evaluates one requirement against a stats snapshot. Pure.
// Unknown variants return ErrUnknownRequirement.
func Met(r domain.Requirement, s domain.ActivityStats) (bool, error) {
	switch r.Type {
	case domain.ReqEntryCount:
		return s.EntryCount(r.Kind) >= r.Threshold, nil
	case domain.ReqStreakDays:
		return s.CurrentStreak(r.Kind) >= r.Threshold, nil
	case domain.ReqDaysTracked:
		return s.DaysTracked >= r.Threshold, nil
	case domain.ReqTagsUsed:
		return s.DistinctTags >= r.Threshold, nil
	case domain.ReqMoodRange:
		return s.MoodValuesSeen >= domain.MoodMax, nil
	case domain.ReqSpecial:
		return metSpecial(r.Special, s)
	default:
		return false, fmt.Errorf("%w: %q", domain.ErrUnknownRequirement, r.Type)
	}
}

func metSpecial(c domain.SpecialCondition, s domain.ActivityStats) (bool, error) {
	switch c {
	case domain.SpecialComeback:
		longest := s.LongestStreak(domain.KindOverall)
		current := s.CurrentStreak(domain.KindOverall)
		return longest >= comebackLongest && current >= minComebackDays && current < longest, nil
	default:
		return false, fmt.Errorf("%w: special %q", domain.ErrUnknownRequirement, c)
	}
}

// Progress returns requirement completion as a 0–100 ratio. Pure.
// Unknown variants report 0.
func Progress(r domain.Requirement, s domain.ActivityStats) int {
	switch r.Type {
	case domain.ReqEntryCount:
		return ratio(s.EntryCount(r.Kind), r.Threshold)
	case domain.ReqStreakDays:
		return ratio(s.CurrentStreak(r.Kind), r.Threshold)
	case domain.ReqDaysTracked:
		return ratio(s.DaysTracked, r.Threshold)
	case domain.ReqTagsUsed:
		return ratio(s.DistinctTags, r.Threshold)
	case domain.ReqMoodRange:
		return ratio(s.MoodValuesSeen, domain.MoodMax)
	case domain.ReqSpecial:
		if c := r.Special; c == domain.SpecialComeback {
			// Two-stage: first earn a long streak, then rebuild.
			if s.LongestStreak(domain.KindOverall) < comebackLongest {
				return ratio(s.LongestStreak(domain.KindOverall), comebackLongest) / 2
			}
			if met, _ := metSpecial(c, s); met {
				return 100
			}
			return 50 + ratio(s.CurrentStreak(domain.KindOverall), minComebackDays)/2
		}
		return 0
	default:
		return 0
	}
}

func ratio(have, want int) int {
	if want <= 0 {
		return 100
	}
	pct := have * 100 / want
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
