package domain

import "time"

// ─── Badge Types ────────────────────────────────────────────────────────────

// RequirementType tags the Requirement variant.
// Evaluation lives in one place (the badge engine's switch) so adding a
// variant never touches unrelated call sites.
type RequirementType string

const (
	// ReqEntryCount: total entries of Kind ≥ Threshold.
	ReqEntryCount RequirementType = "entry_count"
	// ReqStreakDays: current streak of Kind ≥ Threshold days.
	ReqStreakDays RequirementType = "streak_days"
	// ReqDaysTracked: distinct calendar days with any activity ≥ Threshold.
	ReqDaysTracked RequirementType = "days_tracked"
	// ReqTagsUsed: distinct activity tags ever logged ≥ Threshold.
	ReqTagsUsed RequirementType = "tags_used"
	// ReqMoodRange: all five mood scores logged at least once.
	ReqMoodRange RequirementType = "mood_range"
	// ReqSpecial: named multi-field condition (see SpecialCondition).
	ReqSpecial RequirementType = "special"
)

// SpecialCondition names a ReqSpecial predicate.
type SpecialCondition string

const (
	// SpecialComeback: rebuilt a streak after losing a long one.
	// longest ≥ 7 and 3 ≤ current < longest, on the overall streak.
	SpecialComeback SpecialCondition = "comeback"
)

// Requirement is the tagged-variant unlock rule for one badge.
// Fields beyond Type are meaningful per variant only.
type Requirement struct {
	Type      RequirementType  `json:"type"`
	Kind      Kind             `json:"kind,omitempty"`      // entry_count, streak_days
	Threshold int              `json:"threshold,omitempty"` // entry_count, streak_days, days_tracked, tags_used
	Special   SpecialCondition `json:"special,omitempty"`   // special
}

// BadgeDef defines a single badge in the static catalog. Not persisted.
type BadgeDef struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Requirement Requirement `json:"requirement"`
}

// BadgeAward records when a badge was earned.
// At most one award exists per badge ID, ever.
type BadgeAward struct {
	BadgeID  string    `json:"badge_id"`
	EarnedAt time.Time `json:"earned_at"`
	Metadata string    `json:"metadata,omitempty"`
}
