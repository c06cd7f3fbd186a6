package domain

// ─── Insight Types ──────────────────────────────────────────────────────────

// InsightType categorizes a pattern insight.
type InsightType string

const (
	InsightStreak      InsightType = "streak"
	InsightTrend       InsightType = "trend"
	InsightDayPattern  InsightType = "day_pattern"
	InsightCorrelation InsightType = "activity_correlation"
	InsightTimePattern InsightType = "time_pattern"
	InsightMilestone   InsightType = "milestone"
)

// InsightPriority orders insights for display.
type InsightPriority string

const (
	PriorityHigh   InsightPriority = "high"
	PriorityMedium InsightPriority = "medium"
	PriorityLow    InsightPriority = "low"
)

// Insight is a descriptive observation about past mood patterns.
// Ephemeral: recomputed each analysis pass, never persisted. Recomputation
// may reorder or drop previously shown insights — IDs carry no identity
// across runs.
type Insight struct {
	ID          string          `json:"id"`
	Type        InsightType     `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    InsightPriority `json:"priority"`
}
