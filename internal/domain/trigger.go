package domain

import "time"

// ─── Proactive Trigger Types ────────────────────────────────────────────────

// TriggerType categorizes a proactive outreach trigger.
type TriggerType string

const (
	TriggerStruggling TriggerType = "struggling"
	TriggerInactive   TriggerType = "inactive"
	TriggerToughDay   TriggerType = "tough_day_ahead"
	TriggerMoodDip    TriggerType = "mood_dip"
)

// ProactiveTrigger is an outreach-oriented signal. IDs are deterministic
// per type+context so a repeat of the same condition is detectable; the
// dismissed-ID set is the only durable state of this subsystem.
type ProactiveTrigger struct {
	ID         string          `json:"id"`
	Type       TriggerType     `json:"type"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Context    string          `json:"context"` // handed verbatim to the conversational consumer
	Priority   InsightPriority `json:"priority"`
	DetectedAt time.Time       `json:"detected_at"`
	ExpiresAt  time.Time       `json:"expires_at,omitzero"`
}

// Expired reports whether the trigger has passed its expiry.
func (t ProactiveTrigger) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// PriorityRank maps priority to sort order: high < medium < low.
func PriorityRank(p InsightPriority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
