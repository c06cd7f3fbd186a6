// Package metrics provides Prometheus metrics for Bloom — counters and
// gauges for activity logging, streaks, badges, protection, and analysis.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Activity ───────────────────────────────────────────────────────────────

// ActivitiesLogged tracks logged activity records by kind.
var ActivitiesLogged = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bloom",
	Name:      "activities_logged_total",
	Help:      "Total activity records logged.",
}, []string{"kind"})

// ─── Streaks ────────────────────────────────────────────────────────────────

// StreakCurrent tracks the current streak length per kind.
var StreakCurrent = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "bloom",
	Name:      "streak_current_days",
	Help:      "Current streak length in days.",
}, []string{"kind"})

// ─── Badges ─────────────────────────────────────────────────────────────────

// BadgesAwarded tracks newly awarded badges.
var BadgesAwarded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bloom",
	Name:      "badges_awarded_total",
	Help:      "Total badges awarded.",
})

// ─── Streak Protection ──────────────────────────────────────────────────────

// ProtectionConsumed tracks successful protection token consumptions.
var ProtectionConsumed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bloom",
	Name:      "protection_consumed_total",
	Help:      "Total streak protection tokens consumed.",
})

// ProtectionDenied tracks consumption attempts denied by the monthly cap.
var ProtectionDenied = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bloom",
	Name:      "protection_denied_total",
	Help:      "Total protection consumption attempts denied by the cap.",
})

// ─── Analysis ───────────────────────────────────────────────────────────────

// InsightsDetected tracks pattern insights produced, by type.
var InsightsDetected = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bloom",
	Name:      "insights_detected_total",
	Help:      "Total pattern insights produced.",
}, []string{"type"})

// TriggersDetected tracks proactive triggers produced, by type.
var TriggersDetected = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bloom",
	Name:      "triggers_detected_total",
	Help:      "Total proactive triggers produced.",
}, []string{"type"})
