// Package trigger implements the proactive outreach detector: it flags
// higher-stakes conditions (sustained low mood, inactivity, a historically
// hard day approaching, a sharp mood drop) meant to prompt supportive
// contact. Detection is pure; the dismissed-ID set is the only durable
// state of this subsystem.
package trigger

import (
	"fmt"
	"sort"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
)

// Product-tuned constants — reproduce exactly for behavioral parity.
const (
	strugglingWindowDays = 7
	strugglingLowMean    = 2.0
	strugglingMinDays    = 3

	inactiveMinDays = 3

	toughDayMinEntries = 14
	toughDayMinSamples = 3
	toughDayThreshold  = 0.5

	dipMinSummaries = 5
	dipWindow       = 7
	dipThreshold    = 0.7
)

// Detect runs the four independent checks and returns their triggers
// sorted by priority (high before medium before low, stable otherwise).
// Each check produces at most one trigger. Pure given inputs and now;
// lastCheckIn may be zero if the user has never checked in.
func Detect(entries []domain.ActivityRecord, summaries []domain.DailySummary, lastCheckIn, now time.Time) []domain.ProactiveTrigger {
	var out []domain.ProactiveTrigger

	if t, ok := detectStruggling(entries, now); ok {
		out = append(out, t)
	}
	if t, ok := detectInactive(lastCheckIn, now); ok {
		out = append(out, t)
	}
	if t, ok := detectToughDayAhead(entries, now); ok {
		out = append(out, t)
	}
	if t, ok := detectMoodDip(summaries, now); ok {
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return domain.PriorityRank(out[i].Priority) < domain.PriorityRank(out[j].Priority)
	})
	return out
}

// detectStruggling counts consecutive days — from the most recent day with
// entries in the last strugglingWindowDays, walking back without gaps —
// whose daily mean is at or below strugglingLowMean. Fires at
// strugglingMinDays or more. High priority, expires in 1 day.
func detectStruggling(entries []domain.ActivityRecord, now time.Time) (domain.ProactiveTrigger, bool) {
	windowStart := domain.DayOf(now).AddDate(0, 0, -(strugglingWindowDays - 1))

	sums := make(map[string]float64)
	counts := make(map[string]int)
	latest := time.Time{}
	for _, e := range entries {
		day := e.Day()
		if day.Before(windowStart) {
			continue
		}
		key := dayKey(day)
		sums[key] += float64(e.Score)
		counts[key]++
		if day.After(latest) {
			latest = day
		}
	}
	if latest.IsZero() {
		return domain.ProactiveTrigger{}, false
	}

	lowDays := 0
	for d := latest; ; d = d.AddDate(0, 0, -1) {
		key := dayKey(d)
		n, ok := counts[key]
		if !ok {
			break // gap ends the run
		}
		if sums[key]/float64(n) > strugglingLowMean {
			break
		}
		lowDays++
	}
	if lowDays < strugglingMinDays {
		return domain.ProactiveTrigger{}, false
	}

	return domain.ProactiveTrigger{
		ID:         "struggling-" + dayKey(latest),
		Type:       domain.TriggerStruggling,
		Title:      "Checking In On You",
		Message:    "The last few days look like they've been heavy. Want to talk about it?",
		Context:    fmt.Sprintf("mood has averaged %.1f or lower for %d consecutive days ending %s", strugglingLowMean, lowDays, dayKey(latest)),
		Priority:   domain.PriorityHigh,
		DetectedAt: now,
		ExpiresAt:  now.AddDate(0, 0, 1),
	}, true
}

// detectInactive fires when the user has not checked in for
// inactiveMinDays or more. Medium priority, expires in 2 days.
func detectInactive(lastCheckIn, now time.Time) (domain.ProactiveTrigger, bool) {
	if lastCheckIn.IsZero() {
		return domain.ProactiveTrigger{}, false
	}
	gap := daysBetween(domain.DayOf(lastCheckIn), domain.DayOf(now))
	if gap < inactiveMinDays {
		return domain.ProactiveTrigger{}, false
	}

	return domain.ProactiveTrigger{
		ID:         "inactive-" + dayKey(lastCheckIn),
		Type:       domain.TriggerInactive,
		Title:      "We Miss You",
		Message:    "It's been a few days since your last check-in. How are you doing?",
		Context:    fmt.Sprintf("no check-in for %d days, last seen %s", gap, dayKey(lastCheckIn)),
		Priority:   domain.PriorityMedium,
		DetectedAt: now,
		ExpiresAt:  now.AddDate(0, 0, 2),
	}, true
}

// detectToughDayAhead predicts a historically hard weekday. Needs
// toughDayMinEntries total entries and toughDayMinSamples entries on
// tomorrow's weekday; fires when that weekday's mean mood sits more than
// toughDayThreshold below the all-time mean. Medium priority, expires in
// 1 day — the prediction only covers the coming instance of that day.
func detectToughDayAhead(entries []domain.ActivityRecord, now time.Time) (domain.ProactiveTrigger, bool) {
	if len(entries) < toughDayMinEntries {
		return domain.ProactiveTrigger{}, false
	}

	tomorrow := domain.DayOf(now).AddDate(0, 0, 1)
	target := tomorrow.Weekday()

	var overallSum, daySum float64
	daySamples := 0
	for _, e := range entries {
		overallSum += float64(e.Score)
		if e.OccurredAt.Weekday() == target {
			daySum += float64(e.Score)
			daySamples++
		}
	}
	if daySamples < toughDayMinSamples {
		return domain.ProactiveTrigger{}, false
	}

	overall := overallSum / float64(len(entries))
	dayMean := daySum / float64(daySamples)
	if overall-dayMean <= toughDayThreshold {
		return domain.ProactiveTrigger{}, false
	}

	return domain.ProactiveTrigger{
		ID:         "tough-day-" + dayKey(tomorrow),
		Type:       domain.TriggerToughDay,
		Title:      target.String() + "s Can Be Tough",
		Message:    fmt.Sprintf("Tomorrow is %s, historically a harder day for you. Anything planned that might help?", target),
		Context:    fmt.Sprintf("%ss average %.1f vs %.1f overall across %d samples", target, dayMean, overall, daySamples),
		Priority:   domain.PriorityMedium,
		DetectedAt: now,
		ExpiresAt:  now.AddDate(0, 0, 1),
	}, true
}

// detectMoodDip compares the earlier and later halves of the most recent
// dipWindow daily summaries. Needs dipMinSummaries; a drop beyond
// dipThreshold fires. High priority, expires in 2 days.
func detectMoodDip(summaries []domain.DailySummary, now time.Time) (domain.ProactiveTrigger, bool) {
	if len(summaries) < dipMinSummaries {
		return domain.ProactiveTrigger{}, false
	}

	recent := summaries
	if len(recent) > dipWindow {
		recent = recent[len(recent)-dipWindow:]
	}

	half := len(recent) / 2
	earlier := meanMood(recent[:half])
	later := meanMood(recent[half:])
	drop := earlier - later
	if drop <= dipThreshold {
		return domain.ProactiveTrigger{}, false
	}

	last := recent[len(recent)-1].Date
	return domain.ProactiveTrigger{
		ID:         "mood-dip-" + dayKey(last),
		Type:       domain.TriggerMoodDip,
		Title:      "A Sudden Shift",
		Message:    "Your mood has dropped noticeably this week. Would it help to talk through it?",
		Context:    fmt.Sprintf("mood fell from %.1f to %.1f over the last %d days", earlier, later, len(recent)),
		Priority:   domain.PriorityHigh,
		DetectedAt: now,
		ExpiresAt:  now.AddDate(0, 0, 2),
	}, true
}

func meanMood(summaries []domain.DailySummary) float64 {
	if len(summaries) == 0 {
		return 0
	}
	var sum float64
	for _, s := range summaries {
		sum += s.MeanMood
	}
	return sum / float64(len(summaries))
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
