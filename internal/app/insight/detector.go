// Package insight implements batch pattern analysis over the mood time
// series. DetectPatterns is pure and deterministic given the same inputs,
// safe to re-run speculatively, no side effects.
package insight

import (
	"fmt"
	"sort"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
)

// Product-tuned constants. Behavioral parity depends on these exact
// values — do not derive or round them.
const (
	minEntries  = 3
	maxInsights = 6

	trendWindow    = 7
	trendMinDays   = 5
	trendThreshold = 0.5

	weekdayMinPerBucket = 2
	weekdayMinBuckets   = 3
	weekdayThreshold    = 0.3

	tagMinEntries  = 3
	tagMaxInsights = 2
	tagThreshold   = 0.5

	timeBucketMinEntries = 3
	timeBucketMinBuckets = 2
	timeThreshold        = 0.5

	peakDayMinMean = 4.5
)

// DetectPatterns runs the independent detectors in a fixed order and
// returns at most maxInsights results. Truncation is by source order, not
// a cross-detector priority merge — a deliberate simplicity trade-off.
// Fewer than minEntries entries yields no insights.
func DetectPatterns(entries []domain.ActivityRecord, summaries []domain.DailySummary) []domain.Insight {
	if len(entries) < minEntries {
		return nil
	}

	var insights []domain.Insight
	insights = append(insights, detectStreak(summaries)...)
	insights = append(insights, detectTrend(summaries)...)
	insights = append(insights, detectWeekday(entries)...)
	insights = append(insights, detectTagCorrelation(entries)...)
	insights = append(insights, detectTimeOfDay(entries)...)
	insights = append(insights, detectPeakDay(summaries)...)

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// detectStreak finds the longest run of consecutive calendar days with a
// daily summary, walking backward from the most recent summary date.
// Emits only for runs of 3 or more days.
func detectStreak(summaries []domain.DailySummary) []domain.Insight {
	if len(summaries) == 0 {
		return nil
	}

	days := make(map[string]bool, len(summaries))
	latest := summaries[0].Date
	for _, s := range summaries {
		days[dayKey(s.Date)] = true
		if s.Date.After(latest) {
			latest = s.Date
		}
	}

	run := 0
	for d := domain.DayOf(latest); days[dayKey(d)]; d = d.AddDate(0, 0, -1) {
		run++
	}
	if run < 3 {
		return nil
	}

	return []domain.Insight{{
		ID:          fmt.Sprintf("streak-%d", run),
		Type:        domain.InsightStreak,
		Title:       fmt.Sprintf("%d Day Streak", run),
		Description: fmt.Sprintf("You've checked in %d days in a row. Keep it going!", run),
		Priority:    domain.PriorityHigh,
	}}
}

// detectTrend compares the halves of the most recent trendWindow daily
// summaries. Needs at least trendMinDays summaries; a mean shift beyond
// trendThreshold in either direction emits one insight.
func detectTrend(summaries []domain.DailySummary) []domain.Insight {
	if len(summaries) < trendMinDays {
		return nil
	}

	recent := summaries
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}

	half := len(recent) / 2
	first := meanMood(recent[:half])
	second := meanMood(recent[half:])
	delta := second - first

	switch {
	case delta > trendThreshold:
		return []domain.Insight{{
			ID:          "trend-improving",
			Type:        domain.InsightTrend,
			Title:       "Your Mood Is Improving",
			Description: "Your average mood this week is trending upward.",
			Priority:    domain.PriorityHigh,
		}}
	case delta < -trendThreshold:
		return []domain.Insight{{
			ID:          "trend-declining",
			Type:        domain.InsightTrend,
			Title:       "A Tougher Stretch",
			Description: "Your average mood has dipped recently. Be kind to yourself.",
			Priority:    domain.PriorityHigh,
		}}
	}
	return nil
}

// detectWeekday buckets entries by weekday. Buckets need at least
// weekdayMinPerBucket entries to count, and at least weekdayMinBuckets
// buckets must qualify. The best day (mean above the cross-bucket mean by
// more than weekdayThreshold) and the worst day (below by more than the
// same margin) may both fire.
func detectWeekday(entries []domain.ActivityRecord) []domain.Insight {
	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	for _, e := range entries {
		wd := e.OccurredAt.Weekday()
		sums[wd] += float64(e.Score)
		counts[wd]++
	}

	type bucket struct {
		day  time.Weekday
		mean float64
	}
	var buckets []bucket
	for wd, n := range counts {
		if n < weekdayMinPerBucket {
			continue
		}
		buckets = append(buckets, bucket{day: wd, mean: sums[wd] / float64(n)})
	}
	if len(buckets) < weekdayMinBuckets {
		return nil
	}

	var cross float64
	for _, b := range buckets {
		cross += b.mean
	}
	cross /= float64(len(buckets))

	best, worst := buckets[0], buckets[0]
	for _, b := range buckets[1:] {
		if b.mean > best.mean {
			best = b
		}
		if b.mean < worst.mean {
			worst = b
		}
	}

	var out []domain.Insight
	if best.mean-cross > weekdayThreshold {
		out = append(out, domain.Insight{
			ID:          "weekday-best-" + best.day.String(),
			Type:        domain.InsightDayPattern,
			Title:       best.day.String() + "s Suit You",
			Description: fmt.Sprintf("Your mood tends to be highest on %ss.", best.day),
			Priority:    domain.PriorityMedium,
		})
	}
	if cross-worst.mean > weekdayThreshold {
		out = append(out, domain.Insight{
			ID:          "weekday-worst-" + worst.day.String(),
			Type:        domain.InsightDayPattern,
			Title:       worst.day.String() + "s Are Harder",
			Description: fmt.Sprintf("Your mood tends to be lowest on %ss.", worst.day),
			Priority:    domain.PriorityMedium,
		})
	}
	return out
}

// detectTagCorrelation finds activity tags (appearing on tagMinEntries or
// more entries) whose mean mood exceeds the overall mean by more than
// tagThreshold. At most tagMaxInsights tags, strongest first.
func detectTagCorrelation(entries []domain.ActivityRecord) []domain.Insight {
	if len(entries) == 0 {
		return nil
	}

	var overallSum float64
	tagSums := make(map[string]float64)
	tagCounts := make(map[string]int)
	for _, e := range entries {
		overallSum += float64(e.Score)
		for _, tag := range e.Tags {
			tagSums[tag] += float64(e.Score)
			tagCounts[tag]++
		}
	}
	overall := overallSum / float64(len(entries))

	type tagMean struct {
		tag  string
		mean float64
	}
	var lifts []tagMean
	for tag, n := range tagCounts {
		if n < tagMinEntries {
			continue
		}
		mean := tagSums[tag] / float64(n)
		if mean-overall > tagThreshold {
			lifts = append(lifts, tagMean{tag: tag, mean: mean})
		}
	}

	sort.Slice(lifts, func(i, j int) bool {
		if lifts[i].mean != lifts[j].mean {
			return lifts[i].mean > lifts[j].mean
		}
		return lifts[i].tag < lifts[j].tag
	})
	if len(lifts) > tagMaxInsights {
		lifts = lifts[:tagMaxInsights]
	}

	var out []domain.Insight
	for _, l := range lifts {
		out = append(out, domain.Insight{
			ID:          "correlation-" + l.tag,
			Type:        domain.InsightCorrelation,
			Title:       "Mood Booster: " + l.tag,
			Description: fmt.Sprintf("Days with %q tend to come with a better mood.", l.tag),
			Priority:    domain.PriorityMedium,
		})
	}
	return out
}

// Time-of-day buckets by local hour: morning 5–11, afternoon 12–16,
// evening 17 onward. Hours 0–4 fall outside every bucket.
func timeBucket(hour int) string {
	switch {
	case hour >= 5 && hour <= 11:
		return "morning"
	case hour >= 12 && hour <= 16:
		return "afternoon"
	case hour >= 17:
		return "evening"
	}
	return ""
}

// detectTimeOfDay compares mood across time-of-day buckets. Needs at least
// timeBucketMinEntries entries in at least timeBucketMinBuckets buckets;
// emits the best bucket when it beats the worst by more than timeThreshold.
func detectTimeOfDay(entries []domain.ActivityRecord) []domain.Insight {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, e := range entries {
		b := timeBucket(e.OccurredAt.Hour())
		if b == "" {
			continue
		}
		sums[b] += float64(e.Score)
		counts[b]++
	}

	type bucket struct {
		name string
		mean float64
	}
	var buckets []bucket
	for name, n := range counts {
		if n < timeBucketMinEntries {
			continue
		}
		buckets = append(buckets, bucket{name: name, mean: sums[name] / float64(n)})
	}
	if len(buckets) < timeBucketMinBuckets {
		return nil
	}

	best, worst := buckets[0], buckets[0]
	for _, b := range buckets[1:] {
		if b.mean > best.mean {
			best = b
		}
		if b.mean < worst.mean {
			worst = b
		}
	}
	if best.mean-worst.mean <= timeThreshold {
		return nil
	}

	return []domain.Insight{{
		ID:          "time-" + best.name,
		Type:        domain.InsightTimePattern,
		Title:       "Your Best Time: " + best.name,
		Description: fmt.Sprintf("Your mood tends to peak in the %s.", best.name),
		Priority:    domain.PriorityLow,
	}}
}

// detectPeakDay emits the single highest-mean day, if its mean reached
// peakDayMinMean.
func detectPeakDay(summaries []domain.DailySummary) []domain.Insight {
	if len(summaries) == 0 {
		return nil
	}

	peak := summaries[0]
	for _, s := range summaries[1:] {
		if s.MeanMood > peak.MeanMood {
			peak = s
		}
	}
	if peak.MeanMood < peakDayMinMean {
		return nil
	}

	return []domain.Insight{{
		ID:          "peak-" + dayKey(peak.Date),
		Type:        domain.InsightMilestone,
		Title:       "A Standout Day",
		Description: fmt.Sprintf("%s was a great day — your mood averaged %.1f.", peak.Date.Format("January 2"), peak.MeanMood),
		Priority:    domain.PriorityLow,
	}}
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

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
