package badge

import "github.com/bloomwell/bloom/internal/domain"

// ─── Badge Catalog ──────────────────────────────────────────────────────────
// Static, trusted data. Every badge carries one tagged Requirement variant;
// evaluation lives in a single switch in engine.go, so adding a badge (or a
// new variant) never touches unrelated call sites.

// Catalog returns the full badge catalog.
func Catalog() []domain.BadgeDef {
	return []domain.BadgeDef{
		// ── First Steps ────────────────────────────────────────────────
		{
			ID: "first_mood", Name: "First Check-In", Icon: "🌱",
			Description: "Log your first mood.",
			Requirement: domain.Requirement{Type: domain.ReqEntryCount, Kind: domain.KindMood, Threshold: 1},
		},
		{
			ID: "first_journal", Name: "Dear Diary", Icon: "📓",
			Description: "Write your first journal entry.",
			Requirement: domain.Requirement{Type: domain.ReqEntryCount, Kind: domain.KindJournal, Threshold: 1},
		},
		{
			ID: "first_exercise", Name: "In Motion", Icon: "👟",
			Description: "Complete your first exercise.",
			Requirement: domain.Requirement{Type: domain.ReqEntryCount, Kind: domain.KindExercise, Threshold: 1},
		},

		// ── Consistency ────────────────────────────────────────────────
		{
			ID: "mood_25", Name: "Mood Mapper", Icon: "🗺️",
			Description: "Log 25 moods.",
			Requirement: domain.Requirement{Type: domain.ReqEntryCount, Kind: domain.KindMood, Threshold: 25},
		},
		{
			ID: "mood_100", Name: "Feelings Fluent", Icon: "🎓",
			Description: "Log 100 moods.",
			Requirement: domain.Requirement{Type: domain.ReqEntryCount, Kind: domain.KindMood, Threshold: 100},
		},
		{
			ID: "journal_10", Name: "Storyteller", Icon: "✍️",
			Description: "Write 10 journal entries.",
			Requirement: domain.Requirement{Type: domain.ReqEntryCount, Kind: domain.KindJournal, Threshold: 10},
		},
		{
			ID: "exercise_20", Name: "Momentum", Icon: "🏃",
			Description: "Complete 20 exercises.",
			Requirement: domain.Requirement{Type: domain.ReqEntryCount, Kind: domain.KindExercise, Threshold: 20},
		},

		// ── Streaks ────────────────────────────────────────────────────
		{
			ID: "streak_3", Name: "Spark", Icon: "✨",
			Description: "Check in 3 days in a row.",
			Requirement: domain.Requirement{Type: domain.ReqStreakDays, Kind: domain.KindOverall, Threshold: 3},
		},
		{
			ID: "streak_7", Name: "Week Warrior", Icon: "🔥",
			Description: "Check in 7 days in a row.",
			Requirement: domain.Requirement{Type: domain.ReqStreakDays, Kind: domain.KindOverall, Threshold: 7},
		},
		{
			ID: "streak_30", Name: "Monthly Machine", Icon: "💪",
			Description: "Check in 30 days in a row.",
			Requirement: domain.Requirement{Type: domain.ReqStreakDays, Kind: domain.KindOverall, Threshold: 30},
		},
		{
			ID: "comeback", Name: "The Comeback", Icon: "🦅",
			Description: "Rebuild a streak after losing a long one.",
			Requirement: domain.Requirement{Type: domain.ReqSpecial, Special: domain.SpecialComeback},
		},

		// ── Exploration ────────────────────────────────────────────────
		{
			ID: "days_30", Name: "Regular", Icon: "📅",
			Description: "Track activity on 30 different days.",
			Requirement: domain.Requirement{Type: domain.ReqDaysTracked, Threshold: 30},
		},
		{
			ID: "tag_explorer", Name: "Explorer", Icon: "🧭",
			Description: "Use 5 different activity tags.",
			Requirement: domain.Requirement{Type: domain.ReqTagsUsed, Threshold: 5},
		},
		{
			ID: "full_spectrum", Name: "Full Spectrum", Icon: "🌈",
			Description: "Log every mood from 1 to 5.",
			Requirement: domain.Requirement{Type: domain.ReqMoodRange},
		},
	}
}
