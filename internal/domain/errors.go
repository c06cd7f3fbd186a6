package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Activity log errors
	ErrInvalidKind      = errors.New("unknown activity kind")
	ErrInvalidMoodScore = errors.New("mood score must be between 1 and 5")
	ErrEmptyJournal     = errors.New("journal entry text is empty")

	// Streak errors
	ErrStreakNotFound = errors.New("no streak state for kind")
	// ErrStreakInvariant marks longest < current in a persisted row.
	// Never expected given the single-mutator design — a programming
	// error, surfaced by the health audit rather than user-facing flows.
	ErrStreakInvariant = errors.New("streak invariant violated: longest < current")

	// Badge errors
	ErrBadgeNotFound      = errors.New("badge not in catalog")
	ErrUnknownRequirement = errors.New("unknown badge requirement variant")

	// Trigger errors
	ErrTriggerNotFound = errors.New("trigger not found")
)
