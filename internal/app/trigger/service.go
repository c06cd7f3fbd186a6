package trigger

import (
	"fmt"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
	"github.com/bloomwell/bloom/internal/infra/metrics"
	"github.com/bloomwell/bloom/internal/infra/sqlite"
)

// Service wraps detection with the durable dismissal set.
type Service struct {
	db *sqlite.DB
}

// NewService creates a trigger service.
func NewService(db *sqlite.DB) *Service {
	return &Service{db: db}
}

// Active detects triggers and filters out any the user has dismissed.
// A dismissed trigger stays hidden until its deterministic ID changes
// (i.e. the underlying condition recurs in a new context).
func (s *Service) Active(entries []domain.ActivityRecord, summaries []domain.DailySummary, lastCheckIn, now time.Time) ([]domain.ProactiveTrigger, error) {
	dismissed, err := s.db.DismissedTriggerIDs()
	if err != nil {
		return nil, fmt.Errorf("load dismissed: %w", err)
	}

	var out []domain.ProactiveTrigger
	for _, t := range Detect(entries, summaries, lastCheckIn, now) {
		if dismissed[t.ID] {
			continue
		}
		metrics.TriggersDetected.WithLabelValues(string(t.Type)).Inc()
		out = append(out, t)
	}
	return out, nil
}

// Dismiss durably records a trigger ID so it does not reappear.
func (s *Service) Dismiss(id string) error {
	return s.db.DismissTrigger(id, time.Now())
}
