// Package protection implements the monthly streak-protection quota:
// a capped counter of forgiveness tokens that resets each calendar month.
// Consumption must never exceed the cap, even under concurrent calls.
package protection

import (
	"sync"
	"time"

	"github.com/bloomwell/bloom/internal/domain"
	"github.com/bloomwell/bloom/internal/infra/metrics"
	"github.com/bloomwell/bloom/internal/infra/sqlite"
)

// Service guards the monthly protection quota.
type Service struct {
	db  *sqlite.DB
	cap int

	// mu serializes Consume at the service layer; the SQLite transaction
	// inside ConsumeProtection is the real atomic unit.
	mu sync.Mutex
}

// NewService creates a quota service. cap ≤ 0 selects the default cap of 3.
func NewService(db *sqlite.DB, cap int) *Service {
	if cap <= 0 {
		cap = domain.DefaultMonthlyProtectionCap
	}
	return &Service{db: db, cap: cap}
}

// Cap returns the monthly token cap.
func (s *Service) Cap() int {
	return s.cap
}

// Consume attempts to spend one protection token. Returns true and records
// a usage if fewer than cap tokens were spent this calendar month; returns
// false with no side effects otherwise. Quota exhaustion is a normal false
// return, not an error.
func (s *Service) Consume(reason string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	ok, err := s.db.ConsumeProtection(domain.MonthStart(now), s.cap, reason, now)
	if err != nil {
		return false, err
	}
	if ok {
		metrics.ProtectionConsumed.Inc()
	} else {
		metrics.ProtectionDenied.Inc()
	}
	return ok, nil
}

// RemainingThisMonth returns how many tokens are left this calendar month.
// Advisory only (for display) — Consume re-checks atomically.
func (s *Service) RemainingThisMonth() (int, error) {
	used, err := s.db.CountProtectionSince(domain.MonthStart(time.Now()))
	if err != nil {
		return 0, err
	}
	remaining := s.cap - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// UsagesThisMonth lists this month's consumption events, newest first.
func (s *Service) UsagesThisMonth() ([]domain.ProtectionUsage, error) {
	return s.db.ListProtectionUsages(domain.MonthStart(time.Now()))
}
