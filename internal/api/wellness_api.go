package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bloomwell/bloom/internal/domain"
)

// ─── Activities ─────────────────────────────────────────────────────────────

type logActivityRequest struct {
	Kind       domain.Kind `json:"kind"`
	OccurredAt time.Time   `json:"occurred_at,omitempty"` // defaults to now
	Score      int         `json:"score,omitempty"`
	Tags       []string    `json:"tags,omitempty"`
	Text       string      `json:"text,omitempty"`
	Completed  bool        `json:"completed,omitempty"`
}

func (s *Server) handleLogActivity(w http.ResponseWriter, r *http.Request) {
	var req logActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var (
		result interface{}
		err    error
	)
	switch req.Kind {
	case domain.KindMood:
		result, err = s.svc.LogMood(req.Score, req.Tags, req.OccurredAt)
	case domain.KindJournal:
		result, err = s.svc.LogJournal(req.Text, req.OccurredAt)
	case domain.KindExercise:
		result, err = s.svc.LogExercise(req.Completed, req.OccurredAt)
	default:
		writeError(w, http.StatusBadRequest, domain.ErrInvalidKind.Error())
		return
	}

	if err != nil {
		if errors.Is(err, domain.ErrInvalidMoodScore) || errors.Is(err, domain.ErrEmptyJournal) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// ─── Streaks ────────────────────────────────────────────────────────────────

func (s *Server) handleStreaks(w http.ResponseWriter, r *http.Request) {
	streaks, err := s.svc.Streaks().All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"streaks": streaks})
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	kind := domain.Kind(chi.URLParam(r, "kind"))
	if !kind.Valid() && kind != domain.KindOverall {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidKind.Error())
		return
	}
	st, err := s.svc.Streaks().Get(kind)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ─── Streak Protection ──────────────────────────────────────────────────────

func (s *Server) handleProtection(w http.ResponseWriter, r *http.Request) {
	remaining, err := s.svc.Protection().RemainingThisMonth()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"remaining": remaining,
		"cap":       s.svc.Protection().Cap(),
	})
}

type consumeRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (s *Server) handleProtectionConsume(w http.ResponseWriter, r *http.Request) {
	var req consumeRequest
	// Empty body is allowed — reason is optional.
	_ = json.NewDecoder(r.Body).Decode(&req)

	ok, err := s.svc.Protection().Consume(req.Reason)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	remaining, err := s.svc.Protection().RemainingThisMonth()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"consumed":  ok, // false = quota exhausted, not an error
		"remaining": remaining,
	})
}

// ─── Badges ─────────────────────────────────────────────────────────────────

type badgeView struct {
	domain.BadgeDef
	Earned   bool `json:"earned"`
	Progress int  `json:"progress"`
}

func (s *Server) handleBadges(w http.ResponseWriter, r *http.Request) {
	awarded, err := s.svc.Badges().Awards()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	earned := make(map[string]bool, len(awarded))
	for _, a := range awarded {
		earned[a.BadgeID] = true
	}

	snapshot, err := s.svc.Stats().Snapshot()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var views []badgeView
	for _, def := range s.svc.Badges().Definitions() {
		progress, err := s.svc.Badges().ProgressTowards(def.ID, snapshot)
		if err != nil {
			progress = 0
		}
		views = append(views, badgeView{
			BadgeDef: def,
			Earned:   earned[def.ID],
			Progress: progress,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"badges": views})
}

func (s *Server) handleBadgeAwards(w http.ResponseWriter, r *http.Request) {
	awards, err := s.svc.Badges().Awards()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"awards": awards})
}

// ─── Insights ───────────────────────────────────────────────────────────────

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := s.svc.Insights()
	if err != nil {
		// A failed analytics pass degrades to "no insights this time";
		// the UI section simply doesn't render.
		log.Printf("[api] insights pass failed: %v", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"insights": []domain.Insight{}})
		return
	}
	if insights == nil {
		insights = []domain.Insight{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"insights": insights})
}

// ─── Proactive Triggers ─────────────────────────────────────────────────────

func (s *Server) handleTriggers(w http.ResponseWriter, r *http.Request) {
	triggers, err := s.svc.ActiveTriggers()
	if err != nil {
		log.Printf("[api] trigger pass failed: %v", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"triggers": []domain.ProactiveTrigger{}})
		return
	}
	if triggers == nil {
		triggers = []domain.ProactiveTrigger{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"triggers": triggers})
}

func (s *Server) handleTriggerDismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing trigger id")
		return
	}
	if err := s.svc.Triggers().Dismiss(id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"dismissed": id})
}
