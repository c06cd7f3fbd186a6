// Package api provides the HTTP surface of the Bloom engine, consumed by
// the app's UI layer. JSON over chi; no business logic lives here.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bloomwell/bloom/internal/app/wellness"
	"github.com/bloomwell/bloom/internal/health"
)

// Server is the Bloom HTTP API server.
type Server struct {
	svc            *wellness.Service
	health         *health.Checker
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(svc *wellness.Service, hc *health.Checker) *Server {
	return &Server{svc: svc, health: hc}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/activities", s.handleLogActivity)

		r.Get("/streaks", s.handleStreaks)
		r.Get("/streaks/{kind}", s.handleStreak)

		r.Get("/protection", s.handleProtection)
		r.Post("/protection/consume", s.handleProtectionConsume)

		r.Get("/badges", s.handleBadges)
		r.Get("/badges/awards", s.handleBadgeAwards)

		r.Get("/insights", s.handleInsights)

		r.Get("/triggers", s.handleTriggers)
		r.Post("/triggers/{id}/dismiss", s.handleTriggerDismiss)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	statuses := s.health.Statuses()
	code := http.StatusOK
	if !s.health.IsHealthy() {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]interface{}{
		"healthy": s.health.IsHealthy(),
		"checks":  statuses,
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
