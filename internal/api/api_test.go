package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bloomwell/bloom/internal/app/wellness"
	"github.com/bloomwell/bloom/internal/health"
	"github.com/bloomwell/bloom/internal/infra/sqlite"
)

func testServer(t *testing.T) (*Server, *wellness.Service) {
	t.Helper()
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := wellness.NewService(db, 0)
	hc := health.NewChecker(db, dir)
	return NewServer(svc, hc), svc
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLogActivity_Mood(t *testing.T) {
	srv, _ := testServer(t)
	handler := srv.Handler()

	rec := doJSON(t, handler, "POST", "/api/v1/activities", map[string]interface{}{
		"kind":  "mood",
		"score": 4,
		"tags":  []string{"yoga"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}

	var res wellness.LogResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Record.Score != 4 {
		t.Errorf("record score = %d, want 4", res.Record.Score)
	}
	if res.Streak.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", res.Streak.CurrentStreak)
	}
}

func TestLogActivity_BadRequests(t *testing.T) {
	srv, _ := testServer(t)
	handler := srv.Handler()

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"unknown kind", map[string]interface{}{"kind": "meditation"}},
		{"score out of range", map[string]interface{}{"kind": "mood", "score": 9}},
		{"empty journal", map[string]interface{}{"kind": "journal", "text": ""}},
	}
	for _, tc := range cases {
		rec := doJSON(t, handler, "POST", "/api/v1/activities", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestStreakEndpoints(t *testing.T) {
	srv, svc := testServer(t)
	handler := srv.Handler()

	if _, err := svc.LogMood(3, nil, time.Now()); err != nil {
		t.Fatalf("seed mood: %v", err)
	}

	rec := doJSON(t, handler, "GET", "/api/v1/streaks", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, handler, "GET", "/api/v1/streaks/mood", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", rec.Code, rec.Body)
	}
	var st struct {
		CurrentStreak int `json:"current_streak"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", st.CurrentStreak)
	}

	rec = doJSON(t, handler, "GET", "/api/v1/streaks/meditation", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad kind status = %d, want 400", rec.Code)
	}
}

func TestProtectionEndpoints(t *testing.T) {
	srv, _ := testServer(t)
	handler := srv.Handler()

	var state struct {
		Remaining int `json:"remaining"`
		Cap       int `json:"cap"`
	}
	rec := doJSON(t, handler, "GET", "/api/v1/protection", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Remaining != state.Cap {
		t.Errorf("fresh month remaining = %d, want cap %d", state.Remaining, state.Cap)
	}

	// Exhaust the quota, then one more.
	var consumed struct {
		Consumed  bool `json:"consumed"`
		Remaining int  `json:"remaining"`
	}
	for i := 0; i < state.Cap; i++ {
		rec = doJSON(t, handler, "POST", "/api/v1/protection/consume", map[string]string{"reason": "test"})
		if rec.Code != http.StatusOK {
			t.Fatalf("consume %d status = %d: %s", i, rec.Code, rec.Body)
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &consumed); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !consumed.Consumed {
			t.Fatalf("consume %d denied below cap", i)
		}
	}

	rec = doJSON(t, handler, "POST", "/api/v1/protection/consume", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("over-cap consume status = %d, want 200", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &consumed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if consumed.Consumed {
		t.Error("consume granted past the cap")
	}
	if consumed.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", consumed.Remaining)
	}
}

func TestBadgeEndpoints(t *testing.T) {
	srv, svc := testServer(t)
	handler := srv.Handler()

	if _, err := svc.LogMood(4, nil, time.Now()); err != nil {
		t.Fatalf("seed mood: %v", err)
	}

	rec := doJSON(t, handler, "GET", "/api/v1/badges", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("badges status = %d: %s", rec.Code, rec.Body)
	}
	var badges struct {
		Badges []struct {
			ID     string `json:"id"`
			Earned bool   `json:"earned"`
		} `json:"badges"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &badges); err != nil {
		t.Fatalf("decode: %v", err)
	}
	earnedFirstMood := false
	for _, b := range badges.Badges {
		if b.ID == "first_mood" && b.Earned {
			earnedFirstMood = true
		}
	}
	if !earnedFirstMood {
		t.Error("first_mood not reported as earned")
	}

	rec = doJSON(t, handler, "GET", "/api/v1/badges/awards", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("awards status = %d: %s", rec.Code, rec.Body)
	}
}

func TestInsights_EmptyListNotNull(t *testing.T) {
	srv, _ := testServer(t)
	handler := srv.Handler()

	rec := doJSON(t, handler, "GET", "/api/v1/insights", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var res map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(res["insights"]) != "[]" {
		t.Errorf("insights = %s, want []", res["insights"])
	}
}

func TestTriggerDismissEndpoint(t *testing.T) {
	srv, svc := testServer(t)
	handler := srv.Handler()

	now := time.Now()
	for i := 2; i >= 0; i-- {
		if _, err := svc.LogMood(1, nil, now.AddDate(0, 0, -i)); err != nil {
			t.Fatalf("seed mood: %v", err)
		}
	}

	rec := doJSON(t, handler, "GET", "/api/v1/triggers", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("triggers status = %d: %s", rec.Code, rec.Body)
	}
	var res struct {
		Triggers []struct {
			ID string `json:"id"`
		} `json:"triggers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Triggers) != 1 {
		t.Fatalf("expected 1 trigger, got %d", len(res.Triggers))
	}

	path := fmt.Sprintf("/api/v1/triggers/%s/dismiss", res.Triggers[0].ID)
	rec = doJSON(t, handler, "POST", path, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dismiss status = %d: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, handler, "GET", "/api/v1/triggers", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Triggers) != 0 {
		t.Errorf("dismissed trigger still listed: %v", res.Triggers)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := testServer(t)
	srv.health.Run(contextWithImmediateCancel())

	rec := doJSON(t, srv.Handler(), "GET", "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var res struct {
		Healthy bool `json:"healthy"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Healthy {
		t.Errorf("expected healthy engine: %s", rec.Body)
	}
}

// contextWithImmediateCancel returns an already-cancelled context so
// Checker.Run performs its initial pass and returns.
func contextWithImmediateCancel() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
