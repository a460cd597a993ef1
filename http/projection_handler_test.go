package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"growth-projector/domain"
	"growth-projector/repository"
	"growth-projector/service"
)

func newTestHandler() *ProjectionHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repository.NewProjectionRepositoryMemory(10)
	svc := service.NewProjectionService(repo, repository.NewMemoryCache(), time.Minute, logger)
	return NewProjectionHandler(svc, logger)
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCalculateHandler_OK(t *testing.T) {
	handler := newTestHandler()

	req := postJSON("/projection/calculate", `{
		"principal": 0,
		"annual_rate_percent": 0,
		"compounds_per_year": 12,
		"years": 2,
		"monthly_contribution": 100
	}`)
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.ProjectionResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.ContributionFutureValue != 2400 || result.TotalAmount != 2400 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestCalculateHandler_Frequency(t *testing.T) {
	handler := newTestHandler()

	req := postJSON("/projection/calculate", `{
		"principal": 1000,
		"annual_rate_percent": 5,
		"frequency": "monthly",
		"years": 1
	}`)
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.ProjectionResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.CompoundedPrincipal < 1051.16 || result.CompoundedPrincipal > 1051.17 {
		t.Errorf("expected ≈1051.16, got %f", result.CompoundedPrincipal)
	}
}

func TestCalculateHandler_BadRequest(t *testing.T) {
	tests := map[string]string{
		"invalid json":   `{invalid-json}`,
		"zero compounds": `{"principal": 1000, "annual_rate_percent": 5, "compounds_per_year": 0, "years": 1}`,
		"negative years": `{"principal": 1000, "annual_rate_percent": 5, "compounds_per_year": 12, "years": -1}`,
		"bad frequency":  `{"principal": 1000, "frequency": "hourly-ish", "years": 1}`,
		"above limit":    `{"principal": 1000, "annual_rate_percent": 5000, "compounds_per_year": 12, "years": 1}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			handler := newTestHandler()
			w := httptest.NewRecorder()

			handler.Calculate(w, postJSON("/projection/calculate", body))

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestCalculateHandler_UnsupportedMediaType(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/projection/calculate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestScheduleHandler_OK(t *testing.T) {
	handler := newTestHandler()

	req := postJSON("/projection/schedule", `{
		"principal": 1000,
		"annual_rate_percent": 5,
		"compounds_per_year": 12,
		"years": 1.5,
		"monthly_contribution": 100
	}`)
	w := httptest.NewRecorder()

	handler.Schedule(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var schedule domain.ProjectionSchedule
	if err := json.NewDecoder(w.Body).Decode(&schedule); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(schedule.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(schedule.Entries))
	}
	if schedule.Entries[1].Balance != schedule.Result.TotalAmount {
		t.Errorf("expected last balance to equal total")
	}
}

func TestHistoryHandler(t *testing.T) {
	handler := newTestHandler()

	for _, body := range []string{
		`{"principal": 1, "compounds_per_year": 12, "years": 1}`,
		`{"principal": 2, "compounds_per_year": 12, "years": 1}`,
	} {
		w := httptest.NewRecorder()
		handler.Calculate(w, postJSON("/projection/calculate", body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	}

	w := httptest.NewRecorder()
	handler.History(w, httptest.NewRequest(http.MethodGet, "/projection/history?limit=1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var records []domain.ProjectionRecord
	if err := json.NewDecoder(w.Body).Decode(&records); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(records) != 1 || records[0].Input.Principal != 2 {
		t.Errorf("expected newest record only, got %+v", records)
	}
}

func TestHistoryHandler_BadLimit(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.History(w, httptest.NewRequest(http.MethodGet, "/projection/history?limit=many", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
