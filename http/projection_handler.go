package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"growth-projector/domain"
	"growth-projector/service"
)

type ProjectionHandler struct {
	service *service.ProjectionService
	logger  *slog.Logger
}

func NewProjectionHandler(service *service.ProjectionService, logger *slog.Logger) *ProjectionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectionHandler{service: service, logger: logger}
}

// projectionRequest is the JSON body of the projection endpoints.
// Frequency is used only when CompoundsPerYear is omitted.
type projectionRequest struct {
	Principal           float64 `json:"principal"`
	AnnualRatePercent   float64 `json:"annual_rate_percent"`
	CompoundsPerYear    int     `json:"compounds_per_year"`
	Frequency           string  `json:"frequency,omitempty"`
	Years               float64 `json:"years"`
	MonthlyContribution float64 `json:"monthly_contribution"`
}

func (req projectionRequest) toInput() (domain.ProjectionInput, error) {
	compounds := req.CompoundsPerYear
	if compounds == 0 && req.Frequency != "" {
		f, err := domain.ParseFrequency(req.Frequency)
		if err != nil {
			return domain.ProjectionInput{}, err
		}
		compounds = int(f)
	}

	return domain.NewProjectionInput(
		req.Principal,
		req.AnnualRatePercent,
		compounds,
		req.Years,
		req.MonthlyContribution,
	)
}

func (h *ProjectionHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decode(w, r)
	if !ok {
		return
	}

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		h.fail(w, "calculating projection", err)
		return
	}

	h.respond(w, result)
}

func (h *ProjectionHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decode(w, r)
	if !ok {
		return
	}

	schedule, err := h.service.Schedule(r.Context(), input)
	if err != nil {
		h.fail(w, "building schedule", err)
		return
	}

	h.respond(w, schedule)
}

func (h *ProjectionHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.service.History(r.Context(), limit)
	if err != nil {
		h.fail(w, "listing history", err)
		return
	}

	h.respond(w, records)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}` + "\n"))
}

func (h *ProjectionHandler) decode(w http.ResponseWriter, r *http.Request) (domain.ProjectionInput, bool) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return domain.ProjectionInput{}, false
	}

	var req projectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("invalid request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return domain.ProjectionInput{}, false
	}

	input, err := req.toInput()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return domain.ProjectionInput{}, false
	}

	return input, true
}

func (h *ProjectionHandler) fail(w http.ResponseWriter, action string, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Error("request failed", "action", action, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// respond encodes into a buffer first so a failed encode can still send a 500.
func (h *ProjectionHandler) respond(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write response", "error", err)
	}
}
