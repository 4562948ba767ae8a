package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/langfuse"
	"github.com/campuswell/stress-tracker/internal/service"
	"github.com/campuswell/stress-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// StressHandler handles stress curve and forecast endpoints.
type StressHandler struct {
	stressService  service.StressService
	langfuseClient langfuse.Client
}

// NewStressHandler creates a new StressHandler.
func NewStressHandler(stressService service.StressService, langfuseClient langfuse.Client) *StressHandler {
	return &StressHandler{
		stressService:  stressService,
		langfuseClient: langfuseClient,
	}
}

// GetDaily handles GET /v1/users/{userId}/stress/daily
// @Summary Get daily stress curve
// @Description Return the 24-hour stress curve for a date, computing and storing it on first request.
// @Tags stress
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date query string false "Date key (yyyy-MM-dd), defaults to today" example(2024-03-04)
// @Success 200 {object} domain.StressDayResponse "Hourly stress curve"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/stress/daily [get]
func (h *StressHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	userID, date, p := parseStressParams(r)
	if p != nil {
		p.Write(w)
		return
	}

	result, err := h.stressService.GetDay(r.Context(), userID, date)
	if err != nil {
		writeStressError(w, err)
		return
	}

	attachTraceID(r, &result.TraceID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Refresh handles POST /v1/users/{userId}/stress/daily/refresh
// @Summary Refresh daily stress curve
// @Description Recompute the stress curve for a date and overwrite the stored one.
// @Tags stress
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date query string false "Date key (yyyy-MM-dd), defaults to today" example(2024-03-04)
// @Success 200 {object} domain.StressDayResponse "Recomputed hourly stress curve"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/stress/daily/refresh [post]
func (h *StressHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	userID, date, p := parseStressParams(r)
	if p != nil {
		p.Write(w)
		return
	}

	result, err := h.stressService.Refresh(r.Context(), userID, date)
	if err != nil {
		writeStressError(w, err)
		return
	}

	attachTraceID(r, &result.TraceID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetForecast handles GET /v1/users/{userId}/stress/forecast
// @Summary Get qualitative stress forecast
// @Description Return an emoji plus short summary forecast for a date. Not persisted.
// @Tags stress
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date query string false "Date key (yyyy-MM-dd), defaults to today" example(2024-03-04)
// @Success 200 {object} domain.StressForecastResponse "Qualitative forecast"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/stress/forecast [get]
func (h *StressHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	userID, date, p := parseStressParams(r)
	if p != nil {
		p.Write(w)
		return
	}

	result, err := h.stressService.Forecast(r.Context(), userID, date)
	if err != nil {
		writeStressError(w, err)
		return
	}

	attachTraceID(r, &result.TraceID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// FeedbackRequest is the request body for stress result feedback.
// @Description Request body for rating a stress curve or forecast.
type FeedbackRequest struct {
	// Trace ID from a stress response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"Matched how my day actually felt."`
}

// PostFeedback handles POST /v1/users/{userId}/stress/feedback
// @Summary Submit feedback on a stress result
// @Description Submit a user rating and optional comment for a previous stress response.
// @Tags stress
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 503 {object} problem.Problem "Feedback collection not configured"
// @Router /users/{userId}/stress/feedback [post]
func (h *StressHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if !h.langfuseClient.IsEnabled() {
		problem.ServiceUnavailable("Feedback collection is not configured").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Errors are logged inside the client but never fail the request
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "stress_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

func parseStressParams(r *http.Request) (uuid.UUID, string, *problem.Problem) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		return uuid.Nil, "", problem.BadRequest("Invalid user ID format")
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format(domain.DateKeyFormat)
	} else if _, err := time.Parse(domain.DateKeyFormat, date); err != nil {
		return uuid.Nil, "", problem.BadRequest("date must be in yyyy-MM-dd format")
	}

	return userID, date, nil
}

func writeStressError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest("date must be in yyyy-MM-dd format").Write(w)
	default:
		problem.InternalError("Failed to compute stress result").Write(w)
	}
}

// attachTraceID exposes the OTEL trace ID (if present) for feedback linking.
func attachTraceID(r *http.Request, target *string) {
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		*target = span.SpanContext().TraceID().String()
	}
}
