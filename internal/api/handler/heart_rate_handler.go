package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/campuswell/stress-tracker/internal/api/validation"
	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/service"
	"github.com/campuswell/stress-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type HeartRateHandler struct {
	service service.HeartRateService
}

func NewHeartRateHandler(service service.HeartRateService) *HeartRateHandler {
	return &HeartRateHandler{service: service}
}

// Create handles POST /v1/users/{userId}/heart-rates
// @Summary Record heart rate
// @Description Store a single heart-rate reading; elevation above resting rate feeds the stress estimate.
// @Tags heart-rates
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateHeartRateRequest true "Heart-rate reading"
// @Success 201 {object} domain.HeartRateResponse "Reading stored"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation errors"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/heart-rates [post]
func (h *HeartRateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateHeartRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	sample, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to store heart-rate sample").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sample.ToResponse())
}

// List handles GET /v1/users/{userId}/heart-rates
// @Summary List heart-rate samples
// @Description Fetch readings in a recorded-at range, oldest first. Defaults to the last 24 hours.
// @Tags heart-rates
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of range (RFC3339)" format(date-time)
// @Param to query string false "End of range (RFC3339)" format(date-time)
// @Success 200 {object} domain.HeartRateListResponse "Heart-rate samples"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/heart-rates [get]
func (h *HeartRateHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	fromPtr, toPtr, _, _, fieldErrors := parseRangeQuery(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	to := time.Now().UTC()
	if toPtr != nil {
		to = *toPtr
	}
	from := to.Add(-24 * time.Hour)
	if fromPtr != nil {
		from = *fromPtr
	}

	samples, err := h.service.ListRange(r.Context(), userID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list heart-rate samples").Write(w)
		return
	}

	response := domain.HeartRateListResponse{Data: []domain.HeartRateResponse{}}
	for i := range samples {
		response.Data = append(response.Data, samples[i].ToResponse())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
