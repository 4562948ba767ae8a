package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/campuswell/stress-tracker/internal/api/validation"
	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/service"
	"github.com/campuswell/stress-tracker/pkg/pagination"
	"github.com/campuswell/stress-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /v1/users/{userId}/events
// @Summary Record event
// @Description Add a calendar event; its start hour feeds the stress estimate for that day.
// @Tags events
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateEventRequest true "Event data"
// @Success 201 {object} domain.EventResponse "Event created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation errors"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	event, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to create event").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event.ToResponse())
}

// List handles GET /v1/users/{userId}/events
// @Summary List events
// @Description Fetch paginated events, newest first, optionally filtered by start-time range.
// @Tags events
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of range (RFC3339)" format(date-time)
// @Param to query string false "End of range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.EventListResponse "Events with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	from, to, limit, cursor, fieldErrors := parseRangeQuery(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}
	filter := domain.EventFilter{From: from, To: to, Limit: limit, Cursor: cursor}

	events, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list events").Write(w)
		return
	}

	pageLimit := pagination.NormalizeLimit(filter.Limit)
	response := domain.EventListResponse{Data: []domain.EventResponse{}}
	if len(events) > pageLimit {
		events = events[:pageLimit]
		last := events[len(events)-1]
		nextCursor := pagination.Cursor{ID: last.ID, At: last.StartAt}
		response.Pagination.NextCursor = nextCursor.Encode()
		response.Pagination.HasMore = true
	}
	for i := range events {
		response.Data = append(response.Data, events[i].ToResponse())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// parseRangeQuery parses the shared from/to/limit/cursor query parameters.
func parseRangeQuery(r *http.Request) (from, to *time.Time, limit int, cursor string, fieldErrors []problem.FieldError) {
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			from = &parsed
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			to = &parsed
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			limit = parsed
		}
	}

	cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return nil, nil, 0, "", fieldErrors
	}
	return from, to, limit, cursor, nil
}
