package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campuswell/stress-tracker/internal/api/validation"
	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/service"
	"github.com/campuswell/stress-tracker/pkg/pagination"
	"github.com/campuswell/stress-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	service service.AssignmentService
}

func NewAssignmentHandler(service service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// Create handles POST /v1/users/{userId}/assignments
// @Summary Record assignment
// @Description Add an assignment; its due hour feeds the stress estimate for that day.
// @Tags assignments
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} domain.AssignmentResponse "Assignment created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation errors"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/assignments [post]
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	assignment, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to create assignment").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(assignment.ToResponse())
}

// List handles GET /v1/users/{userId}/assignments
// @Summary List assignments
// @Description Fetch paginated assignments, latest due date first, optionally filtered by due-date range.
// @Tags assignments
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of due-date range (RFC3339)" format(date-time)
// @Param to query string false "End of due-date range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.AssignmentListResponse "Assignments with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/assignments [get]
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
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
	filter := domain.AssignmentFilter{From: from, To: to, Limit: limit, Cursor: cursor}

	assignments, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list assignments").Write(w)
		return
	}

	pageLimit := pagination.NormalizeLimit(filter.Limit)
	response := domain.AssignmentListResponse{Data: []domain.AssignmentResponse{}}
	if len(assignments) > pageLimit {
		assignments = assignments[:pageLimit]
		last := assignments[len(assignments)-1]
		nextCursor := pagination.Cursor{ID: last.ID, At: last.DueAt}
		response.Pagination.NextCursor = nextCursor.Encode()
		response.Pagination.HasMore = true
	}
	for i := range assignments {
		response.Data = append(response.Data, assignments[i].ToResponse())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
