package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func newEventRouter(svc *MockEventService) *chi.Mux {
	h := NewEventHandler(svc)
	r := chi.NewRouter()
	r.Post("/users/{userId}/events", h.Create)
	r.Get("/users/{userId}/events", h.List)
	return r
}

func TestCreateEvent_Success(t *testing.T) {
	r := newEventRouter(&MockEventService{})

	body := `{
		"title": "Calculus lecture",
		"category": "class",
		"start_at": "2024-03-04T09:00:00Z",
		"end_at": "2024-03-04T10:30:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/users/"+uuid.NewString()+"/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var response domain.EventResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Title != "Calculus lecture" {
		t.Errorf("title = %q, want Calculus lecture", response.Title)
	}
}

func TestCreateEvent_ValidationErrors(t *testing.T) {
	r := newEventRouter(&MockEventService{})

	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "missing title",
			body: `{"start_at": "2024-03-04T09:00:00Z", "end_at": "2024-03-04T10:00:00Z"}`,
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "end before start",
			body: `{"title": "Lecture", "start_at": "2024-03-04T10:00:00Z", "end_at": "2024-03-04T09:00:00Z"}`,
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "malformed json",
			body: `{"title":`,
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/users/"+uuid.NewString()+"/events", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected status %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateEvent_UnknownUser(t *testing.T) {
	svc := &MockEventService{
		createFunc: func(ctx context.Context, userID uuid.UUID, req *domain.CreateEventRequest) (*domain.Event, error) {
			return nil, domain.ErrNotFound
		},
	}
	r := newEventRouter(svc)

	body := `{"title": "Lecture", "start_at": "2024-03-04T09:00:00Z", "end_at": "2024-03-04T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/users/"+uuid.NewString()+"/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestListEvents_Pagination(t *testing.T) {
	userID := uuid.New()

	// Service returns limit+1 rows to signal another page.
	events := make([]domain.Event, 3)
	base := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)
	for i := range events {
		events[i] = domain.Event{
			ID:      uuid.New(),
			UserID:  userID,
			Title:   "Event",
			StartAt: base.Add(-time.Duration(i) * time.Hour),
			EndAt:   base.Add(-time.Duration(i)*time.Hour + 30*time.Minute),
		}
	}
	svc := &MockEventService{
		listFunc: func(ctx context.Context, id uuid.UUID, filter domain.EventFilter) ([]domain.Event, error) {
			return events, nil
		},
	}
	r := newEventRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/events?limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response domain.EventListResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Data) != 2 {
		t.Errorf("expected 2 events, got %d", len(response.Data))
	}
	if !response.Pagination.HasMore {
		t.Error("expected has_more to be true")
	}
	if response.Pagination.NextCursor == "" {
		t.Error("expected non-empty next_cursor")
	}
}

func TestListEvents_InvalidQuery(t *testing.T) {
	r := newEventRouter(&MockEventService{})

	tests := []struct {
		name  string
		query string
	}{
		{"bad from", "?from=yesterday"},
		{"bad to", "?to=03-04-2024"},
		{"bad limit", "?limit=zero"},
		{"negative limit", "?limit=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString()+"/events"+tt.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected status 422, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
