package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/google/uuid"
)

func TestEventServiceCreate(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	eventRepo := &MockEventRepository{}
	svc := NewEventService(eventRepo, userRepo)

	req := &domain.CreateEventRequest{
		Title:   "Study group",
		StartAt: time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC),
	}

	event, err := svc.Create(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Category != "general" {
		t.Fatalf("empty category must default to general, got %q", event.Category)
	}
	if len(eventRepo.events) != 1 {
		t.Fatalf("event not stored")
	}
}

func TestEventServiceCreateUnknownUser(t *testing.T) {
	svc := NewEventService(&MockEventRepository{}, NewMockUserRepository())

	_, err := svc.Create(context.Background(), uuid.New(), &domain.CreateEventRequest{
		Title:   "x",
		StartAt: time.Now(),
		EndAt:   time.Now().Add(time.Hour),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssignmentServiceCreate(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	assignmentRepo := &MockAssignmentRepository{}
	svc := NewAssignmentService(assignmentRepo, userRepo)

	assignment, err := svc.Create(context.Background(), userID, &domain.CreateAssignmentRequest{
		Title:  "Reading response",
		Course: "ENG 101",
		DueAt:  time.Date(2024, 3, 6, 23, 59, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assignment.UserID != userID || assignment.Course != "ENG 101" {
		t.Fatalf("unexpected assignment: %+v", assignment)
	}
}

func TestAssignmentServiceList(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	assignmentRepo := &MockAssignmentRepository{assignments: []domain.Assignment{
		{ID: uuid.New(), UserID: userID, Title: "Lab report", DueAt: time.Date(2024, 3, 6, 23, 59, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: uuid.New(), Title: "Someone else's", DueAt: time.Date(2024, 3, 6, 23, 59, 0, 0, time.UTC)},
	}}
	svc := NewAssignmentService(assignmentRepo, userRepo)

	assignments, err := svc.List(context.Background(), userID, domain.AssignmentFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignments) != 1 || assignments[0].Title != "Lab report" {
		t.Fatalf("unexpected assignments: %+v", assignments)
	}
}

func TestAssignmentServiceUnknownUser(t *testing.T) {
	svc := NewAssignmentService(&MockAssignmentRepository{}, NewMockUserRepository())

	if _, err := svc.Create(context.Background(), uuid.New(), &domain.CreateAssignmentRequest{
		Title: "x",
		DueAt: time.Now(),
	}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from Create, got %v", err)
	}
	if _, err := svc.List(context.Background(), uuid.New(), domain.AssignmentFilter{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from List, got %v", err)
	}
}

func TestHeartRateServiceCreateAndList(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	heartRateRepo := &MockHeartRateRepository{}
	svc := NewHeartRateService(heartRateRepo, userRepo)

	recordedAt := time.Date(2024, 3, 4, 14, 5, 0, 0, time.UTC)
	if _, err := svc.Create(context.Background(), userID, &domain.CreateHeartRateRequest{
		RecordedAt: recordedAt,
		BPM:        78,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	from := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	samples, err := svc.ListRange(context.Background(), userID, from, from.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 1 || samples[0].BPM != 78 {
		t.Fatalf("unexpected samples: %+v", samples)
	}
}

func TestHeartRateServiceUnknownUser(t *testing.T) {
	svc := NewHeartRateService(&MockHeartRateRepository{}, NewMockUserRepository())

	if _, err := svc.Create(context.Background(), uuid.New(), &domain.CreateHeartRateRequest{
		RecordedAt: time.Now(),
		BPM:        78,
	}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from Create, got %v", err)
	}
	if _, err := svc.ListRange(context.Background(), uuid.New(), time.Now().Add(-time.Hour), time.Now()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from ListRange, got %v", err)
	}
}
