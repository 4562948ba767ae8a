package service

import (
	"context"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/repository"
	"github.com/google/uuid"
)

type EventService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEventRequest) (*domain.Event, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository) EventService {
	return &eventService{eventRepo: eventRepo, userRepo: userRepo}
}

func (s *eventService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEventRequest) (*domain.Event, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	event := &domain.Event{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    req.Title,
		Category: category,
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *eventService) List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.eventRepo.List(ctx, userID, filter)
}
