package service

import (
	"context"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/repository"
	"github.com/google/uuid"
)

type AssignmentService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateAssignmentRequest) (*domain.Assignment, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.AssignmentFilter) ([]domain.Assignment, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
}

func NewAssignmentService(assignmentRepo repository.AssignmentRepository, userRepo repository.UserRepository) AssignmentService {
	return &assignmentService{assignmentRepo: assignmentRepo, userRepo: userRepo}
}

func (s *assignmentService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateAssignmentRequest) (*domain.Assignment, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	assignment := &domain.Assignment{
		ID:     uuid.New(),
		UserID: userID,
		Title:  req.Title,
		Course: req.Course,
		DueAt:  req.DueAt,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (s *assignmentService) List(ctx context.Context, userID uuid.UUID, filter domain.AssignmentFilter) ([]domain.Assignment, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.assignmentRepo.List(ctx, userID, filter)
}
