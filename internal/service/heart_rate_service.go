package service

import (
	"context"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/repository"
	"github.com/google/uuid"
)

type HeartRateService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHeartRateRequest) (*domain.HeartRateSample, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HeartRateSample, error)
}

type heartRateService struct {
	heartRateRepo repository.HeartRateRepository
	userRepo      repository.UserRepository
}

func NewHeartRateService(heartRateRepo repository.HeartRateRepository, userRepo repository.UserRepository) HeartRateService {
	return &heartRateService{heartRateRepo: heartRateRepo, userRepo: userRepo}
}

func (s *heartRateService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHeartRateRequest) (*domain.HeartRateSample, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	sample := &domain.HeartRateSample{
		ID:         uuid.New(),
		UserID:     userID,
		RecordedAt: req.RecordedAt,
		BPM:        req.BPM,
	}

	if err := s.heartRateRepo.Create(ctx, sample); err != nil {
		return nil, err
	}

	return sample, nil
}

func (s *heartRateService) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HeartRateSample, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.heartRateRepo.ListByRecordedRange(ctx, userID, from, to)
}
