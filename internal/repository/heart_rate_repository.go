package repository

import (
	"context"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HeartRateRepository interface {
	Create(ctx context.Context, sample *domain.HeartRateSample) error
	ListByRecordedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HeartRateSample, error)
}

type heartRateRepository struct {
	db *gorm.DB
}

func NewHeartRateRepository(db *gorm.DB) HeartRateRepository {
	return &heartRateRepository{db: db}
}

func (r *heartRateRepository) Create(ctx context.Context, sample *domain.HeartRateSample) error {
	return r.db.WithContext(ctx).Create(sample).Error
}

// ListByRecordedRange returns all samples recorded inside [from, to), oldest first.
func (r *heartRateRepository) ListByRecordedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HeartRateSample, error) {
	var samples []domain.HeartRateSample
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("recorded_at >= ? AND recorded_at < ?", from, to).
		Order("recorded_at ASC").
		Find(&samples).Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}
