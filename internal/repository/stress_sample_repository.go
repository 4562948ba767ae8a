package repository

import (
	"context"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StressSampleRepository persists computed daily stress curves keyed by user
// and yyyy-MM-dd date string. LoadDay returning domain.ErrNotFound signals
// "must (re)compute", not a storage failure.
type StressSampleRepository interface {
	LoadDay(ctx context.Context, userID uuid.UUID, date string) ([]domain.StressSample, error)
	SaveDay(ctx context.Context, userID uuid.UUID, date string, samples []domain.StressSample) error
}

type stressSampleRepository struct {
	db *gorm.DB
}

func NewStressSampleRepository(db *gorm.DB) StressSampleRepository {
	return &stressSampleRepository{db: db}
}

func (r *stressSampleRepository) LoadDay(ctx context.Context, userID uuid.UUID, date string) ([]domain.StressSample, error) {
	var records []domain.StressSampleRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("hour ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}

	samples := make([]domain.StressSample, 0, len(records))
	for i := range records {
		samples = append(samples, records[i].ToSample())
	}
	return samples, nil
}

// SaveDay overwrites the full day in one transaction. There is no incremental
// merge: regeneration replaces whatever was stored before.
func (r *stressSampleRepository) SaveDay(ctx context.Context, userID uuid.UUID, date string, samples []domain.StressSample) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND date = ?", userID, date).
			Delete(&domain.StressSampleRecord{}).Error; err != nil {
			return err
		}

		records := make([]domain.StressSampleRecord, 0, len(samples))
		for _, s := range samples {
			records = append(records, domain.StressSampleRecord{
				ID:     uuid.New(),
				UserID: userID,
				Date:   date,
				Hour:   s.Hour,
				Value:  s.Value,
			})
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}
