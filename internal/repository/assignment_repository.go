package repository

import (
	"context"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.AssignmentFilter) ([]domain.Assignment, error)
	ListByDueRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Assignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	var assignment domain.Assignment
	err := r.db.WithContext(ctx).First(&assignment, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) List(ctx context.Context, userID uuid.UUID, filter domain.AssignmentFilter) ([]domain.Assignment, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_at DESC")

	if filter.From != nil {
		query = query.Where("due_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("due_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(due_at < ?) OR (due_at = ? AND id < ?)",
				cursor.At, cursor.At, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var assignments []domain.Assignment
	if err := query.Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

// ListByDueRange returns all assignments due inside [from, to), earliest first.
func (r *assignmentRepository) ListByDueRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("due_at >= ? AND due_at < ?", from, to).
		Order("due_at ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
