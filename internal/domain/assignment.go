package domain

import (
	"time"

	"github.com/google/uuid"
)

type Assignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_assignments_user_due" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Course    string    `gorm:"type:varchar(128);not null;default:''" json:"course"`
	DueAt     time.Time `gorm:"not null;index:idx_assignments_user_due,sort:desc" json:"due_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// CreateAssignmentRequest is the request body for recording an assignment.
// @Description Request payload for creating an assignment with a due date.
type CreateAssignmentRequest struct {
	// Assignment title
	Title string `json:"title" validate:"required,max=255" example:"Problem set 4"`
	// Course the assignment belongs to
	Course string `json:"course" validate:"omitempty,max=128" example:"MATH 201"`
	// Due date in RFC3339 format
	DueAt time.Time `json:"due_at" validate:"required" example:"2024-03-06T23:59:00Z"`
}

// AssignmentResponse is the response body for assignment endpoints.
type AssignmentResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Course    string    `json:"course"`
	DueAt     time.Time `json:"due_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Assignment) ToResponse() AssignmentResponse {
	return AssignmentResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Title:     a.Title,
		Course:    a.Course,
		DueAt:     a.DueAt,
		CreatedAt: a.CreatedAt,
	}
}

// AssignmentListResponse is the response body for listing assignments.
type AssignmentListResponse struct {
	Data       []AssignmentResponse `json:"data"`
	Pagination PaginationResponse   `json:"pagination"`
}

// AssignmentFilter contains filter parameters for listing assignments
type AssignmentFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
