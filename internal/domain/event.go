package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_events_user_start" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Category  string    `gorm:"type:varchar(64);not null;default:'general'" json:"category"`
	StartAt   time.Time `gorm:"not null;index:idx_events_user_start,sort:desc" json:"start_at"`
	EndAt     time.Time `gorm:"not null" json:"end_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

// CreateEventRequest is the request body for recording a calendar event.
// @Description Request payload for creating a calendar event.
type CreateEventRequest struct {
	// Event title
	Title string `json:"title" validate:"required,max=255" example:"Linear Algebra lecture"`
	// Event category (e.g. class, exam, social)
	Category string `json:"category" validate:"omitempty,max=64" example:"class"`
	// Event start time in RFC3339 format
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-03-04T09:00:00Z"`
	// Event end time (must be after start_at)
	EndAt time.Time `json:"end_at" validate:"required,gtfield=StartAt" example:"2024-03-04T10:30:00Z"`
}

// EventResponse is the response body for event endpoints.
type EventResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		Category:  e.Category,
		StartAt:   e.StartAt,
		EndAt:     e.EndAt,
		CreatedAt: e.CreatedAt,
	}
}

// EventListResponse is the response body for listing events.
type EventListResponse struct {
	Data       []EventResponse    `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// EventFilter contains filter parameters for listing events
type EventFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more"`
}
