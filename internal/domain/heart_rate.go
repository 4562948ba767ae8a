package domain

import (
	"time"

	"github.com/google/uuid"
)

type HeartRateSample struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_heart_rates_user_recorded" json:"user_id"`
	RecordedAt time.Time `gorm:"not null;index:idx_heart_rates_user_recorded,sort:desc" json:"recorded_at"`
	BPM        int       `gorm:"type:smallint;not null" json:"bpm"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HeartRateSample) TableName() string {
	return "heart_rate_samples"
}

// CreateHeartRateRequest is the request body for recording a heart-rate sample.
// @Description Request payload for a single heart-rate reading.
type CreateHeartRateRequest struct {
	// Time the reading was taken, RFC3339 format
	RecordedAt time.Time `json:"recorded_at" validate:"required" example:"2024-03-04T14:05:00Z"`
	// Heart rate in beats per minute
	BPM int `json:"bpm" validate:"required,min=20,max=250" example:"78"`
}

// HeartRateResponse is the response body for heart-rate endpoints.
type HeartRateResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	RecordedAt time.Time `json:"recorded_at"`
	BPM        int       `json:"bpm"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *HeartRateSample) ToResponse() HeartRateResponse {
	return HeartRateResponse{
		ID:         h.ID,
		UserID:     h.UserID,
		RecordedAt: h.RecordedAt,
		BPM:        h.BPM,
		CreatedAt:  h.CreatedAt,
	}
}

// HeartRateListResponse is the response body for listing heart-rate samples.
type HeartRateListResponse struct {
	Data []HeartRateResponse `json:"data"`
}
