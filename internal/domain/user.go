package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone         string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	ScreenTimeHours  float64   `gorm:"not null;default:0" json:"screen_time_hours"`
	RestingHeartRate int       `gorm:"type:smallint;not null;default:0" json:"resting_heart_rate"`
	EnrolledClasses  string    `gorm:"type:text;not null;default:''" json:"enrolled_classes"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone string `json:"timezone" validate:"required,timezone"`
	// Average daily screen time in hours, used as AI profile context
	ScreenTimeHours float64 `json:"screen_time_hours" validate:"omitempty,min=0,max=24"`
	// Resting heart rate in bpm, used as AI profile context
	RestingHeartRate int `json:"resting_heart_rate" validate:"omitempty,min=0,max=250"`
	// Comma-separated list of enrolled classes
	EnrolledClasses string `json:"enrolled_classes" validate:"omitempty,max=1024"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Timezone         string    `json:"timezone"`
	ScreenTimeHours  float64   `json:"screen_time_hours"`
	RestingHeartRate int       `json:"resting_heart_rate"`
	EnrolledClasses  string    `json:"enrolled_classes"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:               u.ID,
		Timezone:         u.Timezone,
		ScreenTimeHours:  u.ScreenTimeHours,
		RestingHeartRate: u.RestingHeartRate,
		EnrolledClasses:  u.EnrolledClasses,
		CreatedAt:        u.CreatedAt,
	}
}

// ProfileContext is the per-user summary injected as leading context into AI calls.
// It is always passed explicitly; the stress subsystem never reads ambient state.
type ProfileContext struct {
	ScreenTimeHours  float64 `json:"screen_time_hours"`
	RestingHeartRate int     `json:"resting_heart_rate"`
	EnrolledClasses  string  `json:"enrolled_classes"`
}

func (u *User) Profile() ProfileContext {
	return ProfileContext{
		ScreenTimeHours:  u.ScreenTimeHours,
		RestingHeartRate: u.RestingHeartRate,
		EnrolledClasses:  u.EnrolledClasses,
	}
}
