package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateKeyFormat is the canonical layout for daily stress keys (yyyy-MM-dd).
const DateKeyFormat = "2006-01-02"

// StressSample is one hour of a daily stress curve.
// @Description Estimated stress intensity for a single hour of the day.
type StressSample struct {
	// Hour of day (0-23)
	Hour int `json:"hour" example:"14"`
	// Stress intensity: 0 = calm, 10 = extreme
	Value float64 `json:"value" example:"4.5"`
}

// Clamp forces the sample into the valid range without discarding it.
func (s StressSample) Clamp() StressSample {
	if s.Hour < 0 {
		s.Hour = 0
	}
	if s.Hour > 23 {
		s.Hour = 23
	}
	if s.Value < 0 {
		s.Value = 0
	}
	if s.Value > 10 {
		s.Value = 10
	}
	return s
}

// StressSampleRecord is the persisted form of a stress sample, one row per
// user, date key, and hour. A day is always written as a whole (overwrite
// semantics), never merged incrementally.
type StressSampleRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stress_user_date_hour" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_stress_user_date_hour" json:"date"`
	Hour      int       `gorm:"type:smallint;not null;uniqueIndex:idx_stress_user_date_hour" json:"hour"`
	Value     float64   `gorm:"not null" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StressSampleRecord) TableName() string {
	return "stress_samples"
}

func (r *StressSampleRecord) ToSample() StressSample {
	return StressSample{Hour: r.Hour, Value: r.Value}
}

// StressContext aggregates the signals for one day. It is built fresh per
// request and never persisted.
type StressContext struct {
	Events      []Event
	Assignments []Assignment
	HeartRates  []HeartRateSample
}

// StressForecast is the qualitative one-shot forecast for a day.
// @Description Qualitative stress forecast: an emoji plus a short summary.
type StressForecast struct {
	// Single emoji describing the day
	Emoji string `json:"emoji" example:"😐"`
	// 2-3 sentence outlook
	Summary string `json:"summary" example:"A mixed day ahead. Stay organized and you'll handle the pressure."`
}

// StressDayResponse is the response for the daily stress curve endpoints.
// @Description Hourly stress curve for a single day.
type StressDayResponse struct {
	UserID uuid.UUID `json:"user_id"`
	// Date key in yyyy-MM-dd format
	Date string `json:"date" example:"2024-03-04"`
	// 24 hourly samples, hours 0-23 ascending
	Samples []StressSample `json:"samples"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}

// StressForecastResponse is the response for the qualitative forecast endpoint.
type StressForecastResponse struct {
	UserID uuid.UUID `json:"user_id"`
	// Date key in yyyy-MM-dd format
	Date     string         `json:"date" example:"2024-03-04"`
	Forecast StressForecast `json:"forecast"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}
