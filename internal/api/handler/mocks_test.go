package handler

import (
	"context"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/langfuse"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{
		ID:               uuid.New(),
		Timezone:         req.Timezone,
		ScreenTimeHours:  req.ScreenTimeHours,
		RestingHeartRate: req.RestingHeartRate,
		EnrolledClasses:  req.EnrolledClasses,
		CreatedAt:        time.Now(),
	}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.User{ID: id, Timezone: "UTC", CreatedAt: time.Now()}, nil
}

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateEventRequest) (*domain.Event, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error)
}

func (m *MockEventService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEventRequest) (*domain.Event, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Event{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Category:  req.Category,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockEventService) List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return []domain.Event{}, nil
}

// MockAssignmentService is a mock implementation of AssignmentService
type MockAssignmentService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateAssignmentRequest) (*domain.Assignment, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.AssignmentFilter) ([]domain.Assignment, error)
}

func (m *MockAssignmentService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateAssignmentRequest) (*domain.Assignment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Assignment{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Course:    req.Course,
		DueAt:     req.DueAt,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockAssignmentService) List(ctx context.Context, userID uuid.UUID, filter domain.AssignmentFilter) ([]domain.Assignment, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return []domain.Assignment{}, nil
}

// MockHeartRateService is a mock implementation of HeartRateService
type MockHeartRateService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateHeartRateRequest) (*domain.HeartRateSample, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HeartRateSample, error)
}

func (m *MockHeartRateService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHeartRateRequest) (*domain.HeartRateSample, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.HeartRateSample{
		ID:         uuid.New(),
		UserID:     userID,
		RecordedAt: req.RecordedAt,
		BPM:        req.BPM,
		CreatedAt:  time.Now(),
	}, nil
}

func (m *MockHeartRateService) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HeartRateSample, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, from, to)
	}
	return []domain.HeartRateSample{}, nil
}

// MockStressService is a mock implementation of StressService
type MockStressService struct {
	getDayFunc   func(ctx context.Context, userID uuid.UUID, date string) (*domain.StressDayResponse, error)
	refreshFunc  func(ctx context.Context, userID uuid.UUID, date string) (*domain.StressDayResponse, error)
	forecastFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.StressForecastResponse, error)
}

func flatCurve(userID uuid.UUID, date string) *domain.StressDayResponse {
	samples := make([]domain.StressSample, 24)
	for hour := range samples {
		samples[hour] = domain.StressSample{Hour: hour, Value: 2.0}
	}
	return &domain.StressDayResponse{UserID: userID, Date: date, Samples: samples}
}

func (m *MockStressService) GetDay(ctx context.Context, userID uuid.UUID, date string) (*domain.StressDayResponse, error) {
	if m.getDayFunc != nil {
		return m.getDayFunc(ctx, userID, date)
	}
	return flatCurve(userID, date), nil
}

func (m *MockStressService) Refresh(ctx context.Context, userID uuid.UUID, date string) (*domain.StressDayResponse, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, userID, date)
	}
	return flatCurve(userID, date), nil
}

func (m *MockStressService) Forecast(ctx context.Context, userID uuid.UUID, date string) (*domain.StressForecastResponse, error) {
	if m.forecastFunc != nil {
		return m.forecastFunc(ctx, userID, date)
	}
	return &domain.StressForecastResponse{
		UserID: userID,
		Date:   date,
		Forecast: domain.StressForecast{
			Emoji:   "😄",
			Summary: "Light commitments today—perfect for catching up calmly.",
		},
	}, nil
}

// mockLangfuseClient for feedback tests
type mockLangfuseClient struct {
	enabled    bool
	scoreCalls int
	lastScore  langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	m.lastScore = in
	return nil
}
