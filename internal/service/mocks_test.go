package service

import (
	"context"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/llm"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	events []domain.Event
	err    error
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	event.CreatedAt = time.Now()
	m.events = append(m.events, *event)
	return nil
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.events {
		if m.events[i].ID == id {
			return &m.events[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockEventRepository) List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Event
	for _, ev := range m.events {
		if ev.UserID == userID {
			result = append(result, ev)
		}
	}
	return result, nil
}

func (m *MockEventRepository) ListByStartRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Event
	for _, ev := range m.events {
		if ev.UserID == userID && !ev.StartAt.Before(from) && ev.StartAt.Before(to) {
			result = append(result, ev)
		}
	}
	return result, nil
}

// MockAssignmentRepository is a mock implementation of AssignmentRepository
type MockAssignmentRepository struct {
	assignments []domain.Assignment
	err         error
}

func (m *MockAssignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	if m.err != nil {
		return m.err
	}
	assignment.CreatedAt = time.Now()
	m.assignments = append(m.assignments, *assignment)
	return nil
}

func (m *MockAssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.assignments {
		if m.assignments[i].ID == id {
			return &m.assignments[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockAssignmentRepository) List(ctx context.Context, userID uuid.UUID, filter domain.AssignmentFilter) ([]domain.Assignment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Assignment
	for _, a := range m.assignments {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *MockAssignmentRepository) ListByDueRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Assignment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Assignment
	for _, a := range m.assignments {
		if a.UserID == userID && !a.DueAt.Before(from) && a.DueAt.Before(to) {
			result = append(result, a)
		}
	}
	return result, nil
}

// MockHeartRateRepository is a mock implementation of HeartRateRepository
type MockHeartRateRepository struct {
	samples []domain.HeartRateSample
	err     error
}

func (m *MockHeartRateRepository) Create(ctx context.Context, sample *domain.HeartRateSample) error {
	if m.err != nil {
		return m.err
	}
	sample.CreatedAt = time.Now()
	m.samples = append(m.samples, *sample)
	return nil
}

func (m *MockHeartRateRepository) ListByRecordedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HeartRateSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.HeartRateSample
	for _, s := range m.samples {
		if s.UserID == userID && !s.RecordedAt.Before(from) && s.RecordedAt.Before(to) {
			result = append(result, s)
		}
	}
	return result, nil
}

// MockStressSampleRepository is a mock implementation of StressSampleRepository
type MockStressSampleRepository struct {
	days      map[string][]domain.StressSample
	saveCalls int
	loadErr   error
	saveErr   error
}

func NewMockStressSampleRepository() *MockStressSampleRepository {
	return &MockStressSampleRepository{days: make(map[string][]domain.StressSample)}
}

func (m *MockStressSampleRepository) LoadDay(ctx context.Context, userID uuid.UUID, date string) ([]domain.StressSample, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	samples, ok := m.days[userID.String()+":"+date]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return samples, nil
}

func (m *MockStressSampleRepository) SaveDay(ctx context.Context, userID uuid.UUID, date string, samples []domain.StressSample) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	stored := make([]domain.StressSample, len(samples))
	copy(stored, samples)
	m.days[userID.String()+":"+date] = stored
	return nil
}

// mockChatClient is a scripted ChatClient for orchestration tests
type mockChatClient struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
	sendFunc   func(ctx context.Context) (string, error)
}

func (m *mockChatClient) SendChat(ctx context.Context, messages []llm.ChatMessage, profile domain.ProfileContext) (string, error) {
	m.calls++
	if len(messages) > 0 {
		m.lastPrompt = messages[len(messages)-1].Text
	}
	if m.sendFunc != nil {
		return m.sendFunc(ctx)
	}
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}
