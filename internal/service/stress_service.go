package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/llm"
	"github.com/campuswell/stress-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

// StressService computes and serves daily stress curves and forecasts.
// The AI path is tried first; any AI failure degrades silently to the
// deterministic estimator. Storage failures are never masked.
type StressService interface {
	// GetDay returns the stored curve for the date, computing and persisting
	// it on a storage miss.
	GetDay(ctx context.Context, userID uuid.UUID, date string) (*domain.StressDayResponse, error)
	// Refresh recomputes the curve and overwrites whatever was stored.
	Refresh(ctx context.Context, userID uuid.UUID, date string) (*domain.StressDayResponse, error)
	// Forecast produces the qualitative one-shot forecast. Not persisted.
	Forecast(ctx context.Context, userID uuid.UUID, date string) (*domain.StressForecastResponse, error)
}

type stressService struct {
	userRepo       repository.UserRepository
	eventRepo      repository.EventRepository
	assignmentRepo repository.AssignmentRepository
	heartRateRepo  repository.HeartRateRepository
	stressRepo     repository.StressSampleRepository
	chatClient     llm.ChatClient

	// Concurrent computations for the same user+date share one flight.
	group singleflight.Group
}

// NewStressService creates a new StressService.
func NewStressService(
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	assignmentRepo repository.AssignmentRepository,
	heartRateRepo repository.HeartRateRepository,
	stressRepo repository.StressSampleRepository,
	chatClient llm.ChatClient,
) StressService {
	return &stressService{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		assignmentRepo: assignmentRepo,
		heartRateRepo:  heartRateRepo,
		stressRepo:     stressRepo,
		chatClient:     chatClient,
	}
}

func (s *stressService) GetDay(ctx context.Context, userID uuid.UUID, date string) (*domain.StressDayResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	samples, err := s.stressRepo.LoadDay(ctx, userID, date)
	if err == nil {
		return &domain.StressDayResponse{UserID: userID, Date: date, Samples: samples}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		// A load error is a storage failure, not a recompute signal.
		return nil, err
	}

	samples, err = s.computeAndStoreDay(ctx, user, date)
	if err != nil {
		return nil, err
	}
	return &domain.StressDayResponse{UserID: userID, Date: date, Samples: samples}, nil
}

func (s *stressService) Refresh(ctx context.Context, userID uuid.UUID, date string) (*domain.StressDayResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	samples, err := s.computeAndStoreDay(ctx, user, date)
	if err != nil {
		return nil, err
	}
	return &domain.StressDayResponse{UserID: userID, Date: date, Samples: samples}, nil
}

func (s *stressService) Forecast(ctx context.Context, userID uuid.UUID, date string) (*domain.StressForecastResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stressCtx, day, loc, err := s.gatherSignals(ctx, user, date)
	if err != nil {
		return nil, err
	}

	forecast := s.forecastWithFallback(ctx, user, stressCtx, day, loc)
	return &domain.StressForecastResponse{UserID: userID, Date: date, Forecast: forecast}, nil
}

// computeAndStoreDay builds the day's curve and overwrites the stored one.
// Concurrent calls for the same user+date are coalesced into a single flight.
// The flight runs detached from the winning caller's context so that one
// cancelled request cannot fail the followers sharing the result.
func (s *stressService) computeAndStoreDay(ctx context.Context, user *domain.User, date string) ([]domain.StressSample, error) {
	ctx = context.WithoutCancel(ctx)
	key := user.ID.String() + ":" + date
	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		stressCtx, day, loc, err := s.gatherSignals(ctx, user, date)
		if err != nil {
			return nil, err
		}

		samples := s.curveWithFallback(ctx, user, stressCtx, day, loc)

		if err := s.stressRepo.SaveDay(ctx, user.ID, date, samples); err != nil {
			return nil, err
		}
		return samples, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.StressSample), nil
}

// gatherSignals scopes the user's signals to the requested day and aggregates
// them into a stress context.
func (s *stressService) gatherSignals(ctx context.Context, user *domain.User, date string) (domain.StressContext, time.Time, *time.Location, error) {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}

	day, err := time.ParseInLocation(domain.DateKeyFormat, date, loc)
	if err != nil {
		return domain.StressContext{}, time.Time{}, nil, fmt.Errorf("%w: date must be yyyy-MM-dd", domain.ErrInvalidInput)
	}
	from := day
	to := day.AddDate(0, 0, 1)

	events, err := s.eventRepo.ListByStartRange(ctx, user.ID, from, to)
	if err != nil {
		return domain.StressContext{}, time.Time{}, nil, err
	}
	assignments, err := s.assignmentRepo.ListByDueRange(ctx, user.ID, from, to)
	if err != nil {
		return domain.StressContext{}, time.Time{}, nil, err
	}
	heartRates, err := s.heartRateRepo.ListByRecordedRange(ctx, user.ID, from, to)
	if err != nil {
		return domain.StressContext{}, time.Time{}, nil, err
	}

	return BuildStressContext(events, assignments, heartRates), day, loc, nil
}

// curveWithFallback attempts the AI hourly curve and falls back to the
// deterministic estimator on any AI failure or unparsable reply.
func (s *stressService) curveWithFallback(ctx context.Context, user *domain.User, stressCtx domain.StressContext, day time.Time, loc *time.Location) []domain.StressSample {
	tracer := otel.Tracer("stress-tracker-api/stress")
	ctx, span := tracer.Start(ctx, "StressService.ComputeDay",
		trace.WithAttributes(
			attribute.String("user.id", user.ID.String()),
			attribute.String("stress.date", day.Format(domain.DateKeyFormat)),
		),
	)
	defer span.End()

	inputPayload := map[string]any{
		"events":      len(stressCtx.Events),
		"assignments": len(stressCtx.Assignments),
		"heart_rates": len(stressCtx.HeartRates),
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	source := "fallback"
	samples := s.tryAIHourly(ctx, user, stressCtx, day, loc)
	if samples != nil {
		source = "ai"
	} else {
		samples = estimateHourlyCurve(stressCtx, loc)
	}
	span.SetAttributes(attribute.String("stress.source", source))

	if outputJSON, err := json.Marshal(samples); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}
	return samples
}

// tryAIHourly runs the AI path. A nil return means "fall back": the caller
// cannot tell a network failure from an unparsable reply, and does not need to.
func (s *stressService) tryAIHourly(ctx context.Context, user *domain.User, stressCtx domain.StressContext, day time.Time, loc *time.Location) []domain.StressSample {
	prompt := buildHourlyPrompt(stressCtx, day, loc)
	text, err := s.chatClient.SendChat(ctx, []llm.ChatMessage{{Role: llm.RoleUser, Text: prompt}}, user.Profile())
	if err != nil {
		log.Printf("stress: AI curve unavailable for user %s, using fallback: %v", user.ID, err)
		return nil
	}
	return parseHourlySamples(text)
}

func (s *stressService) forecastWithFallback(ctx context.Context, user *domain.User, stressCtx domain.StressContext, day time.Time, loc *time.Location) domain.StressForecast {
	tracer := otel.Tracer("stress-tracker-api/stress")
	ctx, span := tracer.Start(ctx, "StressService.Forecast",
		trace.WithAttributes(
			attribute.String("user.id", user.ID.String()),
			attribute.String("stress.date", day.Format(domain.DateKeyFormat)),
		),
	)
	defer span.End()

	prompt := buildForecastPrompt(stressCtx, day, loc)
	text, err := s.chatClient.SendChat(ctx, []llm.ChatMessage{{Role: llm.RoleUser, Text: prompt}}, user.Profile())
	if err == nil {
		if forecast := parseForecast(text); forecast != nil {
			span.SetAttributes(attribute.String("stress.source", "ai"))
			return *forecast
		}
	} else {
		log.Printf("stress: AI forecast unavailable for user %s, using fallback: %v", user.ID, err)
	}

	span.SetAttributes(attribute.String("stress.source", "fallback"))
	return estimateForecast(stressCtx)
}
