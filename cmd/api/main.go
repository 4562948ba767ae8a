// CampusWell Stress API
//
// REST API for estimating student stress from daily signals.
//
//	@title			CampusWell Stress API
//	@version		1.0
//	@description	Estimate hourly student stress from calendar events, assignment deadlines and heart rate data.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User profile endpoints
//
//	@tag.name			events
//	@tag.description	Calendar event endpoints
//
//	@tag.name			assignments
//	@tag.description	Assignment deadline endpoints
//
//	@tag.name			heart-rates
//	@tag.description	Heart rate sample endpoints
//
//	@tag.name			stress
//	@tag.description	Stress estimation endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/campuswell/stress-tracker/internal/api"
	"github.com/campuswell/stress-tracker/internal/api/handler"
	"github.com/campuswell/stress-tracker/internal/config"
	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/campuswell/stress-tracker/internal/langfuse"
	"github.com/campuswell/stress-tracker/internal/llm"
	"github.com/campuswell/stress-tracker/internal/repository"
	"github.com/campuswell/stress-tracker/internal/seed"
	"github.com/campuswell/stress-tracker/internal/service"
	"github.com/campuswell/stress-tracker/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Event{},
		&domain.Assignment{},
		&domain.HeartRateSample{},
		&domain.StressSampleRecord{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize tracing (no-op unless Langfuse is configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "stress-tracker-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	heartRateRepo := repository.NewHeartRateRepository(db)
	stressRepo := repository.NewStressSampleRepository(db)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIStressModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, stress estimates will use the deterministic fallback")
	}

	// Optionally replace the system instructions with a Langfuse-managed prompt
	if cfg.StressPromptName != "" || cfg.StressPromptFile != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.StressPromptName,
			PromptLabel: cfg.StressPromptLabel,
			CachePath:   cfg.StressPromptFile,
		})
		if err != nil {
			log.Printf("Warning: could not load managed prompt, using built-in instructions: %v", err)
		} else {
			openaiClient.SetInstructions(prompt)
		}
	}

	// Initialize Langfuse client for feedback scores (no-op if not configured)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize services
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, userRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, userRepo)
	heartRateService := service.NewHeartRateService(heartRateRepo, userRepo)
	stressService := service.NewStressService(userRepo, eventRepo, assignmentRepo, heartRateRepo, stressRepo, openaiClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)
	heartRateHandler := handler.NewHeartRateHandler(heartRateService)
	stressHandler := handler.NewStressHandler(stressService, langfuseClient)

	// Setup router
	router := api.NewRouter(userHandler, eventHandler, assignmentHandler, heartRateHandler, stressHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
