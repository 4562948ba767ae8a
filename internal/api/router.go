package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/campuswell/stress-tracker/docs"
	"github.com/campuswell/stress-tracker/internal/api/handler"
	"github.com/campuswell/stress-tracker/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler       *handler.UserHandler
	eventHandler      *handler.EventHandler
	assignmentHandler *handler.AssignmentHandler
	heartRateHandler  *handler.HeartRateHandler
	stressHandler     *handler.StressHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	eventHandler *handler.EventHandler,
	assignmentHandler *handler.AssignmentHandler,
	heartRateHandler *handler.HeartRateHandler,
	stressHandler *handler.StressHandler,
) *Router {
	return &Router{
		userHandler:       userHandler,
		eventHandler:      eventHandler,
		assignmentHandler: assignmentHandler,
		heartRateHandler:  heartRateHandler,
		stressHandler:     stressHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			r.Route("/{userId}/events", func(r chi.Router) {
				r.Post("/", rt.eventHandler.Create)
				r.Get("/", rt.eventHandler.List)
			})

			r.Route("/{userId}/assignments", func(r chi.Router) {
				r.Post("/", rt.assignmentHandler.Create)
				r.Get("/", rt.assignmentHandler.List)
			})

			r.Route("/{userId}/heart-rates", func(r chi.Router) {
				r.Post("/", rt.heartRateHandler.Create)
				r.Get("/", rt.heartRateHandler.List)
			})

			r.Route("/{userId}/stress", func(r chi.Router) {
				r.Get("/daily", rt.stressHandler.GetDaily)
				r.Post("/daily/refresh", rt.stressHandler.Refresh)
				r.Get("/forecast", rt.stressHandler.GetForecast)
				r.Post("/feedback", rt.stressHandler.PostFeedback)
			})
		})
	})

	return r
}
