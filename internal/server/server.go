package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/ftracker/internal/workout"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	log    *slog.Logger
	apiKey string
	lang   workout.Language
	router chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey
// leaves the compute endpoint open.
func New(apiKey string, lang workout.Language, log *slog.Logger) *Server {
	s := &Server{
		log:    log,
		apiKey: apiKey,
		lang:   lang,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1/workouts", func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}
		r.Post("/compute", s.handleCompute)
	})

	s.router.Get("/api/v1/workout-types", s.handleWorkoutTypes)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Handle("/metrics", promhttp.Handler())
}
