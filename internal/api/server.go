package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/booksum/internal/config"
	"github.com/dgallion1/booksum/internal/pipeline"
	"github.com/dgallion1/booksum/internal/summarize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API for booksum.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	client       *summarize.Client
	log          *slog.Logger
	cfg          config.Config
}

// NewServer wires routes. client may be nil, in which case LLM stats are unavailable.
func NewServer(orch *pipeline.Orchestrator, client *summarize.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		client:       client,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey))

		r.Post("/api/summarize", s.handleSummarize)
		r.Post("/api/studyplan", s.handleStudyPlan)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
