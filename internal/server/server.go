// Package server exposes the generation pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"adforge/internal/config"
	"adforge/internal/generate"
	"adforge/internal/logger"
	"adforge/internal/persistence"
	"adforge/internal/provider"
	"adforge/internal/virality"
)

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	generator  *generate.Generator
	scorer     *virality.Scorer
	providers  *provider.Registry
	db         persistence.Database // nil when no database is configured
	config     config.Server
	log        *slog.Logger
}

// New creates a new HTTP server instance. db may be nil; persistence is then
// skipped and health reports the database as disabled.
func New(generator *generate.Generator, scorer *virality.Scorer, providers *provider.Registry, db persistence.Database, cfg config.Server) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		generator: generator,
		scorer:    scorer,
		providers: providers,
		db:        db,
		config:    cfg,
		log:       logger.Get(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	// Generation batches run many sequential provider calls; the timeout has
	// to cover a full 13-format batch with per-call delays.
	s.router.Use(middleware.Timeout(5 * time.Minute))

	origins := s.config.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures routes for the server
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/formats", s.handleListFormats)
		r.Get("/providers", s.handleListProviders)

		r.Post("/generate", s.handleGenerate)
		r.Post("/strategy", s.handleStrategy)

		r.Route("/ideas", func(r chi.Router) {
			r.Post("/", s.handleIdeas)
			r.Post("/enhance", s.handleEnhanceIdea)
		})

		r.Route("/score", func(r chi.Router) {
			r.Post("/", s.handleScore)
			r.Post("/explain", s.handleExplainScore)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", s.handleListCampaigns)
			r.Get("/{id}", s.handleGetCampaign)
			r.Get("/{id}/content", s.handleGetCampaignContent)
			r.Delete("/{id}", s.handleDeleteCampaign)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server",
		"addr", s.httpServer.Addr,
		"read_timeout", s.config.ReadTimeout,
		"write_timeout", s.config.WriteTimeout,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server gracefully...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("HTTP server stopped")
	return nil
}

// Router returns the chi router instance (useful for testing)
func (s *Server) Router() *chi.Mux {
	return s.router
}
