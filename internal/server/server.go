// Package server assembles the HTTP API: services, middleware and routes.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ayush/pet-qa-forum/internal/auth"
	"github.com/ayush/pet-qa-forum/internal/config"
	"github.com/ayush/pet-qa-forum/internal/content"
	"github.com/ayush/pet-qa-forum/internal/middleware"
	"github.com/ayush/pet-qa-forum/internal/store"
)

// Server wires the services and exposes the router.
type Server struct {
	cfg     *config.Config
	auth    *auth.Service
	content *content.Service
}

func New(cfg *config.Config, st store.Store) *Server {
	return &Server{
		cfg:     cfg,
		auth:    auth.NewService(st, cfg.JWTSecret, cfg.TokenTTL),
		content: content.NewService(st),
	}
}

// Router builds the full chi router.
func (s *Server) Router() http.Handler {
	authHandler := auth.NewHandler(s.auth)
	contentHandler := content.NewHandler(s.content)

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth routes (public)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/api", func(r chi.Router) {
		// Read routes (public)
		r.Get("/categories", contentHandler.Categories)
		r.Get("/questions", contentHandler.Questions)
		r.Get("/answers", contentHandler.Answers)

		// Create routes (bearer token required)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(s.auth))
			r.Post("/questions", contentHandler.CreateQuestion)
			r.Post("/answers", contentHandler.CreateAnswer)
		})

		// Seed/wipe routes exist only when dev endpoints are enabled.
		if s.cfg.DevEndpoints {
			r.Get("/seed-categories", contentHandler.SeedCategories)
			r.Get("/seed-demo-data", contentHandler.SeedDemoData)
			r.Get("/wipe-demo-data", contentHandler.WipeDemoData)
		}
	})

	return r
}
