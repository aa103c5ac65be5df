// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/web are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/doodledog/doodledog/internal/auth"
	"github.com/doodledog/doodledog/internal/platform/config"
	"github.com/doodledog/doodledog/internal/platform/constants"
	"github.com/doodledog/doodledog/internal/platform/middleware"
	"github.com/doodledog/doodledog/internal/platform/render"
	"github.com/doodledog/doodledog/internal/projects"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the account lifecycle pages (login, register, logout).
	Auth *auth.Handler

	// Projects handles the landing page, the dashboard, and the project API.
	Projects *projects.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, accounts middleware.CredentialStore, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Session(verifier, accounts))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Static Assets
	r.Mount("/static", render.Static())

	// # HTML Pages
	// The account pages redirect an already-signed-in visitor to their
	// dashboard; the dashboard itself requires a verified session.
	r.Get("/", h.Projects.Home)

	r.Group(func(pages chi.Router) {
		pages.Use(middleware.RedirectAuthenticated)
		pages.Get(constants.LoginPath, h.Auth.LoginPage)
		pages.Post(constants.LoginPath, h.Auth.Login)
		pages.Get("/register", h.Auth.RegisterPage)
		pages.Post("/register", h.Auth.Register)
	})

	r.Get("/logout", h.Auth.Logout)

	r.Group(func(pages chi.Router) {
		pages.Use(middleware.RequireUser)
		pages.Get(constants.DashboardPath, h.Projects.Dashboard)
	})

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Group(func(authenticated chi.Router) {
			authenticated.Use(middleware.RequireAuth)
			authenticated.Mount("/projects", h.Projects.Routes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Router exposes the composed handler, primarily for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
