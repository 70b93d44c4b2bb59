// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package api provides the HTTP surface of the assistant: the query
// endpoint, feedback recording, preference management, health probes,
// and Prometheus metrics, routed with chi.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/agent"
	"github.com/ckersey/souschef/internal/catalog"
	"github.com/ckersey/souschef/internal/config"
	"github.com/ckersey/souschef/internal/learning"
	"github.com/ckersey/souschef/internal/store"
)

// Server hosts the HTTP API. It implements suture.Service so the
// supervisor owns its lifecycle.
type Server struct {
	cfg      config.ServerConfig
	registry *agent.Registry
	prefs    *store.PreferenceStore
	bus      *learning.Bus
	catalog  *catalog.Catalog
	ready    func() bool
	logger   zerolog.Logger
}

// Deps bundles the server's collaborators. Bus may be nil, which
// disables the feedback endpoint; a nil Catalog disables the recipe
// endpoints. A nil Ready reports always-ready.
type Deps struct {
	Registry *agent.Registry
	Prefs    *store.PreferenceStore
	Bus      *learning.Bus
	Catalog  *catalog.Catalog
	Ready    func() bool
	Logger   zerolog.Logger
}

// NewServer creates the API server.
func NewServer(cfg config.ServerConfig, deps Deps) *Server {
	if deps.Ready == nil {
		deps.Ready = func() bool { return true }
	}
	return &Server{
		cfg:      cfg,
		registry: deps.Registry,
		prefs:    deps.Prefs,
		bus:      deps.Bus,
		catalog:  deps.Catalog,
		ready:    deps.Ready,
		logger:   deps.Logger.With().Str("component", "api").Logger(),
	}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID())
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", s.handleHealthLive)
		r.Get("/ready", s.handleHealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if s.cfg.RateLimit > 0 {
			r.Use(httprate.LimitByIP(s.cfg.RateLimit, time.Minute))
		}
		r.Post("/assistant/query", s.handleQuery)
		r.Post("/assistant/feedback", s.handleFeedback)
		r.Get("/preferences/{userID}", s.handleGetPreferences)
		r.Patch("/preferences/{userID}", s.handlePatchPreferences)
		r.Get("/recipes", s.handleListRecipes)
		r.Post("/recipes", s.handleAddRecipes)
	})

	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Serve runs the HTTP server until the context is cancelled, then shuts
// down gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("HTTP server listening")
		errs <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// String names the service in supervisor logs.
func (s *Server) String() string { return "http-server" }
