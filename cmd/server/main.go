// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Command server runs the Souschef assistant: the HTTP API, the badger
// store, and the learning worker, supervised as one tree.
package main

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/ckersey/souschef/internal/agent"
	"github.com/ckersey/souschef/internal/api"
	"github.com/ckersey/souschef/internal/catalog"
	"github.com/ckersey/souschef/internal/config"
	"github.com/ckersey/souschef/internal/contextual"
	"github.com/ckersey/souschef/internal/interpreter"
	"github.com/ckersey/souschef/internal/learning"
	"github.com/ckersey/souschef/internal/logging"
	"github.com/ckersey/souschef/internal/profile"
	"github.com/ckersey/souschef/internal/scoring"
	"github.com/ckersey/souschef/internal/store"
	"github.com/ckersey/souschef/internal/supervisor"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()
	logger.Info().Int("port", cfg.Server.Port).Msg("Starting souschef")

	st, err := store.Open(store.Options{
		Path:       cfg.Store.Path,
		GCInterval: cfg.Store.GCInterval,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error().Err(err).Msg("Store close failed")
		}
	}()

	seed, err := catalog.LoadSeedFile(cfg.Catalog.SeedPath)
	if err != nil {
		return err
	}
	recipes := catalog.New(seed, logger)
	supplier := catalog.NewBreakerSupplier(recipes, catalog.BreakerConfig{
		MaxFailures: cfg.Catalog.BreakerMaxFailures,
		Cooldown:    cfg.Catalog.BreakerCooldown,
	}, logger)

	bus := learning.NewBus(cfg.Learning.BufferSize, logger)
	defer func() { _ = bus.Close() }()

	profiles := profile.NewBuilder(st.Interactions(), profile.Config{
		CacheTTL:          cfg.Profile.CacheTTL,
		HistoryWindow:     cfg.Profile.HistoryWindow,
		LearningThreshold: cfg.Profile.LearningThreshold,
	}, time.Now, logger)

	assistant, err := agent.New(
		agent.Config{
			ProcessingBudget: cfg.Agent.ProcessingBudget,
			MaxCandidates:    cfg.Agent.MaxCandidates,
			Priority:         cfg.Agent.Priority,
		},
		agent.Deps{
			Interpreter: interpreter.New(logger),
			Profiles:    profiles,
			Analyzer:    contextual.New(logger, time.Now),
			Scorer:      scoring.New(logger),
			Supplier:    supplier,
			Bus:         bus,
			Prefs:       st.Preferences(),
			Logger:      logger,
		},
	)
	if err != nil {
		return err
	}

	registry := agent.NewRegistry(logger)
	if err := registry.Register(assistant); err != nil {
		return err
	}

	var ready atomic.Bool
	server := api.NewServer(cfg.Server, api.Deps{
		Registry: registry,
		Prefs:    st.Preferences(),
		Bus:      bus,
		Catalog:  recipes,
		Ready:    ready.Load,
		Logger:   logger,
	})

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddLearningService(learning.NewWorker(bus, st.Interactions(), profiles, logger))
	tree.AddAPIService(server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ready.Store(true)
	err = tree.Serve(ctx)
	logger.Info().Msg("Souschef stopped")
	return err
}
