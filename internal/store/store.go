// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package store persists interaction history and user preferences in
// BadgerDB. An empty path opens an in-memory database, used by tests
// and by deployments that do not want persistence.
package store

import (
	"context"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// Store owns the badger database and exposes the interaction and
// preference sub-stores.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
	gcStop chan struct{}
}

// Options configures Open.
type Options struct {
	// Path is the badger directory. Empty opens an in-memory database.
	Path string

	// GCInterval is how often value-log garbage collection runs. Zero
	// disables the GC loop.
	GCInterval time.Duration
}

// Open opens or creates the store.
func Open(opts Options, logger zerolog.Logger) (*Store, error) {
	componentLogger := logger.With().Str("component", "store").Logger()

	badgerOpts := badger.DefaultOptions(opts.Path).
		WithLogger(nil)
	if opts.Path == "" {
		badgerOpts = badgerOpts.WithInMemory(true)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", opts.Path, err)
	}

	s := &Store{
		db:     db,
		logger: componentLogger,
		gcStop: make(chan struct{}),
	}
	if opts.GCInterval > 0 && opts.Path != "" {
		go s.gcLoop(opts.GCInterval)
	}

	componentLogger.Info().Str("path", opts.Path).Bool("in_memory", opts.Path == "").Msg("Store opened")
	return s, nil
}

// Close stops background work and closes the database.
func (s *Store) Close() error {
	close(s.gcStop)
	return s.db.Close()
}

// Interactions returns the interaction history sub-store.
func (s *Store) Interactions() *InteractionStore {
	return &InteractionStore{db: s.db, logger: s.logger}
}

// Preferences returns the preference sub-store.
func (s *Store) Preferences() *PreferenceStore {
	return &PreferenceStore{db: s.db, logger: s.logger}
}

// gcLoop runs badger value-log GC until Close. A GC pass returning
// ErrNoRewrite is normal and means there was nothing to collect.
func (s *Store) gcLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.gcStop:
			return
		case <-ticker.C:
			if err := s.db.RunValueLogGC(0.5); err != nil && err != badger.ErrNoRewrite {
				s.logger.Warn().Err(err).Msg("Value log GC failed")
			}
		}
	}
}

// checkContext maps a cancelled context to its error before touching the
// database, since badger calls are not context-aware.
func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
