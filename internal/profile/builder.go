// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package profile builds per-user personalization profiles from
// interaction history: cooking patterns, flavor preferences, and a skill
// assessment, computed together and cached as one unit.
package profile

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/cache"
	"github.com/ckersey/souschef/internal/metrics"
	"github.com/ckersey/souschef/internal/models"
)

// HistoryReader supplies stored interactions, most-recent-first.
type HistoryReader interface {
	RecentInteractions(ctx context.Context, userID string, limit int) ([]models.InteractionRecord, error)
}

// Config controls profile building.
type Config struct {
	// CacheTTL is how long a built profile stays fresh.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// HistoryWindow is the maximum number of interactions read per build.
	HistoryWindow int `koanf:"history_window"`

	// LearningThreshold is the minimum interaction count before learned
	// profiles replace defaults.
	LearningThreshold int `koanf:"learning_threshold"`
}

// DefaultConfig returns the standard build configuration.
func DefaultConfig() Config {
	return Config{
		CacheTTL:          30 * time.Minute,
		HistoryWindow:     100,
		LearningThreshold: 5,
	}
}

// Builder computes and caches personalization profiles.
type Builder struct {
	reader HistoryReader
	cache  *cache.Cache[*Profile]
	clock  cache.Clock
	cfg    Config
	logger zerolog.Logger
}

// NewBuilder creates a profile builder. A nil clock defaults to time.Now.
func NewBuilder(reader HistoryReader, cfg Config, clock cache.Clock, logger zerolog.Logger) *Builder {
	if clock == nil {
		clock = time.Now
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultConfig().CacheTTL
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultConfig().HistoryWindow
	}
	if cfg.LearningThreshold <= 0 {
		cfg.LearningThreshold = DefaultConfig().LearningThreshold
	}
	return &Builder{
		reader: reader,
		cache:  cache.New[*Profile](cfg.CacheTTL, clock),
		clock:  clock,
		cfg:    cfg,
		logger: logger.With().Str("component", "profile").Logger(),
	}
}

// Build returns the profile for userID, from cache when fresh. A history
// read failure degrades to the default profile rather than failing the
// request; the degraded profile is not cached, so the next request
// retries the read.
func (b *Builder) Build(ctx context.Context, userID string, snapshot models.UserContextSnapshot) *Profile {
	if cached, ok := b.cache.Get(userID); ok {
		metrics.ProfileCacheHits.Inc()
		b.logger.Debug().Str("user_id", userID).Msg("Profile cache hit")
		return cached
	}
	metrics.ProfileCacheMisses.Inc()

	history, err := b.reader.RecentInteractions(ctx, userID, b.cfg.HistoryWindow)
	if err != nil {
		b.logger.Warn().Err(err).Str("user_id", userID).
			Msg("History read failed, using default profile")
		return DefaultProfile(userID, snapshot, b.clock())
	}

	p := b.compute(userID, history, snapshot)
	b.cache.Set(userID, p)
	return p
}

// Invalidate drops the cached profile for userID, forcing a rebuild on
// the next request. Called after new feedback lands.
func (b *Builder) Invalidate(userID string) {
	b.cache.Delete(userID)
}

// CacheStats exposes cache counters for metrics collection.
func (b *Builder) CacheStats() cache.Stats {
	return b.cache.GetStats()
}

// compute builds all three profile blocks together so callers never see
// a partially updated profile.
func (b *Builder) compute(userID string, history []models.InteractionRecord, snapshot models.UserContextSnapshot) *Profile {
	now := b.clock()

	// Feedback-only records reference interactions already counted, so
	// they do not move the user toward the learning threshold.
	interactions := 0
	for i := range history {
		if !history[i].FeedbackOnly() {
			interactions++
		}
	}
	if interactions < b.cfg.LearningThreshold {
		b.logger.Debug().Str("user_id", userID).Int("interactions", interactions).
			Msg("Below learning threshold, using default profile")
		return DefaultProfile(userID, snapshot, now)
	}

	p := &Profile{
		UserID:     userID,
		Patterns:   computePatterns(history, snapshot),
		Flavor:     computeFlavor(history),
		Skill:      computeSkill(history, snapshot),
		Learned:    true,
		ComputedAt: now,
	}
	b.logger.Debug().Str("user_id", userID).Int("interactions", interactions).
		Msg("Profile built from history")
	return p
}
