// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/ckersey/souschef/internal/metrics"
)

// BreakerConfig tunes the supplier circuit breaker.
type BreakerConfig struct {
	// MaxFailures opens the circuit after this many consecutive failures.
	MaxFailures int

	// Cooldown is how long the circuit stays open before a probe.
	Cooldown time.Duration
}

// BreakerSupplier wraps a Supplier with a circuit breaker. While the
// circuit is open, lookups degrade to an empty result instead of
// failing, so the pipeline can still answer with guidance.
//
// The breaker uses real time internally; tests exercise state
// transitions through failure injection rather than clock control.
type BreakerSupplier struct {
	inner  Supplier
	cb     *gobreaker.CircuitBreaker[Result]
	logger zerolog.Logger
}

// NewBreakerSupplier wraps inner with circuit-breaker protection.
func NewBreakerSupplier(inner Supplier, cfg BreakerConfig, logger zerolog.Logger) *BreakerSupplier {
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = 5
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 30 * time.Second
	}

	componentLogger := logger.With().Str("component", "catalog-breaker").Logger()
	cb := gobreaker.NewCircuitBreaker[Result](gobreaker.Settings{
		Name:    "candidate-supplier",
		Timeout: cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.MaxFailures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			componentLogger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Supplier circuit breaker state changed")
			if to == gobreaker.StateOpen {
				metrics.SupplierBreakerOpen.Set(1)
			} else {
				metrics.SupplierBreakerOpen.Set(0)
			}
		},
	})

	return &BreakerSupplier{inner: inner, cb: cb, logger: componentLogger}
}

// FindCandidates executes the lookup through the breaker. An open
// circuit or a supplier failure yields an empty result and no error.
func (b *BreakerSupplier) FindCandidates(ctx context.Context, q Query) (Result, error) {
	result, err := b.cb.Execute(func() (Result, error) {
		return b.inner.FindCandidates(ctx, q)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			b.logger.Debug().Msg("Supplier circuit open, degrading to empty candidate set")
		} else {
			b.logger.Warn().Err(err).Msg("Supplier lookup failed, degrading to empty candidate set")
		}
		return Result{}, nil
	}

	metrics.CandidatesSupplied.Observe(float64(len(result.Perfect) + len(result.Partial)))
	return result, nil
}

// State exposes the breaker state for health reporting.
func (b *BreakerSupplier) State() gobreaker.State {
	return b.cb.State()
}
