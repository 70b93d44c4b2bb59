// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/metrics"
	"github.com/ckersey/souschef/internal/models"
)

const preferenceKeyPrefix = "prefs:"

// PreferenceStore persists the small non-learned preference object as a
// get/merge-update key-value interface.
type PreferenceStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

func preferenceKey(userID string) []byte {
	return []byte(preferenceKeyPrefix + userID)
}

// Get returns the stored preferences for userID, or the zero value when
// none are stored yet.
func (s *PreferenceStore) Get(ctx context.Context, userID string) (models.Preferences, error) {
	start := time.Now()
	prefs, err := s.get(ctx, userID)
	metrics.ObserveStore("preferences_get", time.Since(start), err)
	return prefs, err
}

func (s *PreferenceStore) get(ctx context.Context, userID string) (models.Preferences, error) {
	var prefs models.Preferences
	if err := checkContext(ctx); err != nil {
		return prefs, err
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(preferenceKey(userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &prefs)
		})
	})
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to read preferences: %w", err)
	}
	return prefs, nil
}

// Merge overlays update onto the stored preferences inside one
// transaction and returns the merged result.
func (s *PreferenceStore) Merge(ctx context.Context, userID string, update models.Preferences) (models.Preferences, error) {
	start := time.Now()
	merged, err := s.merge(ctx, userID, update)
	metrics.ObserveStore("preferences_merge", time.Since(start), err)
	return merged, err
}

func (s *PreferenceStore) merge(ctx context.Context, userID string, update models.Preferences) (models.Preferences, error) {
	var merged models.Preferences
	if err := checkContext(ctx); err != nil {
		return merged, err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		var current models.Preferences
		item, err := txn.Get(preferenceKey(userID))
		if err == nil {
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &current)
			}); err != nil {
				return err
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		merged = current.Merge(update)
		payload, err := json.Marshal(merged)
		if err != nil {
			return err
		}
		return txn.Set(preferenceKey(userID), payload)
	})
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to merge preferences: %w", err)
	}
	return merged, nil
}
