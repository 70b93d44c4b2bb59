// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package store

import (
	"context"
	"fmt"
	"math"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/metrics"
	"github.com/ckersey/souschef/internal/models"
)

// interactionKeyPrefix namespaces interaction records. Keys embed an
// inverted timestamp so ascending key order yields most-recent-first.
const interactionKeyPrefix = "interaction:"

// InteractionStore persists interaction records per user.
type InteractionStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

func interactionKey(userID string, ts time.Time, id string) []byte {
	inverted := math.MaxInt64 - ts.UnixNano()
	return []byte(fmt.Sprintf("%s%s:%020d:%s", interactionKeyPrefix, userID, inverted, id))
}

func userPrefix(userID string) []byte {
	return []byte(interactionKeyPrefix + userID + ":")
}

// Append stores one interaction record.
func (s *InteractionStore) Append(ctx context.Context, rec models.InteractionRecord) error {
	start := time.Now()
	err := s.append(ctx, rec)
	metrics.ObserveStore("append", time.Since(start), err)
	return err
}

func (s *InteractionStore) append(ctx context.Context, rec models.InteractionRecord) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if rec.UserID == "" {
		return fmt.Errorf("interaction record missing user id")
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal interaction: %w", err)
	}

	key := interactionKey(rec.UserID, rec.Timestamp, rec.ID)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, payload)
	})
}

// RecentInteractions returns up to limit records for userID, newest
// first. It satisfies the profile builder's HistoryReader.
func (s *InteractionStore) RecentInteractions(ctx context.Context, userID string, limit int) ([]models.InteractionRecord, error) {
	start := time.Now()
	records, err := s.recent(ctx, userID, limit)
	metrics.ObserveStore("read", time.Since(start), err)
	return records, err
}

func (s *InteractionStore) recent(ctx context.Context, userID string, limit int) ([]models.InteractionRecord, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}

	var records []models.InteractionRecord
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := userPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix) && len(records) < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec models.InteractionRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("failed to unmarshal interaction: %w", err)
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountForUser returns the stored interaction count for userID.
func (s *InteractionStore) CountForUser(ctx context.Context, userID string) (int, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := userPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
