// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Options{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close failed: %v", err)
		}
	})
	return s
}

func TestInteractionsRoundTripMostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	interactions := s.Interactions()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := models.InteractionRecord{
			ID:        fmt.Sprintf("rec-%d", i),
			UserID:    "user-1",
			Query:     fmt.Sprintf("query %d", i),
			Timestamp: base.AddDate(0, 0, i),
		}
		if err := interactions.Append(ctx, rec); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	records, err := interactions.RecentInteractions(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("read %d records, want 5", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Timestamp.After(records[i-1].Timestamp) {
			t.Fatalf("records not most-recent-first at %d", i)
		}
	}
	if records[0].ID != "rec-4" {
		t.Errorf("newest record = %s, want rec-4", records[0].ID)
	}
}

func TestInteractionsLimitAndIsolationByUser(t *testing.T) {
	s := openTestStore(t)
	interactions := s.Interactions()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		user := "user-a"
		if i%2 == 1 {
			user = "user-b"
		}
		rec := models.InteractionRecord{
			ID:        fmt.Sprintf("rec-%d", i),
			UserID:    user,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}
		if err := interactions.Append(ctx, rec); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	records, err := interactions.RecentInteractions(ctx, "user-a", 2)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("limit ignored: got %d records", len(records))
	}
	for _, rec := range records {
		if rec.UserID != "user-a" {
			t.Errorf("record %s leaked from user %s", rec.ID, rec.UserID)
		}
	}

	count, err := interactions.CountForUser(ctx, "user-b")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 4 {
		t.Errorf("user-b count = %d, want 4", count)
	}
}

func TestAppendRejectsMissingUserID(t *testing.T) {
	s := openTestStore(t)
	err := s.Interactions().Append(context.Background(), models.InteractionRecord{ID: "rec-1"})
	if err == nil {
		t.Error("expected error for record without user id")
	}
}

func TestInteractionsHonorCancelledContext(t *testing.T) {
	s := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Interactions().RecentInteractions(ctx, "user-1", 10); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestPreferencesGetDefaultAndMerge(t *testing.T) {
	s := openTestStore(t)
	prefs := s.Preferences()
	ctx := context.Background()

	initial, err := prefs.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if initial.ResponseStyle != "" {
		t.Errorf("unset preferences not zero: %+v", initial)
	}

	enabled := false
	merged, err := prefs.Merge(ctx, "user-1", models.Preferences{
		ResponseStyle:   "concise",
		LearningEnabled: &enabled,
	})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if merged.ResponseStyle != "concise" || merged.LearningEnabled == nil || *merged.LearningEnabled {
		t.Errorf("merge result wrong: %+v", merged)
	}

	// Second merge only touches one field; the rest survives.
	merged, err = prefs.Merge(ctx, "user-1", models.Preferences{ResponseStyle: "detailed"})
	if err != nil {
		t.Fatalf("second merge failed: %v", err)
	}
	if merged.ResponseStyle != "detailed" {
		t.Errorf("response style = %q, want detailed", merged.ResponseStyle)
	}
	if merged.LearningEnabled == nil || *merged.LearningEnabled {
		t.Error("merge dropped learning_enabled=false")
	}

	stored, err := prefs.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get after merge failed: %v", err)
	}
	if stored.ResponseStyle != "detailed" {
		t.Errorf("stored style = %q, want detailed", stored.ResponseStyle)
	}
}
