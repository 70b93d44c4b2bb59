// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package learning

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
)

type memorySink struct {
	mu      sync.Mutex
	records []models.InteractionRecord
	err     error
}

func (m *memorySink) Append(_ context.Context, rec models.InteractionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memorySink) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

type recordingInvalidator struct {
	mu    sync.Mutex
	users []string
}

func (r *recordingInvalidator) Invalidate(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, userID)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestWorkerStoresPublishedInteractions(t *testing.T) {
	bus := NewBus(16, zerolog.Nop())
	defer bus.Close()
	sink := &memorySink{}
	worker := NewWorker(bus, sink, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Serve(ctx) }()

	rec := models.InteractionRecord{
		ID:        "rec-1",
		UserID:    "user-1",
		Query:     "dinner ideas",
		Timestamp: time.Now(),
	}
	if err := bus.Publish(rec); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	waitFor(t, func() bool { return sink.count() == 1 })
}

func TestWorkerInvalidatesProfileOnFeedback(t *testing.T) {
	bus := NewBus(16, zerolog.Nop())
	defer bus.Close()
	sink := &memorySink{}
	invalidator := &recordingInvalidator{}
	worker := NewWorker(bus, sink, invalidator, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Serve(ctx) }()

	if err := bus.Publish(models.InteractionRecord{ID: "r1", UserID: "user-1"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := bus.Publish(models.InteractionRecord{
		ID: "r2", UserID: "user-2",
		Feedback: &models.InteractionFeedback{Helpful: true},
	}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	waitFor(t, func() bool { return sink.count() == 2 })

	invalidator.mu.Lock()
	defer invalidator.mu.Unlock()
	if len(invalidator.users) != 1 || invalidator.users[0] != "user-2" {
		t.Errorf("invalidated %v, want only user-2 (feedback-bearing record)", invalidator.users)
	}
}

func TestWorkerDropsFailingRecordsAndContinues(t *testing.T) {
	bus := NewBus(16, zerolog.Nop())
	defer bus.Close()
	sink := &memorySink{err: errors.New("store offline")}
	worker := NewWorker(bus, sink, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = worker.Serve(ctx)
		close(done)
	}()

	if err := bus.Publish(models.InteractionRecord{ID: "r1", UserID: "user-1"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	// The worker must swallow the store failure and keep serving.
	select {
	case <-done:
		t.Fatal("worker exited on sink failure")
	case <-time.After(100 * time.Millisecond):
	}
}
