// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type countingService struct {
	starts atomic.Int32
	fail   bool
}

func (c *countingService) Serve(ctx context.Context) error {
	c.starts.Add(1)
	if c.fail && c.starts.Load() == 1 {
		return errors.New("transient failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (c *countingService) String() string { return "counting-service" }

func TestTreeRestartsFailedService(t *testing.T) {
	tree := NewTree(slog.Default(), TreeConfig{
		FailureBackoff:  10 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})
	svc := &countingService{fail: true}
	tree.AddLearningService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errs := tree.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.starts.Load() >= 2 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if svc.starts.Load() < 2 {
		t.Error("service was not restarted after failure")
	}

	cancel()
	select {
	case <-errs:
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop after cancel")
	}
}

func TestTreeCleanShutdown(t *testing.T) {
	tree := NewTree(slog.Default(), DefaultTreeConfig())
	svc := &countingService{}
	tree.AddAPIService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tree.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v, want nil on clean shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop after cancel")
	}
	if svc.starts.Load() != 1 {
		t.Errorf("starts = %d, want 1", svc.starts.Load())
	}
}
