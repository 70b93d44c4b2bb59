// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
)

func TestFindCandidatesPerfectAndPartial(t *testing.T) {
	c := New(nil, zerolog.Nop())

	result, err := c.FindCandidates(context.Background(), Query{
		Ingredients: []string{"pasta", "tomato", "garlic", "basil", "olive oil"},
	})
	if err != nil {
		t.Fatalf("FindCandidates failed: %v", err)
	}

	foundPerfect := false
	for _, cand := range result.Perfect {
		if cand.Recipe.ID == "spaghetti-pomodoro" {
			foundPerfect = true
			if len(cand.MissingIngredients) != 0 {
				t.Errorf("perfect match carries missing ingredients: %v", cand.MissingIngredients)
			}
		}
	}
	if !foundPerfect {
		t.Error("expected spaghetti-pomodoro as perfect match with full inventory")
	}

	for _, cand := range result.Partial {
		if len(cand.MissingIngredients) == 0 {
			t.Errorf("partial match %s has no missing ingredients", cand.Recipe.ID)
		}
	}
}

func TestFindCandidatesPartialSortedByFewestMissing(t *testing.T) {
	c := New(nil, zerolog.Nop())

	result, err := c.FindCandidates(context.Background(), Query{
		Ingredients: []string{"chicken", "rice"},
	})
	if err != nil {
		t.Fatalf("FindCandidates failed: %v", err)
	}
	for i := 1; i < len(result.Partial); i++ {
		if len(result.Partial[i].MissingIngredients) < len(result.Partial[i-1].MissingIngredients) {
			t.Fatalf("partial matches not sorted by missing count at %d", i)
		}
	}
}

func TestFindCandidatesFilters(t *testing.T) {
	c := New(nil, zerolog.Nop())

	result, err := c.FindCandidates(context.Background(), Query{
		MealTypes:       []models.MealType{models.MealBreakfast},
		MaxTotalMinutes: 30,
	})
	if err != nil {
		t.Fatalf("FindCandidates failed: %v", err)
	}
	for _, cand := range result.All() {
		if cand.Recipe.TotalMinutes() > 30 {
			t.Errorf("recipe %s exceeds time filter", cand.Recipe.ID)
		}
		if !mealOverlap(cand.Recipe.MealTypes, []models.MealType{models.MealBreakfast}) {
			t.Errorf("recipe %s is not a breakfast recipe", cand.Recipe.ID)
		}
	}
}

func TestFindCandidatesLimit(t *testing.T) {
	c := New(nil, zerolog.Nop())

	result, err := c.FindCandidates(context.Background(), Query{Limit: 2})
	if err != nil {
		t.Fatalf("FindCandidates failed: %v", err)
	}
	if len(result.Perfect) > 2 || len(result.Partial) > 2 {
		t.Errorf("limit not applied: %d perfect, %d partial", len(result.Perfect), len(result.Partial))
	}
}

func TestFindCandidatesHonorsCancelledContext(t *testing.T) {
	c := New(nil, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.FindCandidates(ctx, Query{}); err == nil {
		t.Error("expected error for cancelled context")
	}
}

type failingSupplier struct {
	err   error
	calls int
}

func (f *failingSupplier) FindCandidates(_ context.Context, _ Query) (Result, error) {
	f.calls++
	if f.err != nil {
		return Result{}, f.err
	}
	return Result{}, nil
}

func TestBreakerDegradesToEmptyResult(t *testing.T) {
	inner := &failingSupplier{err: errors.New("supplier down")}
	b := NewBreakerSupplier(inner, BreakerConfig{MaxFailures: 2, Cooldown: time.Minute}, zerolog.Nop())

	for i := 0; i < 5; i++ {
		result, err := b.FindCandidates(context.Background(), Query{})
		if err != nil {
			t.Fatalf("call %d surfaced error: %v", i, err)
		}
		if len(result.All()) != 0 {
			t.Fatalf("call %d returned candidates from failing supplier", i)
		}
	}

	// After two consecutive failures the circuit opens and stops
	// reaching the inner supplier.
	if inner.calls >= 5 {
		t.Errorf("inner supplier called %d times, want short-circuit after 2 failures", inner.calls)
	}
}

func TestBreakerPassesThroughHealthySupplier(t *testing.T) {
	b := NewBreakerSupplier(New(nil, zerolog.Nop()), BreakerConfig{}, zerolog.Nop())

	result, err := b.FindCandidates(context.Background(), Query{
		Ingredients: []string{"chicken", "rice", "egg", "soy sauce", "scallion", "garlic"},
	})
	if err != nil {
		t.Fatalf("FindCandidates failed: %v", err)
	}
	if len(result.Perfect) == 0 {
		t.Error("expected perfect matches through healthy breaker")
	}
}
