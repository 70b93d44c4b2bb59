// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package agent

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
)

type stubAgent struct {
	agentType string
	priority  int
	intents   map[models.Intent]bool
}

func (s *stubAgent) Type() string  { return s.agentType }
func (s *stubAgent) Priority() int { return s.priority }

func (s *stubAgent) Supports(intent models.Intent) bool {
	if s.intents == nil {
		return true
	}
	return s.intents[intent]
}

func (s *stubAgent) Handle(context.Context, *models.Request) (*models.AgentResponse, error) {
	return &models.AgentResponse{AgentType: s.agentType}, nil
}

func TestRegistryRejectsEmptyType(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	if err := r.Register(&stubAgent{agentType: ""}); err == nil {
		t.Fatal("expected error for empty agent type")
	}
	if err := r.Register(nil); err == nil {
		t.Fatal("expected error for nil agent")
	}
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	if err := r.Register(&stubAgent{agentType: "a"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(&stubAgent{agentType: "a"}); err == nil {
		t.Fatal("expected error for duplicate registration")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistrySelectsHighestPriority(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	_ = r.Register(&stubAgent{agentType: "low", priority: 1})
	_ = r.Register(&stubAgent{agentType: "high", priority: 10})

	a, ok := r.SelectAgent(models.IntentRecipeSearch)
	if !ok {
		t.Fatal("expected an agent")
	}
	if a.Type() != "high" {
		t.Errorf("selected %q, want high", a.Type())
	}
}

func TestRegistrySkipsNonSupporters(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	_ = r.Register(&stubAgent{
		agentType: "search-only",
		priority:  10,
		intents:   map[models.Intent]bool{models.IntentRecipeSearch: true},
	})
	_ = r.Register(&stubAgent{agentType: "generalist", priority: 1})

	a, ok := r.SelectAgent(models.IntentMealPlanning)
	if !ok {
		t.Fatal("expected an agent")
	}
	if a.Type() != "generalist" {
		t.Errorf("selected %q, want generalist", a.Type())
	}
}

func TestRegistryTieBreaksByType(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	_ = r.Register(&stubAgent{agentType: "beta", priority: 5})
	_ = r.Register(&stubAgent{agentType: "alpha", priority: 5})

	a, ok := r.SelectAgent(models.IntentGeneralHelp)
	if !ok {
		t.Fatal("expected an agent")
	}
	if a.Type() != "alpha" {
		t.Errorf("selected %q, want alpha", a.Type())
	}
}

func TestRegistryNoSupporter(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	_ = r.Register(&stubAgent{
		agentType: "search-only",
		intents:   map[models.Intent]bool{models.IntentRecipeSearch: true},
	})

	if _, ok := r.SelectAgent(models.IntentShoppingList); ok {
		t.Fatal("expected no agent")
	}
}

func TestRegistryDeregisterAndDispose(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	_ = r.Register(&stubAgent{agentType: "a"})
	_ = r.Register(&stubAgent{agentType: "b"})

	r.Deregister("a")
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
	r.Deregister("missing")

	r.Dispose()
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0 after Dispose", r.Len())
	}
}
