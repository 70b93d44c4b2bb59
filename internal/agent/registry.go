// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package agent

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
)

// Registry holds the registered agents and routes intents to the
// highest-priority supporter. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Agent
	logger zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		agents: make(map[string]Agent),
		logger: logger.With().Str("component", "registry").Logger(),
	}
}

// Register adds an agent. Registration fails with a ConfigurationError
// when the agent type is empty or already registered.
func (r *Registry) Register(a Agent) error {
	if a == nil || a.Type() == "" {
		return &ConfigurationError{AgentType: "", Reason: "agent type must not be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.agents[a.Type()]; exists {
		return &ConfigurationError{AgentType: a.Type(), Reason: "agent type already registered"}
	}
	r.agents[a.Type()] = a
	r.logger.Info().Str("agent_type", a.Type()).Int("priority", a.Priority()).Msg("Agent registered")
	return nil
}

// Deregister removes an agent by type. Removing an unknown type is a
// no-op.
func (r *Registry) Deregister(agentType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.agents, agentType)
}

// SelectAgent returns the highest-priority agent supporting the intent,
// or nil and false when none does. Priority ties resolve to the
// lexicographically smaller agent type so selection stays deterministic.
func (r *Registry) SelectAgent(intent models.Intent) (Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best Agent
	for _, a := range r.agents {
		if !a.Supports(intent) {
			continue
		}
		if best == nil || a.Priority() > best.Priority() ||
			(a.Priority() == best.Priority() && a.Type() < best.Type()) {
			best = a
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// Dispose clears the registry.
func (r *Registry) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents = make(map[string]Agent)
}
