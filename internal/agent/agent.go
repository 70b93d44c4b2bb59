// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package agent orchestrates the request pipeline: validation, query
// interpretation, concurrent profile and context derivation, candidate
// scoring, response assembly, and fire-and-forget learning recording,
// all bounded by a per-request processing budget.
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/catalog"
	"github.com/ckersey/souschef/internal/contextual"
	"github.com/ckersey/souschef/internal/interpreter"
	"github.com/ckersey/souschef/internal/learning"
	"github.com/ckersey/souschef/internal/metrics"
	"github.com/ckersey/souschef/internal/models"
	"github.com/ckersey/souschef/internal/profile"
	"github.com/ckersey/souschef/internal/scoring"
	"github.com/ckersey/souschef/internal/validation"
)

// AgentType names the cooking assistant agent.
const AgentType = "cooking-assistant"

// Clock supplies the current time; tests inject a fake.
type Clock func() time.Time

// Agent handles assistant requests. Implementations advertise the
// intents they support and a selection priority.
type Agent interface {
	Type() string
	Priority() int
	Supports(intent models.Intent) bool
	Handle(ctx context.Context, req *models.Request) (*models.AgentResponse, error)
}

// PreferenceReader supplies the stored preference object. May be nil.
type PreferenceReader interface {
	Get(ctx context.Context, userID string) (models.Preferences, error)
}

// Config tunes the assistant.
type Config struct {
	// ProcessingBudget bounds one request end to end.
	ProcessingBudget time.Duration

	// MaxCandidates caps how many scored candidates a response carries.
	MaxCandidates int

	// Priority orders this agent in the registry.
	Priority int
}

// Assistant is the cooking assistant agent. It supports every known
// intent and composes the full pipeline.
type Assistant struct {
	cfg         Config
	interpreter *interpreter.Interpreter
	profiles    *profile.Builder
	analyzer    *contextual.Analyzer
	scorer      *scoring.Scorer
	supplier    catalog.Supplier
	bus         *learning.Bus
	prefs       PreferenceReader
	clock       Clock
	logger      zerolog.Logger
}

// Deps bundles the assistant's collaborators. Bus and Prefs may be nil;
// a nil Clock defaults to time.Now.
type Deps struct {
	Interpreter *interpreter.Interpreter
	Profiles    *profile.Builder
	Analyzer    *contextual.Analyzer
	Scorer      *scoring.Scorer
	Supplier    catalog.Supplier
	Bus         *learning.Bus
	Prefs       PreferenceReader
	Clock       Clock
	Logger      zerolog.Logger
}

// New creates the assistant. It returns a ConfigurationError when a
// required collaborator is missing, which prevents registration.
func New(cfg Config, deps Deps) (*Assistant, error) {
	switch {
	case deps.Interpreter == nil:
		return nil, &ConfigurationError{AgentType: AgentType, Reason: "interpreter is required"}
	case deps.Profiles == nil:
		return nil, &ConfigurationError{AgentType: AgentType, Reason: "profile builder is required"}
	case deps.Analyzer == nil:
		return nil, &ConfigurationError{AgentType: AgentType, Reason: "context analyzer is required"}
	case deps.Scorer == nil:
		return nil, &ConfigurationError{AgentType: AgentType, Reason: "scorer is required"}
	case deps.Supplier == nil:
		return nil, &ConfigurationError{AgentType: AgentType, Reason: "candidate supplier is required"}
	}
	if cfg.ProcessingBudget <= 0 {
		return nil, &ConfigurationError{AgentType: AgentType, Reason: "processing budget must be positive"}
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = 5
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	return &Assistant{
		cfg:         cfg,
		interpreter: deps.Interpreter,
		profiles:    deps.Profiles,
		analyzer:    deps.Analyzer,
		scorer:      deps.Scorer,
		supplier:    deps.Supplier,
		bus:         deps.Bus,
		prefs:       deps.Prefs,
		clock:       deps.Clock,
		logger:      deps.Logger.With().Str("component", "agent").Logger(),
	}, nil
}

// Type returns the agent type name.
func (a *Assistant) Type() string { return AgentType }

// Priority returns the registry selection priority.
func (a *Assistant) Priority() int { return a.cfg.Priority }

// Supports reports whether the assistant handles the intent. The cooking
// assistant handles every known intent.
func (a *Assistant) Supports(intent models.Intent) bool {
	for _, known := range models.AllIntents {
		if known == intent {
			return true
		}
	}
	return false
}

// pipelineResult carries the pipeline outcome across the timeout race.
type pipelineResult struct {
	response *models.AgentResponse
	analysis interpreter.Analysis
	err      error
}

// Handle runs the request through the pipeline. Malformed requests
// return a *ValidationError before any processing. Processing failures
// and timeouts never surface as errors: they degrade to a user-safe
// fallback response. The abandoned computation of a timed-out request is
// not terminated early.
func (a *Assistant) Handle(ctx context.Context, req *models.Request) (*models.AgentResponse, error) {
	start := a.clock()
	metrics.ActiveRequests.Inc()
	defer metrics.ActiveRequests.Dec()

	if verr := validation.ValidateStruct(req); verr != nil {
		a.logger.Warn().Str("request_id", req.ID).Err(verr).Msg("Request rejected by validation")
		return nil, &ValidationError{RequestID: req.ID, Cause: verr}
	}

	if req.IntentOverride != "" {
		if intent, ok := models.ParseIntent(req.IntentOverride); ok && !a.Supports(intent) {
			return nil, &CannotHandleError{AgentType: AgentType, Intent: intent}
		}
	}

	ctx, cancel := context.WithDeadline(ctx, start.Add(a.cfg.ProcessingBudget))
	defer cancel()

	results := make(chan pipelineResult, 1)
	go func() {
		results <- a.process(ctx, req, start)
	}()

	select {
	case <-ctx.Done():
		timeoutErr := &TimeoutError{RequestID: req.ID, Budget: a.cfg.ProcessingBudget}
		a.logger.Warn().Str("request_id", req.ID).Err(timeoutErr).Msg("Request timed out")
		resp := a.timeoutResponse(req, start)
		metrics.ObserveRequest(resp.Intent.String(), "timeout", a.clock().Sub(start))
		return resp, nil
	case result := <-results:
		if result.err != nil {
			a.logger.Error().Str("request_id", req.ID).Err(result.err).Msg("Pipeline failed, degrading to fallback response")
			resp := a.fallbackResponse(req, result.analysis, start)
			metrics.ObserveRequest(resp.Intent.String(), "error", a.clock().Sub(start))
			return resp, nil
		}
		resp := result.response
		metrics.ObserveRequest(resp.Intent.String(), "ok", a.clock().Sub(start))
		a.recordInteraction(req, result.analysis, resp)
		return resp, nil
	}
}

// process executes interpret, concurrent profile and context derivation,
// candidate scoring, and response assembly.
func (a *Assistant) process(ctx context.Context, req *models.Request, start time.Time) (result pipelineResult) {
	defer func() {
		if r := recover(); r != nil {
			result = pipelineResult{err: fmt.Errorf("pipeline panic: %v", r)}
		}
	}()

	stageStart := a.clock()
	analysis := a.interpreter.Analyze(req)
	metrics.ObserveStage("interpret", a.clock().Sub(stageStart))
	result.analysis = analysis

	// Profile and context derive from independent inputs and run
	// concurrently. Neither fails: both degrade internally.
	var (
		prof     *profile.Profile
		env      contextual.Environment
		ctxScore contextual.Scoring
		done     = make(chan struct{})
	)
	go func() {
		defer close(done)
		stage := a.clock()
		prof = a.profiles.Build(ctx, req.Context.UserID, req.Context)
		metrics.ObserveStage("profile", a.clock().Sub(stage))
	}()

	stageStart = a.clock()
	env = a.analyzer.Analyze(&req.Context, nil)
	ctxScore = a.analyzer.Score(&env)
	metrics.ObserveStage("context", a.clock().Sub(stageStart))

	select {
	case <-done:
	case <-ctx.Done():
		return pipelineResult{analysis: analysis, err: ctx.Err()}
	}

	stageStart = a.clock()
	candidates, err := a.findCandidates(ctx, req, analysis)
	if err != nil {
		// Supplier trouble degrades to an empty candidate set; the
		// response falls back to guidance.
		a.logger.Warn().Err(err).Str("request_id", req.ID).Msg("Candidate lookup degraded")
		candidates = nil
	}
	ranked := a.scorer.Rank(candidates, scoring.Inputs{
		Analysis: analysis,
		Snapshot: req.Context,
		Profile:  prof,
		Env:      env,
		Context:  ctxScore,
	})
	if len(ranked) > a.cfg.MaxCandidates {
		ranked = ranked[:a.cfg.MaxCandidates]
	}
	metrics.ObserveStage("score", a.clock().Sub(stageStart))

	if err := ctx.Err(); err != nil {
		return pipelineResult{analysis: analysis, err: err}
	}

	stageStart = a.clock()
	resp := a.assemble(req, analysis, env, ranked, start)
	metrics.ObserveStage("assemble", a.clock().Sub(stageStart))
	return pipelineResult{response: resp, analysis: analysis}
}

// findCandidates queries the supplier for intents that rank recipes;
// other intents skip the lookup.
func (a *Assistant) findCandidates(ctx context.Context, req *models.Request, analysis interpreter.Analysis) ([]scoring.Candidate, error) {
	switch analysis.Intent {
	case models.IntentRecipeSearch, models.IntentRecipeRecommendation, models.IntentMealPlanning, models.IntentDietaryGuidance:
	default:
		return nil, nil
	}

	targets := make([]string, 0, len(req.Context.Ingredients)+len(analysis.Entities.Ingredients))
	for _, item := range req.Context.Ingredients {
		targets = append(targets, item.Name)
	}
	targets = append(targets, analysis.Entities.Ingredients...)

	result, err := a.supplier.FindCandidates(ctx, catalog.Query{
		Ingredients:     targets,
		MealTypes:       analysis.Entities.MealTypes,
		Cuisines:        analysis.Entities.Cuisines,
		MaxTotalMinutes: analysis.Entities.TimeConstraint.MaxTotalMinutes,
		Limit:           a.cfg.MaxCandidates * 4,
	})
	if err != nil {
		return nil, err
	}
	return result.All(), nil
}

// recordInteraction publishes the finished interaction for asynchronous
// learning. Failures are logged and swallowed: they must never change
// the response already assembled.
func (a *Assistant) recordInteraction(req *models.Request, analysis interpreter.Analysis, resp *models.AgentResponse) {
	if a.bus == nil {
		return
	}
	if a.prefs != nil {
		prefs, err := a.prefs.Get(context.Background(), req.Context.UserID)
		if err == nil && prefs.LearningEnabled != nil && !*prefs.LearningEnabled {
			return
		}
	}

	rec := models.InteractionRecord{
		ID:         uuid.NewString(),
		UserID:     req.Context.UserID,
		Query:      req.Query,
		Intent:     analysis.Intent,
		TimeOfDay:  analysis.Situation.TimeOfDay,
		ResponseID: resp.ID,
		Timestamp:  a.clock(),
	}
	if data := resp.Data; data != nil && data.Recommendations != nil && len(data.Recommendations.Candidates) > 0 {
		rec.TopRecipeID = data.Recommendations.Candidates[0].Recipe.ID
	}
	if len(analysis.Entities.MealTypes) > 0 {
		rec.MealType = analysis.Entities.MealTypes[0]
	}

	if err := a.bus.Publish(rec); err != nil {
		a.logger.Warn().Err(err).Str("request_id", req.ID).Msg("Failed to publish learning event")
	}
}
