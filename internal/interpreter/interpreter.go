// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package interpreter classifies query intent and extracts structured
// constraints from free text. Detection is deterministic pattern matching:
// the same normalized text and snapshot always produce the same Analysis.
package interpreter

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
)

// Interpreter turns raw queries into structured analyses. It is stateless
// and safe for concurrent use.
type Interpreter struct {
	logger zerolog.Logger
}

// New creates an Interpreter.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(logger zerolog.Logger) *Interpreter {
	return &Interpreter{
		logger: logger.With().Str("component", "interpreter").Logger(),
	}
}

// Analyze interprets the request's query against its snapshot. It never
// returns an error: absent matches leave fields at their defaults, and a
// query that matches nothing resolves to general-help.
func (in *Interpreter) Analyze(req *models.Request) Analysis {
	normalized := normalize(req.Query)

	intent, confidence := in.classify(normalized, &req.Context)

	analysis := Analysis{
		Intent:     intent,
		Confidence: confidence,
		Entities:   extractEntities(normalized),
		Mood:       extractMood(normalized, req.Metadata.TimeOfDay),
		Situation:  extractSituation(normalized, &req.Metadata),
	}

	// An explicit override replaces detection and is trusted at 0.8
	// minimum.
	if req.IntentOverride != "" {
		if forced, ok := models.ParseIntent(req.IntentOverride); ok {
			analysis.Intent = forced
			analysis.Overridden = true
			if analysis.Confidence < 0.8 {
				analysis.Confidence = 0.8
			}
		}
	}

	in.logger.Debug().
		Str("intent", analysis.Intent.String()).
		Float64("confidence", analysis.Confidence).
		Int("ingredients", len(analysis.Entities.Ingredients)).
		Msg("query analyzed")

	return analysis
}

// classify scores every intent's pattern set against the query, applies
// context-based additive adjustments, and picks the highest score. Ties
// resolve toward the earlier intent in the fixed enumeration order; an
// all-zero board resolves to general-help.
func (in *Interpreter) classify(normalized string, snapshot *models.UserContextSnapshot) (models.Intent, float64) {
	best := models.IntentGeneralHelp
	bestScore := 0.0
	bestMatches := 0

	for _, intent := range models.AllIntents {
		patterns := intentPatterns[intent]
		matches := 0
		for _, p := range patterns {
			if strings.Contains(normalized, p) {
				matches++
			}
		}

		score := float64(matches) + contextAdjustment(intent, snapshot)
		if score > bestScore {
			best = intent
			bestScore = score
			bestMatches = matches
		}
	}

	if bestScore == 0 {
		return models.IntentGeneralHelp, 0.1
	}

	confidence := 0.0
	if total := len(intentPatterns[best]); total > 0 {
		confidence = float64(bestMatches) / float64(total)
	}
	confidence += confidenceNudge(best, snapshot)

	if confidence < 0.1 {
		confidence = 0.1
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return best, confidence
}

// contextAdjustment is the additive score adjustment an intent receives
// from the session context before the winner is picked.
func contextAdjustment(intent models.Intent, snapshot *models.UserContextSnapshot) float64 {
	var adj float64
	tod := snapshot.Session.TimeOfDay

	switch intent {
	case models.IntentMealPlanning:
		// Planning queries cluster around the start and end of the day.
		if tod == models.TimeMorning || tod == models.TimeEvening {
			adj += 0.5
		}
	case models.IntentRecipeRecommendation:
		if len(snapshot.Ingredients) > 0 {
			adj += 0.5
		}
	case models.IntentIngredientManagement:
		if len(snapshot.Ingredients) >= 5 {
			adj += 0.25
		}
	}

	return adj
}

// confidenceNudge raises confidence when the snapshot corroborates the
// winning intent.
func confidenceNudge(intent models.Intent, snapshot *models.UserContextSnapshot) float64 {
	switch intent {
	case models.IntentIngredientManagement:
		if len(snapshot.Ingredients) >= 5 {
			return 0.1
		}
	case models.IntentRecipeRecommendation:
		if len(snapshot.Ingredients) > 0 {
			return 0.1
		}
	case models.IntentMealPlanning:
		if snapshot.MealPlan != nil {
			return 0.1
		}
	case models.IntentDietaryGuidance:
		if len(snapshot.DietaryRestrictions) > 0 {
			return 0.1
		}
	}
	return 0
}

// normalize lowercases the text, strips punctuation, and collapses
// whitespace. Dollar signs survive so budget extraction can see "$20".
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '$':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}

// containsWord reports whether normalized text contains the phrase on
// word boundaries.
func containsWord(normalized, phrase string) bool {
	return strings.Contains(" "+normalized+" ", " "+phrase+" ")
}
