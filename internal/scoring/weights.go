// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package scoring

import (
	"github.com/ckersey/souschef/internal/interpreter"
)

// Weights maps each sub-score to its share of the final score. An active
// weight set always sums to 1.0.
type Weights struct {
	IngredientMatch   float64
	SkillAlignment    float64
	TimeAlignment     float64
	DietaryMatch      float64
	CuisinePreference float64
	Seasonality       float64
	Popularity        float64
	Personalization   float64
	Context           float64
	Budget            float64
	Nutrition         float64
	WasteReduction    float64
}

// baseWeights is the weight table for a request with no context flags.
// The entries sum to exactly 1.0.
func baseWeights() Weights {
	return Weights{
		IngredientMatch:   0.18,
		SkillAlignment:    0.10,
		TimeAlignment:     0.12,
		DietaryMatch:      0.15,
		CuisinePreference: 0.08,
		Seasonality:       0.05,
		Popularity:        0.05,
		Personalization:   0.10,
		Context:           0.07,
		Budget:            0.04,
		Nutrition:         0.03,
		WasteReduction:    0.03,
	}
}

// Flag boosts applied before re-normalization.
const (
	budgetBoost = 2.5
	timeBoost   = 1.5
	socialBoost = 1.5
)

// weightsFor derives the weight set for one request. Flags are applied
// in a fixed order (budget, then time pressure, then social occasion)
// followed by a single re-normalization, so simultaneous flags always
// produce the same table and the entries always sum to 1.0.
func weightsFor(analysis interpreter.Analysis) Weights {
	w := baseWeights()

	if !analysis.Entities.BudgetConstraint.IsZero() {
		w.Budget *= budgetBoost
	}
	if !analysis.Entities.TimeConstraint.IsZero() || analysis.Mood.Urgency == interpreter.LevelHigh {
		w.TimeAlignment *= timeBoost
	}
	// "everyday" and "solo" are the interpreter defaults, not signals.
	if (analysis.Situation.Occasion != "" && analysis.Situation.Occasion != "everyday") ||
		analysis.Situation.SocialSetting == "guests" {
		w.Context *= socialBoost
	}

	return normalize(w)
}

func normalize(w Weights) Weights {
	sum := w.IngredientMatch + w.SkillAlignment + w.TimeAlignment +
		w.DietaryMatch + w.CuisinePreference + w.Seasonality +
		w.Popularity + w.Personalization + w.Context +
		w.Budget + w.Nutrition + w.WasteReduction
	if sum == 0 {
		return baseWeights()
	}
	w.IngredientMatch /= sum
	w.SkillAlignment /= sum
	w.TimeAlignment /= sum
	w.DietaryMatch /= sum
	w.CuisinePreference /= sum
	w.Seasonality /= sum
	w.Popularity /= sum
	w.Personalization /= sum
	w.Context /= sum
	w.Budget /= sum
	w.Nutrition /= sum
	w.WasteReduction /= sum
	return w
}

// Sum returns the total of all entries, used by tests and sanity checks.
func (w Weights) Sum() float64 {
	return w.IngredientMatch + w.SkillAlignment + w.TimeAlignment +
		w.DietaryMatch + w.CuisinePreference + w.Seasonality +
		w.Popularity + w.Personalization + w.Context +
		w.Budget + w.Nutrition + w.WasteReduction
}
