// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/ckersey/souschef/internal/models"
	"github.com/ckersey/souschef/internal/profile"
)

// explanationThreshold is the sub-score a dimension must clear to earn a
// clause in the explanation.
const explanationThreshold = 70.0

// explanationClauses pairs each dimension with its clause, in the fixed
// priority order clauses are joined in.
var explanationClauses = []struct {
	score  func(models.SubScores) float64
	clause string
}{
	{func(s models.SubScores) float64 { return s.IngredientMatch }, "uses ingredients you have on hand"},
	{func(s models.SubScores) float64 { return s.DietaryMatch }, "fits your dietary needs"},
	{func(s models.SubScores) float64 { return s.TimeAlignment }, "fits your available time"},
	{func(s models.SubScores) float64 { return s.SkillAlignment }, "matches your skill level"},
	{func(s models.SubScores) float64 { return s.CuisinePreference }, "matches your cuisine preferences"},
	{func(s models.SubScores) float64 { return s.Personalization }, "aligns with dishes you've enjoyed before"},
	{func(s models.SubScores) float64 { return s.Seasonality }, "features seasonal ingredients"},
	{func(s models.SubScores) float64 { return s.Context }, "suits the moment"},
	{func(s models.SubScores) float64 { return s.Popularity }, "is a crowd favorite"},
	{func(s models.SubScores) float64 { return s.Budget }, "is budget friendly"},
	{func(s models.SubScores) float64 { return s.Nutrition }, "is nutritionally balanced"},
	{func(s models.SubScores) float64 { return s.WasteReduction }, "helps use up ingredients before they expire"},
}

// buildExplanation assembles the candidate explanation from every
// dimension above the threshold, joined in fixed priority order. With
// nothing above the threshold it falls back to a plain match percentage.
func buildExplanation(sub models.SubScores, finalScore float64) string {
	var clauses []string
	for _, entry := range explanationClauses {
		if entry.score(sub) > explanationThreshold {
			clauses = append(clauses, entry.clause)
		}
	}
	if len(clauses) == 0 {
		return fmt.Sprintf("This recipe has a %d%% match with your request.", int(math.Round(finalScore)))
	}
	return "This recipe " + joinClauses(clauses) + "."
}

func joinClauses(clauses []string) string {
	switch len(clauses) {
	case 1:
		return clauses[0]
	case 2:
		return clauses[0] + " and " + clauses[1]
	default:
		return strings.Join(clauses[:len(clauses)-1], ", ") + ", and " + clauses[len(clauses)-1]
	}
}

// successProbability starts from a base estimate, adjusts for skill and
// ingredient availability, then blends 50/50 with the user's historical
// success rate for the cuisine when at least one prior attempt exists.
func successProbability(recipe *models.Recipe, sub models.SubScores, prof *profile.Profile) float64 {
	p := 0.7
	p += (sub.SkillAlignment - 70) / 300
	p += (sub.IngredientMatch - 50) / 500

	if prof != nil && prof.Learned {
		if entry, ok := prof.Flavor.Cuisines[strings.ToLower(recipe.Cuisine)]; ok && entry.Confidence > 0 {
			historical := entry.Score / 100
			p = (p + historical) / 2
		}
	}

	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
