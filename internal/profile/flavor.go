// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package profile

import (
	"strings"

	"github.com/ckersey/souschef/internal/interpreter"
	"github.com/ckersey/souschef/internal/models"
)

// Query keywords that move the intensity and spice scales. A keyword may
// appear in both tables.
var (
	intensityUpKeywords   = []string{"bold", "rich", "flavorful", "intense", "savory", "umami", "hearty"}
	intensityDownKeywords = []string{"mild", "light", "delicate", "subtle", "plain", "bland"}

	spiceUpKeywords   = []string{"spicy", "hot", "chili", "fiery", "jalapeno", "sriracha", "extra heat"}
	spiceDownKeywords = []string{"mild", "not spicy", "no spice", "less heat"}

	textureKeywords = []string{"crispy", "crunchy", "creamy", "tender", "chewy", "smooth", "fluffy", "juicy"}

	methodAffinityKeywords = []string{
		"grill", "bake", "roast", "fry", "stir fry", "steam", "braise",
		"slow cook", "saute", "smoke", "sous vide", "pressure cook",
	}
)

// Per-mention scale steps. Scales stay clamped to [0,10].
const (
	intensityStep = 0.5
	spiceStep     = 0.7
	affinityStep  = 2.0
)

// computeFlavor derives the flavor block from history. Only positively
// rated interactions contribute: neutral and negative interactions say
// what the user asked about, not what they liked.
func computeFlavor(history []models.InteractionRecord) FlavorProfile {
	flavor := FlavorProfile{
		Intensity:          defaultIntensity,
		SpiceLevel:         defaultSpiceLevel,
		TexturePreferences: make(map[string]float64),
		MethodAffinity:     make(map[string]float64),
		IngredientAffinity: make(map[string]float64),
		Cuisines:           make(map[string]CuisineScore),
	}

	cuisineHits := make(map[string]int)
	for i := range history {
		rec := &history[i]
		if !rec.Positive() {
			continue
		}
		query := strings.ToLower(rec.Query)

		flavor.Intensity = nudgeScale(flavor.Intensity, query, intensityUpKeywords, intensityDownKeywords, intensityStep)
		flavor.SpiceLevel = nudgeScale(flavor.SpiceLevel, query, spiceUpKeywords, spiceDownKeywords, spiceStep)

		for _, kw := range textureKeywords {
			if strings.Contains(query, kw) {
				flavor.TexturePreferences[kw] = clampScale(flavor.TexturePreferences[kw] + affinityStep)
			}
		}
		for _, kw := range methodAffinityKeywords {
			if strings.Contains(query, kw) {
				flavor.MethodAffinity[kw] = clampScale(flavor.MethodAffinity[kw] + affinityStep)
			}
		}
		for _, ingredient := range interpreter.KnownIngredients(rec.Query) {
			flavor.IngredientAffinity[ingredient] = clampScale(flavor.IngredientAffinity[ingredient] + affinityStep)
		}

		if rec.Feedback != nil && rec.Feedback.Cuisine != "" {
			cuisine := rec.Feedback.Cuisine
			cuisineHits[cuisine]++
			entry := flavor.Cuisines[cuisine]
			entry.Score = cuisineScoreFor(cuisineHits[cuisine], rec.Feedback)
			entry.Confidence = cuisineConfidence(cuisineHits[cuisine])
			if rec.Timestamp.After(entry.LastUpdated) {
				entry.LastUpdated = rec.Timestamp
			}
			flavor.Cuisines[cuisine] = entry
		}
	}

	return flavor
}

func nudgeScale(current float64, query string, up, down []string, step float64) float64 {
	for _, kw := range up {
		if strings.Contains(query, kw) {
			current += step
		}
	}
	for _, kw := range down {
		if strings.Contains(query, kw) {
			current -= step
		}
	}
	return clampScale(current)
}

func clampScale(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// cuisineScoreFor grows with repeated positive signals and gets an extra
// bump for a cooked-and-succeeded outcome.
func cuisineScoreFor(hits int, fb *models.InteractionFeedback) float64 {
	score := defaultCuisineScore + float64(hits)*8
	if fb.Cooked && fb.Succeeded {
		score += 5
	}
	if score > 100 {
		score = 100
	}
	return score
}

// cuisineConfidence saturates after ten observations.
func cuisineConfidence(hits int) float64 {
	c := float64(hits) / 10
	if c > 1 {
		c = 1
	}
	return c
}
