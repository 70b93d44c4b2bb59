// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package interpreter

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ckersey/souschef/internal/models"
)

var (
	// minutesPattern captures "30 minutes", "30 min", "30min".
	minutesPattern = regexp.MustCompile(`(\d+)\s*(?:minutes|minute|mins|min)\b`)

	// hoursPattern captures "2 hours", "1 hour", "2hr".
	hoursPattern = regexp.MustCompile(`(\d+)\s*(?:hours|hour|hrs|hr)\b`)

	// dollarPattern captures "$20" after normalization.
	dollarPattern = regexp.MustCompile(`\$(\d+)`)

	// servingsPattern captures "4 servings", "for 6 people", "2 persons".
	servingsPattern = regexp.MustCompile(`(\d+)\s*(?:servings|serving|persons|person|people)\b`)

	// withPhrasePattern captures "with X" / "using X" ingredient phrases.
	withPhrasePattern = regexp.MustCompile(`(?:with|using)\s+([a-z ]+)`)
)

// namedTimeBuckets maps qualitative speed words to total-minute caps.
// When both a named bucket and a numeric constraint appear, the minimum
// wins.
var namedTimeBuckets = map[string]int{
	"quick":      15,
	"fast":       15,
	"in a hurry": 15,
	"speedy":     20,
	"no time":    15,
}

// extractEntities runs every entity extractor over the query. Extractors
// are independent and order-insensitive; a miss leaves the field empty.
func extractEntities(normalized string) Entities {
	return Entities{
		Ingredients:         extractIngredients(normalized),
		Cuisines:            extractCuisines(normalized),
		MealTypes:           extractMealTypes(normalized),
		DietaryRestrictions: extractDietary(normalized),
		TimeConstraint:      extractTimeConstraint(normalized),
		BudgetConstraint:    extractBudget(normalized),
		Servings:            extractServings(normalized),
		Difficulty:          extractDifficulty(normalized),
		Equipment:           extractMembership(normalized, equipmentKeywords),
		CookingMethods:      extractMembership(normalized, methodKeywords),
	}
}

// extractIngredients combines keyword-set membership with "with X" /
// "using X" phrase capture.
func extractIngredients(normalized string) []string {
	seen := make(map[string]struct{})
	var found []string

	add := func(name string) {
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			found = append(found, name)
		}
	}

	// Keyword membership, multi-word names first so "sweet potato" wins
	// over "potato" duplication (both still recorded only once each).
	for _, name := range ingredientList {
		if containsWord(normalized, name) {
			add(name)
		}
	}

	// Phrase capture: every known ingredient inside a "with ..." clause.
	for _, match := range withPhrasePattern.FindAllStringSubmatch(normalized, -1) {
		for _, word := range strings.Fields(match[1]) {
			if _, ok := ingredientKeywords[word]; ok {
				add(word)
			}
		}
	}

	return found
}

func extractCuisines(normalized string) []string {
	seen := make(map[string]struct{})
	var found []string
	for keyword, cuisine := range cuisineKeywords {
		if containsWord(normalized, keyword) {
			if _, dup := seen[cuisine]; !dup {
				seen[cuisine] = struct{}{}
				found = append(found, cuisine)
			}
		}
	}
	sortStrings(found)
	return found
}

func extractMealTypes(normalized string) []models.MealType {
	seen := make(map[models.MealType]struct{})
	var found []models.MealType
	for keyword, meal := range mealTypeKeywords {
		if containsWord(normalized, keyword) {
			if _, dup := seen[meal]; !dup {
				seen[meal] = struct{}{}
				found = append(found, meal)
			}
		}
	}
	sortMealTypes(found)
	return found
}

func extractDietary(normalized string) []string {
	seen := make(map[string]struct{})
	var found []string
	for keyword, restriction := range dietaryKeywords {
		if strings.Contains(normalized, keyword) {
			if _, dup := seen[restriction]; !dup {
				seen[restriction] = struct{}{}
				found = append(found, restriction)
			}
		}
	}
	sortStrings(found)
	return found
}

// extractTimeConstraint buckets numeric time mentions into prep, cook, or
// total based on adjacent keywords, then applies named speed buckets by
// taking the minimum.
func extractTimeConstraint(normalized string) TimeConstraint {
	var tc TimeConstraint

	assign := func(minutes int, start int) {
		// Look at the preceding few words to decide the bucket.
		prefixStart := start - 20
		if prefixStart < 0 {
			prefixStart = 0
		}
		prefix := normalized[prefixStart:start]
		switch {
		case strings.Contains(prefix, "prep"):
			tc.MaxPrepMinutes = minMinutes(tc.MaxPrepMinutes, minutes)
		case strings.Contains(prefix, "cook") || strings.Contains(prefix, "bake"):
			tc.MaxCookMinutes = minMinutes(tc.MaxCookMinutes, minutes)
		default:
			tc.MaxTotalMinutes = minMinutes(tc.MaxTotalMinutes, minutes)
		}
	}

	for _, idx := range minutesPattern.FindAllStringSubmatchIndex(normalized, -1) {
		minutes, err := strconv.Atoi(normalized[idx[2]:idx[3]])
		if err == nil && minutes > 0 {
			assign(minutes, idx[0])
		}
	}
	for _, idx := range hoursPattern.FindAllStringSubmatchIndex(normalized, -1) {
		hours, err := strconv.Atoi(normalized[idx[2]:idx[3]])
		if err == nil && hours > 0 {
			assign(hours*60, idx[0])
		}
	}

	for keyword, limit := range namedTimeBuckets {
		if strings.Contains(normalized, keyword) {
			tc.MaxTotalMinutes = minMinutes(tc.MaxTotalMinutes, limit)
		}
	}

	return tc
}

// minMinutes returns the smaller of two minute caps, treating 0 as unset.
func minMinutes(current, candidate int) int {
	if current == 0 || candidate < current {
		return candidate
	}
	return current
}

func extractBudget(normalized string) BudgetConstraint {
	var bc BudgetConstraint

	for _, keyword := range []string{"cheap", "budget", "affordable", "inexpensive"} {
		if containsWord(normalized, keyword) {
			bc.Economical = true
			break
		}
	}

	if match := dollarPattern.FindStringSubmatch(normalized); match != nil {
		if amount, err := strconv.Atoi(match[1]); err == nil && amount > 0 {
			bc.MaxAmount = float64(amount)
		}
	}

	return bc
}

func extractServings(normalized string) int {
	if match := servingsPattern.FindStringSubmatch(normalized); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func extractDifficulty(normalized string) *models.Difficulty {
	// Harder keywords win when several appear ("easy but impressive"
	// reads as a stretch request).
	var found *models.Difficulty
	for keyword, difficulty := range difficultyKeywords {
		if containsWord(normalized, keyword) {
			if found == nil || difficulty > *found {
				d := difficulty
				found = &d
			}
		}
	}
	return found
}

func extractMembership(normalized string, set map[string]struct{}) []string {
	var found []string
	for name := range set {
		if containsWord(normalized, name) {
			found = append(found, name)
		}
	}
	sortStrings(found)
	return found
}

// sortStrings keeps map-driven extraction deterministic.
func sortStrings(s []string) {
	sort.Strings(s)
}

func sortMealTypes(s []models.MealType) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
