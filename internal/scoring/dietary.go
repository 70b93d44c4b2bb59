// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package scoring

import "strings"

// forbiddenIngredients maps each supported dietary restriction to the
// ingredient keywords that violate it. Matching is substring-based on
// lowercase ingredient names, so "chicken breast" violates vegetarian.
var forbiddenIngredients = map[string][]string{
	"vegetarian": {
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "bacon",
		"ham", "sausage", "fish", "salmon", "tuna", "shrimp", "anchovy",
		"gelatin",
	},
	"vegan": {
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "bacon",
		"ham", "sausage", "fish", "salmon", "tuna", "shrimp", "anchovy",
		"gelatin", "milk", "butter", "cheese", "cream", "yogurt", "egg",
		"honey",
	},
	"pescatarian": {
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "bacon",
		"ham", "sausage",
	},
	"gluten-free": {
		"flour", "wheat", "pasta", "bread", "breadcrumbs", "soy sauce",
		"barley", "couscous", "noodles",
	},
	"dairy-free": {
		"milk", "butter", "cheese", "cream", "yogurt", "ghee",
	},
	"nut-free": {
		"peanut", "almond", "cashew", "walnut", "pecan", "pistachio",
		"hazelnut", "nut butter",
	},
	"keto": {
		"sugar", "flour", "pasta", "bread", "rice", "potato", "corn",
	},
	"halal": {
		"pork", "bacon", "ham", "lard", "gelatin", "wine", "beer",
	},
	"kosher": {
		"pork", "bacon", "ham", "shrimp", "lobster", "crab", "clam",
	},
	"low-sodium": {
		"soy sauce", "fish sauce", "anchovy", "cured", "brine",
	},
}

// countViolations returns how many of the given restrictions and
// allergens the recipe's ingredient list violates. Each restriction
// counts at most once; each allergen counts at most once.
func countViolations(ingredientNames []string, restrictions, allergens []string) int {
	violations := 0

	for _, restriction := range restrictions {
		forbidden, ok := forbiddenIngredients[strings.ToLower(restriction)]
		if !ok {
			continue
		}
		if anyIngredientMatches(ingredientNames, forbidden) {
			violations++
		}
	}
	for _, allergen := range allergens {
		if anyIngredientMatches(ingredientNames, []string{strings.ToLower(allergen)}) {
			violations++
		}
	}
	return violations
}

func anyIngredientMatches(ingredientNames, keywords []string) bool {
	for _, name := range ingredientNames {
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				return true
			}
		}
	}
	return false
}
