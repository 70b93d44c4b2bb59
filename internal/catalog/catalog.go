// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package catalog supplies recipe candidates: an in-memory matcher over
// a seeded recipe set, plus a circuit-breaker wrapper for external
// suppliers.
package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
	"github.com/ckersey/souschef/internal/scoring"
)

// Query filters one candidate lookup. Zero fields mean unfiltered.
type Query struct {
	// Ingredients are the target ingredients (inventory plus query
	// mentions), lowercase.
	Ingredients []string

	// MealTypes restricts candidates to recipes suiting any listed meal.
	MealTypes []models.MealType

	// Cuisines restricts candidates to the listed cuisines.
	Cuisines []string

	// MaxTotalMinutes drops recipes above the limit. Zero means no limit.
	MaxTotalMinutes int

	// Limit caps each of the perfect and partial sets. Zero means all.
	Limit int
}

// Result is a candidate lookup outcome. Perfect candidates need nothing
// the user lacks; partial candidates carry their missing ingredients.
type Result struct {
	Perfect []scoring.Candidate
	Partial []scoring.Candidate
}

// All returns perfect followed by partial candidates.
func (r Result) All() []scoring.Candidate {
	all := make([]scoring.Candidate, 0, len(r.Perfect)+len(r.Partial))
	all = append(all, r.Perfect...)
	all = append(all, r.Partial...)
	return all
}

// Supplier finds recipe candidates for a query. Implementations must be
// safe for concurrent use.
type Supplier interface {
	FindCandidates(ctx context.Context, q Query) (Result, error)
}

// Catalog is an in-memory Supplier over a fixed recipe set.
type Catalog struct {
	mu      sync.RWMutex
	recipes []models.Recipe
	logger  zerolog.Logger
}

// New creates a catalog seeded with the given recipes. Nil seeds the
// built-in set.
func New(recipes []models.Recipe, logger zerolog.Logger) *Catalog {
	if recipes == nil {
		recipes = seedRecipes()
	}
	return &Catalog{
		recipes: recipes,
		logger:  logger.With().Str("component", "catalog").Logger(),
	}
}

// Add registers additional recipes at runtime.
func (c *Catalog) Add(recipes ...models.Recipe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recipes = append(c.recipes, recipes...)
}

// Len returns the recipe count.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recipes)
}

// Recipes returns a copy of the full recipe set.
func (c *Catalog) Recipes() []models.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// FindCandidates matches the query against the recipe set. A recipe
// whose every ingredient appears in the target set is a perfect match; a
// recipe sharing at least one target ingredient is a partial match with
// its absent ingredients listed. With no target ingredients, every
// filtered recipe is a partial match missing everything it needs.
func (c *Catalog) FindCandidates(ctx context.Context, q Query) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	targets := make(map[string]struct{}, len(q.Ingredients))
	for _, name := range q.Ingredients {
		targets[strings.ToLower(name)] = struct{}{}
	}

	var result Result
	for i := range c.recipes {
		recipe := &c.recipes[i]
		if !matchesFilters(recipe, q) {
			continue
		}

		missing, overlap := splitIngredients(recipe, targets)
		candidate := scoring.Candidate{Recipe: *recipe, MissingIngredients: missing}
		switch {
		case len(missing) == 0 && len(recipe.Ingredients) > 0:
			result.Perfect = append(result.Perfect, candidate)
		case overlap > 0 || len(targets) == 0:
			result.Partial = append(result.Partial, candidate)
		}
	}

	// Fewest missing ingredients first, then shorter recipes.
	sort.SliceStable(result.Partial, func(i, j int) bool {
		if len(result.Partial[i].MissingIngredients) != len(result.Partial[j].MissingIngredients) {
			return len(result.Partial[i].MissingIngredients) < len(result.Partial[j].MissingIngredients)
		}
		return result.Partial[i].Recipe.TotalMinutes() < result.Partial[j].Recipe.TotalMinutes()
	})

	if q.Limit > 0 {
		if len(result.Perfect) > q.Limit {
			result.Perfect = result.Perfect[:q.Limit]
		}
		if len(result.Partial) > q.Limit {
			result.Partial = result.Partial[:q.Limit]
		}
	}

	c.logger.Debug().
		Int("perfect", len(result.Perfect)).
		Int("partial", len(result.Partial)).
		Msg("Candidates matched")
	return result, nil
}

func matchesFilters(recipe *models.Recipe, q Query) bool {
	if q.MaxTotalMinutes > 0 && recipe.TotalMinutes() > q.MaxTotalMinutes {
		return false
	}
	if len(q.Cuisines) > 0 && !containsFold(q.Cuisines, recipe.Cuisine) {
		return false
	}
	if len(q.MealTypes) > 0 && !mealOverlap(recipe.MealTypes, q.MealTypes) {
		return false
	}
	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func mealOverlap(a, b []models.MealType) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func splitIngredients(recipe *models.Recipe, targets map[string]struct{}) (missing []string, overlap int) {
	for _, ing := range recipe.Ingredients {
		name := strings.ToLower(ing.Name)
		if _, ok := targets[name]; ok {
			overlap++
			continue
		}
		missing = append(missing, name)
	}
	return missing, overlap
}
