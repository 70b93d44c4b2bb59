// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package scoring ranks recipe candidates with independent clamped
// sub-scores combined through a normalized weight table.
package scoring

import (
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/contextual"
	"github.com/ckersey/souschef/internal/interpreter"
	"github.com/ckersey/souschef/internal/models"
	"github.com/ckersey/souschef/internal/profile"
)

// Candidate is one unscored recipe/slot pairing from the candidate
// supplier.
type Candidate struct {
	Recipe             models.Recipe
	Slot               *models.MealSlot
	MissingIngredients []string
}

// Inputs bundles everything one ranking pass consumes.
type Inputs struct {
	Analysis interpreter.Analysis
	Snapshot models.UserContextSnapshot
	Profile  *profile.Profile
	Env      contextual.Environment
	Context  contextual.Scoring
}

// Scorer ranks candidates. It is stateless and safe for concurrent use.
type Scorer struct {
	logger zerolog.Logger
}

// New creates a scorer.
func New(logger zerolog.Logger) *Scorer {
	return &Scorer{logger: logger.With().Str("component", "scoring").Logger()}
}

// Rank scores every candidate and returns them sorted best-first. Ties
// on the final score break by higher ingredient match, then by lower
// total recipe time.
func (s *Scorer) Rank(candidates []Candidate, in Inputs) []models.ScoredCandidate {
	if in.Profile == nil {
		in.Profile = profile.DefaultProfile(in.Snapshot.UserID, in.Snapshot, time.Now())
	}
	weights := weightsFor(in.Analysis)

	scored := make([]models.ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		scored = append(scored, s.score(&candidates[i], in, weights))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Scores.IngredientMatch != scored[j].Scores.IngredientMatch {
			return scored[i].Scores.IngredientMatch > scored[j].Scores.IngredientMatch
		}
		return scored[i].Recipe.TotalMinutes() < scored[j].Recipe.TotalMinutes()
	})

	s.logger.Debug().Int("candidates", len(scored)).Msg("Candidates ranked")
	return scored
}

func (s *Scorer) score(c *Candidate, in Inputs, w Weights) models.ScoredCandidate {
	recipe := &c.Recipe
	names := ingredientNames(recipe)

	sub := models.SubScores{
		IngredientMatch:   ingredientMatchScore(recipe, in.Snapshot, in.Analysis.Entities.Ingredients),
		SkillAlignment:    skillAlignmentScore(recipe.Difficulty, in.Profile.Skill.Overall),
		TimeAlignment:     timeAlignmentScore(recipe.TotalMinutes(), availableMinutes(in)),
		DietaryMatch:      dietaryMatchScore(names, in),
		CuisinePreference: cuisinePreferenceScore(recipe.Cuisine, in.Snapshot.PreferredCuisines),
		Seasonality:       seasonalityScore(names, in.Env.Location.SeasonalProduce),
		Popularity:        popularityScore(recipe),
		Personalization:   personalizationScore(recipe, in.Profile, in.Env.Temporal.TimeOfDay),
		Context:           contextScore(recipe, in),
		Budget:            budgetScore(recipe, in.Analysis.Entities.BudgetConstraint),
		Nutrition:         nutritionScore(recipe.Nutrition),
		WasteReduction:    wasteReductionScore(names, in.Snapshot.Ingredients),
	}
	clampSubScores(&sub)

	final := w.IngredientMatch*sub.IngredientMatch +
		w.SkillAlignment*sub.SkillAlignment +
		w.TimeAlignment*sub.TimeAlignment +
		w.DietaryMatch*sub.DietaryMatch +
		w.CuisinePreference*sub.CuisinePreference +
		w.Seasonality*sub.Seasonality +
		w.Popularity*sub.Popularity +
		w.Personalization*sub.Personalization +
		w.Context*sub.Context +
		w.Budget*sub.Budget +
		w.Nutrition*sub.Nutrition +
		w.WasteReduction*sub.WasteReduction

	return models.ScoredCandidate{
		Recipe:             c.Recipe,
		Slot:               c.Slot,
		MissingIngredients: missingIngredients(c, names, in.Snapshot),
		Scores:             sub,
		Score:              clamp(final, 0, 100),
		Explanation:        buildExplanation(sub, final),
		SuccessProbability: successProbability(recipe, sub, in.Profile),
	}
}

// ingredientMatchScore credits inventory ingredients at full weight and
// query-only mentions at 0.8, over the total recipe ingredient count.
func ingredientMatchScore(recipe *models.Recipe, snapshot models.UserContextSnapshot, queryIngredients []string) float64 {
	if len(recipe.Ingredients) == 0 {
		return 0
	}

	credit := 0.0
	for _, ing := range recipe.Ingredients {
		name := strings.ToLower(ing.Name)
		switch {
		case snapshot.HasIngredient(name):
			credit += 1.0
		case mentioned(queryIngredients, name):
			credit += 0.8
		}
	}
	return credit / float64(len(recipe.Ingredients)) * 100
}

func mentioned(queryIngredients []string, name string) bool {
	for _, q := range queryIngredients {
		if strings.Contains(name, q) || strings.Contains(q, name) {
			return true
		}
	}
	return false
}

// skillAlignmentScore rewards a mild stretch over coasting: one level
// above the user scores 80, one level below scores 90.
func skillAlignmentScore(difficulty models.Difficulty, userLevel models.SkillLevel) float64 {
	diff := int(difficulty.SkillLevel()) - int(userLevel)
	switch {
	case diff == 0:
		return 100
	case diff == 1:
		return 80
	case diff == -1:
		return 90
	case diff > 1:
		v := 40 - 20*float64(diff)
		if v < 0 {
			return 0
		}
		return v
	default:
		return 70
	}
}

// availableMinutes resolves the effective time budget: the tighter of
// the snapshot's available time and any extracted query constraint.
// Zero means unconstrained.
func availableMinutes(in Inputs) int {
	available := in.Snapshot.AvailableMinutes
	if limit := in.Analysis.Entities.TimeConstraint.MaxTotalMinutes; limit > 0 {
		if available == 0 || limit < available {
			available = limit
		}
	}
	return available
}

func timeAlignmentScore(totalMinutes, available int) float64 {
	if available <= 0 {
		return 100
	}
	overage := totalMinutes - available
	switch {
	case overage <= 0:
		return 100
	case overage <= 15:
		return 80
	case overage <= 30:
		return 60
	default:
		v := 40 - float64(overage)
		if v < 0 {
			return 0
		}
		return v
	}
}

// dietaryMatchScore subtracts 50 per violated restriction, floored at 0.
// Restrictions from the snapshot and the query text are merged.
func dietaryMatchScore(ingredientNames []string, in Inputs) float64 {
	restrictions := mergeUnique(in.Snapshot.DietaryRestrictions, in.Analysis.Entities.DietaryRestrictions)
	violations := countViolations(ingredientNames, restrictions, in.Snapshot.Allergens)
	score := 100 - 50*float64(violations)
	if score < 0 {
		return 0
	}
	return score
}

// cuisinePreferenceScore treats a non-preferred cuisine as a mild
// penalty, never exclusion.
func cuisinePreferenceScore(cuisine string, preferred []string) float64 {
	if len(preferred) == 0 {
		return 100
	}
	for _, p := range preferred {
		if strings.EqualFold(p, cuisine) {
			return 100
		}
	}
	return 70
}

func seasonalityScore(ingredientNames, seasonalProduce []string) float64 {
	for _, name := range ingredientNames {
		for _, produce := range seasonalProduce {
			if strings.Contains(name, produce) {
				return 100
			}
		}
	}
	return 80
}

func popularityScore(recipe *models.Recipe) float64 {
	score := 70.0
	if recipe.HasTag("popular") {
		score += 20
	}
	if recipe.Difficulty == models.DifficultyEasy {
		score += 10
	}
	if recipe.PrepMinutes <= 30 {
		score += 10
	}
	if score > 100 {
		return 100
	}
	return score
}

// personalizationScore layers additive bonuses from the learned profile
// onto a neutral base, so an unlearned profile leaves the score at 50.
func personalizationScore(recipe *models.Recipe, prof *profile.Profile, tod models.TimeOfDay) float64 {
	score := 50.0
	if prof == nil || !prof.Learned {
		return score
	}

	if entry, ok := prof.Flavor.Cuisines[strings.ToLower(recipe.Cuisine)]; ok {
		score += (entry.Score - 50) / 5 * entry.Confidence
	}
	for _, method := range recipe.Methods {
		if prof.Flavor.MethodAffinity[strings.ToLower(method)] > 0 {
			score += 10
			break
		}
	}
	for _, ing := range recipe.Ingredients {
		if prof.Flavor.IngredientAffinity[strings.ToLower(ing.Name)] > 0 {
			score += 10
			break
		}
	}
	for _, meal := range recipe.MealTypes {
		if containsMeal(prof.Patterns.MealTypesByTime[tod], meal) {
			score += 10
			break
		}
	}
	return score
}

func containsMeal(meals []models.MealType, target models.MealType) bool {
	for _, m := range meals {
		if m == target {
			return true
		}
	}
	return false
}

// contextScore starts from the analyzer's overall context score and
// applies additive kitchen adjustments.
func contextScore(recipe *models.Recipe, in Inputs) float64 {
	score := in.Context.OverallScore
	if in.Env.Kitchen.AvailableMinutes > 0 && recipe.TotalMinutes() <= in.Env.Kitchen.AvailableMinutes {
		score += 10
	}
	if in.Env.Kitchen.NoiseRestricted && usesLoudEquipment(recipe) {
		score -= 10
	}
	return score
}

func usesLoudEquipment(recipe *models.Recipe) bool {
	for _, eq := range recipe.Equipment {
		name := strings.ToLower(eq)
		if strings.Contains(name, "blender") || strings.Contains(name, "food processor") || strings.Contains(name, "mixer") {
			return true
		}
	}
	return false
}

// expensiveKeywords flag premium ingredients for the budget dimension.
var expensiveKeywords = []string{
	"lobster", "saffron", "truffle", "tenderloin", "wagyu", "caviar",
	"scallop", "crab", "prosciutto",
}

func budgetScore(recipe *models.Recipe, budget interpreter.BudgetConstraint) float64 {
	score := 70.0
	premium := false
	for _, ing := range recipe.Ingredients {
		name := strings.ToLower(ing.Name)
		for _, kw := range expensiveKeywords {
			if strings.Contains(name, kw) {
				premium = true
			}
		}
	}

	if !premium {
		score += 15
	}
	if !budget.IsZero() {
		if premium {
			score -= 30
		} else if len(recipe.Ingredients) <= 8 {
			score += 15
		}
	}
	return score
}

func nutritionScore(facts *models.NutritionFacts) float64 {
	score := 70.0
	if facts == nil {
		return score
	}
	if facts.Calories > 0 && facts.Calories <= 700 {
		score += 10
	}
	if facts.Calories > 900 {
		score -= 10
	}
	if facts.Protein >= 20 {
		score += 10
	}
	if facts.Fiber >= 5 {
		score += 5
	}
	return score
}

// wasteReductionScore rewards recipes that use inventory carrying an
// expiration date.
func wasteReductionScore(ingredientNames []string, inventory []models.Ingredient) float64 {
	score := 50.0
	for _, item := range inventory {
		if item.ExpiresAt.IsZero() {
			continue
		}
		for _, name := range ingredientNames {
			if strings.Contains(name, strings.ToLower(item.Name)) {
				score += 15
				break
			}
		}
	}
	if score > 100 {
		return 100
	}
	return score
}

func ingredientNames(recipe *models.Recipe) []string {
	names := make([]string, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		names = append(names, strings.ToLower(ing.Name))
	}
	return names
}

// missingIngredients prefers the supplier's list; absent that, derives
// it from the snapshot inventory.
func missingIngredients(c *Candidate, names []string, snapshot models.UserContextSnapshot) []string {
	if len(c.MissingIngredients) > 0 {
		return c.MissingIngredients
	}
	var missing []string
	for _, name := range names {
		if !snapshot.HasIngredient(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func mergeUnique(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		key := strings.ToLower(s)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			merged = append(merged, key)
		}
	}
	for _, s := range b {
		key := strings.ToLower(s)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			merged = append(merged, key)
		}
	}
	return merged
}

func clampSubScores(s *models.SubScores) {
	s.IngredientMatch = clamp(s.IngredientMatch, 0, 100)
	s.SkillAlignment = clamp(s.SkillAlignment, 0, 100)
	s.TimeAlignment = clamp(s.TimeAlignment, 0, 100)
	s.DietaryMatch = clamp(s.DietaryMatch, 0, 100)
	s.CuisinePreference = clamp(s.CuisinePreference, 0, 100)
	s.Seasonality = clamp(s.Seasonality, 0, 100)
	s.Popularity = clamp(s.Popularity, 0, 100)
	s.Personalization = clamp(s.Personalization, 0, 100)
	s.Context = clamp(s.Context, 0, 100)
	s.Budget = clamp(s.Budget, 0, 100)
	s.Nutrition = clamp(s.Nutrition, 0, 100)
	s.WasteReduction = clamp(s.WasteReduction, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ExpiringWithin lists inventory items expiring within the window,
// soonest first. Used by the ingredient-management response path.
func ExpiringWithin(inventory []models.Ingredient, now time.Time, window time.Duration) []models.Ingredient {
	var expiring []models.Ingredient
	for _, item := range inventory {
		if item.ExpiresAt.IsZero() {
			continue
		}
		if until := item.ExpiresAt.Sub(now); until >= 0 && until <= window {
			expiring = append(expiring, item)
		}
	}
	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].ExpiresAt.Before(expiring[j].ExpiresAt)
	})
	return expiring
}
