// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package scoring

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/contextual"
	"github.com/ckersey/souschef/internal/interpreter"
	"github.com/ckersey/souschef/internal/models"
	"github.com/ckersey/souschef/internal/profile"
)

func testRecipe(id string, ingredients ...string) models.Recipe {
	recipe := models.Recipe{
		ID:          id,
		Title:       id,
		Cuisine:     "italian",
		PrepMinutes: 15,
		CookMinutes: 25,
		Difficulty:  models.DifficultyMedium,
	}
	for _, name := range ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.RecipeIngredient{Name: name})
	}
	return recipe
}

func snapshotWith(ingredients ...string) models.UserContextSnapshot {
	snap := models.UserContextSnapshot{
		UserID:     "user-1",
		SkillLevel: models.SkillIntermediate,
	}
	for _, name := range ingredients {
		snap.Ingredients = append(snap.Ingredients, models.Ingredient{Name: name})
	}
	return snap
}

func defaultInputs(snap models.UserContextSnapshot) Inputs {
	return Inputs{
		Snapshot: snap,
		Profile:  profile.DefaultProfile(snap.UserID, snap, time.Time{}),
		Context:  contextual.Scoring{OverallScore: 50},
	}
}

func TestIngredientMatchFullOnlyWhenAllPresent(t *testing.T) {
	recipe := testRecipe("r1", "chicken", "rice", "onion")

	full := ingredientMatchScore(&recipe, snapshotWith("chicken", "rice", "onion"), nil)
	if full != 100 {
		t.Errorf("full inventory match = %v, want 100", full)
	}

	partial := ingredientMatchScore(&recipe, snapshotWith("chicken", "rice"), nil)
	if partial >= 100 || partial <= 0 {
		t.Errorf("partial match = %v, want strictly between 0 and 100", partial)
	}

	queryOnly := ingredientMatchScore(&recipe, snapshotWith(), []string{"chicken", "rice", "onion"})
	if math.Abs(queryOnly-80) > 1e-9 {
		t.Errorf("query-only match = %v, want 80 (0.8 credit per ingredient)", queryOnly)
	}
}

func TestTimeAlignmentNonIncreasingWithOverage(t *testing.T) {
	available := 30
	prev := math.Inf(1)
	for total := 0; total <= 120; total += 5 {
		score := timeAlignmentScore(total, available)
		if score < 0 || score > 100 {
			t.Fatalf("time score %v out of range for total %d", score, total)
		}
		if score > prev {
			t.Fatalf("time score increased from %v to %v at total %d", prev, score, total)
		}
		if total <= available && score != 100 {
			t.Errorf("score = %v for overage <= 0 at total %d, want 100", score, total)
		}
		prev = score
	}
}

func TestTimeAlignmentBands(t *testing.T) {
	tests := []struct {
		total, available int
		want             float64
	}{
		{30, 30, 100},
		{45, 30, 80},
		{60, 30, 60},
		{75, 30, 0},
		{65, 30, 5},
		{40, 0, 100},
	}
	for _, tt := range tests {
		if got := timeAlignmentScore(tt.total, tt.available); got != tt.want {
			t.Errorf("timeAlignmentScore(%d, %d) = %v, want %v", tt.total, tt.available, got, tt.want)
		}
	}
}

func TestSkillAlignmentTable(t *testing.T) {
	tests := []struct {
		difficulty models.Difficulty
		level      models.SkillLevel
		want       float64
	}{
		{models.DifficultyMedium, models.SkillIntermediate, 100},
		{models.DifficultyHard, models.SkillIntermediate, 80},
		{models.DifficultyEasy, models.SkillIntermediate, 90},
		{models.DifficultyHard, models.SkillBeginner, 0},
		{models.DifficultyEasy, models.SkillAdvanced, 70},
	}
	for _, tt := range tests {
		if got := skillAlignmentScore(tt.difficulty, tt.level); got != tt.want {
			t.Errorf("skillAlignmentScore(%v, %v) = %v, want %v", tt.difficulty, tt.level, got, tt.want)
		}
	}
}

func TestDietaryViolationCapsScore(t *testing.T) {
	recipe := testRecipe("r1", "chicken breast", "rice")
	snap := snapshotWith("chicken breast", "rice")
	snap.DietaryRestrictions = []string{"vegetarian"}

	in := defaultInputs(snap)
	score := dietaryMatchScore(ingredientNames(&recipe), in)
	if score > 50 {
		t.Errorf("dietary score = %v for one violation, want <= 50", score)
	}

	snap.DietaryRestrictions = []string{"vegetarian", "vegan", "halal"}
	in = defaultInputs(snap)
	score = dietaryMatchScore(ingredientNames(&recipe), in)
	if score != 0 {
		t.Errorf("dietary score = %v for two-plus violations, want floor 0", score)
	}
}

func TestWeightTableSumsToOneForAllFlagCombinations(t *testing.T) {
	budgets := []interpreter.BudgetConstraint{{}, {Economical: true}}
	times := []interpreter.TimeConstraint{{}, {MaxTotalMinutes: 20}}
	occasions := []string{"", "party"}

	for _, budget := range budgets {
		for _, tc := range times {
			for _, occasion := range occasions {
				analysis := interpreter.Analysis{}
				analysis.Entities.BudgetConstraint = budget
				analysis.Entities.TimeConstraint = tc
				analysis.Situation.Occasion = occasion

				w := weightsFor(analysis)
				if diff := math.Abs(w.Sum() - 1.0); diff > 1e-9 {
					t.Errorf("weights sum = %v for flags %+v/%+v/%q, want 1.0", w.Sum(), budget, tc, occasion)
				}
			}
		}
	}
}

func TestBudgetFlagRaisesBudgetWeight(t *testing.T) {
	plain := weightsFor(interpreter.Analysis{})
	flagged := interpreter.Analysis{}
	flagged.Entities.BudgetConstraint.Economical = true

	boosted := weightsFor(flagged)
	if boosted.Budget <= plain.Budget {
		t.Errorf("budget weight %v not raised over %v by economical flag", boosted.Budget, plain.Budget)
	}
}

func TestSocialBoostIgnoresDefaultSituation(t *testing.T) {
	// A plain query still gets the interpreter's fallback situation
	// ("everyday" occasion, "solo" setting), which must not count as a
	// social signal.
	in := interpreter.New(zerolog.Nop())
	analysis := in.Analyze(&models.Request{Query: "what should i cook"})
	if analysis.Situation.Occasion != "everyday" {
		t.Fatalf("default occasion = %q, want everyday", analysis.Situation.Occasion)
	}

	base := weightsFor(interpreter.Analysis{})
	plain := weightsFor(analysis)
	if math.Abs(plain.Context-base.Context) > 1e-9 {
		t.Errorf("context weight = %v for plain query, want base %v", plain.Context, base.Context)
	}

	party := analysis
	party.Situation.Occasion = "party"
	if boosted := weightsFor(party); boosted.Context <= plain.Context {
		t.Errorf("context weight %v not raised over %v by party occasion", boosted.Context, plain.Context)
	}

	guests := analysis
	guests.Situation.SocialSetting = "guests"
	if boosted := weightsFor(guests); boosted.Context <= plain.Context {
		t.Errorf("context weight %v not raised over %v by guests setting", boosted.Context, plain.Context)
	}
}

func TestRankSortsAndBreaksTies(t *testing.T) {
	scorer := New(zerolog.Nop())
	snap := snapshotWith("pasta", "tomato")

	matching := testRecipe("matching", "pasta", "tomato")
	missing := testRecipe("missing", "pasta", "anchovy")
	slow := testRecipe("slow", "pasta", "tomato")
	slow.CookMinutes = 90

	ranked := scorer.Rank([]Candidate{
		{Recipe: slow}, {Recipe: missing}, {Recipe: matching},
	}, defaultInputs(snap))

	if len(ranked) != 3 {
		t.Fatalf("ranked %d candidates, want 3", len(ranked))
	}
	if ranked[0].Recipe.ID != "matching" {
		t.Errorf("top candidate = %s, want matching", ranked[0].Recipe.ID)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("ranking not descending at %d: %v > %v", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

func TestRankTieBreakPrefersLowerTotalTime(t *testing.T) {
	fast := testRecipe("fast", "pasta")
	slow := testRecipe("slow", "pasta")
	slow.CookMinutes = 90
	slow.PrepMinutes = 30

	// Identical ingredient lists and scores except total time.
	snap := snapshotWith("pasta")
	snap.AvailableMinutes = 0

	scorer := New(zerolog.Nop())
	ranked := scorer.Rank([]Candidate{{Recipe: slow}, {Recipe: fast}}, defaultInputs(snap))
	if ranked[0].Recipe.ID != "fast" && ranked[0].Score == ranked[1].Score {
		t.Errorf("tie not broken by lower total time: top is %s", ranked[0].Recipe.ID)
	}
}

func TestMissingIngredientsDerivedFromInventory(t *testing.T) {
	scorer := New(zerolog.Nop())
	snap := snapshotWith("pasta")
	recipe := testRecipe("r1", "pasta", "anchovy")

	ranked := scorer.Rank([]Candidate{{Recipe: recipe}}, defaultInputs(snap))
	missing := ranked[0].MissingIngredients
	if len(missing) != 1 || missing[0] != "anchovy" {
		t.Errorf("missing ingredients = %v, want [anchovy]", missing)
	}
}

func TestExplanationFallbackBelowThreshold(t *testing.T) {
	got := buildExplanation(models.SubScores{}, 42.4)
	if !strings.Contains(got, "42% match") {
		t.Errorf("fallback explanation = %q, want generic percentage form", got)
	}
}

func TestExplanationJoinsClausesInPriorityOrder(t *testing.T) {
	sub := models.SubScores{IngredientMatch: 95, TimeAlignment: 85, DietaryMatch: 90}
	got := buildExplanation(sub, 88)

	wantOrder := []string{"on hand", "dietary", "available time"}
	last := -1
	for _, fragment := range wantOrder {
		idx := strings.Index(got, fragment)
		if idx < 0 {
			t.Fatalf("explanation %q missing fragment %q", got, fragment)
		}
		if idx < last {
			t.Errorf("explanation %q orders %q before earlier-priority clause", got, fragment)
		}
		last = idx
	}
}

func TestSuccessProbabilityClampedAndBlended(t *testing.T) {
	recipe := testRecipe("r1", "pasta")

	p := successProbability(&recipe, models.SubScores{SkillAlignment: 100, IngredientMatch: 100}, nil)
	if p < 0 || p > 1 {
		t.Fatalf("probability %v out of [0,1]", p)
	}

	prof := &profile.Profile{
		Learned: true,
		Flavor: profile.FlavorProfile{
			Cuisines: map[string]profile.CuisineScore{
				"italian": {Score: 100, Confidence: 0.5},
			},
		},
	}
	blended := successProbability(&recipe, models.SubScores{SkillAlignment: 70, IngredientMatch: 50}, prof)
	want := (0.7 + 1.0) / 2
	if math.Abs(blended-want) > 1e-9 {
		t.Errorf("blended probability = %v, want %v (50/50 with cuisine history)", blended, want)
	}
}

func TestPersonalizationNeutralForUnlearnedProfile(t *testing.T) {
	recipe := testRecipe("r1", "pasta")
	snap := snapshotWith("pasta")
	unlearned := profile.DefaultProfile("user-1", snap, time.Time{})

	if got := personalizationScore(&recipe, unlearned, models.TimeEvening); got != 50 {
		t.Errorf("personalization = %v for unlearned profile, want neutral 50", got)
	}
}

func TestExpiringWithinSortsSoonestFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	inventory := []models.Ingredient{
		{Name: "milk", ExpiresAt: now.AddDate(0, 0, 5)},
		{Name: "spinach", ExpiresAt: now.AddDate(0, 0, 1)},
		{Name: "flour"},
		{Name: "old yogurt", ExpiresAt: now.AddDate(0, 0, -1)},
	}

	expiring := ExpiringWithin(inventory, now, 7*24*time.Hour)
	if len(expiring) != 2 {
		t.Fatalf("expiring count = %d, want 2", len(expiring))
	}
	if expiring[0].Name != "spinach" || expiring[1].Name != "milk" {
		t.Errorf("expiring order = %v, want spinach then milk", expiring)
	}
}
