// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package interpreter

import (
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
)

func testRequest(query string) *models.Request {
	meta := models.SessionMetadata{
		Timestamp: time.Date(2026, 7, 10, 18, 30, 0, 0, time.UTC),
		Source:    "test",
		SessionID: "session-1",
		TimeOfDay: models.TimeEvening,
	}
	return &models.Request{
		ID:    "req-1",
		Query: query,
		Context: models.UserContextSnapshot{
			UserID:  "user-1",
			Session: meta,
		},
		Metadata: meta,
	}
}

func newTestInterpreter() *Interpreter {
	return New(zerolog.Nop())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"What CAN I make?!", "what can i make"},
		{"  chicken,   rice  ", "chicken rice"},
		{"under $20 please", "under $20 please"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassifyChickenRiceScenario(t *testing.T) {
	// "what can i make" plus "make with" outvote the single vegetarian
	// pattern, so the intent is recipe-recommendation. The dietary
	// restriction still surfaces through entity extraction.
	req := testRequest("what can I make with chicken and rice tonight, I'm vegetarian")
	req.Context.Ingredients = []models.Ingredient{{Name: "chicken"}, {Name: "rice"}}

	analysis := newTestInterpreter().Analyze(req)

	if analysis.Intent != models.IntentRecipeRecommendation && analysis.Intent != models.IntentDietaryGuidance {
		t.Fatalf("intent = %v, want recipe-recommendation or dietary-guidance", analysis.Intent)
	}
	if !containsString(analysis.Entities.Ingredients, "chicken") || !containsString(analysis.Entities.Ingredients, "rice") {
		t.Errorf("ingredients = %v, want chicken and rice", analysis.Entities.Ingredients)
	}
	if !containsString(analysis.Entities.DietaryRestrictions, "vegetarian") {
		t.Errorf("dietary = %v, want vegetarian", analysis.Entities.DietaryRestrictions)
	}
}

func TestClassifyZeroMatchFallsBackToGeneralHelp(t *testing.T) {
	req := testRequest("xyzzy plugh")
	req.Metadata.TimeOfDay = models.TimeAfternoon
	req.Context.Session.TimeOfDay = models.TimeAfternoon

	analysis := newTestInterpreter().Analyze(req)

	if analysis.Intent != models.IntentGeneralHelp {
		t.Errorf("intent = %v, want general-help", analysis.Intent)
	}
	if analysis.Confidence != 0.1 {
		t.Errorf("confidence = %v, want 0.1 floor", analysis.Confidence)
	}
}

func TestIntentOverride(t *testing.T) {
	req := testRequest("xyzzy")
	req.IntentOverride = "shopping-list"

	analysis := newTestInterpreter().Analyze(req)

	if analysis.Intent != models.IntentShoppingList {
		t.Errorf("intent = %v, want shopping-list", analysis.Intent)
	}
	if !analysis.Overridden {
		t.Error("Overridden flag not set")
	}
	if analysis.Confidence < 0.8 {
		t.Errorf("confidence = %v, want >= 0.8 with override", analysis.Confidence)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	req := testRequest("recommend a quick italian dinner with pasta for 2 people")

	in := newTestInterpreter()
	a := in.Analyze(req)
	b := in.Analyze(req)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated analysis differs:\n%+v\n%+v", a, b)
	}
}

func TestQuickDinnerTimeConstraint(t *testing.T) {
	req := testRequest("quick dinner")

	analysis := newTestInterpreter().Analyze(req)

	tc := analysis.Entities.TimeConstraint
	if tc.MaxTotalMinutes == 0 || tc.MaxTotalMinutes > 20 {
		t.Errorf("total minutes = %d, want <= 20", tc.MaxTotalMinutes)
	}
	if len(analysis.Entities.MealTypes) != 1 || analysis.Entities.MealTypes[0] != models.MealDinner {
		t.Errorf("meal types = %v, want [dinner]", analysis.Entities.MealTypes)
	}
	if analysis.Mood.Urgency != LevelHigh {
		t.Errorf("urgency = %v, want high for speed keyword", analysis.Mood.Urgency)
	}
}

func TestTimeConstraintBuckets(t *testing.T) {
	tests := []struct {
		query string
		want  TimeConstraint
	}{
		{"something ready in 30 minutes", TimeConstraint{MaxTotalMinutes: 30}},
		{"max 10 minutes prep time", TimeConstraint{MaxTotalMinutes: 10}},
		{"prep under 10 minutes", TimeConstraint{MaxPrepMinutes: 10}},
		{"cook time under 20 minutes", TimeConstraint{MaxCookMinutes: 20}},
		{"dinner in 1 hour", TimeConstraint{MaxTotalMinutes: 60}},
		// Named bucket takes the minimum against the numeric mention.
		{"quick meal under 45 minutes", TimeConstraint{MaxTotalMinutes: 15}},
	}

	for _, tt := range tests {
		got := extractTimeConstraint(normalize(tt.query))
		if got != tt.want {
			t.Errorf("extractTimeConstraint(%q) = %+v, want %+v", tt.query, got, tt.want)
		}
	}
}

func TestBudgetExtraction(t *testing.T) {
	got := extractBudget(normalize("a cheap meal under $20"))
	if !got.Economical {
		t.Error("Economical not set for 'cheap'")
	}
	if got.MaxAmount != 20 {
		t.Errorf("MaxAmount = %v, want 20", got.MaxAmount)
	}

	if !extractBudget("something affordable").Economical {
		t.Error("affordable should set Economical")
	}
}

func TestServingsExtraction(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"dinner for 4 people", 4},
		{"6 servings", 6},
		{"just dinner", 0},
	}
	for _, tt := range tests {
		if got := extractServings(normalize(tt.query)); got != tt.want {
			t.Errorf("extractServings(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestDifficultyExtraction(t *testing.T) {
	d := extractDifficulty(normalize("an easy recipe"))
	if d == nil || *d != models.DifficultyEasy {
		t.Errorf("difficulty = %v, want easy", d)
	}

	// Harder keywords win over easier ones.
	d = extractDifficulty(normalize("easy but impressive"))
	if d == nil || *d != models.DifficultyHard {
		t.Errorf("difficulty = %v, want hard", d)
	}

	if d := extractDifficulty(normalize("dinner tonight")); d != nil {
		t.Errorf("difficulty = %v, want nil", *d)
	}
}

func TestMoodExtraction(t *testing.T) {
	mood := extractMood(normalize("im tired tonight"), models.TimeEvening)
	if mood.Sentiment != SentimentNegative || mood.Energy != LevelLow {
		t.Errorf("mood = %+v, want negative sentiment, low energy", mood)
	}

	mood = extractMood(normalize("excited to try something new"), models.TimeAfternoon)
	if mood.Sentiment != SentimentPositive || !mood.Adventurous {
		t.Errorf("mood = %+v, want positive adventurous", mood)
	}

	// Speed keywords raise urgency even when the mood table set it lower.
	mood = extractMood(normalize("tired but need something quick"), models.TimeEvening)
	if mood.Urgency != LevelHigh {
		t.Errorf("urgency = %v, want high", mood.Urgency)
	}

	// Time-of-day default applies when no keyword touches energy.
	mood = extractMood(normalize("dinner please"), models.TimeMorning)
	if mood.Energy != LevelHigh {
		t.Errorf("morning default energy = %v, want high", mood.Energy)
	}
	mood = extractMood(normalize("dinner please"), models.TimeNight)
	if mood.Energy != LevelLow {
		t.Errorf("night default energy = %v, want low", mood.Energy)
	}
}

func TestSituationExtraction(t *testing.T) {
	meta := models.SessionMetadata{
		Timestamp: time.Date(2026, 12, 20, 18, 0, 0, 0, time.UTC),
		TimeOfDay: models.TimeEvening,
	}

	situation := extractSituation(normalize("christmas dinner for the family"), &meta)
	if situation.Occasion != "holiday" {
		t.Errorf("occasion = %q, want holiday", situation.Occasion)
	}
	if situation.SocialSetting != "family" {
		t.Errorf("social = %q, want family", situation.SocialSetting)
	}
	if situation.Season != models.SeasonWinter {
		t.Errorf("season = %v, want winter", situation.Season)
	}
}

func TestEquipmentAndMethodExtraction(t *testing.T) {
	analysis := newTestInterpreter().Analyze(testRequest("something baked in the air fryer or oven"))

	if !containsString(analysis.Entities.Equipment, "air fryer") || !containsString(analysis.Entities.Equipment, "oven") {
		t.Errorf("equipment = %v, want air fryer and oven", analysis.Entities.Equipment)
	}
	if !containsString(analysis.Entities.CookingMethods, "baked") {
		t.Errorf("methods = %v, want baked", analysis.Entities.CookingMethods)
	}
}

func TestMealPlanningContextBoost(t *testing.T) {
	// "plan dinner" votes for both meal-planning and dinner extraction;
	// the evening session boost keeps meal-planning ahead.
	req := testRequest("plan dinner for the week")
	analysis := newTestInterpreter().Analyze(req)

	if analysis.Intent != models.IntentMealPlanning {
		t.Errorf("intent = %v, want meal-planning", analysis.Intent)
	}
}

func containsString(s []string, target string) bool {
	for _, v := range s {
		if v == target {
			return true
		}
	}
	return false
}
