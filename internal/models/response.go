// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package models

import "time"

// ProtocolVersion is stamped on every response envelope.
const ProtocolVersion = "1.0"

// SubScores names the independent scoring dimensions of a candidate.
// Every value is clamped to [0,100] before combination.
type SubScores struct {
	IngredientMatch   float64 `json:"ingredient_match"`
	SkillAlignment    float64 `json:"skill_alignment"`
	TimeAlignment     float64 `json:"time_alignment"`
	DietaryMatch      float64 `json:"dietary_match"`
	CuisinePreference float64 `json:"cuisine_preference"`
	Seasonality       float64 `json:"seasonality"`
	Popularity        float64 `json:"popularity"`
	Personalization   float64 `json:"personalization"`
	Context           float64 `json:"context"`
	Budget            float64 `json:"budget"`
	Nutrition         float64 `json:"nutrition"`
	WasteReduction    float64 `json:"waste_reduction"`
}

// ScoredCandidate is a ranked recipe (optionally bound to a meal slot)
// with its sub-scores, combined score, and generated explanation.
// Candidates are ephemeral: produced per request and handed to the caller.
type ScoredCandidate struct {
	// Recipe is the candidate recipe.
	Recipe Recipe `json:"recipe"`

	// Slot is the meal-plan slot this candidate targets, nil for plain
	// recipe recommendations.
	Slot *MealSlot `json:"slot,omitempty"`

	// MissingIngredients lists recipe ingredients absent from the
	// snapshot inventory.
	MissingIngredients []string `json:"missing_ingredients,omitempty"`

	// Scores carries the per-dimension sub-scores.
	Scores SubScores `json:"scores"`

	// Score is the weighted combination of the sub-scores, in [0,100].
	Score float64 `json:"score"`

	// Explanation is the generated natural-language justification.
	Explanation string `json:"explanation"`

	// SuccessProbability estimates the chance the user cooks this
	// successfully, in [0,1].
	SuccessProbability float64 `json:"success_probability"`
}

// DataKind discriminates the ResponseData tagged union.
type DataKind string

const (
	// DataKindRecommendations carries ranked recipe candidates.
	DataKindRecommendations DataKind = "recommendations"
	// DataKindMealPlan carries ranked meal-slot assignments.
	DataKindMealPlan DataKind = "meal-plan"
	// DataKindShoppingList carries a shopping list draft.
	DataKindShoppingList DataKind = "shopping-list"
	// DataKindIngredients carries inventory insights.
	DataKindIngredients DataKind = "ingredients"
	// DataKindSubstitutions carries substitution suggestions.
	DataKindSubstitutions DataKind = "substitutions"
	// DataKindGuidance carries free-text guidance (tips, nutrition,
	// dietary advice, general help).
	DataKindGuidance DataKind = "guidance"
)

// RecommendationData is the payload for recipe search/recommendation
// intents.
type RecommendationData struct {
	Candidates      []ScoredCandidate `json:"candidates"`
	TotalCandidates int               `json:"total_candidates"`
}

// MealPlanData is the payload for meal-planning intents.
type MealPlanData struct {
	Assignments []ScoredCandidate `json:"assignments"`
}

// ShoppingListItem is one line of a shopping-list draft.
type ShoppingListItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	ForRecipe string  `json:"for_recipe,omitempty"`
}

// ShoppingListData is the payload for shopping-list intents.
type ShoppingListData struct {
	Items []ShoppingListItem `json:"items"`
}

// ExpiringIngredient flags inventory approaching expiration.
type ExpiringIngredient struct {
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
	DaysLeft  int       `json:"days_left"`
}

// IngredientData is the payload for ingredient-management intents.
type IngredientData struct {
	TotalItems int                  `json:"total_items"`
	Expiring   []ExpiringIngredient `json:"expiring,omitempty"`
	Categories map[string]int       `json:"categories,omitempty"`
}

// Substitution suggests a replacement for a missing ingredient.
type Substitution struct {
	Ingredient  string   `json:"ingredient"`
	Substitutes []string `json:"substitutes"`
}

// SubstitutionData is the payload for substitution-help intents.
type SubstitutionData struct {
	Substitutions []Substitution `json:"substitutions"`
}

// GuidanceData is the payload for tips, nutrition-info, dietary-guidance,
// and general-help intents.
type GuidanceData struct {
	Topics []string `json:"topics,omitempty"`
}

// ResponseData is a tagged union keyed by intent. Exactly the variant
// matching Kind is non-nil; consumers switch on Kind instead of probing
// optional fields.
type ResponseData struct {
	Kind            DataKind            `json:"kind"`
	Recommendations *RecommendationData `json:"recommendations,omitempty"`
	MealPlan        *MealPlanData       `json:"meal_plan,omitempty"`
	ShoppingList    *ShoppingListData   `json:"shopping_list,omitempty"`
	Ingredients     *IngredientData     `json:"ingredients,omitempty"`
	Substitutions   *SubstitutionData   `json:"substitutions,omitempty"`
	Guidance        *GuidanceData       `json:"guidance,omitempty"`
}

// ResponseMetadata stamps processing details on a response.
type ResponseMetadata struct {
	// ProcessingTime is the wall-clock pipeline duration.
	ProcessingTime time.Duration `json:"processing_time_ms"`

	// Timestamp is when the response was assembled.
	Timestamp time.Time `json:"timestamp"`

	// Version is the response protocol version.
	Version string `json:"version"`
}

// AgentResponse is the terminal artifact of a request. Ownership passes to
// the caller once returned.
type AgentResponse struct {
	// ID is the unique response identifier.
	ID string `json:"id"`

	// RequestID echoes the originating request.
	RequestID string `json:"request_id"`

	// AgentType names the agent that produced the response.
	AgentType string `json:"agent_type"`

	// Message is the user-facing response text.
	Message string `json:"message"`

	// Intent is the resolved request intent.
	Intent Intent `json:"intent"`

	// Confidence is the bucketed confidence level.
	Confidence ConfidenceLevel `json:"confidence"`

	// Priority is the response urgency.
	Priority Priority `json:"priority"`

	// Data is the optional intent-keyed structured payload.
	Data *ResponseData `json:"data,omitempty"`

	// FollowUpSuggestions lists queries the user might ask next.
	FollowUpSuggestions []string `json:"follow_up_suggestions,omitempty"`

	// SuggestedActions lists concrete next steps.
	SuggestedActions []string `json:"suggested_actions,omitempty"`

	// Metadata carries processing details.
	Metadata ResponseMetadata `json:"metadata"`
}
