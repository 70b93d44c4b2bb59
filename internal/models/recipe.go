// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package models

import "time"

// Ingredient is a single kitchen inventory item.
type Ingredient struct {
	// Name is the canonical lowercase ingredient name.
	Name string `json:"name"`

	// Quantity is the amount on hand, in Unit.
	Quantity float64 `json:"quantity,omitempty"`

	// Unit is the quantity unit ("g", "ml", "pieces", ...).
	Unit string `json:"unit,omitempty"`

	// Category groups the ingredient (produce, protein, dairy, pantry, ...).
	Category string `json:"category,omitempty"`

	// ExpiresAt is the expiration date, zero if unknown or shelf-stable.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// RecipeIngredient is an ingredient requirement within a recipe.
type RecipeIngredient struct {
	// Name is the canonical lowercase ingredient name.
	Name string `json:"name"`

	// Quantity is the required amount, in Unit.
	Quantity float64 `json:"quantity,omitempty"`

	// Unit is the quantity unit.
	Unit string `json:"unit,omitempty"`

	// Optional marks garnish-grade ingredients. Scoring treats them like
	// any other requirement; the flag only feeds substitution suggestions.
	Optional bool `json:"optional,omitempty"`
}

// NutritionFacts carries per-serving nutrition estimates.
type NutritionFacts struct {
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
	Fiber    float64 `json:"fiber,omitempty"`
	Sodium   float64 `json:"sodium,omitempty"`
}

// Recipe is a cookable recipe with the metadata the scorer consumes.
type Recipe struct {
	// ID is the unique recipe identifier.
	ID string `json:"id"`

	// Title is the display name.
	Title string `json:"title"`

	// Description is a short free-text summary.
	Description string `json:"description,omitempty"`

	// Cuisine is the lowercase cuisine name (italian, thai, ...).
	Cuisine string `json:"cuisine,omitempty"`

	// Ingredients lists the required ingredients.
	Ingredients []RecipeIngredient `json:"ingredients"`

	// Instructions lists the preparation steps in order.
	Instructions []string `json:"instructions,omitempty"`

	// PrepMinutes is hands-on preparation time.
	PrepMinutes int `json:"prep_minutes"`

	// CookMinutes is active cooking time.
	CookMinutes int `json:"cook_minutes"`

	// Servings is the yield of the recipe as written.
	Servings int `json:"servings,omitempty"`

	// Difficulty classifies the demanded skill.
	Difficulty Difficulty `json:"difficulty"`

	// MealTypes lists the meal slots this recipe suits.
	MealTypes []MealType `json:"meal_types,omitempty"`

	// Tags carries free-form labels ("popular", "one-pot", "comfort-food").
	Tags []string `json:"tags,omitempty"`

	// Equipment lists required equipment by lowercase name.
	Equipment []string `json:"equipment,omitempty"`

	// Methods lists the cooking methods used (baking, grilling, ...).
	Methods []string `json:"methods,omitempty"`

	// Nutrition is the optional per-serving nutrition estimate.
	Nutrition *NutritionFacts `json:"nutrition,omitempty"`
}

// TotalMinutes returns prep plus cook time.
func (r *Recipe) TotalMinutes() int {
	return r.PrepMinutes + r.CookMinutes
}

// HasTag reports whether the recipe carries the given tag.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MealSlot identifies a position in a meal plan.
type MealSlot struct {
	// Date is the calendar day of the slot.
	Date time.Time `json:"date"`

	// Meal is the meal type of the slot.
	Meal MealType `json:"meal"`
}

// MealAssignment pairs a recipe with a plan slot.
type MealAssignment struct {
	Slot     MealSlot `json:"slot"`
	RecipeID string   `json:"recipe_id"`
	Servings int      `json:"servings,omitempty"`
}

// MealPlan is the user's current plan as supplied in the snapshot.
type MealPlan struct {
	// ID identifies the plan.
	ID string `json:"id,omitempty"`

	// StartDate is the first day covered by the plan.
	StartDate time.Time `json:"start_date,omitempty"`

	// Assignments lists the filled slots.
	Assignments []MealAssignment `json:"assignments,omitempty"`
}
