// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package models

import "time"

// SessionMetadata carries per-session request context.
type SessionMetadata struct {
	// Timestamp is when the caller submitted the request.
	Timestamp time.Time `json:"timestamp" validate:"required"`

	// Source names the originating surface (web, mobile, cli).
	Source string `json:"source" validate:"required"`

	// SessionID groups requests within one conversation.
	SessionID string `json:"session_id" validate:"required"`

	// TimeOfDay is the caller's local time bucket. Parsed leniently;
	// defaults to afternoon when absent.
	TimeOfDay TimeOfDay `json:"time_of_day,omitempty"`

	// Timezone is the caller's IANA timezone name.
	Timezone string `json:"timezone,omitempty"`

	// Device names the client device class.
	Device string `json:"device,omitempty"`
}

// UserContextSnapshot is the per-request snapshot of the user's kitchen
// state. The core never mutates it.
type UserContextSnapshot struct {
	// UserID identifies the user for personalization and caching.
	UserID string `json:"user_id" validate:"required"`

	// Ingredients is the available inventory.
	Ingredients []Ingredient `json:"ingredients,omitempty"`

	// Recipes is the user's saved recipe collection.
	Recipes []Recipe `json:"recipes,omitempty"`

	// MealPlan is the current plan, if any.
	MealPlan *MealPlan `json:"meal_plan,omitempty"`

	// DietaryRestrictions lists active restrictions by lowercase name
	// (vegetarian, vegan, gluten-free, dairy-free, nut-free, ...).
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`

	// Allergens lists declared allergens by lowercase name.
	Allergens []string `json:"allergens,omitempty"`

	// PreferredCuisines lists the user's stated cuisine preferences.
	PreferredCuisines []string `json:"preferred_cuisines,omitempty"`

	// SkillLevel is the user's self-reported cooking skill.
	SkillLevel SkillLevel `json:"skill_level,omitempty"`

	// Equipment lists available kitchen equipment by lowercase name.
	Equipment []string `json:"equipment,omitempty"`

	// AvailableMinutes is how long the user has to cook, 0 if unknown.
	AvailableMinutes int `json:"available_minutes,omitempty"`

	// Session is the session metadata for this request.
	Session SessionMetadata `json:"session" validate:"required"`
}

// HasIngredient reports whether the snapshot inventory contains the named
// ingredient (exact lowercase match).
func (s *UserContextSnapshot) HasIngredient(name string) bool {
	for i := range s.Ingredients {
		if s.Ingredients[i].Name == name {
			return true
		}
	}
	return false
}

// Request is an immutable assistant request. Construct it once and do not
// modify it afterwards; the pipeline stages all read from the same value.
type Request struct {
	// ID is the unique request identifier.
	ID string `json:"id" validate:"required"`

	// Query is the raw free-text user query.
	Query string `json:"query" validate:"required"`

	// IntentOverride optionally forces the detected intent. Empty means
	// detect from the query text.
	IntentOverride string `json:"intent,omitempty" validate:"omitempty,intent"`

	// Context is the kitchen-state snapshot.
	Context UserContextSnapshot `json:"context" validate:"required"`

	// Metadata is the session metadata, mirrored from Context.Session for
	// callers that submit it at the top level.
	Metadata SessionMetadata `json:"metadata" validate:"required"`
}
