// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package models

import "time"

// InteractionFeedback is the optional user feedback attached to a past
// interaction.
type InteractionFeedback struct {
	// Helpful marks an explicit thumbs-up.
	Helpful bool `json:"helpful,omitempty"`

	// Rating is a 1-5 star rating, 0 if unrated.
	Rating int `json:"rating,omitempty"`

	// Cooked reports whether the user actually cooked a recommendation.
	Cooked bool `json:"cooked,omitempty"`

	// Succeeded reports whether the cook went well. Only meaningful when
	// Cooked is true.
	Succeeded bool `json:"succeeded,omitempty"`

	// RecipeID is the recipe the feedback concerns, if any.
	RecipeID string `json:"recipe_id,omitempty"`

	// Cuisine is the cuisine of that recipe, denormalized for history
	// aggregation without a catalog lookup.
	Cuisine string `json:"cuisine,omitempty"`

	// Difficulty is the difficulty of that recipe.
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// InteractionRecord is one stored request/response pair plus optional
// feedback. The history reader returns these most-recent-first.
type InteractionRecord struct {
	// ID is the unique record identifier.
	ID string `json:"id"`

	// UserID is the interacting user.
	UserID string `json:"user_id"`

	// Query is the raw query text of the interaction.
	Query string `json:"query"`

	// Intent is the resolved intent of the interaction.
	Intent Intent `json:"intent"`

	// TimeOfDay is the session time bucket at submission.
	TimeOfDay TimeOfDay `json:"time_of_day"`

	// MealType is the inferred meal the interaction concerned.
	MealType MealType `json:"meal_type"`

	// ResponseID is the response returned for this interaction.
	ResponseID string `json:"response_id"`

	// TopRecipeID is the highest-ranked recipe returned, if any.
	TopRecipeID string `json:"top_recipe_id,omitempty"`

	// Feedback is the optional user feedback.
	Feedback *InteractionFeedback `json:"feedback,omitempty"`

	// Timestamp is when the interaction occurred.
	Timestamp time.Time `json:"timestamp"`
}

// FeedbackOnly reports whether the record was written by the feedback
// endpoint rather than a query. Such records carry outcome signal in
// Feedback but no query, intent, or session timing, so time-based
// pattern aggregation must ignore them.
func (r *InteractionRecord) FeedbackOnly() bool {
	return r.Query == "" && r.Feedback != nil
}

// Positive reports whether the interaction carries a positive signal:
// marked helpful or rated 4 stars and above.
func (r *InteractionRecord) Positive() bool {
	if r.Feedback == nil {
		return false
	}
	return r.Feedback.Helpful || r.Feedback.Rating >= 4
}
