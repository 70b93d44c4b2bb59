// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package interpreter

import "github.com/ckersey/souschef/internal/models"

// TimeConstraint captures extracted time limits in minutes. Zero means
// unconstrained on that axis.
type TimeConstraint struct {
	MaxPrepMinutes  int `json:"max_prep_minutes,omitempty"`
	MaxCookMinutes  int `json:"max_cook_minutes,omitempty"`
	MaxTotalMinutes int `json:"max_total_minutes,omitempty"`
}

// IsZero reports whether no time constraint was extracted.
func (t TimeConstraint) IsZero() bool {
	return t.MaxPrepMinutes == 0 && t.MaxCookMinutes == 0 && t.MaxTotalMinutes == 0
}

// BudgetConstraint captures extracted budget signals.
type BudgetConstraint struct {
	// Economical is set by qualitative keywords (cheap, budget, affordable).
	Economical bool `json:"economical,omitempty"`

	// MaxAmount is an explicit dollar cap ("$20"), 0 if none.
	MaxAmount float64 `json:"max_amount,omitempty"`
}

// IsZero reports whether no budget constraint was extracted.
func (b BudgetConstraint) IsZero() bool {
	return !b.Economical && b.MaxAmount == 0
}

// Entities holds everything extracted from the query text. Absent matches
// leave the field at its zero value; extraction never fails.
type Entities struct {
	Ingredients         []string           `json:"ingredients,omitempty"`
	Cuisines            []string           `json:"cuisines,omitempty"`
	MealTypes           []models.MealType  `json:"meal_types,omitempty"`
	DietaryRestrictions []string           `json:"dietary_restrictions,omitempty"`
	TimeConstraint      TimeConstraint     `json:"time_constraint,omitempty"`
	BudgetConstraint    BudgetConstraint   `json:"budget_constraint,omitempty"`
	Servings            int                `json:"servings,omitempty"`
	Difficulty          *models.Difficulty `json:"difficulty,omitempty"`
	Equipment           []string           `json:"equipment,omitempty"`
	CookingMethods      []string           `json:"cooking_methods,omitempty"`
}

// Sentiment is the detected emotional tone of the query.
type Sentiment int

const (
	// SentimentNeutral is the default tone.
	SentimentNeutral Sentiment = iota
	// SentimentPositive marks an upbeat query.
	SentimentPositive
	// SentimentNegative marks a frustrated or tired query.
	SentimentNegative
)

// String returns the wire name of the sentiment.
func (s Sentiment) String() string {
	switch s {
	case SentimentPositive:
		return "positive"
	case SentimentNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Level is a coarse low/medium/high scale used for energy and urgency.
type Level int

const (
	// LevelLow is the bottom of the scale.
	LevelLow Level = iota
	// LevelMedium is the default.
	LevelMedium
	// LevelHigh is the top of the scale.
	LevelHigh
)

// String returns the wire name of the level.
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelHigh:
		return "high"
	default:
		return "medium"
	}
}

// Mood is the extracted emotional state of the query.
type Mood struct {
	Sentiment   Sentiment `json:"sentiment"`
	Energy      Level     `json:"energy"`
	Urgency     Level     `json:"urgency"`
	Adventurous bool      `json:"adventurous,omitempty"`
}

// defaultMood returns the neutral mood used when nothing matches.
func defaultMood() Mood {
	return Mood{Sentiment: SentimentNeutral, Energy: LevelMedium, Urgency: LevelLow}
}

// SituationalContext is the situational read of the query and session.
type SituationalContext struct {
	TimeOfDay     models.TimeOfDay `json:"time_of_day"`
	Season        models.Season    `json:"season"`
	SocialSetting string           `json:"social_setting,omitempty"`
	Occasion      string           `json:"occasion,omitempty"`
}

// Analysis is the complete interpretation of one query. It is derived
// fresh per request and never persisted.
type Analysis struct {
	// Intent is the classified intent; general-help when nothing matches.
	Intent models.Intent `json:"intent"`

	// Confidence is the classification confidence in [0,1], floored at
	// 0.1 so downstream weighting never divides by zero.
	Confidence float64 `json:"confidence"`

	// Overridden reports whether the caller forced the intent.
	Overridden bool `json:"overridden,omitempty"`

	// Entities are the structured constraints extracted from the text.
	Entities Entities `json:"entities"`

	// Mood is the detected emotional state.
	Mood Mood `json:"mood"`

	// Situation is the situational context.
	Situation SituationalContext `json:"situation"`
}
