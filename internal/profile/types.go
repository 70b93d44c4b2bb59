// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package profile

import (
	"time"

	"github.com/ckersey/souschef/internal/models"
)

// ComplexityPreference buckets the user's appetite for involved cooking
// by situation.
type ComplexityPreference struct {
	Weekday   models.Difficulty `json:"weekday"`
	Weekend   models.Difficulty `json:"weekend"`
	WhenTired models.Difficulty `json:"when_tired"`
}

// CookingPatterns aggregates when and how often the user cooks.
type CookingPatterns struct {
	// PreferredTimeByDay is the most frequently observed session time
	// bucket per weekday.
	PreferredTimeByDay map[time.Weekday]models.TimeOfDay `json:"preferred_time_by_day,omitempty"`

	// MealTypesByTime is the observed meal types per time bucket, from
	// interactions that got a helpful response.
	MealTypesByTime map[models.TimeOfDay][]models.MealType `json:"meal_types_by_time,omitempty"`

	// WeekdayFrequency is average cooking sessions per weekday.
	WeekdayFrequency float64 `json:"weekday_frequency"`

	// WeekendFrequency is average cooking sessions per weekend day.
	WeekendFrequency float64 `json:"weekend_frequency"`

	// Complexity is the situational complexity preference.
	Complexity ComplexityPreference `json:"complexity"`
}

// CuisineScore is the learned preference for one cuisine.
type CuisineScore struct {
	// Score is the preference strength in [0,100].
	Score float64 `json:"score"`

	// Confidence grows with observation count, in [0,1].
	Confidence float64 `json:"confidence"`

	// LastUpdated is the timestamp of the newest contributing interaction.
	LastUpdated time.Time `json:"last_updated"`
}

// FlavorProfile aggregates taste preferences from positively rated
// interactions only.
type FlavorProfile struct {
	// Intensity is the preferred flavor intensity on a 0-10 scale.
	Intensity float64 `json:"intensity"`

	// SpiceLevel is the preferred heat on a 0-10 scale.
	SpiceLevel float64 `json:"spice_level"`

	// TexturePreferences scores texture keywords on a 0-10 scale.
	TexturePreferences map[string]float64 `json:"texture_preferences,omitempty"`

	// MethodAffinity scores cooking methods on a 0-10 scale.
	MethodAffinity map[string]float64 `json:"method_affinity,omitempty"`

	// IngredientAffinity scores ingredients on a 0-10 scale.
	IngredientAffinity map[string]float64 `json:"ingredient_affinity,omitempty"`

	// Cuisines is the per-cuisine preference ledger.
	Cuisines map[string]CuisineScore `json:"cuisines,omitempty"`
}

// SkillArea names one assessed dimension of cooking skill.
type SkillArea string

// The fixed set of assessed skill areas.
const (
	AreaTechnique     SkillArea = "technique"
	AreaKnifework     SkillArea = "knifework"
	AreaTiming        SkillArea = "timing"
	AreaSeasoning     SkillArea = "seasoning"
	AreaHeatControl   SkillArea = "heat-control"
	AreaPlating       SkillArea = "plating"
	AreaBaking        SkillArea = "baking"
	AreaImprovisation SkillArea = "improvisation"
)

// AllSkillAreas lists every assessed area in fixed order.
var AllSkillAreas = []SkillArea{
	AreaTechnique, AreaKnifework, AreaTiming, AreaSeasoning,
	AreaHeatControl, AreaPlating, AreaBaking, AreaImprovisation,
}

// Trajectory describes where the user's skill is heading.
type Trajectory struct {
	RecentImprovement bool     `json:"recent_improvement"`
	SuggestedSkills   []string `json:"suggested_skills,omitempty"`
	ChallengeAreas    []string `json:"challenge_areas,omitempty"`
}

// SkillAssessment is the learned skill picture.
type SkillAssessment struct {
	// Overall is the assessed skill level.
	Overall models.SkillLevel `json:"overall"`

	// Confidence in the assessment, in [0,1].
	Confidence float64 `json:"confidence"`

	// AreaScores scores each skill area in [0,100].
	AreaScores map[SkillArea]float64 `json:"area_scores,omitempty"`

	// Trajectory is the learning direction.
	Trajectory Trajectory `json:"trajectory"`

	// EquipmentFamiliarity scores equipment use in [0,100].
	EquipmentFamiliarity map[string]float64 `json:"equipment_familiarity,omitempty"`
}

// Profile is the complete personalization profile. It is built as one
// unit: a caller never sees a partially computed profile.
type Profile struct {
	UserID   string          `json:"user_id"`
	Patterns CookingPatterns `json:"patterns"`
	Flavor   FlavorProfile   `json:"flavor"`
	Skill    SkillAssessment `json:"skill"`

	// Learned is false for the default profile returned when history is
	// insufficient; the scorer treats defaults as weak signals.
	Learned bool `json:"learned"`

	// ComputedAt is when the profile was built.
	ComputedAt time.Time `json:"computed_at"`
}
