// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package models

// Intent enumerates the request intents the assistant understands.
// The zero value is IntentGeneralHelp, the safe fallback when nothing
// else matches.
type Intent int

const (
	// IntentGeneralHelp is the catch-all intent for unclassifiable queries.
	IntentGeneralHelp Intent = iota
	// IntentRecipeSearch looks up recipes by name, cuisine, or ingredient.
	IntentRecipeSearch
	// IntentRecipeRecommendation asks for ranked recipe suggestions.
	IntentRecipeRecommendation
	// IntentMealPlanning covers weekly planning and slot assignment.
	IntentMealPlanning
	// IntentIngredientManagement covers inventory and expiration questions.
	IntentIngredientManagement
	// IntentShoppingList covers shopping-list construction.
	IntentShoppingList
	// IntentNutritionInfo covers calorie and macro questions.
	IntentNutritionInfo
	// IntentCookingTips covers technique and how-to questions.
	IntentCookingTips
	// IntentSubstitutionHelp covers ingredient substitution questions.
	IntentSubstitutionHelp
	// IntentDietaryGuidance covers restriction and allergen questions.
	IntentDietaryGuidance
)

// AllIntents lists every intent in its fixed enumeration order. The order
// matters: intent classification breaks score ties toward the earlier entry.
var AllIntents = []Intent{
	IntentGeneralHelp,
	IntentRecipeSearch,
	IntentRecipeRecommendation,
	IntentMealPlanning,
	IntentIngredientManagement,
	IntentShoppingList,
	IntentNutritionInfo,
	IntentCookingTips,
	IntentSubstitutionHelp,
	IntentDietaryGuidance,
}

// String returns the wire name of the intent.
func (i Intent) String() string {
	switch i {
	case IntentRecipeSearch:
		return "recipe-search"
	case IntentRecipeRecommendation:
		return "recipe-recommendation"
	case IntentMealPlanning:
		return "meal-planning"
	case IntentIngredientManagement:
		return "ingredient-management"
	case IntentShoppingList:
		return "shopping-list"
	case IntentNutritionInfo:
		return "nutrition-info"
	case IntentCookingTips:
		return "cooking-tips"
	case IntentSubstitutionHelp:
		return "substitution-help"
	case IntentDietaryGuidance:
		return "dietary-guidance"
	case IntentGeneralHelp:
		return "general-help"
	default:
		return "general-help"
	}
}

// ParseIntent maps a wire name back to an Intent. Unknown names return
// IntentGeneralHelp and false.
func ParseIntent(s string) (Intent, bool) {
	for _, i := range AllIntents {
		if i.String() == s {
			return i, true
		}
	}
	return IntentGeneralHelp, false
}

// MarshalText implements encoding.TextMarshaler so intents serialize as
// their wire names in JSON.
func (i Intent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Intent) UnmarshalText(b []byte) error {
	parsed, _ := ParseIntent(string(b))
	*i = parsed
	return nil
}

// SkillLevel is the user's self-reported or assessed cooking skill.
type SkillLevel int

const (
	// SkillBeginner is the default skill level.
	SkillBeginner SkillLevel = iota
	// SkillIntermediate covers comfortable home cooks.
	SkillIntermediate
	// SkillAdvanced covers confident, technique-driven cooks.
	SkillAdvanced
)

// String returns the wire name of the skill level.
func (s SkillLevel) String() string {
	switch s {
	case SkillIntermediate:
		return "intermediate"
	case SkillAdvanced:
		return "advanced"
	default:
		return "beginner"
	}
}

// ParseSkillLevel maps a wire name to a SkillLevel, defaulting to beginner.
func ParseSkillLevel(s string) SkillLevel {
	switch s {
	case "intermediate":
		return SkillIntermediate
	case "advanced":
		return SkillAdvanced
	default:
		return SkillBeginner
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SkillLevel) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SkillLevel) UnmarshalText(b []byte) error {
	*s = ParseSkillLevel(string(b))
	return nil
}

// Difficulty classifies how demanding a recipe is.
type Difficulty int

const (
	// DifficultyEasy is suitable for beginners.
	DifficultyEasy Difficulty = iota
	// DifficultyMedium requires some comfort in the kitchen.
	DifficultyMedium
	// DifficultyHard requires confident technique.
	DifficultyHard
)

// String returns the wire name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "easy"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(b []byte) error {
	switch string(b) {
	case "medium":
		*d = DifficultyMedium
	case "hard":
		*d = DifficultyHard
	default:
		*d = DifficultyEasy
	}
	return nil
}

// SkillLevel converts a difficulty into the skill level it demands.
func (d Difficulty) SkillLevel() SkillLevel {
	switch d {
	case DifficultyMedium:
		return SkillIntermediate
	case DifficultyHard:
		return SkillAdvanced
	default:
		return SkillBeginner
	}
}

// TimeOfDay buckets the clock into meal-relevant segments.
type TimeOfDay int

const (
	// TimeMorning covers 05:00-10:59.
	TimeMorning TimeOfDay = iota
	// TimeAfternoon covers 11:00-16:59.
	TimeAfternoon
	// TimeEvening covers 17:00-21:59.
	TimeEvening
	// TimeNight covers 22:00-04:59.
	TimeNight
)

// String returns the wire name of the time-of-day bucket.
func (t TimeOfDay) String() string {
	switch t {
	case TimeAfternoon:
		return "afternoon"
	case TimeEvening:
		return "evening"
	case TimeNight:
		return "night"
	default:
		return "morning"
	}
}

// ParseTimeOfDay maps a wire name to a bucket, defaulting to afternoon.
func ParseTimeOfDay(s string) TimeOfDay {
	switch s {
	case "morning":
		return TimeMorning
	case "evening":
		return TimeEvening
	case "night":
		return TimeNight
	default:
		return TimeAfternoon
	}
}

// TimeOfDayFromHour buckets an hour of day (0-23).
func TimeOfDayFromHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 11:
		return TimeMorning
	case hour >= 11 && hour < 17:
		return TimeAfternoon
	case hour >= 17 && hour < 22:
		return TimeEvening
	default:
		return TimeNight
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	*t = ParseTimeOfDay(string(b))
	return nil
}

// Season is the meteorological season derived from the month.
type Season int

const (
	// SeasonSpring covers March-May.
	SeasonSpring Season = iota
	// SeasonSummer covers June-August.
	SeasonSummer
	// SeasonFall covers September-November.
	SeasonFall
	// SeasonWinter covers December-February.
	SeasonWinter
)

// String returns the wire name of the season.
func (s Season) String() string {
	switch s {
	case SeasonSummer:
		return "summer"
	case SeasonFall:
		return "fall"
	case SeasonWinter:
		return "winter"
	default:
		return "spring"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Season) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Season) UnmarshalText(b []byte) error {
	switch string(b) {
	case "summer":
		*s = SeasonSummer
	case "fall":
		*s = SeasonFall
	case "winter":
		*s = SeasonWinter
	default:
		*s = SeasonSpring
	}
	return nil
}

// SeasonFromMonth buckets a calendar month into its season using fixed
// three-month ranges.
func SeasonFromMonth(month int) Season {
	switch {
	case month >= 3 && month <= 5:
		return SeasonSpring
	case month >= 6 && month <= 8:
		return SeasonSummer
	case month >= 9 && month <= 11:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// ConfidenceLevel buckets a 0-100 confidence score for the caller.
type ConfidenceLevel int

const (
	// ConfidenceVeryLow is any score below 30.
	ConfidenceVeryLow ConfidenceLevel = iota
	// ConfidenceLow covers scores in [30, 50).
	ConfidenceLow
	// ConfidenceMedium covers scores in [50, 70).
	ConfidenceMedium
	// ConfidenceHigh covers scores in [70, 90).
	ConfidenceHigh
	// ConfidenceVeryHigh covers scores of 90 and above.
	ConfidenceVeryHigh
)

// String returns the wire name of the confidence level.
func (c ConfidenceLevel) String() string {
	switch c {
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	case ConfidenceVeryHigh:
		return "very-high"
	default:
		return "very-low"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c ConfidenceLevel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ConfidenceLevel) UnmarshalText(b []byte) error {
	switch string(b) {
	case "low":
		*c = ConfidenceLow
	case "medium":
		*c = ConfidenceMedium
	case "high":
		*c = ConfidenceHigh
	case "very-high":
		*c = ConfidenceVeryHigh
	default:
		*c = ConfidenceVeryLow
	}
	return nil
}

// BucketConfidence maps a 0-100 score into a confidence level. The
// boundaries are a pure step function: >=90 very-high, >=70 high,
// >=50 medium, >=30 low, otherwise very-low.
func BucketConfidence(score float64) ConfidenceLevel {
	switch {
	case score >= 90:
		return ConfidenceVeryHigh
	case score >= 70:
		return ConfidenceHigh
	case score >= 50:
		return ConfidenceMedium
	case score >= 30:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

// Priority is the urgency attached to a response.
type Priority int

const (
	// PriorityLow marks informational responses.
	PriorityLow Priority = iota
	// PriorityMedium is the default.
	PriorityMedium
	// PriorityHigh marks time-sensitive responses.
	PriorityHigh
	// PriorityUrgent marks responses that need immediate attention.
	PriorityUrgent
)

// String returns the wire name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "medium"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(b []byte) error {
	switch string(b) {
	case "low":
		*p = PriorityLow
	case "high":
		*p = PriorityHigh
	case "urgent":
		*p = PriorityUrgent
	default:
		*p = PriorityMedium
	}
	return nil
}

// MealType classifies a meal slot.
type MealType int

const (
	// MealBreakfast is the morning meal.
	MealBreakfast MealType = iota
	// MealLunch is the midday meal.
	MealLunch
	// MealDinner is the evening meal.
	MealDinner
	// MealSnack is anything between.
	MealSnack
)

// String returns the wire name of the meal type.
func (m MealType) String() string {
	switch m {
	case MealLunch:
		return "lunch"
	case MealDinner:
		return "dinner"
	case MealSnack:
		return "snack"
	default:
		return "breakfast"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m MealType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MealType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "lunch":
		*m = MealLunch
	case "dinner":
		*m = MealDinner
	case "snack":
		*m = MealSnack
	default:
		*m = MealBreakfast
	}
	return nil
}
