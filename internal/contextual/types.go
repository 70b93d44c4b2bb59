// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package contextual

import (
	"time"

	"github.com/ckersey/souschef/internal/models"
)

// TemporalContext is the calendar-derived slice of the environment.
type TemporalContext struct {
	TimeOfDay            models.TimeOfDay `json:"time_of_day"`
	DayOfWeek            time.Weekday     `json:"day_of_week"`
	Season               models.Season    `json:"season"`
	IsWeekend            bool             `json:"is_weekend"`
	IsHoliday            bool             `json:"is_holiday"`
	MinutesUntilNextMeal int              `json:"minutes_until_next_meal"`
}

// WeatherSignal is the optional external weather input. A nil signal is
// normal and everything downstream must tolerate it.
type WeatherSignal struct {
	Condition    string  `json:"condition,omitempty"`
	TemperatureC float64 `json:"temperature_c,omitempty"`
}

// LocationContext is the location-derived slice of the environment.
type LocationContext struct {
	Timezone        string         `json:"timezone,omitempty"`
	SeasonalProduce []string       `json:"seasonal_produce,omitempty"`
	Weather         *WeatherSignal `json:"weather,omitempty"`
}

// KitchenContext describes the physical cooking constraints.
type KitchenContext struct {
	Equipment        []string `json:"equipment,omitempty"`
	Size             string   `json:"size,omitempty"`
	StorageCapacity  string   `json:"storage_capacity,omitempty"`
	AvailableMinutes int      `json:"available_minutes"`
	EnergyLevel      string   `json:"energy_level"`
	NoiseRestricted  bool     `json:"noise_restricted"`
}

// SocialContext describes who is eating and under what constraints.
type SocialContext struct {
	CompanionCount  int      `json:"companion_count"`
	Occasion        string   `json:"occasion,omitempty"`
	DietaryOverlays []string `json:"dietary_overlays,omitempty"`
	BudgetBand      string   `json:"budget_band,omitempty"`
}

// Environment is the fully derived environmental context. Every field is
// populated even when the external signal is absent.
type Environment struct {
	Temporal TemporalContext `json:"temporal"`
	Location LocationContext `json:"location"`
	Kitchen  KitchenContext  `json:"kitchen"`
	Social   SocialContext   `json:"social"`
}

// Scoring is the derived multiplier set. Multipliers are small positive
// reals combined by weighted averaging, never multiplied, so one low axis
// cannot zero the overall score.
type Scoring struct {
	TimeMultiplier        float64 `json:"time_multiplier"`
	EnvironmentMultiplier float64 `json:"environment_multiplier"`
	SocialMultiplier      float64 `json:"social_multiplier"`
	OverallScore          float64 `json:"overall_score"`
}
