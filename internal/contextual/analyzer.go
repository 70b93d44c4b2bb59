// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package contextual derives the environmental context of a request from
// calendar arithmetic, the kitchen snapshot, and static reference tables.
// The analyzer is pure given a clock: the same snapshot and instant always
// produce the same environment and multipliers.
package contextual

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
)

// Clock supplies the current time; tests inject a fixed instant.
type Clock func() time.Time

// Analyzer derives environmental context and contextual scoring
// multipliers. Safe for concurrent use.
type Analyzer struct {
	logger zerolog.Logger
	clock  Clock
}

// New creates an Analyzer. A nil clock defaults to time.Now.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(logger zerolog.Logger, clock Clock) *Analyzer {
	if clock == nil {
		clock = time.Now
	}
	return &Analyzer{
		logger: logger.With().Str("component", "contextual").Logger(),
		clock:  clock,
	}
}

// Analyze derives the full environment for a snapshot. The weather signal
// may be nil; every field is still populated from defaults.
func (a *Analyzer) Analyze(snapshot *models.UserContextSnapshot, weather *WeatherSignal) Environment {
	now := a.clock()
	if loc := loadLocation(snapshot.Session.Timezone); loc != nil {
		now = now.In(loc)
	}

	temporal := deriveTemporal(now)
	env := Environment{
		Temporal: temporal,
		Location: deriveLocation(snapshot, temporal.Season, weather),
		Kitchen:  deriveKitchen(snapshot, temporal.TimeOfDay),
		Social:   deriveSocial(snapshot),
	}

	a.logger.Debug().
		Str("season", env.Temporal.Season.String()).
		Str("time_of_day", env.Temporal.TimeOfDay.String()).
		Bool("weekend", env.Temporal.IsWeekend).
		Msg("environment derived")

	return env
}

// loadLocation resolves a timezone name, returning nil on failure so the
// caller falls back to the server clock.
func loadLocation(name string) *time.Location {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return loc
}

// deriveTemporal is pure calendar arithmetic plus static lookups.
func deriveTemporal(now time.Time) TemporalContext {
	tod := models.TimeOfDayFromHour(now.Hour())
	weekday := now.Weekday()
	_, isHoliday := holidayCalendar[holiday{int(now.Month()), now.Day()}]

	return TemporalContext{
		TimeOfDay:            tod,
		DayOfWeek:            weekday,
		Season:               models.SeasonFromMonth(int(now.Month())),
		IsWeekend:            weekday == time.Saturday || weekday == time.Sunday,
		IsHoliday:            isHoliday,
		MinutesUntilNextMeal: minutesUntilNextMeal[tod],
	}
}

func deriveLocation(snapshot *models.UserContextSnapshot, season models.Season, weather *WeatherSignal) LocationContext {
	return LocationContext{
		Timezone:        snapshot.Session.Timezone,
		SeasonalProduce: seasonalProduce[season],
		Weather:         weather,
	}
}

// deriveKitchen defaults physical constraints from the snapshot plus
// simple inference rules.
func deriveKitchen(snapshot *models.UserContextSnapshot, tod models.TimeOfDay) KitchenContext {
	available := snapshot.AvailableMinutes
	if available == 0 {
		// No stated limit: assume a generous default that varies with the
		// meal window.
		switch tod {
		case models.TimeMorning:
			available = 30
		case models.TimeAfternoon:
			available = 45
		case models.TimeEvening:
			available = 60
		default:
			available = 20
		}
	}

	energy := "medium"
	switch tod {
	case models.TimeMorning:
		energy = "high"
	case models.TimeNight:
		energy = "low"
	}

	return KitchenContext{
		Equipment:        snapshot.Equipment,
		Size:             "standard",
		StorageCapacity:  "standard",
		AvailableMinutes: available,
		EnergyLevel:      energy,
		NoiseRestricted:  tod == models.TimeNight || tod == models.TimeMorning,
	}
}

func deriveSocial(snapshot *models.UserContextSnapshot) SocialContext {
	return SocialContext{
		CompanionCount:  0,
		Occasion:        "everyday",
		DietaryOverlays: snapshot.DietaryRestrictions,
		BudgetBand:      "moderate",
	}
}

// Score computes the contextual multiplier set for an environment. Each
// axis is computed independently in [0.5, 1.5]; the overall score is their
// weighted average scaled to [0,100]. Axes are averaged, never multiplied,
// so a single low axis cannot collapse the result.
func (a *Analyzer) Score(env *Environment) Scoring {
	s := Scoring{
		TimeMultiplier:        timeMultiplier(&env.Temporal, &env.Kitchen),
		EnvironmentMultiplier: environmentMultiplier(&env.Kitchen, &env.Location),
		SocialMultiplier:      socialMultiplier(&env.Social, &env.Temporal),
	}

	// Time pressure matters most, the physical kitchen second, company
	// least.
	combined := s.TimeMultiplier*0.4 + s.EnvironmentMultiplier*0.35 + s.SocialMultiplier*0.25
	s.OverallScore = clamp((combined-0.5)/1.0*100, 0, 100)
	return s
}

// timeMultiplier rewards relaxed windows and penalizes meal pressure.
func timeMultiplier(temporal *TemporalContext, kitchen *KitchenContext) float64 {
	m := 1.0
	if temporal.IsWeekend {
		m += 0.2
	}
	if temporal.IsHoliday {
		m += 0.2
	}
	if temporal.MinutesUntilNextMeal <= 45 {
		m -= 0.2
	}
	if kitchen.AvailableMinutes >= 60 {
		m += 0.1
	} else if kitchen.AvailableMinutes <= 20 {
		m -= 0.2
	}
	return clamp(m, 0.5, 1.5)
}

// environmentMultiplier reflects how cooperative the kitchen is.
func environmentMultiplier(kitchen *KitchenContext, location *LocationContext) float64 {
	m := 1.0
	switch kitchen.EnergyLevel {
	case "high":
		m += 0.2
	case "low":
		m -= 0.2
	}
	if kitchen.NoiseRestricted {
		m -= 0.1
	}
	if len(kitchen.Equipment) >= 4 {
		m += 0.1
	}
	if location.Weather != nil && location.Weather.Condition == "rain" {
		// Rainy days favor staying in and cooking.
		m += 0.1
	}
	return clamp(m, 0.5, 1.5)
}

// socialMultiplier reflects the stakes of the table.
func socialMultiplier(social *SocialContext, temporal *TemporalContext) float64 {
	m := 1.0
	if social.CompanionCount > 0 {
		m += 0.1
	}
	if social.Occasion != "everyday" && social.Occasion != "" {
		m += 0.2
	}
	if temporal.IsWeekend {
		m += 0.1
	}
	return clamp(m, 0.5, 1.5)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
