// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package contextual

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func testSnapshot() *models.UserContextSnapshot {
	return &models.UserContextSnapshot{
		UserID: "user-1",
		Session: models.SessionMetadata{
			Timestamp: time.Date(2026, 7, 11, 18, 0, 0, 0, time.UTC),
			SessionID: "s1",
			Source:    "test",
		},
	}
}

func TestAnalyzeSummerSaturdayEvening(t *testing.T) {
	// 2026-07-11 is a Saturday.
	now := time.Date(2026, 7, 11, 18, 0, 0, 0, time.UTC)
	a := New(zerolog.Nop(), fixedClock(now))

	env := a.Analyze(testSnapshot(), nil)

	if env.Temporal.Season != models.SeasonSummer {
		t.Errorf("season = %v, want summer", env.Temporal.Season)
	}
	if env.Temporal.TimeOfDay != models.TimeEvening {
		t.Errorf("time of day = %v, want evening", env.Temporal.TimeOfDay)
	}
	if !env.Temporal.IsWeekend {
		t.Error("saturday should be weekend")
	}
	if env.Temporal.IsHoliday {
		t.Error("july 11 is not in the holiday calendar")
	}
	if env.Temporal.MinutesUntilNextMeal != 45 {
		t.Errorf("minutes until next meal = %d, want 45", env.Temporal.MinutesUntilNextMeal)
	}
	if len(env.Location.SeasonalProduce) == 0 {
		t.Error("seasonal produce list empty")
	}
}

func TestAnalyzeHoliday(t *testing.T) {
	now := time.Date(2026, 12, 25, 12, 0, 0, 0, time.UTC)
	a := New(zerolog.Nop(), fixedClock(now))

	env := a.Analyze(testSnapshot(), nil)

	if !env.Temporal.IsHoliday {
		t.Error("december 25 should be a holiday")
	}
	if env.Temporal.Season != models.SeasonWinter {
		t.Errorf("season = %v, want winter", env.Temporal.Season)
	}
}

func TestAnalyzeToleratesAbsentWeather(t *testing.T) {
	a := New(zerolog.Nop(), fixedClock(time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)))

	env := a.Analyze(testSnapshot(), nil)

	// Every section must still be populated with defaults.
	if env.Kitchen.AvailableMinutes == 0 {
		t.Error("kitchen available minutes not defaulted")
	}
	if env.Kitchen.EnergyLevel == "" {
		t.Error("kitchen energy level not defaulted")
	}
	if env.Social.Occasion == "" {
		t.Error("social occasion not defaulted")
	}
	if env.Location.Weather != nil {
		t.Error("weather should stay nil when not supplied")
	}
}

func TestKitchenInferenceRules(t *testing.T) {
	morning := time.Date(2026, 4, 1, 7, 0, 0, 0, time.UTC)
	night := time.Date(2026, 4, 1, 23, 0, 0, 0, time.UTC)

	envMorning := New(zerolog.Nop(), fixedClock(morning)).Analyze(testSnapshot(), nil)
	if envMorning.Kitchen.EnergyLevel != "high" {
		t.Errorf("morning energy = %q, want high", envMorning.Kitchen.EnergyLevel)
	}
	if !envMorning.Kitchen.NoiseRestricted {
		t.Error("morning should be noise restricted")
	}

	envNight := New(zerolog.Nop(), fixedClock(night)).Analyze(testSnapshot(), nil)
	if envNight.Kitchen.EnergyLevel != "low" {
		t.Errorf("night energy = %q, want low", envNight.Kitchen.EnergyLevel)
	}
}

func TestSnapshotAvailableMinutesWins(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.AvailableMinutes = 25

	env := New(zerolog.Nop(), fixedClock(time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC))).Analyze(snapshot, nil)
	if env.Kitchen.AvailableMinutes != 25 {
		t.Errorf("available minutes = %d, want snapshot value 25", env.Kitchen.AvailableMinutes)
	}
}

func TestScoreCombinesByAveragingNotMultiplying(t *testing.T) {
	a := New(zerolog.Nop(), fixedClock(time.Date(2026, 7, 8, 23, 30, 0, 0, time.UTC)))
	env := a.Analyze(testSnapshot(), nil)

	s := a.Score(&env)

	// Night drags the environment axis to its floor, but averaging keeps
	// the overall score well above zero.
	if s.EnvironmentMultiplier >= 1.0 {
		t.Errorf("environment multiplier = %v, want < 1.0 at night", s.EnvironmentMultiplier)
	}
	if s.OverallScore <= 0 {
		t.Errorf("overall score = %v, want > 0 despite a low axis", s.OverallScore)
	}

	for name, m := range map[string]float64{
		"time":        s.TimeMultiplier,
		"environment": s.EnvironmentMultiplier,
		"social":      s.SocialMultiplier,
	} {
		if m < 0.5 || m > 1.5 {
			t.Errorf("%s multiplier = %v, want within [0.5, 1.5]", name, m)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	a := New(zerolog.Nop(), fixedClock(time.Date(2026, 10, 3, 17, 30, 0, 0, time.UTC)))
	env := a.Analyze(testSnapshot(), nil)

	if a.Score(&env) != a.Score(&env) {
		t.Error("repeated scoring differs")
	}
}

func TestWeatherSignalFeedsEnvironmentAxis(t *testing.T) {
	clock := fixedClock(time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC))
	a := New(zerolog.Nop(), clock)

	dry := a.Analyze(testSnapshot(), nil)
	wet := a.Analyze(testSnapshot(), &WeatherSignal{Condition: "rain", TemperatureC: 8})

	if a.Score(&wet).EnvironmentMultiplier <= a.Score(&dry).EnvironmentMultiplier {
		t.Error("rain should raise the environment multiplier")
	}
}

func TestMealTypesForTable(t *testing.T) {
	if got := MealTypesFor(models.TimeMorning); len(got) != 1 || got[0] != models.MealBreakfast {
		t.Errorf("MealTypesFor(morning) = %v, want [breakfast]", got)
	}
	if got := MealTypesFor(models.TimeEvening); len(got) != 1 || got[0] != models.MealDinner {
		t.Errorf("MealTypesFor(evening) = %v, want [dinner]", got)
	}
}
