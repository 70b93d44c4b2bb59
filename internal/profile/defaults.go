// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package profile

import (
	"time"

	"github.com/ckersey/souschef/internal/models"
)

// Neutral scale midpoints used until enough history accumulates.
const (
	defaultIntensity  = 5.0
	defaultSpiceLevel = 3.0

	defaultCuisineScore      = 60.0
	defaultCuisineConfidence = 0.1

	defaultSkillConfidence = 0.2
	defaultAreaScore       = 50.0
)

// DefaultProfile builds the profile used when the user has fewer
// interactions than the learning threshold. Skill comes from the
// snapshot's self-declared level; everything else is a neutral baseline.
func DefaultProfile(userID string, snapshot models.UserContextSnapshot, now time.Time) *Profile {
	p := &Profile{
		UserID:     userID,
		Learned:    false,
		ComputedAt: now,
	}

	// Patterns stay empty until real history crosses the learning
	// threshold. Complexity is the one exception: it follows from the
	// snapshot's declared skill level, not from observed behavior.
	p.Patterns = CookingPatterns{
		PreferredTimeByDay: make(map[time.Weekday]models.TimeOfDay),
		MealTypesByTime:    make(map[models.TimeOfDay][]models.MealType),
		Complexity:         defaultComplexity(snapshot.SkillLevel),
	}

	p.Flavor = FlavorProfile{
		Intensity:  defaultIntensity,
		SpiceLevel: defaultSpiceLevel,
		Cuisines:   make(map[string]CuisineScore, len(snapshot.PreferredCuisines)),
	}
	for _, cuisine := range snapshot.PreferredCuisines {
		p.Flavor.Cuisines[cuisine] = CuisineScore{
			Score:       defaultCuisineScore,
			Confidence:  defaultCuisineConfidence,
			LastUpdated: now,
		}
	}

	areas := make(map[SkillArea]float64, len(AllSkillAreas))
	for _, area := range AllSkillAreas {
		areas[area] = defaultAreaScore
	}
	equipment := make(map[string]float64, len(snapshot.Equipment))
	for _, item := range snapshot.Equipment {
		equipment[item] = defaultAreaScore
	}
	p.Skill = SkillAssessment{
		Overall:              snapshot.SkillLevel,
		Confidence:           defaultSkillConfidence,
		AreaScores:           areas,
		EquipmentFamiliarity: equipment,
	}

	return p
}

func defaultComplexity(level models.SkillLevel) ComplexityPreference {
	switch level {
	case models.SkillAdvanced:
		return ComplexityPreference{
			Weekday:   models.DifficultyMedium,
			Weekend:   models.DifficultyHard,
			WhenTired: models.DifficultyEasy,
		}
	case models.SkillIntermediate:
		return ComplexityPreference{
			Weekday:   models.DifficultyMedium,
			Weekend:   models.DifficultyMedium,
			WhenTired: models.DifficultyEasy,
		}
	default:
		return ComplexityPreference{
			Weekday:   models.DifficultyEasy,
			Weekend:   models.DifficultyEasy,
			WhenTired: models.DifficultyEasy,
		}
	}
}
