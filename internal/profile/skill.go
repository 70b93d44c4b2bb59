// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package profile

import (
	"strings"

	"github.com/ckersey/souschef/internal/models"
)

// areaKeywords maps query keywords to the skill area they exercise.
// Scanned in order so more specific phrases can shadow general ones.
var areaKeywords = []struct {
	keyword string
	area    SkillArea
}{
	{"bake", AreaBaking},
	{"baking", AreaBaking},
	{"pastry", AreaBaking},
	{"knife", AreaKnifework},
	{"chop", AreaKnifework},
	{"dice", AreaKnifework},
	{"julienne", AreaKnifework},
	{"sear", AreaHeatControl},
	{"grill", AreaHeatControl},
	{"fry", AreaHeatControl},
	{"caramelize", AreaHeatControl},
	{"season", AreaSeasoning},
	{"spice", AreaSeasoning},
	{"marinade", AreaSeasoning},
	{"plate", AreaPlating},
	{"presentation", AreaPlating},
	{"garnish", AreaPlating},
	{"substitute", AreaImprovisation},
	{"improvise", AreaImprovisation},
	{"meal prep", AreaTiming},
	{"timing", AreaTiming},
}

const (
	areaSuccessStep = 4.0
	areaFailureStep = 6.0

	equipmentStep = 5.0

	// Thresholds for adjusting the assessed level from cook outcomes.
	promotionRatio  = 0.7
	demotionRatio   = 0.5
	minCooksToJudge = 3
)

// computeSkill derives the skill block. The snapshot's declared level is
// the starting point; cook outcomes by difficulty move it.
func computeSkill(history []models.InteractionRecord, snapshot models.UserContextSnapshot) SkillAssessment {
	assessment := SkillAssessment{
		Overall:              snapshot.SkillLevel,
		AreaScores:           make(map[SkillArea]float64, len(AllSkillAreas)),
		EquipmentFamiliarity: make(map[string]float64, len(snapshot.Equipment)),
	}
	for _, area := range AllSkillAreas {
		assessment.AreaScores[area] = defaultAreaScore
	}
	for _, item := range snapshot.Equipment {
		assessment.EquipmentFamiliarity[item] = defaultAreaScore
	}

	byDifficulty := make(map[models.Difficulty]*outcomeTally, 3)
	totalCooked := 0

	for i := range history {
		rec := &history[i]
		if rec.Feedback == nil || !rec.Feedback.Cooked {
			continue
		}
		totalCooked++
		t := byDifficulty[rec.Feedback.Difficulty]
		if t == nil {
			t = &outcomeTally{}
			byDifficulty[rec.Feedback.Difficulty] = t
		}
		t.cooked++
		if rec.Feedback.Succeeded {
			t.succeeded++
		}

		query := strings.ToLower(rec.Query)
		for _, mapping := range areaKeywords {
			if !strings.Contains(query, mapping.keyword) {
				continue
			}
			score := assessment.AreaScores[mapping.area]
			if rec.Feedback.Succeeded {
				score += areaSuccessStep
			} else {
				score -= areaFailureStep
			}
			assessment.AreaScores[mapping.area] = clampScore(score)
		}
		if rec.Feedback.Succeeded {
			assessment.AreaScores[AreaTechnique] = clampScore(assessment.AreaScores[AreaTechnique] + areaSuccessStep/2)
		}
		for _, item := range snapshot.Equipment {
			if strings.Contains(query, strings.ToLower(item)) && rec.Feedback.Succeeded {
				assessment.EquipmentFamiliarity[item] = clampScore(assessment.EquipmentFamiliarity[item] + equipmentStep)
			}
		}
	}

	assessment.Overall = assessLevel(snapshot.SkillLevel, byDifficulty[models.DifficultyEasy], byDifficulty[models.DifficultyMedium], byDifficulty[models.DifficultyHard])
	assessment.Confidence = assessConfidence(totalCooked)
	assessment.Trajectory = buildTrajectory(history, assessment.AreaScores)
	return assessment
}

type outcomeTally struct{ succeeded, cooked int }

func assessLevel(declared models.SkillLevel, easy, medium, hard *outcomeTally) models.SkillLevel {
	level := declared
	if ratioAtLeast(hard, promotionRatio) {
		level = models.SkillAdvanced
	} else if ratioAtLeast(medium, promotionRatio) && level < models.SkillIntermediate {
		level = models.SkillIntermediate
	}
	if easy != nil && easy.cooked >= minCooksToJudge {
		if float64(easy.succeeded)/float64(easy.cooked) < demotionRatio {
			level = models.SkillBeginner
		}
	}
	return level
}

func ratioAtLeast(t *outcomeTally, ratio float64) bool {
	if t == nil || t.cooked < minCooksToJudge {
		return false
	}
	return float64(t.succeeded)/float64(t.cooked) >= ratio
}

// assessConfidence saturates after twenty cooked outcomes but never drops
// below the default used for fresh users.
func assessConfidence(cooked int) float64 {
	c := float64(cooked) / 20
	if c > 1 {
		c = 1
	}
	if c < defaultSkillConfidence {
		c = defaultSkillConfidence
	}
	return c
}

// buildTrajectory compares success rates in the newer and older halves of
// the window. History arrives most-recent-first.
func buildTrajectory(history []models.InteractionRecord, areas map[SkillArea]float64) Trajectory {
	var traj Trajectory

	newer, older := splitSuccessRates(history)
	traj.RecentImprovement = newer > older

	for _, area := range AllSkillAreas {
		switch {
		case areas[area] < defaultAreaScore:
			traj.ChallengeAreas = append(traj.ChallengeAreas, string(area))
		case areas[area] == defaultAreaScore:
			if len(traj.SuggestedSkills) < 2 {
				traj.SuggestedSkills = append(traj.SuggestedSkills, string(area))
			}
		}
	}
	return traj
}

func splitSuccessRates(history []models.InteractionRecord) (newer, older float64) {
	mid := len(history) / 2
	newer = successRate(history[:mid])
	older = successRate(history[mid:])
	return newer, older
}

func successRate(records []models.InteractionRecord) float64 {
	cooked, succeeded := 0, 0
	for i := range records {
		fb := records[i].Feedback
		if fb == nil || !fb.Cooked {
			continue
		}
		cooked++
		if fb.Succeeded {
			succeeded++
		}
	}
	if cooked == 0 {
		return 0
	}
	return float64(succeeded) / float64(cooked)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
