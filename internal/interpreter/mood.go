// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package interpreter

import (
	"strings"

	"github.com/ckersey/souschef/internal/models"
)

// extractMood scans the mood keyword table (later matches overwrite
// earlier ones per axis), applies time-of-day energy defaults for axes no
// keyword touched, then raises urgency to high if any speed keyword
// appears.
func extractMood(normalized string, tod models.TimeOfDay) Mood {
	mood := defaultMood()
	energySet := false

	for _, entry := range moodKeywords {
		if !strings.Contains(normalized, entry.keyword) {
			continue
		}
		if entry.effect.sentiment != nil {
			mood.Sentiment = *entry.effect.sentiment
		}
		if entry.effect.energy != nil {
			mood.Energy = *entry.effect.energy
			energySet = true
		}
		if entry.effect.urgency != nil {
			mood.Urgency = *entry.effect.urgency
		}
		if entry.effect.adventurous {
			mood.Adventurous = true
		}
	}

	if !energySet {
		mood.Energy = defaultEnergy(tod)
	}

	// Speed keywords force high urgency regardless of the mood table.
	for _, kw := range speedKeywords {
		if strings.Contains(normalized, kw) {
			mood.Urgency = LevelHigh
			break
		}
	}

	return mood
}

// defaultEnergy is the time-of-day energy default applied when no mood
// keyword set the axis.
func defaultEnergy(tod models.TimeOfDay) Level {
	switch tod {
	case models.TimeMorning:
		return LevelHigh
	case models.TimeNight:
		return LevelLow
	default:
		return LevelMedium
	}
}

// extractSituation reads the situational context from the query text and
// session metadata.
func extractSituation(normalized string, meta *models.SessionMetadata) SituationalContext {
	situation := SituationalContext{
		TimeOfDay: meta.TimeOfDay,
		Season:    models.SeasonFromMonth(int(meta.Timestamp.Month())),
	}

	for _, m := range socialKeywords {
		if strings.Contains(normalized, m.keyword) {
			situation.SocialSetting = m.value
			break
		}
	}
	if situation.SocialSetting == "" {
		situation.SocialSetting = "solo"
	}

	for _, m := range occasionKeywords {
		if strings.Contains(normalized, m.keyword) {
			situation.Occasion = m.value
			break
		}
	}
	if situation.Occasion == "" {
		situation.Occasion = "everyday"
	}

	return situation
}
