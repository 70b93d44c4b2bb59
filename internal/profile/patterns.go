// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package profile

import (
	"sort"
	"time"

	"github.com/ckersey/souschef/internal/interpreter"
	"github.com/ckersey/souschef/internal/models"
)

// computePatterns derives the cooking pattern block from interaction
// history. The history window is bounded by the builder, so every pass
// here is over at most a few hundred records.
func computePatterns(history []models.InteractionRecord, snapshot models.UserContextSnapshot) CookingPatterns {
	patterns := CookingPatterns{
		PreferredTimeByDay: preferredTimesByDay(history),
		MealTypesByTime:    mealTypesByTime(history),
		Complexity:         complexityPreference(history, snapshot),
	}
	patterns.WeekdayFrequency, patterns.WeekendFrequency = cookingFrequency(history)
	return patterns
}

// preferredTimesByDay picks the most frequent session time bucket per
// weekday. Ties resolve to the earlier bucket in the day.
func preferredTimesByDay(history []models.InteractionRecord) map[time.Weekday]models.TimeOfDay {
	counts := make(map[time.Weekday]map[models.TimeOfDay]int)
	for i := range history {
		rec := &history[i]
		if rec.FeedbackOnly() {
			continue
		}
		day := rec.Timestamp.Weekday()
		if counts[day] == nil {
			counts[day] = make(map[models.TimeOfDay]int)
		}
		counts[day][rec.TimeOfDay]++
	}

	prefs := make(map[time.Weekday]models.TimeOfDay, len(counts))
	order := []models.TimeOfDay{models.TimeMorning, models.TimeAfternoon, models.TimeEvening, models.TimeNight}
	for day, byTime := range counts {
		best := order[0]
		bestCount := -1
		for _, tod := range order {
			if byTime[tod] > bestCount {
				best = tod
				bestCount = byTime[tod]
			}
		}
		prefs[day] = best
	}
	return prefs
}

// mealTypesByTime collects the meal types seen per time bucket from
// positively rated interactions, ordered by frequency.
func mealTypesByTime(history []models.InteractionRecord) map[models.TimeOfDay][]models.MealType {
	counts := make(map[models.TimeOfDay]map[models.MealType]int)
	for i := range history {
		rec := &history[i]
		if rec.FeedbackOnly() || !rec.Positive() {
			continue
		}
		if counts[rec.TimeOfDay] == nil {
			counts[rec.TimeOfDay] = make(map[models.MealType]int)
		}
		counts[rec.TimeOfDay][rec.MealType]++
	}

	result := make(map[models.TimeOfDay][]models.MealType, len(counts))
	for tod, byMeal := range counts {
		meals := make([]models.MealType, 0, len(byMeal))
		for meal := range byMeal {
			meals = append(meals, meal)
		}
		sort.Slice(meals, func(i, j int) bool {
			if byMeal[meals[i]] != byMeal[meals[j]] {
				return byMeal[meals[i]] > byMeal[meals[j]]
			}
			return meals[i] < meals[j]
		})
		result[tod] = meals
	}
	return result
}

// cookingFrequency averages sessions per weekday and per weekend day
// over the weeks the history spans. A window shorter than a week counts
// as one week.
func cookingFrequency(history []models.InteractionRecord) (weekday, weekend float64) {
	var weekdaySessions, weekendSessions int
	var oldest, newest time.Time
	for i := range history {
		rec := &history[i]
		if rec.FeedbackOnly() {
			continue
		}
		switch rec.Timestamp.Weekday() {
		case time.Saturday, time.Sunday:
			weekendSessions++
		default:
			weekdaySessions++
		}
		if oldest.IsZero() || rec.Timestamp.Before(oldest) {
			oldest = rec.Timestamp
		}
		if rec.Timestamp.After(newest) {
			newest = rec.Timestamp
		}
	}
	if weekdaySessions+weekendSessions == 0 {
		return 0, 0
	}

	weeks := newest.Sub(oldest).Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}
	weekday = float64(weekdaySessions) / (weeks * 5)
	weekend = float64(weekendSessions) / (weeks * 2)
	return weekday, weekend
}

// complexityPreference buckets the difficulties of positively rated,
// cooked recipes into weekday, weekend, and low-energy situations. The
// low-energy bucket is fed by sessions whose query carried a simplicity
// signal.
func complexityPreference(history []models.InteractionRecord, snapshot models.UserContextSnapshot) ComplexityPreference {
	fallback := defaultComplexity(snapshot.SkillLevel)

	var weekdayDiffs, weekendDiffs, tiredDiffs []models.Difficulty
	for i := range history {
		rec := &history[i]
		if rec.FeedbackOnly() || rec.Feedback == nil || !rec.Feedback.Cooked {
			continue
		}
		if !rec.Positive() {
			continue
		}
		if interpreter.ContainsSimplicitySignal(rec.Query) {
			tiredDiffs = append(tiredDiffs, rec.Feedback.Difficulty)
			continue
		}
		switch rec.Timestamp.Weekday() {
		case time.Saturday, time.Sunday:
			weekendDiffs = append(weekendDiffs, rec.Feedback.Difficulty)
		default:
			weekdayDiffs = append(weekdayDiffs, rec.Feedback.Difficulty)
		}
	}

	return ComplexityPreference{
		Weekday:   modalDifficulty(weekdayDiffs, fallback.Weekday),
		Weekend:   modalDifficulty(weekendDiffs, fallback.Weekend),
		WhenTired: modalDifficulty(tiredDiffs, fallback.WhenTired),
	}
}

// modalDifficulty returns the most frequent difficulty, preferring the
// easier level on a tie.
func modalDifficulty(diffs []models.Difficulty, fallback models.Difficulty) models.Difficulty {
	if len(diffs) == 0 {
		return fallback
	}
	counts := make(map[models.Difficulty]int, 3)
	for _, d := range diffs {
		counts[d]++
	}
	order := []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard}
	best := fallback
	bestCount := 0
	for _, d := range order {
		if counts[d] > bestCount {
			best = d
			bestCount = counts[d]
		}
	}
	return best
}
