// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package contextual

import "github.com/ckersey/souschef/internal/models"

// seasonalProduce is the static season-to-produce reference table.
var seasonalProduce = map[models.Season][]string{
	models.SeasonSpring: {
		"asparagus", "peas", "spinach", "artichoke", "radish", "rhubarb",
		"strawberries", "lettuce", "spring onion",
	},
	models.SeasonSummer: {
		"tomato", "tomatoes", "corn", "zucchini", "eggplant", "berries",
		"peaches", "cucumber", "bell pepper", "basil", "watermelon",
	},
	models.SeasonFall: {
		"pumpkin", "squash", "sweet potato", "apple", "pear", "brussels sprouts",
		"cauliflower", "mushrooms", "kale",
	},
	models.SeasonWinter: {
		"cabbage", "potato", "potatoes", "carrot", "carrots", "citrus",
		"orange", "leeks", "turnip", "beets", "winter squash",
	},
}

// SeasonalProduce returns the reference produce list for a season.
func SeasonalProduce(season models.Season) []string {
	return seasonalProduce[season]
}

// mealTypesByTimeOfDay is the static time-of-day to meal-type table.
var mealTypesByTimeOfDay = map[models.TimeOfDay][]models.MealType{
	models.TimeMorning:   {models.MealBreakfast},
	models.TimeAfternoon: {models.MealLunch, models.MealSnack},
	models.TimeEvening:   {models.MealDinner},
	models.TimeNight:     {models.MealSnack},
}

// MealTypesFor returns the meal types usually cooked in a time bucket.
func MealTypesFor(tod models.TimeOfDay) []models.MealType {
	return mealTypesByTimeOfDay[tod]
}

// minutesUntilNextMeal is a fixed per-bucket lookup, not a clock-precise
// calculation: the scorer only needs a coarse pressure signal.
var minutesUntilNextMeal = map[models.TimeOfDay]int{
	models.TimeMorning:   60,  // breakfast imminent
	models.TimeAfternoon: 90,  // lunch window
	models.TimeEvening:   45,  // dinner pressure
	models.TimeNight:     480, // next meal is tomorrow's breakfast
}

// holiday is a month/day pair in the static holiday calendar.
type holiday struct {
	month int
	day   int
}

// holidayCalendar lists fixed-date holidays that shift cooking behavior.
var holidayCalendar = map[holiday]string{
	{1, 1}:   "new-years-day",
	{2, 14}:  "valentines-day",
	{7, 4}:   "independence-day",
	{10, 31}: "halloween",
	{12, 24}: "christmas-eve",
	{12, 25}: "christmas",
	{12, 31}: "new-years-eve",
}
