// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package catalog

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/ckersey/souschef/internal/models"
)

// LoadSeedFile reads a JSON array of recipes from path. An empty path
// returns nil, nil so the caller falls back to the built-in set.
func LoadSeedFile(path string) ([]models.Recipe, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("seed file %s contains no recipes", path)
	}
	return recipes, nil
}

func ing(names ...string) []models.RecipeIngredient {
	out := make([]models.RecipeIngredient, 0, len(names))
	for _, n := range names {
		out = append(out, models.RecipeIngredient{Name: n})
	}
	return out
}

// seedRecipes is the built-in recipe set used when no seed file is
// configured. Enough variety to exercise every scoring dimension.
func seedRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          "chicken-fried-rice",
			Title:       "Chicken Fried Rice",
			Cuisine:     "chinese",
			Ingredients: ing("chicken", "rice", "egg", "soy sauce", "scallion", "garlic"),
			PrepMinutes: 10, CookMinutes: 15,
			Difficulty: models.DifficultyEasy,
			MealTypes:  []models.MealType{models.MealLunch, models.MealDinner},
			Tags:       []string{"popular", "one-pan"},
			Equipment:  []string{"wok"},
			Methods:    []string{"stir fry"},
			Nutrition:  &models.NutritionFacts{Calories: 520, Protein: 28},
		},
		{
			ID:          "spaghetti-pomodoro",
			Title:       "Spaghetti al Pomodoro",
			Cuisine:     "italian",
			Ingredients: ing("pasta", "tomato", "garlic", "basil", "olive oil"),
			PrepMinutes: 10, CookMinutes: 20,
			Difficulty: models.DifficultyEasy,
			MealTypes:  []models.MealType{models.MealLunch, models.MealDinner},
			Tags:       []string{"popular", "vegetarian"},
			Methods:    []string{"simmer"},
			Nutrition:  &models.NutritionFacts{Calories: 610, Protein: 16, Fiber: 6},
		},
		{
			ID:          "vegetable-curry",
			Title:       "Coconut Vegetable Curry",
			Cuisine:     "indian",
			Ingredients: ing("potato", "cauliflower", "coconut milk", "onion", "curry paste", "rice"),
			PrepMinutes: 15, CookMinutes: 30,
			Difficulty: models.DifficultyMedium,
			MealTypes:  []models.MealType{models.MealDinner},
			Tags:       []string{"vegetarian", "vegan"},
			Methods:    []string{"simmer"},
			Nutrition:  &models.NutritionFacts{Calories: 480, Protein: 10, Fiber: 8},
		},
		{
			ID:          "beef-tacos",
			Title:       "Weeknight Beef Tacos",
			Cuisine:     "mexican",
			Ingredients: ing("ground beef", "tortilla", "onion", "cheese", "salsa", "lime"),
			PrepMinutes: 10, CookMinutes: 15,
			Difficulty: models.DifficultyEasy,
			MealTypes:  []models.MealType{models.MealDinner},
			Tags:       []string{"popular", "quick"},
			Methods:    []string{"saute"},
			Nutrition:  &models.NutritionFacts{Calories: 650, Protein: 32},
		},
		{
			ID:          "salmon-teriyaki",
			Title:       "Teriyaki Glazed Salmon",
			Cuisine:     "japanese",
			Ingredients: ing("salmon", "soy sauce", "mirin", "ginger", "rice", "broccoli"),
			PrepMinutes: 10, CookMinutes: 20,
			Difficulty: models.DifficultyMedium,
			MealTypes:  []models.MealType{models.MealDinner},
			Tags:       []string{"pescatarian"},
			Methods:    []string{"pan sear", "glaze"},
			Nutrition:  &models.NutritionFacts{Calories: 560, Protein: 38},
		},
		{
			ID:          "shakshuka",
			Title:       "Shakshuka",
			Cuisine:     "middle eastern",
			Ingredients: ing("egg", "tomato", "bell pepper", "onion", "cumin", "feta"),
			PrepMinutes: 10, CookMinutes: 25,
			Difficulty: models.DifficultyEasy,
			MealTypes:  []models.MealType{models.MealBreakfast, models.MealLunch},
			Tags:       []string{"vegetarian", "one-pan"},
			Equipment:  []string{"cast iron skillet"},
			Methods:    []string{"simmer", "poach"},
			Nutrition:  &models.NutritionFacts{Calories: 390, Protein: 20},
		},
		{
			ID:          "mushroom-risotto",
			Title:       "Mushroom Risotto",
			Cuisine:     "italian",
			Ingredients: ing("arborio rice", "mushroom", "onion", "white wine", "parmesan", "butter", "stock"),
			PrepMinutes: 15, CookMinutes: 35,
			Difficulty: models.DifficultyHard,
			MealTypes:  []models.MealType{models.MealDinner},
			Tags:       []string{"vegetarian", "comfort-food"},
			Methods:    []string{"simmer"},
			Nutrition:  &models.NutritionFacts{Calories: 720, Protein: 18},
		},
		{
			ID:          "thai-basil-stir-fry",
			Title:       "Thai Basil Chicken Stir Fry",
			Cuisine:     "thai",
			Ingredients: ing("chicken", "thai basil", "chili", "garlic", "fish sauce", "rice"),
			PrepMinutes: 12, CookMinutes: 10,
			Difficulty: models.DifficultyMedium,
			MealTypes:  []models.MealType{models.MealLunch, models.MealDinner},
			Tags:       []string{"popular", "spicy", "quick"},
			Equipment:  []string{"wok"},
			Methods:    []string{"stir fry"},
			Nutrition:  &models.NutritionFacts{Calories: 540, Protein: 30},
		},
		{
			ID:          "lentil-soup",
			Title:       "Hearty Lentil Soup",
			Cuisine:     "mediterranean",
			Ingredients: ing("lentils", "carrot", "celery", "onion", "garlic", "cumin"),
			PrepMinutes: 10, CookMinutes: 40,
			Difficulty: models.DifficultyEasy,
			MealTypes:  []models.MealType{models.MealLunch, models.MealDinner},
			Tags:       []string{"vegan", "budget", "one-pot"},
			Methods:    []string{"simmer"},
			Nutrition:  &models.NutritionFacts{Calories: 340, Protein: 18, Fiber: 15},
		},
		{
			ID:          "overnight-oats",
			Title:       "Berry Overnight Oats",
			Cuisine:     "american",
			Ingredients: ing("oats", "milk", "yogurt", "berries", "honey"),
			PrepMinutes: 5, CookMinutes: 0,
			Difficulty: models.DifficultyEasy,
			MealTypes:  []models.MealType{models.MealBreakfast},
			Tags:       []string{"no-cook", "make-ahead"},
			Nutrition:  &models.NutritionFacts{Calories: 380, Protein: 14, Fiber: 7},
		},
		{
			ID:          "beef-bourguignon",
			Title:       "Beef Bourguignon",
			Cuisine:     "french",
			Ingredients: ing("beef", "red wine", "carrot", "onion", "mushroom", "bacon", "stock"),
			PrepMinutes: 30, CookMinutes: 180,
			Difficulty: models.DifficultyHard,
			MealTypes:  []models.MealType{models.MealDinner},
			Tags:       []string{"comfort-food", "special-occasion"},
			Equipment:  []string{"dutch oven"},
			Methods:    []string{"braise"},
			Nutrition:  &models.NutritionFacts{Calories: 780, Protein: 45},
		},
		{
			ID:          "caprese-salad",
			Title:       "Caprese Salad",
			Cuisine:     "italian",
			Ingredients: ing("tomato", "mozzarella", "basil", "olive oil", "balsamic vinegar"),
			PrepMinutes: 10, CookMinutes: 0,
			Difficulty: models.DifficultyEasy,
			MealTypes:  []models.MealType{models.MealLunch, models.MealSnack},
			Tags:       []string{"vegetarian", "no-cook", "summer"},
			Nutrition:  &models.NutritionFacts{Calories: 310, Protein: 14},
		},
	}
}
