// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package interpreter

import "github.com/ckersey/souschef/internal/models"

// intentPatterns maps each intent to the phrase set that votes for it.
// Patterns are matched as substrings of the normalized query, so each
// entry must itself be normalized (lowercase, no punctuation).
var intentPatterns = map[models.Intent][]string{
	models.IntentRecipeSearch: {
		"find a recipe",
		"find recipe",
		"search for",
		"look up",
		"show me recipes",
		"recipe for",
		"how do i make",
		"how to make",
	},
	models.IntentRecipeRecommendation: {
		"what can i make",
		"what should i make",
		"what can i cook",
		"what should i cook",
		"recommend",
		"suggest",
		"any ideas",
		"dinner idea",
		"something to cook",
		"make with",
		"cook with",
	},
	models.IntentMealPlanning: {
		"meal plan",
		"plan my meals",
		"plan for the week",
		"weekly plan",
		"meal prep",
		"plan dinner",
		"plan lunch",
		"schedule meals",
	},
	models.IntentIngredientManagement: {
		"my ingredients",
		"in my fridge",
		"in my pantry",
		"what do i have",
		"expiring",
		"going bad",
		"inventory",
		"use up",
	},
	models.IntentShoppingList: {
		"shopping list",
		"grocery list",
		"what do i need to buy",
		"need to buy",
		"add to my list",
		"groceries",
	},
	models.IntentNutritionInfo: {
		"calories",
		"nutrition",
		"protein",
		"carbs",
		"macros",
		"how healthy",
		"nutritional",
	},
	models.IntentCookingTips: {
		"how do i",
		"tip",
		"technique",
		"best way to",
		"how long should",
		"what temperature",
		"how to cook",
	},
	models.IntentSubstitutionHelp: {
		"substitute",
		"substitution",
		"replace",
		"instead of",
		"dont have",
		"out of",
		"alternative to",
	},
	models.IntentDietaryGuidance: {
		"vegetarian",
		"vegan",
		"gluten free",
		"dairy free",
		"allergic",
		"allergy",
		"diet",
		"im avoiding",
		"can i eat",
	},
	models.IntentGeneralHelp: {
		"help",
		"what can you do",
		"how does this work",
		"hello",
		"hi there",
	},
}

// ingredientKeywords is the membership set of recognized ingredient names.
var ingredientKeywords = map[string]struct{}{}

//nolint:gochecknoinits // builds the keyword set from the flat list below
func init() {
	for _, name := range ingredientList {
		ingredientKeywords[name] = struct{}{}
	}
}

// ingredientList enumerates the ingredients the extractor recognizes.
// Multi-word names are matched as phrases before single tokens.
var ingredientList = []string{
	"chicken", "beef", "pork", "lamb", "turkey", "bacon", "sausage",
	"salmon", "tuna", "shrimp", "cod", "tilapia", "crab",
	"tofu", "tempeh", "lentils", "chickpeas", "beans", "black beans",
	"rice", "pasta", "noodles", "quinoa", "couscous", "bread", "tortilla",
	"potato", "potatoes", "sweet potato", "carrot", "carrots", "onion",
	"onions", "garlic", "ginger", "tomato", "tomatoes", "spinach", "kale",
	"broccoli", "cauliflower", "zucchini", "eggplant", "mushroom",
	"mushrooms", "bell pepper", "peppers", "corn", "peas", "celery",
	"cucumber", "lettuce", "cabbage", "asparagus", "squash", "pumpkin",
	"egg", "eggs", "milk", "butter", "cheese", "cream", "yogurt",
	"mozzarella", "parmesan", "cheddar", "feta",
	"apple", "banana", "lemon", "lime", "orange", "avocado", "berries",
	"flour", "sugar", "honey", "olive oil", "soy sauce", "vinegar",
	"basil", "cilantro", "parsley", "thyme", "rosemary", "oregano",
	"cumin", "paprika", "cinnamon", "chili", "curry",
}

// cuisineKeywords maps query keywords to canonical cuisine names.
var cuisineKeywords = map[string]string{
	"italian":        "italian",
	"pasta":          "italian",
	"pizza":          "italian",
	"mexican":        "mexican",
	"taco":           "mexican",
	"tacos":          "mexican",
	"burrito":        "mexican",
	"chinese":        "chinese",
	"stir fry":       "chinese",
	"japanese":       "japanese",
	"sushi":          "japanese",
	"ramen":          "japanese",
	"thai":           "thai",
	"indian":         "indian",
	"masala":         "indian",
	"french":         "french",
	"greek":          "greek",
	"mediterranean":  "mediterranean",
	"korean":         "korean",
	"vietnamese":     "vietnamese",
	"pho":            "vietnamese",
	"american":       "american",
	"bbq":            "american",
	"middle eastern": "middle-eastern",
	"spanish":        "spanish",
}

// mealTypeKeywords maps query keywords to meal types.
var mealTypeKeywords = map[string]models.MealType{
	"breakfast": models.MealBreakfast,
	"brunch":    models.MealBreakfast,
	"lunch":     models.MealLunch,
	"dinner":    models.MealDinner,
	"supper":    models.MealDinner,
	"tonight":   models.MealDinner,
	"snack":     models.MealSnack,
	"appetizer": models.MealSnack,
}

// dietaryKeywords maps query keywords to canonical restriction names.
var dietaryKeywords = map[string]string{
	"vegetarian":  "vegetarian",
	"vegan":       "vegan",
	"gluten free": "gluten-free",
	"gluten":      "gluten-free",
	"dairy free":  "dairy-free",
	"lactose":     "dairy-free",
	"nut free":    "nut-free",
	"nut allergy": "nut-free",
	"keto":        "keto",
	"paleo":       "paleo",
	"halal":       "halal",
	"kosher":      "kosher",
	"pescatarian": "pescatarian",
	"low carb":    "low-carb",
	"low sodium":  "low-sodium",
}

// difficultyKeywords maps query keywords to difficulty buckets.
var difficultyKeywords = map[string]models.Difficulty{
	"easy":         models.DifficultyEasy,
	"simple":       models.DifficultyEasy,
	"beginner":     models.DifficultyEasy,
	"basic":        models.DifficultyEasy,
	"effortless":   models.DifficultyEasy,
	"intermediate": models.DifficultyMedium,
	"moderate":     models.DifficultyMedium,
	"challenging":  models.DifficultyHard,
	"advanced":     models.DifficultyHard,
	"difficult":    models.DifficultyHard,
	"gourmet":      models.DifficultyHard,
	"impressive":   models.DifficultyHard,
}

// equipmentKeywords is the membership set of recognized equipment names.
var equipmentKeywords = map[string]struct{}{
	"oven":            {},
	"stove":           {},
	"microwave":       {},
	"blender":         {},
	"food processor":  {},
	"slow cooker":     {},
	"crockpot":        {},
	"instant pot":     {},
	"pressure cooker": {},
	"air fryer":       {},
	"grill":           {},
	"wok":             {},
	"cast iron":       {},
	"dutch oven":      {},
	"rice cooker":     {},
	"stand mixer":     {},
}

// methodKeywords is the membership set of recognized cooking methods.
var methodKeywords = map[string]struct{}{
	"baking":   {},
	"bake":     {},
	"baked":    {},
	"roasting": {},
	"roast":    {},
	"roasted":  {},
	"grilling": {},
	"grilled":  {},
	"frying":   {},
	"fried":    {},
	"steaming": {},
	"steamed":  {},
	"braising": {},
	"braised":  {},
	"sauteing": {},
	"sauteed":  {},
	"stir fry": {},
	"poaching": {},
	"poached":  {},
	"broiling": {},
	"broiled":  {},
	"no cook":  {},
	"one pot":  {},
}

// moodEffect is one keyword's effect on the mood axes. Nil pointers leave
// the axis untouched; later matches overwrite earlier ones per axis.
type moodEffect struct {
	sentiment   *Sentiment
	energy      *Level
	urgency     *Level
	adventurous bool
}

func sentimentPtr(s Sentiment) *Sentiment { return &s }
func levelPtr(l Level) *Level             { return &l }

// moodKeywords is scanned in order against the normalized query.
var moodKeywords = []struct {
	keyword string
	effect  moodEffect
}{
	{"tired", moodEffect{sentiment: sentimentPtr(SentimentNegative), energy: levelPtr(LevelLow)}},
	{"exhausted", moodEffect{sentiment: sentimentPtr(SentimentNegative), energy: levelPtr(LevelLow)}},
	{"lazy", moodEffect{energy: levelPtr(LevelLow)}},
	{"stressed", moodEffect{sentiment: sentimentPtr(SentimentNegative), urgency: levelPtr(LevelMedium)}},
	{"busy", moodEffect{urgency: levelPtr(LevelMedium)}},
	{"excited", moodEffect{sentiment: sentimentPtr(SentimentPositive), energy: levelPtr(LevelHigh)}},
	{"celebrate", moodEffect{sentiment: sentimentPtr(SentimentPositive), energy: levelPtr(LevelHigh)}},
	{"special", moodEffect{sentiment: sentimentPtr(SentimentPositive)}},
	{"fancy", moodEffect{sentiment: sentimentPtr(SentimentPositive), adventurous: true}},
	{"adventurous", moodEffect{adventurous: true, energy: levelPtr(LevelHigh)}},
	{"something new", moodEffect{adventurous: true}},
	{"something different", moodEffect{adventurous: true}},
	{"never tried", moodEffect{adventurous: true}},
	{"comfort", moodEffect{energy: levelPtr(LevelLow)}},
	{"cozy", moodEffect{energy: levelPtr(LevelLow)}},
	{"bored", moodEffect{sentiment: sentimentPtr(SentimentNegative), adventurous: true}},
	{"hungry", moodEffect{urgency: levelPtr(LevelMedium)}},
	{"starving", moodEffect{urgency: levelPtr(LevelHigh)}},
}

// speedKeywords raise urgency to high independent of the mood table.
var speedKeywords = []string{
	"quick", "fast", "hurry", "asap", "right now", "in a rush", "no time",
}

// simplicityKeywords mark low-effort queries; the profile builder also
// uses them to bucket "when tired" complexity preference.
var simplicityKeywords = []string{
	"quick", "easy", "simple", "lazy", "tired", "fast", "minimal", "effortless",
}

// ContainsSimplicitySignal reports whether the raw query text carries an
// urgency or simplicity keyword. Exposed for history aggregation.
func ContainsSimplicitySignal(query string) bool {
	normalized := normalize(query)
	for _, kw := range simplicityKeywords {
		if containsWord(normalized, kw) {
			return true
		}
	}
	return false
}

// KnownIngredients extracts the recognized ingredient names mentioned in
// raw query text, sorted. Exposed for history aggregation.
func KnownIngredients(query string) []string {
	return extractIngredients(normalize(query))
}

// keywordMapping pairs a query keyword with the value it maps to. Tables
// built from it are scanned in order, first match wins.
type keywordMapping struct {
	keyword string
	value   string
}

// occasionKeywords maps query keywords to occasions, most specific first.
var occasionKeywords = []keywordMapping{
	{"birthday", "birthday"},
	{"anniversary", "anniversary"},
	{"date night", "date-night"},
	{"thanksgiving", "holiday"},
	{"christmas", "holiday"},
	{"holiday", "holiday"},
	{"dinner party", "party"},
	{"potluck", "party"},
	{"game day", "party"},
	{"party", "party"},
	{"weeknight", "weeknight"},
	{"weekend", "weekend"},
}

// socialKeywords maps query keywords to social settings, most specific
// first.
var socialKeywords = []keywordMapping{
	{"dinner party", "guests"},
	{"guests", "guests"},
	{"friends", "guests"},
	{"company", "guests"},
	{"family", "family"},
	{"kids", "family"},
	{"my wife", "family"},
	{"my husband", "family"},
	{"my partner", "family"},
	{"for myself", "solo"},
	{"just me", "solo"},
	{"for one", "solo"},
}
