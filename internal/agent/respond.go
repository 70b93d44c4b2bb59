// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ckersey/souschef/internal/contextual"
	"github.com/ckersey/souschef/internal/interpreter"
	"github.com/ckersey/souschef/internal/models"
	"github.com/ckersey/souschef/internal/scoring"
)

// expiringWindow bounds how far ahead ingredient insights look for
// expiring inventory.
const expiringWindow = 3 * 24 * time.Hour

// substitutionTable maps common ingredients to household replacements.
// Lookups are exact lowercase matches on extracted ingredient names.
var substitutionTable = map[string][]string{
	"butter":      {"olive oil", "coconut oil", "margarine"},
	"egg":         {"flax egg (1 tbsp ground flax + 3 tbsp water)", "applesauce", "mashed banana"},
	"eggs":        {"flax egg (1 tbsp ground flax + 3 tbsp water)", "applesauce", "mashed banana"},
	"milk":        {"oat milk", "almond milk", "soy milk"},
	"buttermilk":  {"milk with 1 tbsp lemon juice", "plain yogurt thinned with milk"},
	"cream":       {"evaporated milk", "coconut cream", "whole milk with butter"},
	"sour cream":  {"plain greek yogurt", "crème fraîche"},
	"yogurt":      {"sour cream", "buttermilk"},
	"honey":       {"maple syrup", "agave nectar"},
	"sugar":       {"honey", "maple syrup"},
	"flour":       {"almond flour", "oat flour", "cornstarch (for thickening)"},
	"cornstarch":  {"flour (double the amount)", "arrowroot powder"},
	"breadcrumbs": {"crushed crackers", "rolled oats", "panko"},
	"wine":        {"broth with a splash of vinegar", "grape juice"},
	"soy sauce":   {"tamari", "coconut aminos", "worcestershire sauce"},
	"fish sauce":  {"soy sauce with a squeeze of lime", "worcestershire sauce"},
	"garlic":      {"garlic powder (1/8 tsp per clove)", "shallots"},
	"onion":       {"shallots", "leeks", "onion powder"},
	"shallots":    {"onion", "leeks"},
	"basil":       {"oregano", "thyme"},
	"cilantro":    {"parsley", "basil"},
	"parsley":     {"cilantro", "chervil"},
	"lemon":       {"lime", "white wine vinegar"},
	"lime":        {"lemon", "rice vinegar"},
	"chicken":     {"turkey", "tofu", "chickpeas"},
	"beef":        {"mushrooms", "lentils", "turkey"},
	"tomato":      {"canned tomatoes", "red bell pepper"},
	"rice":        {"quinoa", "couscous", "cauliflower rice"},
	"pasta":       {"zucchini noodles", "rice noodles", "spaghetti squash"},
	"parmesan":    {"pecorino", "nutritional yeast"},
	"cheese":      {"nutritional yeast", "cashew cheese"},
}

// assemble builds the terminal response for a completed pipeline run.
// The data payload is keyed by intent; every branch also produces a
// user-facing message, follow-up suggestions, and suggested actions.
func (a *Assistant) assemble(req *models.Request, analysis interpreter.Analysis, env contextual.Environment, ranked []models.ScoredCandidate, start time.Time) *models.AgentResponse {
	resp := a.envelope(req, analysis.Intent, start)
	resp.Confidence = models.BucketConfidence(analysis.Confidence * 100)
	if analysis.Mood.Urgency == interpreter.LevelHigh {
		resp.Priority = models.PriorityHigh
	}

	switch analysis.Intent {
	case models.IntentRecipeSearch, models.IntentRecipeRecommendation:
		a.assembleRecommendations(resp, ranked)
	case models.IntentMealPlanning:
		a.assembleMealPlan(resp, env, ranked)
	case models.IntentShoppingList:
		a.assembleShoppingList(resp, ranked)
	case models.IntentIngredientManagement:
		a.assembleIngredients(resp, req)
	case models.IntentSubstitutionHelp:
		a.assembleSubstitutions(resp, analysis)
	case models.IntentNutritionInfo:
		a.assembleGuidance(resp, ranked,
			"Good nutrition starts with balance: pair a protein, a vegetable, and a whole grain at each meal.",
			[]string{"balanced-meals", "protein", "portion-sizes"},
			[]string{"What are some high-protein dinner ideas?", "How many calories should a weeknight dinner have?"})
	case models.IntentCookingTips:
		a.assembleGuidance(resp, ranked,
			"A few habits make everything easier: read the whole recipe first, prep ingredients before heating the pan, and taste as you go.",
			[]string{"mise-en-place", "seasoning", "knife-skills"},
			[]string{"How do I keep chicken from drying out?", "What knife skills should I practice first?"})
	case models.IntentDietaryGuidance:
		a.assembleDietaryGuidance(resp, req, analysis, ranked)
	default:
		a.assembleGuidance(resp, ranked,
			"I can help you find recipes, plan meals, build shopping lists, manage ingredients, and answer cooking questions. What would you like to do?",
			[]string{"recipes", "meal-planning", "shopping-lists"},
			[]string{"What can I cook with what's in my fridge?", "Plan my dinners for this week"})
	}

	resp.Metadata.ProcessingTime = a.clock().Sub(start)
	return resp
}

func (a *Assistant) assembleRecommendations(resp *models.AgentResponse, ranked []models.ScoredCandidate) {
	resp.Data = &models.ResponseData{
		Kind: models.DataKindRecommendations,
		Recommendations: &models.RecommendationData{
			Candidates:      ranked,
			TotalCandidates: len(ranked),
		},
	}
	if len(ranked) == 0 {
		resp.Message = "I couldn't find recipes matching your request. Try loosening a constraint, or tell me what ingredients you have on hand."
		resp.FollowUpSuggestions = []string{
			"What can I make with what's in my fridge?",
			"Show me quick dinner ideas",
		}
		return
	}

	top := ranked[0]
	resp.Message = fmt.Sprintf("I found %d recipes for you. Top pick: %s. %s", len(ranked), top.Recipe.Title, top.Explanation)
	resp.SuggestedActions = []string{
		fmt.Sprintf("View the %s recipe", top.Recipe.Title),
		"Add missing ingredients to your shopping list",
	}
	resp.FollowUpSuggestions = []string{
		fmt.Sprintf("How long does %s take to make?", top.Recipe.Title),
		"Show me something quicker",
		"What would I need to buy?",
	}
}

func (a *Assistant) assembleMealPlan(resp *models.AgentResponse, env contextual.Environment, ranked []models.ScoredCandidate) {
	assignments := assignSlots(ranked, a.clock(), env.Temporal.TimeOfDay)
	resp.Data = &models.ResponseData{
		Kind:     models.DataKindMealPlan,
		MealPlan: &models.MealPlanData{Assignments: assignments},
	}
	if len(assignments) == 0 {
		resp.Message = "I couldn't build a meal plan from your current constraints. Tell me what ingredients you have, or relax a restriction, and I'll try again."
		resp.FollowUpSuggestions = []string{"Plan dinners using my pantry", "Suggest easy weeknight meals"}
		return
	}

	days := len(assignments)
	resp.Message = fmt.Sprintf("Here's a plan covering your next %d meals, starting with %s.", days, assignments[0].Recipe.Title)
	resp.SuggestedActions = []string{
		"Save this plan",
		"Build a shopping list for the plan",
	}
	resp.FollowUpSuggestions = []string{
		"Swap out a meal I don't like",
		"What do I need to buy for this plan?",
	}
}

func (a *Assistant) assembleShoppingList(resp *models.AgentResponse, ranked []models.ScoredCandidate) {
	seen := make(map[string]bool)
	var items []models.ShoppingListItem
	for i := range ranked {
		for _, name := range ranked[i].MissingIngredients {
			if seen[name] {
				continue
			}
			seen[name] = true
			items = append(items, models.ShoppingListItem{
				Name:      name,
				ForRecipe: ranked[i].Recipe.Title,
			})
		}
	}

	resp.Data = &models.ResponseData{
		Kind:         models.DataKindShoppingList,
		ShoppingList: &models.ShoppingListData{Items: items},
	}
	if len(items) == 0 {
		resp.Message = "Good news: you already have everything you need for the recipes I looked at. Nothing to buy."
		resp.FollowUpSuggestions = []string{"Recommend something using my pantry", "Plan meals for this week"}
		return
	}
	resp.Message = fmt.Sprintf("Your shopping list has %d items, starting with %s.", len(items), items[0].Name)
	resp.SuggestedActions = []string{"Export the shopping list", "Remove items you already have"}
	resp.FollowUpSuggestions = []string{"What recipes use these ingredients?", "Can I substitute any of these?"}
}

func (a *Assistant) assembleIngredients(resp *models.AgentResponse, req *models.Request) {
	now := a.clock()
	expiringInv := scoring.ExpiringWithin(req.Context.Ingredients, now, expiringWindow)

	expiring := make([]models.ExpiringIngredient, 0, len(expiringInv))
	for _, item := range expiringInv {
		days := int(item.ExpiresAt.Sub(now).Hours() / 24)
		if days < 0 {
			days = 0
		}
		expiring = append(expiring, models.ExpiringIngredient{
			Name:      item.Name,
			ExpiresAt: item.ExpiresAt,
			DaysLeft:  days,
		})
	}

	categories := make(map[string]int)
	for _, item := range req.Context.Ingredients {
		cat := item.Category
		if cat == "" {
			cat = "other"
		}
		categories[cat]++
	}

	resp.Data = &models.ResponseData{
		Kind: models.DataKindIngredients,
		Ingredients: &models.IngredientData{
			TotalItems: len(req.Context.Ingredients),
			Expiring:   expiring,
			Categories: categories,
		},
	}

	switch {
	case len(req.Context.Ingredients) == 0:
		resp.Message = "Your inventory is empty. Add the ingredients you have on hand and I can suggest recipes that use them."
	case len(expiring) > 0:
		names := make([]string, 0, len(expiring))
		for _, e := range expiring {
			names = append(names, e.Name)
		}
		resp.Message = fmt.Sprintf("You have %d ingredients on hand. Use these soon: %s.", len(req.Context.Ingredients), strings.Join(names, ", "))
		resp.Priority = models.PriorityHigh
		resp.SuggestedActions = []string{"Find recipes using expiring ingredients"}
	default:
		resp.Message = fmt.Sprintf("You have %d ingredients on hand and nothing is close to expiring.", len(req.Context.Ingredients))
	}
	resp.FollowUpSuggestions = []string{
		"What can I cook with these ingredients?",
		"What should I restock?",
	}
}

func (a *Assistant) assembleSubstitutions(resp *models.AgentResponse, analysis interpreter.Analysis) {
	var subs []models.Substitution
	for _, name := range analysis.Entities.Ingredients {
		if options, ok := substitutionTable[name]; ok {
			subs = append(subs, models.Substitution{Ingredient: name, Substitutes: options})
		}
	}

	resp.Data = &models.ResponseData{
		Kind:          models.DataKindSubstitutions,
		Substitutions: &models.SubstitutionData{Substitutions: subs},
	}
	if len(subs) == 0 {
		resp.Message = "I don't have a substitution on file for that ingredient. Tell me the dish you're making and I can suggest a workaround."
		resp.FollowUpSuggestions = []string{"What can replace butter in baking?", "Substitutes for eggs"}
		return
	}
	first := subs[0]
	resp.Message = fmt.Sprintf("Instead of %s, try %s.", first.Ingredient, strings.Join(first.Substitutes, ", or "))
	resp.FollowUpSuggestions = []string{
		fmt.Sprintf("Will %s change the flavor?", first.Substitutes[0]),
		"Find recipes that skip this ingredient",
	}
}

func (a *Assistant) assembleDietaryGuidance(resp *models.AgentResponse, req *models.Request, analysis interpreter.Analysis, ranked []models.ScoredCandidate) {
	restrictions := append([]string{}, req.Context.DietaryRestrictions...)
	restrictions = append(restrictions, analysis.Entities.DietaryRestrictions...)

	if len(ranked) > 0 {
		a.assembleRecommendations(resp, ranked)
		if len(restrictions) > 0 {
			resp.Message = fmt.Sprintf("These picks respect your %s needs. %s", strings.Join(restrictions, " and "), resp.Message)
		}
		return
	}

	topics := []string{"dietary-restrictions"}
	topics = append(topics, restrictions...)
	msg := "Tell me your dietary restrictions and I'll filter every recommendation to match them."
	if len(restrictions) > 0 {
		msg = fmt.Sprintf("I'll keep your %s restrictions in mind for every recommendation. Ask for recipes any time and they'll be filtered automatically.", strings.Join(restrictions, " and "))
	}
	a.assembleGuidance(resp, ranked, msg, topics,
		[]string{"Show me compliant dinner recipes", "What ingredients should I avoid?"})
}

func (a *Assistant) assembleGuidance(resp *models.AgentResponse, ranked []models.ScoredCandidate, message string, topics, followUps []string) {
	resp.Data = &models.ResponseData{
		Kind:     models.DataKindGuidance,
		Guidance: &models.GuidanceData{Topics: topics},
	}
	resp.Message = message
	resp.FollowUpSuggestions = followUps
	if len(ranked) > 0 {
		resp.SuggestedActions = []string{fmt.Sprintf("Browse %d related recipes", len(ranked))}
	}
}

// assignSlots binds ranked candidates to the user's upcoming meal slots,
// one per day. Planning starts today when dinner is still ahead,
// otherwise tomorrow.
func assignSlots(ranked []models.ScoredCandidate, now time.Time, timeOfDay models.TimeOfDay) []models.ScoredCandidate {
	day := now
	if timeOfDay == models.TimeNight {
		day = day.AddDate(0, 0, 1)
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	assignments := make([]models.ScoredCandidate, 0, len(ranked))
	for i := range ranked {
		c := ranked[i]
		meal := models.MealDinner
		for _, m := range c.Recipe.MealTypes {
			if m == models.MealBreakfast || m == models.MealLunch || m == models.MealDinner {
				meal = m
				break
			}
		}
		c.Slot = &models.MealSlot{Date: day.AddDate(0, 0, i), Meal: meal}
		assignments = append(assignments, c)
	}
	return assignments
}

// fallbackResponse is returned when the pipeline fails. It is always
// safe to show: very low confidence, generic guidance, no data payload
// beyond the guidance variant.
func (a *Assistant) fallbackResponse(req *models.Request, analysis interpreter.Analysis, start time.Time) *models.AgentResponse {
	resp := a.envelope(req, analysis.Intent, start)
	resp.Confidence = models.ConfidenceVeryLow
	resp.Message = "I ran into a problem processing that request. Could you rephrase it, or try again in a moment?"
	resp.Data = &models.ResponseData{
		Kind:     models.DataKindGuidance,
		Guidance: &models.GuidanceData{Topics: []string{"retry"}},
	}
	resp.FollowUpSuggestions = []string{
		"Show me quick dinner ideas",
		"What can I cook with what I have?",
	}
	resp.Metadata.ProcessingTime = a.clock().Sub(start)
	return resp
}

// timeoutResponse is returned when the processing budget is exhausted
// before the pipeline finishes.
func (a *Assistant) timeoutResponse(req *models.Request, start time.Time) *models.AgentResponse {
	intent := models.IntentGeneralHelp
	if req.IntentOverride != "" {
		intent, _ = models.ParseIntent(req.IntentOverride)
	}

	resp := a.envelope(req, intent, start)
	resp.Confidence = models.ConfidenceVeryLow
	resp.Message = "Sorry, that took longer than expected. Please try again, or simplify the request."
	resp.Data = &models.ResponseData{
		Kind:     models.DataKindGuidance,
		Guidance: &models.GuidanceData{Topics: []string{"retry"}},
	}
	resp.FollowUpSuggestions = []string{"Try a simpler question", "Show me popular recipes"}
	resp.Metadata.ProcessingTime = a.clock().Sub(start)
	return resp
}

// envelope builds the common response shell. Callers fill message, data,
// and suggestions, then stamp the final processing time.
func (a *Assistant) envelope(req *models.Request, intent models.Intent, start time.Time) *models.AgentResponse {
	return &models.AgentResponse{
		ID:         uuid.NewString(),
		RequestID:  req.ID,
		AgentType:  AgentType,
		Intent:     intent,
		Confidence: models.ConfidenceMedium,
		Priority:   models.PriorityMedium,
		Metadata: models.ResponseMetadata{
			ProcessingTime: a.clock().Sub(start),
			Timestamp:      a.clock(),
			Version:        models.ProtocolVersion,
		},
	}
}
