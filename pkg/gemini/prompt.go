package gemini

import (
	"fmt"
	"strings"

	"plateplan-backend/domain"
)

// locale wording switched on household currency: GBP gets British English
// and metric, USD gets American English.
type locale struct {
	language string
	units    string
	currency string
	examples string
}

func localeFor(currency string) locale {
	if currency == "GBP" {
		return locale{
			language: "British English (e.g. courgette, aubergine, coriander)",
			units:    "metric units (grams, millilitres, litres)",
			currency: "GBP (£)",
			examples: "supermarket pack sizes common in the UK",
		}
	}
	return locale{
		language: "American English (e.g. zucchini, eggplant, cilantro)",
		units:    "US customary units (cups, ounces, pounds)",
		currency: "USD ($)",
		examples: "standard US grocery package sizes",
	}
}

// buildProfileBlock enumerates every non-empty field of the parameter bundle.
func buildProfileBlock(params domain.MealPlanParams) string {
	var b strings.Builder

	if params.FamilySize > 0 {
		fmt.Fprintf(&b, "- Family size: %d people\n", params.FamilySize)
	}
	if params.WeeklyBudget > 0 {
		fmt.Fprintf(&b, "- Weekly budget: %.2f %s\n", params.WeeklyBudget, params.Currency)
	}
	if len(params.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "- Dietary restrictions: %s\n", strings.Join(params.DietaryRestrictions, ", "))
	}
	if len(params.Allergies) > 0 {
		fmt.Fprintf(&b, "- Allergies (must be strictly avoided): %s\n", strings.Join(params.Allergies, ", "))
	}
	if len(params.DislikedIngredients) > 0 {
		fmt.Fprintf(&b, "- Disliked ingredients: %s\n", strings.Join(params.DislikedIngredients, ", "))
	}
	if len(params.MedicalConditions) > 0 {
		fmt.Fprintf(&b, "- Medical conditions to tailor nutrition for: %s\n", strings.Join(params.MedicalConditions, ", "))
	}
	if params.CookingSkill != "" {
		fmt.Fprintf(&b, "- Cooking skill level: %s\n", params.CookingSkill)
	}
	if len(params.Equipment) > 0 {
		fmt.Fprintf(&b, "- Available kitchen equipment: %s\n", strings.Join(params.Equipment, ", "))
	}
	if len(params.HealthGoals) > 0 {
		fmt.Fprintf(&b, "- Health goals: %s\n", strings.Join(params.HealthGoals, ", "))
	}
	if params.Age > 0 {
		fmt.Fprintf(&b, "- Age: %d\n", params.Age)
	}
	if params.Gender != "" {
		fmt.Fprintf(&b, "- Gender: %s\n", params.Gender)
	}
	if params.WeightKg > 0 {
		fmt.Fprintf(&b, "- Weight: %.1f kg\n", params.WeightKg)
	}
	if params.HeightCm > 0 {
		fmt.Fprintf(&b, "- Height: %.1f cm\n", params.HeightCm)
	}
	if params.ActivityLevel != "" {
		fmt.Fprintf(&b, "- Activity level: %s\n", params.ActivityLevel)
	}
	if params.PrimaryGoal != "" {
		fmt.Fprintf(&b, "- Primary fitness goal: %s\n", params.PrimaryGoal)
	}

	return b.String()
}

const recipeSchema = `{"title": string, "description": string, "instructions": [string], ` +
	`"ingredients": [{"name": string, "amount": string, "unit": string}], "prepTime": number, ` +
	`"cookTime": number, "servings": number, "difficulty": "easy"|"medium"|"hard", ` +
	`"cuisineType": string, "dietaryTags": [string], "nutrition": {"calories": number, ` +
	`"protein": number, "carbs": number, "fat": number, "fiber": number, "sugar": number, ` +
	`"sodium": number}, "estimatedCost": number, "isBatchCookable": boolean, ` +
	`"isFreezerFriendly": boolean, "isKidFriendly": boolean, "tips": [string]}`

func BuildRecipePrompt(params domain.MealPlanParams, req domain.GenerateRecipeRequest) string {
	loc := localeFor(params.Currency)

	var b strings.Builder
	b.WriteString("You are a professional chef and nutritionist creating a single recipe for a household.\n\n")

	profile := buildProfileBlock(params)
	if profile != "" {
		b.WriteString("Household profile:\n")
		b.WriteString(profile)
		b.WriteString("\n")
	}

	if req.MealType != "" {
		fmt.Fprintf(&b, "The recipe is for %s.\n", req.MealType)
	}
	if req.CuisineType != "" {
		fmt.Fprintf(&b, "Cuisine: %s.\n", req.CuisineType)
	}
	if req.Servings > 0 {
		fmt.Fprintf(&b, "Servings: %d.\n", req.Servings)
	}
	if req.MaxPrepTimeMinutes > 0 {
		fmt.Fprintf(&b, "Total preparation time must not exceed %d minutes.\n", req.MaxPrepTimeMinutes)
	}
	if req.BudgetPerServing > 0 {
		fmt.Fprintf(&b, "Cost per serving must stay under %.2f %s.\n", req.BudgetPerServing, params.Currency)
	}

	fmt.Fprintf(&b, "\nUse %s for all ingredient names and %s for quantities. "+
		"Estimate costs in %s. Prefer whole items and %s over arbitrary gram amounts.\n",
		loc.language, loc.units, loc.currency, loc.examples)

	b.WriteString("\nRespond ONLY with a single valid JSON object matching exactly this shape:\n")
	b.WriteString(recipeSchema)
	b.WriteString("\nDo not include any explanations, markdown formatting, or text outside the JSON object.")

	return b.String()
}

func BuildWeeklyPlanPrompt(params domain.MealPlanParams) string {
	loc := localeFor(params.Currency)

	var b strings.Builder
	b.WriteString("You are a professional meal planner and nutritionist creating a full 7-day meal plan for one household member.\n\n")

	profile := buildProfileBlock(params)
	if profile != "" {
		b.WriteString("Member and household profile:\n")
		b.WriteString(profile)
		b.WriteString("\n")
	}

	b.WriteString("Planning rules:\n")
	b.WriteString("- The total cost of all meals must stay within the weekly budget.\n")
	b.WriteString("- Maximize reuse of the same fresh ingredient across 2-3 consecutive days so nothing spoils.\n")
	b.WriteString("- Prefer whole items and standard package quantities over arbitrary gram amounts.\n")
	b.WriteString("- Favor batch-cookable meals where the household prefers them.\n")
	b.WriteString("- Tailor nutrition to any stated medical condition or fitness goal.\n")
	fmt.Fprintf(&b, "- Use %s for ingredient names and %s for quantities. Estimate costs in %s.\n",
		loc.language, loc.units, loc.currency)

	b.WriteString("\nRespond ONLY with a single valid JSON object keyed by the seven lowercase day names ")
	b.WriteString(`("monday" through "sunday"). Each day is an object with optional "breakfast", "lunch" `)
	b.WriteString(`and "dinner" fields and an optional "snacks" array; each of those is a recipe object `)
	b.WriteString("matching exactly this shape:\n")
	b.WriteString(recipeSchema)
	b.WriteString("\nThe top-level object must also contain \"totalWeeklyCost\" (number), ")
	b.WriteString("\"totalWeeklyCalories\" (number), \"batchCookingTips\" (array of strings) and ")
	b.WriteString("\"shoppingTips\" (array of strings).\n")
	b.WriteString("Do not include any explanations, markdown formatting, or text outside the JSON object.")

	return b.String()
}
