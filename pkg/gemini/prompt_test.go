package gemini

import (
	"testing"

	"plateplan-backend/domain"

	"github.com/stretchr/testify/assert"
)

func TestLocaleSwitchesOnCurrency(t *testing.T) {
	gbp := BuildWeeklyPlanPrompt(domain.MealPlanParams{Currency: "GBP"})
	assert.Contains(t, gbp, "British English")
	assert.Contains(t, gbp, "metric units")
	assert.Contains(t, gbp, "GBP")

	usd := BuildWeeklyPlanPrompt(domain.MealPlanParams{Currency: "USD"})
	assert.Contains(t, usd, "American English")
	assert.Contains(t, usd, "US customary units")
	assert.NotContains(t, usd, "British English")
}

func TestProfileBlockEnumeratesOnlySetFields(t *testing.T) {
	params := domain.MealPlanParams{
		FamilySize:          4,
		WeeklyBudget:        120,
		Currency:            "USD",
		Allergies:           []string{"peanuts", "shellfish"},
		MedicalConditions:   []string{"type 2 diabetes"},
		CookingSkill:        "beginner",
		DislikedIngredients: []string{"olives"},
	}

	block := buildProfileBlock(params)

	assert.Contains(t, block, "Family size: 4 people")
	assert.Contains(t, block, "Weekly budget: 120.00 USD")
	assert.Contains(t, block, "peanuts, shellfish")
	assert.Contains(t, block, "type 2 diabetes")
	assert.Contains(t, block, "olives")
	assert.NotContains(t, block, "Age:")
	assert.NotContains(t, block, "Height:")
	assert.NotContains(t, block, "Activity level:")
}

func TestRecipePromptIncludesRequestConstraints(t *testing.T) {
	prompt := BuildRecipePrompt(
		domain.MealPlanParams{Currency: "USD"},
		domain.GenerateRecipeRequest{
			MealType:           "dinner",
			CuisineType:        "Thai",
			Servings:           3,
			MaxPrepTimeMinutes: 30,
		},
	)

	assert.Contains(t, prompt, "for dinner")
	assert.Contains(t, prompt, "Cuisine: Thai")
	assert.Contains(t, prompt, "Servings: 3")
	assert.Contains(t, prompt, "30 minutes")
	assert.Contains(t, prompt, "JSON")
}

func TestWeeklyPlanPromptNamesAllRequiredKeys(t *testing.T) {
	prompt := BuildWeeklyPlanPrompt(domain.MealPlanParams{Currency: "GBP", WeeklyBudget: 80})

	assert.Contains(t, prompt, `"monday" through "sunday"`)
	assert.Contains(t, prompt, "totalWeeklyCost")
	assert.Contains(t, prompt, "totalWeeklyCalories")
	assert.Contains(t, prompt, "batchCookingTips")
	assert.Contains(t, prompt, "shoppingTips")
	assert.Contains(t, prompt, "weekly budget")
}
