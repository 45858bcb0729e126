package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"plateplan-backend/domain"

	"github.com/stretchr/testify/assert"
)

const validRecipeJSON = `{
	"title": "Grilled Chicken Salad",
	"description": "A light salad.",
	"instructions": ["Grill the chicken.", "Toss with greens."],
	"ingredients": [
		{"name": "chicken breast", "amount": "500", "unit": "g"},
		{"name": "mixed greens", "amount": "200", "unit": "g"}
	],
	"prepTime": 10,
	"cookTime": 15,
	"servings": 2,
	"difficulty": "easy",
	"cuisineType": "American",
	"dietaryTags": ["high-protein"],
	"nutrition": {"calories": 420, "protein": 45, "carbs": 12, "fat": 18, "fiber": 4, "sugar": 3, "sodium": 380},
	"estimatedCost": 8.5,
	"isBatchCookable": false,
	"isFreezerFriendly": false,
	"isKidFriendly": true
}`

func TestParseRecipeResponseAccepts(t *testing.T) {
	recipe, err := ParseRecipeResponse(validRecipeJSON)

	assert.NoError(t, err)
	assert.Equal(t, "Grilled Chicken Salad", recipe.Title)
	assert.Equal(t, "easy", recipe.Difficulty)
	assert.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, 420.0, recipe.Nutrition.Calories)
}

func TestParseRecipeResponseStripsSurroundingText(t *testing.T) {
	wrapped := "Here is your recipe:\n```json\n" + validRecipeJSON + "\n```\nEnjoy!"

	recipe, err := ParseRecipeResponse(wrapped)

	assert.NoError(t, err)
	assert.Equal(t, "Grilled Chicken Salad", recipe.Title)
}

func TestParseRecipeResponseNormalizesDifficulty(t *testing.T) {
	upper := strings.Replace(validRecipeJSON, `"difficulty": "easy"`, `"difficulty": "Easy"`, 1)

	recipe, err := ParseRecipeResponse(upper)

	assert.NoError(t, err)
	assert.Equal(t, "easy", recipe.Difficulty)
}

func TestParseRecipeResponseRejectsBadDifficulty(t *testing.T) {
	bad := strings.Replace(validRecipeJSON, `"difficulty": "easy"`, `"difficulty": "expert"`, 1)

	_, err := ParseRecipeResponse(bad)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "difficulty")
}

func TestParseRecipeResponseRejectsMissingNutritionField(t *testing.T) {
	missing := strings.Replace(validRecipeJSON, `"sodium": 380`, `"extra": 1`, 1)

	_, err := ParseRecipeResponse(missing)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sodium")
}

func TestParseRecipeResponseRejectsEmptyInstructions(t *testing.T) {
	empty := strings.Replace(validRecipeJSON, `"instructions": ["Grill the chicken.", "Toss with greens."]`, `"instructions": []`, 1)

	_, err := ParseRecipeResponse(empty)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "instructions")
}

func TestParseRecipeResponseRejectsNonJSON(t *testing.T) {
	_, err := ParseRecipeResponse("I am sorry, I cannot help with that.")

	assert.Error(t, err)
}

func weeklyPlanJSON(t *testing.T, days []string) string {
	t.Helper()

	var recipe map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(validRecipeJSON), &recipe))

	plan := map[string]interface{}{
		"totalWeeklyCost":     84.5,
		"totalWeeklyCalories": 14200,
		"batchCookingTips":    []string{"Cook rice in bulk."},
		"shoppingTips":        []string{"Buy whole chickens."},
	}
	for _, day := range days {
		plan[day] = map[string]interface{}{
			"breakfast": recipe,
			"lunch":     recipe,
			"dinner":    recipe,
		}
	}

	raw, err := json.Marshal(plan)
	assert.NoError(t, err)
	return string(raw)
}

func TestParseWeeklyPlanResponseAccepts(t *testing.T) {
	plan, err := ParseWeeklyPlanResponse(weeklyPlanJSON(t, domain.DayNames))

	assert.NoError(t, err)
	assert.Len(t, plan.Days, 7)
	assert.Equal(t, 84.5, plan.TotalWeeklyCost)
	assert.NotNil(t, plan.Days["monday"].Dinner)
}

func TestParseWeeklyPlanResponseRejectsMissingDay(t *testing.T) {
	_, err := ParseWeeklyPlanResponse(weeklyPlanJSON(t, domain.DayNames[:6]))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sunday")
}

func TestParseWeeklyPlanResponseRejectsBadSlotRecipe(t *testing.T) {
	text := weeklyPlanJSON(t, domain.DayNames)
	text = strings.Replace(text, `"title":"Grilled Chicken Salad"`, `"title":""`, 1)

	_, err := ParseWeeklyPlanResponse(text)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestParseWeeklyPlanResponseRejectsMissingNutrition(t *testing.T) {
	text := weeklyPlanJSON(t, domain.DayNames)
	text = strings.ReplaceAll(text, `"sodium":380`, `"extra":1`)

	_, err := ParseWeeklyPlanResponse(text)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sodium")
}

func TestExtractJSONBounds(t *testing.T) {
	text := fmt.Sprintf("prefix %s suffix", `{"a": 1}`)

	cleaned, err := extractJSON(text)

	assert.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, cleaned)
}
