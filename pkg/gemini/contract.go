package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"plateplan-backend/domain"
)

// The model's raw output is never trusted as-is: every response passes
// through these structural checks before anything is persisted.

func extractJSON(text string) (string, error) {
	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return "", fmt.Errorf("could not find JSON object in response: %s", text)
	}
	return text[startIdx : endIdx+1], nil
}

func validDifficulty(d string) bool {
	switch d {
	case "easy", "medium", "hard":
		return true
	}
	return false
}

var nutritionFields = []string{"calories", "protein", "carbs", "fat", "fiber", "sugar", "sodium"}

// checkNutrition probes the raw recipe object so a missing nutrition
// field can be told apart from an explicit zero.
func checkNutrition(raw json.RawMessage) error {
	var probe struct {
		Nutrition map[string]json.RawMessage `json:"nutrition"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("invalid recipe JSON: %w", err)
	}
	for _, field := range nutritionFields {
		if _, ok := probe.Nutrition[field]; !ok {
			return fmt.Errorf("recipe nutrition is missing %q", field)
		}
	}
	return nil
}

func validateRecipe(r *domain.GeneratedRecipe) error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("recipe is missing a title")
	}
	if len(r.Instructions) == 0 {
		return fmt.Errorf("recipe %q has no instructions", r.Title)
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("recipe %q has no ingredients", r.Title)
	}
	for i, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return fmt.Errorf("recipe %q ingredient %d has no name", r.Title, i)
		}
	}
	if !validDifficulty(r.Difficulty) {
		return fmt.Errorf("recipe %q has invalid difficulty %q", r.Title, r.Difficulty)
	}
	if r.Servings <= 0 {
		return fmt.Errorf("recipe %q has invalid servings %d", r.Title, r.Servings)
	}
	return nil
}

// ParseRecipeResponse parses and validates a single-recipe response.
func ParseRecipeResponse(text string) (*domain.GeneratedRecipe, error) {
	cleaned, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	if err := checkNutrition(json.RawMessage(cleaned)); err != nil {
		return nil, err
	}

	var recipe domain.GeneratedRecipe
	if err := json.Unmarshal([]byte(cleaned), &recipe); err != nil {
		return nil, fmt.Errorf("invalid recipe JSON: %w", err)
	}
	recipe.Difficulty = strings.ToLower(recipe.Difficulty)

	if err := validateRecipe(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ParseWeeklyPlanResponse parses and validates a weekly-plan response.
// All seven days must be present and every recipe in every slot must
// itself pass the single-recipe checks.
func ParseWeeklyPlanResponse(text string) (*domain.GeneratedWeeklyPlan, error) {
	cleaned, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var plan domain.GeneratedWeeklyPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("invalid weekly plan JSON: %w", err)
	}

	// Raw slots carry the untyped recipe objects for the nutrition probe.
	var rawDays map[string]struct {
		Breakfast json.RawMessage   `json:"breakfast"`
		Lunch     json.RawMessage   `json:"lunch"`
		Dinner    json.RawMessage   `json:"dinner"`
		Snacks    []json.RawMessage `json:"snacks"`
	}
	if err := json.Unmarshal([]byte(cleaned), &rawDays); err != nil {
		return nil, fmt.Errorf("invalid weekly plan JSON: %w", err)
	}

	for _, day := range domain.DayNames {
		meals, ok := plan.Days[day]
		if !ok {
			return nil, fmt.Errorf("weekly plan is missing %s", day)
		}
		rawMeals := rawDays[day]
		slots := []struct {
			name   string
			recipe *domain.GeneratedRecipe
			raw    json.RawMessage
		}{
			{"breakfast", meals.Breakfast, rawMeals.Breakfast},
			{"lunch", meals.Lunch, rawMeals.Lunch},
			{"dinner", meals.Dinner, rawMeals.Dinner},
		}
		for _, slot := range slots {
			if slot.recipe == nil {
				continue
			}
			if err := checkNutrition(slot.raw); err != nil {
				return nil, fmt.Errorf("%s %s: %w", day, slot.name, err)
			}
			slot.recipe.Difficulty = strings.ToLower(slot.recipe.Difficulty)
			if err := validateRecipe(slot.recipe); err != nil {
				return nil, fmt.Errorf("%s %s: %w", day, slot.name, err)
			}
		}
		for i := range meals.Snacks {
			if i < len(rawMeals.Snacks) {
				if err := checkNutrition(rawMeals.Snacks[i]); err != nil {
					return nil, fmt.Errorf("%s snack %d: %w", day, i, err)
				}
			}
			meals.Snacks[i].Difficulty = strings.ToLower(meals.Snacks[i].Difficulty)
			if err := validateRecipe(&meals.Snacks[i]); err != nil {
				return nil, fmt.Errorf("%s snack %d: %w", day, i, err)
			}
		}
	}

	return &plan, nil
}
