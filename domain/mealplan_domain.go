package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	MessageSuccessGenerateMealPlan = "meal plan generated successfully"
	MessageSuccessGetMealPlans     = "meal plans retrieved successfully"
	MessageSuccessActivateMealPlan = "meal plan activated successfully"
	MessageSuccessSavePlanFeedback = "meal plan feedback saved successfully"

	MessageFailedGenerateMealPlan = "failed to generate meal plan"
	MessageFailedGetMealPlans     = "failed to retrieve meal plans"
	MessageFailedActivateMealPlan = "failed to activate meal plan"
	MessageFailedSavePlanFeedback = "failed to save meal plan feedback"

	ErrMealPlanNotFound = errors.New("meal plan not found")
)

// DayNames lists the seven lowercase day keys of a weekly plan, in order.
var DayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

type (
	// DayMeals holds one day's slots. Absent slots stay nil.
	DayMeals struct {
		Breakfast *GeneratedRecipe  `json:"breakfast,omitempty"`
		Lunch     *GeneratedRecipe  `json:"lunch,omitempty"`
		Dinner    *GeneratedRecipe  `json:"dinner,omitempty"`
		Snacks    []GeneratedRecipe `json:"snacks,omitempty"`
	}

	// GeneratedWeeklyPlan is the weekly-plan response contract expected
	// back from the model: the seven lowercase day names plus totals and tips.
	GeneratedWeeklyPlan struct {
		Days                map[string]DayMeals `json:"-"`
		TotalWeeklyCost     float64             `json:"totalWeeklyCost"`
		TotalWeeklyCalories float64             `json:"totalWeeklyCalories"`
		BatchCookingTips    []string            `json:"batchCookingTips"`
		ShoppingTips        []string            `json:"shoppingTips"`
	}

	// MealPlanParams is the parameter bundle the prompt is rendered from.
	// Every non-empty field is enumerated in the instruction block.
	MealPlanParams struct {
		FamilySize          int
		WeeklyBudget        float64
		Currency            string // USD, GBP
		DietaryRestrictions []string
		Allergies           []string
		DislikedIngredients []string
		MedicalConditions   []string
		CookingSkill        string
		Equipment           []string
		HealthGoals         []string
		Age                 int
		Gender              string
		WeightKg            float64
		HeightCm            float64
		ActivityLevel       string
		PrimaryGoal         string
	}

	GenerateMealPlanRequest struct {
		WeekStartDate string `json:"week_start_date" validate:"omitempty"`
	}

	MealPlanResponse struct {
		ID                  string              `json:"id"`
		MemberID            string              `json:"member_id"`
		WeekStartDate       time.Time           `json:"week_start_date"`
		Meals               map[string]DayMeals `json:"meals"`
		TotalWeeklyCost     float64             `json:"total_weekly_cost"`
		TotalWeeklyCalories int                 `json:"total_weekly_calories"`
		BatchCookingTips    []string            `json:"batch_cooking_tips,omitempty"`
		ShoppingTips        []string            `json:"shopping_tips,omitempty"`
		IsActive            bool                `json:"is_active"`
		CreatedAt           time.Time           `json:"created_at"`
	}

	MealPlanFeedbackRequest struct {
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Comment  string `json:"comment" validate:"omitempty"`
		Reaction string `json:"reaction" validate:"omitempty,oneof=like dislike neutral"`
	}
)

// UnmarshalJSON lifts the seven day keys out of the flat response object
// alongside the top-level totals and tips.
func (p *GeneratedWeeklyPlan) UnmarshalJSON(data []byte) error {
	type alias GeneratedWeeklyPlan
	aux := (*alias)(p)
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Days = make(map[string]DayMeals, len(DayNames))
	for _, day := range DayNames {
		rawDay, ok := raw[day]
		if !ok {
			continue
		}
		var meals DayMeals
		if err := json.Unmarshal(rawDay, &meals); err != nil {
			return err
		}
		p.Days[day] = meals
	}
	return nil
}

func (p GeneratedWeeklyPlan) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Days)+4)
	for day, meals := range p.Days {
		out[day] = meals
	}
	out["totalWeeklyCost"] = p.TotalWeeklyCost
	out["totalWeeklyCalories"] = p.TotalWeeklyCalories
	out["batchCookingTips"] = p.BatchCookingTips
	out["shoppingTips"] = p.ShoppingTips
	return json.Marshal(out)
}
