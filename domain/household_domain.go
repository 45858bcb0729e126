package domain

import (
	"errors"
)

var (
	MessageSuccessCreateHousehold = "household created successfully"
	MessageSuccessGetHousehold    = "household retrieved successfully"
	MessageSuccessUpdateHousehold = "household updated successfully"
	MessageSuccessAddMember       = "household member added successfully"
	MessageSuccessGetMembers      = "household members retrieved successfully"
	MessageSuccessUpdateMember    = "household member updated successfully"
	MessageSuccessDeleteMember    = "household member removed successfully"

	MessageFailedCreateHousehold = "failed to create household"
	MessageFailedGetHousehold    = "failed to retrieve household"
	MessageFailedUpdateHousehold = "failed to update household"
	MessageFailedAddMember       = "failed to add household member"
	MessageFailedGetMembers      = "failed to retrieve household members"
	MessageFailedUpdateMember    = "failed to update household member"
	MessageFailedDeleteMember    = "failed to remove household member"

	ErrHouseholdNotFound      = errors.New("household not found")
	ErrMemberNotFound         = errors.New("household member not found")
	ErrInvalidCurrency        = errors.New("currency must be USD or GBP")
	ErrHouseholdAlreadyExists = errors.New("user already owns a household")
	ErrUnauthorizedHousehold  = errors.New("unauthorized access to household")
)

type (
	CreateHouseholdRequest struct {
		Name            string   `json:"name" validate:"required"`
		WeeklyBudget    float64  `json:"weekly_budget" validate:"required,gt=0"`
		Currency        string   `json:"currency" validate:"required,oneof=USD GBP"`
		PreferredStores []string `json:"preferred_stores" validate:"omitempty"`
		CookingSkill    string   `json:"cooking_skill" validate:"omitempty,oneof=beginner intermediate advanced"`
		Equipment       []string `json:"equipment" validate:"omitempty"`
	}

	UpdateHouseholdRequest struct {
		Name            string   `json:"name" validate:"omitempty"`
		WeeklyBudget    float64  `json:"weekly_budget" validate:"omitempty,gt=0"`
		Currency        string   `json:"currency" validate:"omitempty,oneof=USD GBP"`
		PreferredStores []string `json:"preferred_stores" validate:"omitempty"`
		CookingSkill    string   `json:"cooking_skill" validate:"omitempty,oneof=beginner intermediate advanced"`
		Equipment       []string `json:"equipment" validate:"omitempty"`
	}

	HouseholdResponse struct {
		ID              string   `json:"id"`
		Name            string   `json:"name"`
		WeeklyBudget    float64  `json:"weekly_budget"`
		Currency        string   `json:"currency"`
		PreferredStores []string `json:"preferred_stores"`
		CookingSkill    string   `json:"cooking_skill,omitempty"`
		Equipment       []string `json:"equipment,omitempty"`
		MemberCount     int      `json:"member_count"`
	}

	AddMemberRequest struct {
		Name                string   `json:"name" validate:"required"`
		DietaryRestrictions []string `json:"dietary_restrictions" validate:"omitempty"`
		Allergies           []string `json:"allergies" validate:"omitempty"`
		DislikedIngredients []string `json:"disliked_ingredients" validate:"omitempty"`
		MedicalConditions   []string `json:"medical_conditions" validate:"omitempty"`
		Age                 int      `json:"age" validate:"omitempty,min=0"`
		Gender              string   `json:"gender" validate:"omitempty"`
		WeightKg            float64  `json:"weight_kg" validate:"omitempty,gt=0"`
		HeightCm            float64  `json:"height_cm" validate:"omitempty,gt=0"`
		ActivityLevel       string   `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
		FitnessGoal         string   `json:"fitness_goal" validate:"omitempty"`
	}

	UpdateMemberRequest struct {
		Name                string   `json:"name" validate:"omitempty"`
		DietaryRestrictions []string `json:"dietary_restrictions" validate:"omitempty"`
		Allergies           []string `json:"allergies" validate:"omitempty"`
		DislikedIngredients []string `json:"disliked_ingredients" validate:"omitempty"`
		MedicalConditions   []string `json:"medical_conditions" validate:"omitempty"`
		Age                 int      `json:"age" validate:"omitempty,min=0"`
		Gender              string   `json:"gender" validate:"omitempty"`
		WeightKg            float64  `json:"weight_kg" validate:"omitempty,gt=0"`
		HeightCm            float64  `json:"height_cm" validate:"omitempty,gt=0"`
		ActivityLevel       string   `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
		FitnessGoal         string   `json:"fitness_goal" validate:"omitempty"`
	}

	MemberResponse struct {
		ID                  string   `json:"id"`
		HouseholdID         string   `json:"household_id"`
		Name                string   `json:"name"`
		DietaryRestrictions []string `json:"dietary_restrictions"`
		Allergies           []string `json:"allergies"`
		DislikedIngredients []string `json:"disliked_ingredients"`
		MedicalConditions   []string `json:"medical_conditions"`
		Age                 int      `json:"age,omitempty"`
		Gender              string   `json:"gender,omitempty"`
		WeightKg            float64  `json:"weight_kg,omitempty"`
		HeightCm            float64  `json:"height_cm,omitempty"`
		ActivityLevel       string   `json:"activity_level,omitempty"`
		FitnessGoal         string   `json:"fitness_goal,omitempty"`
		HasActiveMealPlan   bool     `json:"has_active_meal_plan"`
	}
)
