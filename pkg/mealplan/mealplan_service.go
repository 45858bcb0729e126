package mealplan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"plateplan-backend/domain"
	"plateplan-backend/entities"
	"plateplan-backend/pkg/gemini"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		GenerateMealPlan(ctx context.Context, memberID string, req domain.GenerateMealPlanRequest, userID string) (domain.MealPlanResponse, error)
		GetMealPlans(ctx context.Context, memberID string, userID string) ([]domain.MealPlanResponse, error)
		ActivateMealPlan(ctx context.Context, planID string, userID string) error
		SaveFeedback(ctx context.Context, planID string, req domain.MealPlanFeedbackRequest, userID string) error
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		generator          gemini.Generator
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository, generator gemini.Generator) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		generator:          generator,
	}
}

func decodeList(raw string) []string {
	var items []string
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// BuildParams assembles the prompt parameter bundle from a member's
// profile and their household's preferences.
func BuildParams(member *entities.HouseholdMember, household *entities.Household, familySize int) domain.MealPlanParams {
	params := domain.MealPlanParams{
		FamilySize:          familySize,
		WeeklyBudget:        household.WeeklyBudget,
		Currency:            household.Currency,
		DietaryRestrictions: decodeList(member.DietaryRestrictions),
		Allergies:           decodeList(member.Allergies),
		DislikedIngredients: decodeList(member.DislikedIngredients),
		MedicalConditions:   decodeList(member.MedicalConditions),
		CookingSkill:        household.CookingSkill,
		Equipment:           decodeList(household.Equipment),
		Age:                 member.Age,
		Gender:              member.Gender,
		WeightKg:            member.WeightKg,
		HeightCm:            member.HeightCm,
		ActivityLevel:       member.ActivityLevel,
		PrimaryGoal:         member.FitnessGoal,
	}
	if member.FitnessGoal != "" {
		params.HealthGoals = []string{member.FitnessGoal}
	}
	return params
}

func (s *mealPlanService) loadMemberAndHousehold(ctx context.Context, memberID string, userID string) (*entities.HouseholdMember, *entities.Household, error) {
	member, err := s.mealPlanRepository.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrMemberNotFound
		}
		return nil, nil, err
	}

	household, err := s.mealPlanRepository.GetHouseholdByID(ctx, member.HouseholdID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrHouseholdNotFound
		}
		return nil, nil, err
	}

	if household.OwnerID.String() != userID {
		return nil, nil, domain.ErrUnauthorizedHousehold
	}

	return member, household, nil
}

func (s *mealPlanService) GenerateMealPlan(ctx context.Context, memberID string, req domain.GenerateMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	member, household, err := s.loadMemberAndHousehold(ctx, memberID, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	weekStart := time.Now()
	if req.WeekStartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.WeekStartDate)
		if err == nil {
			weekStart = parsed
		}
	}

	familySize := 1
	if count, err := s.mealPlanRepository.CountMembersByHouseholdID(ctx, household.ID.String()); err == nil && count > 0 {
		familySize = int(count)
	}
	params := BuildParams(member, household, familySize)

	generated, err := s.generator.GenerateWeeklyPlan(ctx, params)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	mealsJSON, err := json.Marshal(generated.Days)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	batchTips, _ := json.Marshal(generated.BatchCookingTips)
	shoppingTips, _ := json.Marshal(generated.ShoppingTips)

	plan := &entities.MealPlan{
		ID:                  uuid.New(),
		MemberID:            member.ID,
		WeekStartDate:       weekStart,
		Meals:               string(mealsJSON),
		TotalWeeklyCost:     generated.TotalWeeklyCost,
		TotalWeeklyCalories: int(generated.TotalWeeklyCalories),
		BatchCookingTips:    string(batchTips),
		ShoppingTips:        string(shoppingTips),
	}

	if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	// Supersedes any previously active plan; last writer wins.
	if err := s.mealPlanRepository.ActivateMealPlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	return planResponse(plan), nil
}

func planResponse(plan *entities.MealPlan) domain.MealPlanResponse {
	meals := map[string]domain.DayMeals{}
	_ = json.Unmarshal([]byte(plan.Meals), &meals)

	return domain.MealPlanResponse{
		ID:                  plan.ID.String(),
		MemberID:            plan.MemberID.String(),
		WeekStartDate:       plan.WeekStartDate,
		Meals:               meals,
		TotalWeeklyCost:     plan.TotalWeeklyCost,
		TotalWeeklyCalories: plan.TotalWeeklyCalories,
		BatchCookingTips:    decodeList(plan.BatchCookingTips),
		ShoppingTips:        decodeList(plan.ShoppingTips),
		IsActive:            plan.IsActive,
		CreatedAt:           plan.CreatedAt,
	}
}

func (s *mealPlanService) GetMealPlans(ctx context.Context, memberID string, userID string) ([]domain.MealPlanResponse, error) {
	if _, _, err := s.loadMemberAndHousehold(ctx, memberID, userID); err != nil {
		return nil, err
	}

	plans, err := s.mealPlanRepository.GetMealPlansByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		response = append(response, planResponse(plan))
	}
	return response, nil
}

func (s *mealPlanService) ActivateMealPlan(ctx context.Context, planID string, userID string) error {
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealPlanNotFound
		}
		return err
	}

	if _, _, err := s.loadMemberAndHousehold(ctx, plan.MemberID.String(), userID); err != nil {
		return err
	}

	return s.mealPlanRepository.ActivateMealPlan(ctx, plan)
}

func (s *mealPlanService) SaveFeedback(ctx context.Context, planID string, req domain.MealPlanFeedbackRequest, userID string) error {
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealPlanNotFound
		}
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	feedback := &entities.MealPlanFeedback{
		ID:         uuid.New(),
		UserID:     userUUID,
		MealPlanID: plan.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Reaction:   req.Reaction,
	}

	return s.mealPlanRepository.CreateFeedback(ctx, feedback)
}
