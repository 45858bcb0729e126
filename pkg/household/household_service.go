package household

import (
	"context"
	"encoding/json"
	"errors"

	"plateplan-backend/domain"
	"plateplan-backend/entities"
	"plateplan-backend/pkg/mealplan"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HouseholdService interface {
		CreateHousehold(ctx context.Context, req domain.CreateHouseholdRequest, userID string) (domain.HouseholdResponse, error)
		GetHousehold(ctx context.Context, householdID string, userID string) (domain.HouseholdResponse, error)
		UpdateHousehold(ctx context.Context, householdID string, req domain.UpdateHouseholdRequest, userID string) error
		AddMember(ctx context.Context, householdID string, req domain.AddMemberRequest, userID string) (domain.MemberResponse, error)
		GetMembers(ctx context.Context, householdID string, userID string) ([]domain.MemberResponse, error)
		UpdateMember(ctx context.Context, memberID string, req domain.UpdateMemberRequest, userID string) error
		DeleteMember(ctx context.Context, memberID string, userID string) error
	}

	householdService struct {
		householdRepository HouseholdRepository
		mealPlanRepository  mealplan.MealPlanRepository
	}
)

func NewHouseholdService(householdRepository HouseholdRepository, mealPlanRepository mealplan.MealPlanRepository) HouseholdService {
	return &householdService{
		householdRepository: householdRepository,
		mealPlanRepository:  mealPlanRepository,
	}
}

func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	raw, _ := json.Marshal(items)
	return string(raw)
}

func decodeList(raw string) []string {
	var items []string
	if raw == "" {
		return []string{}
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	return items
}

func (s *householdService) CreateHousehold(ctx context.Context, req domain.CreateHouseholdRequest, userID string) (domain.HouseholdResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.HouseholdResponse{}, domain.ErrParseUUID
	}

	if _, err := s.householdRepository.GetHouseholdByOwnerID(ctx, userID); err == nil {
		return domain.HouseholdResponse{}, domain.ErrHouseholdAlreadyExists
	}

	household := &entities.Household{
		ID:              uuid.New(),
		OwnerID:         userUUID,
		Name:            req.Name,
		WeeklyBudget:    req.WeeklyBudget,
		Currency:        req.Currency,
		PreferredStores: encodeList(req.PreferredStores),
		CookingSkill:    req.CookingSkill,
		Equipment:       encodeList(req.Equipment),
	}

	if err := s.householdRepository.CreateHousehold(ctx, household); err != nil {
		return domain.HouseholdResponse{}, err
	}

	return domain.HouseholdResponse{
		ID:              household.ID.String(),
		Name:            household.Name,
		WeeklyBudget:    household.WeeklyBudget,
		Currency:        household.Currency,
		PreferredStores: req.PreferredStores,
		CookingSkill:    household.CookingSkill,
		Equipment:       req.Equipment,
		MemberCount:     0,
	}, nil
}

func (s *householdService) getOwnedHousehold(ctx context.Context, householdID string, userID string) (*entities.Household, error) {
	household, err := s.householdRepository.GetHouseholdByID(ctx, householdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHouseholdNotFound
		}
		return nil, err
	}

	if household.OwnerID.String() != userID {
		return nil, domain.ErrUnauthorizedHousehold
	}

	return household, nil
}

func (s *householdService) GetHousehold(ctx context.Context, householdID string, userID string) (domain.HouseholdResponse, error) {
	household, err := s.getOwnedHousehold(ctx, householdID, userID)
	if err != nil {
		return domain.HouseholdResponse{}, err
	}

	members, err := s.householdRepository.GetMembersByHouseholdID(ctx, householdID)
	if err != nil {
		return domain.HouseholdResponse{}, err
	}

	return domain.HouseholdResponse{
		ID:              household.ID.String(),
		Name:            household.Name,
		WeeklyBudget:    household.WeeklyBudget,
		Currency:        household.Currency,
		PreferredStores: decodeList(household.PreferredStores),
		CookingSkill:    household.CookingSkill,
		Equipment:       decodeList(household.Equipment),
		MemberCount:     len(members),
	}, nil
}

func (s *householdService) UpdateHousehold(ctx context.Context, householdID string, req domain.UpdateHouseholdRequest, userID string) error {
	household, err := s.getOwnedHousehold(ctx, householdID, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		household.Name = req.Name
	}
	if req.WeeklyBudget > 0 {
		household.WeeklyBudget = req.WeeklyBudget
	}
	if req.Currency != "" {
		household.Currency = req.Currency
	}
	if req.PreferredStores != nil {
		household.PreferredStores = encodeList(req.PreferredStores)
	}
	if req.CookingSkill != "" {
		household.CookingSkill = req.CookingSkill
	}
	if req.Equipment != nil {
		household.Equipment = encodeList(req.Equipment)
	}

	return s.householdRepository.UpdateHousehold(ctx, household)
}

func (s *householdService) AddMember(ctx context.Context, householdID string, req domain.AddMemberRequest, userID string) (domain.MemberResponse, error) {
	household, err := s.getOwnedHousehold(ctx, householdID, userID)
	if err != nil {
		return domain.MemberResponse{}, err
	}

	member := &entities.HouseholdMember{
		ID:                  uuid.New(),
		HouseholdID:         household.ID,
		Name:                req.Name,
		DietaryRestrictions: encodeList(req.DietaryRestrictions),
		Allergies:           encodeList(req.Allergies),
		DislikedIngredients: encodeList(req.DislikedIngredients),
		MedicalConditions:   encodeList(req.MedicalConditions),
		Age:                 req.Age,
		Gender:              req.Gender,
		WeightKg:            req.WeightKg,
		HeightCm:            req.HeightCm,
		ActivityLevel:       req.ActivityLevel,
		FitnessGoal:         req.FitnessGoal,
	}

	if err := s.householdRepository.AddMember(ctx, member); err != nil {
		return domain.MemberResponse{}, err
	}

	return s.memberResponse(ctx, member), nil
}

func (s *householdService) memberResponse(ctx context.Context, member *entities.HouseholdMember) domain.MemberResponse {
	hasActive := false
	if _, err := s.mealPlanRepository.GetActiveMealPlanByMemberID(ctx, member.ID.String()); err == nil {
		hasActive = true
	}

	return domain.MemberResponse{
		ID:                  member.ID.String(),
		HouseholdID:         member.HouseholdID.String(),
		Name:                member.Name,
		DietaryRestrictions: decodeList(member.DietaryRestrictions),
		Allergies:           decodeList(member.Allergies),
		DislikedIngredients: decodeList(member.DislikedIngredients),
		MedicalConditions:   decodeList(member.MedicalConditions),
		Age:                 member.Age,
		Gender:              member.Gender,
		WeightKg:            member.WeightKg,
		HeightCm:            member.HeightCm,
		ActivityLevel:       member.ActivityLevel,
		FitnessGoal:         member.FitnessGoal,
		HasActiveMealPlan:   hasActive,
	}
}

func (s *householdService) GetMembers(ctx context.Context, householdID string, userID string) ([]domain.MemberResponse, error) {
	if _, err := s.getOwnedHousehold(ctx, householdID, userID); err != nil {
		return nil, err
	}

	members, err := s.householdRepository.GetMembersByHouseholdID(ctx, householdID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MemberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, s.memberResponse(ctx, member))
	}
	return response, nil
}

func (s *householdService) UpdateMember(ctx context.Context, memberID string, req domain.UpdateMemberRequest, userID string) error {
	member, err := s.householdRepository.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMemberNotFound
		}
		return err
	}

	if _, err := s.getOwnedHousehold(ctx, member.HouseholdID.String(), userID); err != nil {
		return err
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	if req.DietaryRestrictions != nil {
		member.DietaryRestrictions = encodeList(req.DietaryRestrictions)
	}
	if req.Allergies != nil {
		member.Allergies = encodeList(req.Allergies)
	}
	if req.DislikedIngredients != nil {
		member.DislikedIngredients = encodeList(req.DislikedIngredients)
	}
	if req.MedicalConditions != nil {
		member.MedicalConditions = encodeList(req.MedicalConditions)
	}
	if req.Age > 0 {
		member.Age = req.Age
	}
	if req.Gender != "" {
		member.Gender = req.Gender
	}
	if req.WeightKg > 0 {
		member.WeightKg = req.WeightKg
	}
	if req.HeightCm > 0 {
		member.HeightCm = req.HeightCm
	}
	if req.ActivityLevel != "" {
		member.ActivityLevel = req.ActivityLevel
	}
	if req.FitnessGoal != "" {
		member.FitnessGoal = req.FitnessGoal
	}

	return s.householdRepository.UpdateMember(ctx, member)
}

func (s *householdService) DeleteMember(ctx context.Context, memberID string, userID string) error {
	member, err := s.householdRepository.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMemberNotFound
		}
		return err
	}

	if _, err := s.getOwnedHousehold(ctx, member.HouseholdID.String(), userID); err != nil {
		return err
	}

	return s.householdRepository.DeleteMember(ctx, memberID)
}
