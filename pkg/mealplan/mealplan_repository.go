package mealplan

import (
	"context"

	"plateplan-backend/entities"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		GetMealPlansByMemberID(ctx context.Context, memberID string) ([]*entities.MealPlan, error)
		GetActiveMealPlanByMemberID(ctx context.Context, memberID string) (*entities.MealPlan, error)
		ActivateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		CreateFeedback(ctx context.Context, feedback *entities.MealPlanFeedback) error

		GetMemberByID(ctx context.Context, id string) (*entities.HouseholdMember, error)
		GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error)
		CountMembersByHouseholdID(ctx context.Context, householdID string) (int64, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetMealPlansByMemberID(ctx context.Context, memberID string) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at desc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) GetActiveMealPlanByMemberID(ctx context.Context, memberID string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("member_id = ? AND is_active = ?", memberID, true).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// ActivateMealPlan deactivates any other active plan for the member and
// activates the given one inside a single transaction, so at most one
// plan per member is ever active.
func (r *mealPlanRepository) ActivateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.MealPlan{}).
			Where("member_id = ? AND is_active = ? AND id <> ?", plan.MemberID, true, plan.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		plan.IsActive = true
		return tx.Model(&entities.MealPlan{}).
			Where("id = ?", plan.ID).
			Update("is_active", true).Error
	})
}

func (r *mealPlanRepository) CreateFeedback(ctx context.Context, feedback *entities.MealPlanFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *mealPlanRepository) GetMemberByID(ctx context.Context, id string) (*entities.HouseholdMember, error) {
	var member entities.HouseholdMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *mealPlanRepository) GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error) {
	var household entities.Household
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&household).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

func (r *mealPlanRepository) CountMembersByHouseholdID(ctx context.Context, householdID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.HouseholdMember{}).
		Where("household_id = ?", householdID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
