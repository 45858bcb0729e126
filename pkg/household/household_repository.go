package household

import (
	"context"

	"plateplan-backend/entities"

	"gorm.io/gorm"
)

type (
	HouseholdRepository interface {
		CreateHousehold(ctx context.Context, household *entities.Household) error
		GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error)
		GetHouseholdByOwnerID(ctx context.Context, ownerID string) (*entities.Household, error)
		UpdateHousehold(ctx context.Context, household *entities.Household) error
		AddMember(ctx context.Context, member *entities.HouseholdMember) error
		GetMemberByID(ctx context.Context, id string) (*entities.HouseholdMember, error)
		GetMembersByHouseholdID(ctx context.Context, householdID string) ([]*entities.HouseholdMember, error)
		UpdateMember(ctx context.Context, member *entities.HouseholdMember) error
		DeleteMember(ctx context.Context, id string) error
	}

	householdRepository struct {
		db *gorm.DB
	}
)

func NewHouseholdRepository(db *gorm.DB) HouseholdRepository {
	return &householdRepository{db: db}
}

func (r *householdRepository) CreateHousehold(ctx context.Context, household *entities.Household) error {
	return r.db.WithContext(ctx).Create(household).Error
}

func (r *householdRepository) GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error) {
	var household entities.Household
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&household).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

func (r *householdRepository) GetHouseholdByOwnerID(ctx context.Context, ownerID string) (*entities.Household, error) {
	var household entities.Household
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&household).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

func (r *householdRepository) UpdateHousehold(ctx context.Context, household *entities.Household) error {
	return r.db.WithContext(ctx).Save(household).Error
}

func (r *householdRepository) AddMember(ctx context.Context, member *entities.HouseholdMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *householdRepository) GetMemberByID(ctx context.Context, id string) (*entities.HouseholdMember, error) {
	var member entities.HouseholdMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *householdRepository) GetMembersByHouseholdID(ctx context.Context, householdID string) ([]*entities.HouseholdMember, error) {
	var members []*entities.HouseholdMember
	if err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *householdRepository) UpdateMember(ctx context.Context, member *entities.HouseholdMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *householdRepository) DeleteMember(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.HouseholdMember{}).Error
}
