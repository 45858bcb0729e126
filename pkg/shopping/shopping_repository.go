package shopping

import (
	"context"

	"plateplan-backend/entities"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error
		GetShoppingListByID(ctx context.Context, id string) (*entities.ShoppingList, error)
		GetShoppingListsByHouseholdID(ctx context.Context, householdID string) ([]*entities.ShoppingList, error)
		UpdateShoppingList(ctx context.Context, list *entities.ShoppingList) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *shoppingRepository) GetShoppingListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingRepository) GetShoppingListsByHouseholdID(ctx context.Context, householdID string) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingRepository) UpdateShoppingList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Save(list).Error
}
