package user

import (
	"context"

	"plateplan-backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		GetAdminStats(ctx context.Context) (map[string]int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) GetAdminStats(ctx context.Context) (map[string]int64, error) {
	stats := map[string]int64{}

	type countQuery struct {
		key   string
		model interface{}
		where []interface{}
	}

	queries := []countQuery{
		{"total_users", &entities.User{}, nil},
		{"premium_users", &entities.User{}, []interface{}{"is_premium = ?", true}},
		{"total_households", &entities.Household{}, nil},
		{"total_recipes", &entities.Recipe{}, nil},
		{"generated_recipes", &entities.Recipe{}, []interface{}{"is_generated = ?", true}},
		{"total_meal_plans", &entities.MealPlan{}, nil},
		{"active_meal_plans", &entities.MealPlan{}, []interface{}{"is_active = ?", true}},
		{"total_shopping_lists", &entities.ShoppingList{}, nil},
	}

	for _, q := range queries {
		var count int64
		query := r.db.WithContext(ctx).Model(q.model)
		if len(q.where) > 0 {
			query = query.Where(q.where[0], q.where[1:]...)
		}
		if err := query.Count(&count).Error; err != nil {
			return nil, err
		}
		stats[q.key] = count
	}

	return stats, nil
}
