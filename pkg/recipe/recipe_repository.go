package recipe

import (
	"context"

	"plateplan-backend/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, limit int, offset int) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		CreateFeedback(ctx context.Context, feedback *entities.RecipeFeedback) error
		GetFeedbackByRecipeID(ctx context.Context, recipeID string) ([]*entities.RecipeFeedback, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, limit int, offset int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	query := r.db.WithContext(ctx).Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) CreateFeedback(ctx context.Context, feedback *entities.RecipeFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *recipeRepository) GetFeedbackByRecipeID(ctx context.Context, recipeID string) ([]*entities.RecipeFeedback, error) {
	var feedback []*entities.RecipeFeedback
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
