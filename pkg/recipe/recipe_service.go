package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"plateplan-backend/domain"
	"plateplan-backend/entities"
	"plateplan-backend/internal/utils/storage"
	"plateplan-backend/pkg/gemini"
	"plateplan-backend/pkg/household"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, limit int, offset int) ([]domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, recipeID string) (domain.RecipeResponse, error)
		UploadRecipeImage(ctx context.Context, recipeID string, req domain.UploadRecipeImageRequest) (string, error)
		SaveFeedback(ctx context.Context, recipeID string, req domain.RecipeFeedbackRequest, userID string) error
	}

	recipeService struct {
		recipeRepository    RecipeRepository
		householdRepository household.HouseholdRepository
		generator           gemini.Generator
		awsS3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, householdRepository household.HouseholdRepository, generator gemini.Generator, awsS3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:    recipeRepository,
		householdRepository: householdRepository,
		generator:           generator,
		awsS3:               awsS3,
	}
}

func encodeJSON(v any) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}

func decodeStrings(raw string) []string {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	return items
}

// paramsFor seeds the prompt with the caller's household context when
// one exists; generation still works for users without a household.
func (s *recipeService) paramsFor(ctx context.Context, req domain.GenerateRecipeRequest, userID string) domain.MealPlanParams {
	params := domain.MealPlanParams{
		Currency:            req.Currency,
		DietaryRestrictions: req.DietaryRestrictions,
		Allergies:           req.Allergies,
		DislikedIngredients: req.DislikedIngredients,
	}

	hh, err := s.householdRepository.GetHouseholdByOwnerID(ctx, userID)
	if err != nil {
		return params
	}

	if params.Currency == "" {
		params.Currency = hh.Currency
	}
	params.CookingSkill = hh.CookingSkill
	params.Equipment = decodeStrings(hh.Equipment)

	if members, err := s.householdRepository.GetMembersByHouseholdID(ctx, hh.ID.String()); err == nil {
		params.FamilySize = len(members)
	}
	return params
}

func (s *recipeService) GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	params := s.paramsFor(ctx, req, userID)

	generated, err := s.generator.GenerateRecipe(ctx, params, req)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:                uuid.New(),
		Title:             generated.Title,
		Description:       generated.Description,
		PrepTimeMinutes:   generated.PrepTime,
		CookTimeMinutes:   generated.CookTime,
		Servings:          generated.Servings,
		DifficultyLevel:   generated.Difficulty,
		CuisineType:       generated.CuisineType,
		Ingredients:       encodeJSON(generated.Ingredients),
		Instructions:      encodeJSON(generated.Instructions),
		NutritionFacts:    encodeJSON(generated.Nutrition),
		DietaryTags:       encodeJSON(generated.DietaryTags),
		Tips:              encodeJSON(generated.Tips),
		EstimatedCost:     generated.EstimatedCost,
		IsBatchCookable:   generated.IsBatchCookable,
		IsFreezerFriendly: generated.IsFreezerFriendly,
		IsKidFriendly:     generated.IsKidFriendly,
		IsGenerated:       true,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return recipeResponse(recipe), nil
}

func recipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	var ingredients []domain.Ingredient
	if err := json.Unmarshal([]byte(recipe.Ingredients), &ingredients); err != nil {
		ingredients = []domain.Ingredient{}
	}

	var nutrition domain.NutritionFacts
	_ = json.Unmarshal([]byte(recipe.NutritionFacts), &nutrition)

	return domain.RecipeResponse{
		ID:                recipe.ID.String(),
		Title:             recipe.Title,
		Description:       recipe.Description,
		ImageURL:          recipe.ImageURL,
		Instructions:      decodeStrings(recipe.Instructions),
		Ingredients:       ingredients,
		PrepTimeMinutes:   recipe.PrepTimeMinutes,
		CookTimeMinutes:   recipe.CookTimeMinutes,
		Servings:          recipe.Servings,
		DifficultyLevel:   recipe.DifficultyLevel,
		CuisineType:       recipe.CuisineType,
		DietaryTags:       decodeStrings(recipe.DietaryTags),
		Nutrition:         nutrition,
		EstimatedCost:     recipe.EstimatedCost,
		IsBatchCookable:   recipe.IsBatchCookable,
		IsFreezerFriendly: recipe.IsFreezerFriendly,
		IsKidFriendly:     recipe.IsKidFriendly,
		Tips:              decodeStrings(recipe.Tips),
		AverageRating:     recipe.AverageRating,
		RatingCount:       recipe.RatingCount,
		CreatedAt:         recipe.CreatedAt,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, limit int, offset int) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, recipeResponse(recipe))
	}
	return response, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return recipeResponse(recipe), nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, req domain.UploadRecipeImageRequest) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	var objectKey string
	if recipe.ImageURL != "" {
		objectKey, err = s.awsS3.UpdateFile(s.awsS3.GetObjectKeyFromLink(recipe.ImageURL), req.Image, storage.AllowImage...)
	} else {
		fileName := fmt.Sprintf("%s-%d", recipe.ID.String(), time.Now().Unix())
		objectKey, err = s.awsS3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	recipe.ImageURL = s.awsS3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ImageURL, nil
}

func (s *recipeService) SaveFeedback(ctx context.Context, recipeID string, req domain.RecipeFeedbackRequest, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	feedback := &entities.RecipeFeedback{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipe.ID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Reaction: req.Reaction,
	}

	if err := s.recipeRepository.CreateFeedback(ctx, feedback); err != nil {
		return err
	}

	total := recipe.AverageRating*float64(recipe.RatingCount) + float64(req.Rating)
	recipe.RatingCount++
	recipe.AverageRating = total / float64(recipe.RatingCount)

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}
