package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGenerateRecipe = "recipe generated successfully"
	MessageSuccessGetRecipes     = "recipes retrieved successfully"
	MessageSuccessGetRecipe      = "recipe retrieved successfully"
	MessageSuccessUploadImage    = "recipe image uploaded successfully"
	MessageSuccessSaveFeedback   = "feedback saved successfully"

	MessageFailedGenerateRecipe = "failed to generate recipe"
	MessageFailedGetRecipes     = "failed to retrieve recipes"
	MessageFailedGetRecipe      = "failed to retrieve recipe"
	MessageFailedUploadImage    = "failed to upload recipe image"
	MessageFailedSaveFeedback   = "failed to save feedback"

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrGenerationFailed = errors.New("failed to generate content")
)

type (
	// Ingredient keeps amount as a free-form string on purpose; the
	// consolidation engine deals with whatever the model produced.
	Ingredient struct {
		Name   string `json:"name"`
		Amount string `json:"amount"`
		Unit   string `json:"unit"`
	}

	NutritionFacts struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Fiber    float64 `json:"fiber"`
		Sugar    float64 `json:"sugar"`
		Sodium   float64 `json:"sodium"`
	}

	// GeneratedRecipe is the single-recipe response contract expected
	// back from the model.
	GeneratedRecipe struct {
		Title             string         `json:"title"`
		Description       string         `json:"description"`
		Instructions      []string       `json:"instructions"`
		Ingredients       []Ingredient   `json:"ingredients"`
		PrepTime          int            `json:"prepTime"`
		CookTime          int            `json:"cookTime"`
		Servings          int            `json:"servings"`
		Difficulty        string         `json:"difficulty"` // easy, medium, hard
		CuisineType       string         `json:"cuisineType"`
		DietaryTags       []string       `json:"dietaryTags"`
		Nutrition         NutritionFacts `json:"nutrition"`
		EstimatedCost     float64        `json:"estimatedCost"`
		IsBatchCookable   bool           `json:"isBatchCookable"`
		IsFreezerFriendly bool           `json:"isFreezerFriendly"`
		IsKidFriendly     bool           `json:"isKidFriendly"`
		ImageURL          string         `json:"imageUrl,omitempty"`
		Tips              []string       `json:"tips,omitempty"`
	}

	GenerateRecipeRequest struct {
		MealType            string   `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
		CuisineType         string   `json:"cuisine_type" validate:"omitempty"`
		Servings            int      `json:"servings" validate:"omitempty,min=1"`
		MaxPrepTimeMinutes  int      `json:"max_prep_time_minutes" validate:"omitempty,min=1"`
		DietaryRestrictions []string `json:"dietary_restrictions" validate:"omitempty"`
		Allergies           []string `json:"allergies" validate:"omitempty"`
		DislikedIngredients []string `json:"disliked_ingredients" validate:"omitempty"`
		BudgetPerServing    float64  `json:"budget_per_serving" validate:"omitempty,gt=0"`
		Currency            string   `json:"currency" validate:"omitempty,oneof=USD GBP"`
	}

	RecipeResponse struct {
		ID                string         `json:"id"`
		Title             string         `json:"title"`
		Description       string         `json:"description"`
		ImageURL          string         `json:"image_url,omitempty"`
		Instructions      []string       `json:"instructions"`
		Ingredients       []Ingredient   `json:"ingredients"`
		PrepTimeMinutes   int            `json:"prep_time_minutes"`
		CookTimeMinutes   int            `json:"cook_time_minutes"`
		Servings          int            `json:"servings"`
		DifficultyLevel   string         `json:"difficulty_level"`
		CuisineType       string         `json:"cuisine_type"`
		DietaryTags       []string       `json:"dietary_tags"`
		Nutrition         NutritionFacts `json:"nutrition"`
		EstimatedCost     float64        `json:"estimated_cost"`
		IsBatchCookable   bool           `json:"is_batch_cookable"`
		IsFreezerFriendly bool           `json:"is_freezer_friendly"`
		IsKidFriendly     bool           `json:"is_kid_friendly"`
		Tips              []string       `json:"tips,omitempty"`
		AverageRating     float64        `json:"average_rating"`
		RatingCount       int            `json:"rating_count"`
		CreatedAt         time.Time      `json:"created_at"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeFeedbackRequest struct {
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Comment  string `json:"comment" validate:"omitempty"`
		Reaction string `json:"reaction" validate:"omitempty,oneof=like dislike neutral"`
	}
)
