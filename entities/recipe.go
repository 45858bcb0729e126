package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"image_url,omitempty"`
	PrepTimeMinutes   int       `json:"prep_time_minutes"`
	CookTimeMinutes   int       `json:"cook_time_minutes"`
	Servings          int       `json:"servings"`
	DifficultyLevel   string    `json:"difficulty_level"` // easy, medium, hard
	CuisineType       string    `json:"cuisine_type"`
	Ingredients       string    `json:"ingredients" gorm:"type:text"`
	Instructions      string    `json:"instructions" gorm:"type:text"`
	NutritionFacts    string    `json:"nutrition_facts" gorm:"type:text"`
	DietaryTags       string    `json:"dietary_tags" gorm:"type:text"`
	Tips              string    `json:"tips,omitempty" gorm:"type:text"`
	EstimatedCost     float64   `json:"estimated_cost"`
	IsBatchCookable   bool      `json:"is_batch_cookable"`
	IsFreezerFriendly bool      `json:"is_freezer_friendly"`
	IsKidFriendly     bool      `json:"is_kid_friendly"`
	IsGenerated       bool      `json:"is_generated"`
	AverageRating     float64   `json:"average_rating"`
	RatingCount       int       `json:"rating_count"`

	Timestamp
}

type RecipeFeedback struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Rating   int       `json:"rating"` // 1-5
	Comment  string    `json:"comment,omitempty"`
	Reaction string    `json:"reaction,omitempty"` // like, dislike, neutral

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type MealPlanFeedback struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	MealPlanID uuid.UUID `json:"meal_plan_id"`
	Rating     int       `json:"rating"` // 1-5
	Comment    string    `json:"comment,omitempty"`
	Reaction   string    `json:"reaction,omitempty"` // like, dislike, neutral

	User     *User     `gorm:"foreignKey:UserID"`
	MealPlan *MealPlan `gorm:"foreignKey:MealPlanID"`
	Timestamp
}
