package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealPlan struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MemberID            uuid.UUID `json:"member_id"`
	WeekStartDate       time.Time `json:"week_start_date"`
	Meals               string    `json:"meals" gorm:"type:text"` // day -> slot -> recipe JSON
	TotalWeeklyCost     float64   `json:"total_weekly_cost"`
	TotalWeeklyCalories int       `json:"total_weekly_calories"`
	BatchCookingTips    string    `json:"batch_cooking_tips,omitempty" gorm:"type:text"`
	ShoppingTips        string    `json:"shopping_tips,omitempty" gorm:"type:text"`
	IsActive            bool      `json:"is_active"`

	Member *HouseholdMember `gorm:"foreignKey:MemberID"`
	Timestamp
}
