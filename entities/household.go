package entities

import (
	"github.com/google/uuid"
)

type Household struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Name            string    `json:"name"`
	WeeklyBudget    float64   `json:"weekly_budget"`
	Currency        string    `json:"currency"` // USD, GBP
	PreferredStores string    `json:"preferred_stores" gorm:"type:text"`
	CookingSkill    string    `json:"cooking_skill,omitempty"`
	Equipment       string    `json:"equipment,omitempty" gorm:"type:text"`

	Owner   *User              `gorm:"foreignKey:OwnerID"`
	Members []*HouseholdMember `gorm:"foreignKey:HouseholdID"`
	Timestamp
}

type HouseholdMember struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID         uuid.UUID `json:"household_id"`
	Name                string    `json:"name"`
	DietaryRestrictions string    `json:"dietary_restrictions" gorm:"type:text"`
	Allergies           string    `json:"allergies" gorm:"type:text"`
	DislikedIngredients string    `json:"disliked_ingredients" gorm:"type:text"`
	MedicalConditions   string    `json:"medical_conditions" gorm:"type:text"`
	Age                 int       `json:"age,omitempty"`
	Gender              string    `json:"gender,omitempty"`
	WeightKg            float64   `json:"weight_kg,omitempty"`
	HeightCm            float64   `json:"height_cm,omitempty"`
	ActivityLevel       string    `json:"activity_level,omitempty"`
	FitnessGoal         string    `json:"fitness_goal,omitempty"`

	Household *Household  `gorm:"foreignKey:HouseholdID"`
	MealPlans []*MealPlan `gorm:"foreignKey:MemberID"`
	Timestamp
}
