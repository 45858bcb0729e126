package entities

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingList struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID        uuid.UUID `json:"household_id"`
	WeekStartDate      time.Time `json:"week_start_date"`
	Items              string    `json:"items" gorm:"type:text"`
	TotalEstimatedCost *float64  `json:"total_estimated_cost,omitempty"`
	IsCompleted        bool      `json:"is_completed"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}

type PantryItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID  `json:"household_id"`
	Name        string     `json:"name"`
	Quantity    string     `json:"quantity"`
	UnitMeasure string     `json:"unit_measure"`
	Category    string     `json:"category"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	Notes       string     `json:"notes,omitempty"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}

type GroceryPrice struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemName    string    `json:"item_name"`
	StoreName   string    `json:"store_name"`
	Price       float64   `json:"price"`
	UnitMeasure string    `json:"unit_measure"`
	LastUpdated time.Time `json:"last_updated"`

	Timestamp
}
