package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateShoppingList = "shopping list generated successfully"
	MessageSuccessGetShoppingLists     = "shopping lists retrieved successfully"
	MessageSuccessGetShoppingList      = "shopping list retrieved successfully"
	MessageSuccessCompleteShoppingList = "shopping list marked as completed"
	MessageSuccessEmailShoppingList    = "shopping list sent by email"

	MessageFailedGenerateShoppingList = "failed to generate shopping list"
	MessageFailedGetShoppingLists     = "failed to retrieve shopping lists"
	MessageFailedGetShoppingList      = "failed to retrieve shopping list"
	MessageFailedCompleteShoppingList = "failed to mark shopping list as completed"
	MessageFailedEmailShoppingList    = "failed to send shopping list by email"

	ErrNoActiveMealPlans    = errors.New("no active meal plans found for household members")
	ErrShoppingListNotFound = errors.New("shopping list not found")
)

type (
	// ShoppingListItem is one consolidated entry. Amount stays a display
	// string: either a plain number (unit in Unit) or a combined
	// "200 g + 1 cup" form with Unit blanked.
	ShoppingListItem struct {
		Name           string   `json:"name"`
		Amount         string   `json:"amount"`
		Unit           string   `json:"unit"`
		Category       string   `json:"category"`
		EstimatedPrice *float64 `json:"estimated_price,omitempty"`
		BestStore      string   `json:"best_store,omitempty"`
	}

	ShoppingListResponse struct {
		ID                 string             `json:"id"`
		HouseholdID        string             `json:"household_id"`
		WeekStartDate      time.Time          `json:"week_start_date"`
		Items              []ShoppingListItem `json:"items"`
		TotalEstimatedCost *float64           `json:"total_estimated_cost,omitempty"`
		IsCompleted        bool               `json:"is_completed"`
		CreatedAt          time.Time          `json:"created_at"`
	}

	EmailShoppingListRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
