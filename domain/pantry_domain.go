package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"

	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
)

type (
	AddPantryItemRequest struct {
		Name        string `json:"name" validate:"required"`
		Quantity    string `json:"quantity" validate:"required"`
		UnitMeasure string `json:"unit_measure" validate:"omitempty"`
		Category    string `json:"category" validate:"omitempty"`
		ExpiryDate  string `json:"expiry_date" validate:"omitempty"`
		Notes       string `json:"notes" validate:"omitempty"`
	}

	UpdatePantryItemRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Quantity    string `json:"quantity" validate:"omitempty"`
		UnitMeasure string `json:"unit_measure" validate:"omitempty"`
		Category    string `json:"category" validate:"omitempty"`
		ExpiryDate  string `json:"expiry_date" validate:"omitempty"`
		Notes       string `json:"notes" validate:"omitempty"`
	}

	PantryItemResponse struct {
		ID          string     `json:"id"`
		HouseholdID string     `json:"household_id"`
		Name        string     `json:"name"`
		Quantity    string     `json:"quantity"`
		UnitMeasure string     `json:"unit_measure"`
		Category    string     `json:"category"`
		ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
		Notes       string     `json:"notes,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}
)
