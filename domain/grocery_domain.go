package domain

import (
	"errors"
)

var (
	MessageSuccessComparePrices = "price comparison retrieved successfully"
	MessageSuccessBestPrices    = "best prices retrieved successfully"
	MessageSuccessOptimizeRoute = "shopping route optimized successfully"
	MessageSuccessUpdatePrices  = "grocery prices updated successfully"

	MessageFailedComparePrices = "failed to compare grocery prices"
	MessageFailedBestPrices    = "failed to retrieve best prices"
	MessageFailedOptimizeRoute = "failed to optimize shopping route"
	MessageFailedUpdatePrices  = "failed to update grocery prices"

	ErrNoItemsRequested = errors.New("no items requested")
	ErrStoreNotFound    = errors.New("store not found")
)

type (
	StorePrice struct {
		Store        string  `json:"store"`
		Price        float64 `json:"price"`
		Unit         string  `json:"unit"`
		Availability string  `json:"availability"`
	}

	ItemPriceComparison struct {
		Item   string       `json:"item"`
		Prices []StorePrice `json:"prices"`
	}

	BestPriceResult struct {
		Item         string       `json:"item"`
		Best         StorePrice   `json:"best"`
		Alternatives []StorePrice `json:"alternatives"`
	}

	OptimizeRouteRequest struct {
		Stores []string `json:"stores" validate:"required,min=1"`
	}

	RouteStop struct {
		Store      string  `json:"store"`
		DistanceKm float64 `json:"distance_km"`
	}

	OptimizedRoute struct {
		Route            []RouteStop `json:"route"`
		TotalDistanceKm  float64     `json:"total_distance_km"`
		EstimatedMinutes int         `json:"estimated_minutes"`
	}

	UpdateGroceryPriceRequest struct {
		ItemName    string  `json:"item_name" validate:"required"`
		StoreName   string  `json:"store_name" validate:"required"`
		Price       float64 `json:"price" validate:"required,gt=0"`
		UnitMeasure string  `json:"unit_measure" validate:"omitempty"`
	}

	UpdateGroceryPricesRequest struct {
		Prices []UpdateGroceryPriceRequest `json:"prices" validate:"required,dive"`
	}
)
