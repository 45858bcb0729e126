package grocery

import (
	"context"
	"math"
	"sort"
	"strings"

	"plateplan-backend/domain"
)

type (
	GroceryService interface {
		CompareGroceryPrices(ctx context.Context, items []string) ([]domain.ItemPriceComparison, error)
		FindBestPrices(ctx context.Context, items []string) ([]domain.BestPriceResult, error)
		OptimizeShoppingRoute(req domain.OptimizeRouteRequest) (domain.OptimizedRoute, error)
		UpdateGroceryPrices(ctx context.Context, req domain.UpdateGroceryPricesRequest) error
	}

	groceryService struct {
		groceryRepository GroceryRepository
	}
)

func NewGroceryService(groceryRepository GroceryRepository) GroceryService {
	return &groceryService{groceryRepository: groceryRepository}
}

// pricesFor prefers admin-refreshed rows from the database, falling
// back to the static table when none exist for the item.
func (s *groceryService) pricesFor(ctx context.Context, item string) []domain.StorePrice {
	rows, err := s.groceryRepository.GetPricesByItemName(ctx, item)
	if err == nil && len(rows) > 0 {
		prices := make([]domain.StorePrice, 0, len(rows))
		for _, row := range rows {
			prices = append(prices, domain.StorePrice{
				Store:        row.StoreName,
				Price:        row.Price,
				Unit:         row.UnitMeasure,
				Availability: "in_stock",
			})
		}
		return prices
	}

	static, ok := staticPrices[strings.ToLower(strings.TrimSpace(item))]
	if !ok {
		return nil
	}
	prices := make([]domain.StorePrice, len(static))
	copy(prices, static)
	return prices
}

func (s *groceryService) CompareGroceryPrices(ctx context.Context, items []string) ([]domain.ItemPriceComparison, error) {
	if len(items) == 0 {
		return nil, domain.ErrNoItemsRequested
	}

	comparisons := make([]domain.ItemPriceComparison, 0, len(items))
	for _, item := range items {
		prices := s.pricesFor(ctx, item)
		sort.Slice(prices, func(i, j int) bool {
			return prices[i].Price < prices[j].Price
		})
		comparisons = append(comparisons, domain.ItemPriceComparison{
			Item:   item,
			Prices: prices,
		})
	}
	return comparisons, nil
}

func (s *groceryService) FindBestPrices(ctx context.Context, items []string) ([]domain.BestPriceResult, error) {
	comparisons, err := s.CompareGroceryPrices(ctx, items)
	if err != nil {
		return nil, err
	}

	results := make([]domain.BestPriceResult, 0, len(comparisons))
	for _, comparison := range comparisons {
		if len(comparison.Prices) == 0 {
			continue
		}
		alternatives := comparison.Prices[1:]
		if len(alternatives) > 3 {
			alternatives = alternatives[:3]
		}
		results = append(results, domain.BestPriceResult{
			Item:         comparison.Item,
			Best:         comparison.Prices[0],
			Alternatives: alternatives,
		})
	}
	return results, nil
}

func (s *groceryService) OptimizeShoppingRoute(req domain.OptimizeRouteRequest) (domain.OptimizedRoute, error) {
	stops := make([]domain.RouteStop, 0, len(req.Stores))
	for _, store := range req.Stores {
		distance, ok := storeDistances[store]
		if !ok {
			return domain.OptimizedRoute{}, domain.ErrStoreNotFound
		}
		stops = append(stops, domain.RouteStop{Store: store, DistanceKm: distance})
	}

	// Nearest-first, not a real TSP.
	sort.Slice(stops, func(i, j int) bool {
		return stops[i].DistanceKm < stops[j].DistanceKm
	})

	var total float64
	for _, stop := range stops {
		total += stop.DistanceKm
	}
	total = math.Round(total*10) / 10

	return domain.OptimizedRoute{
		Route:            stops,
		TotalDistanceKm:  total,
		EstimatedMinutes: int(total*10) + len(stops)*15,
	}, nil
}

func (s *groceryService) UpdateGroceryPrices(ctx context.Context, req domain.UpdateGroceryPricesRequest) error {
	for _, price := range req.Prices {
		if err := s.groceryRepository.UpsertPrice(ctx, price.ItemName, price.StoreName, price.Price, price.UnitMeasure); err != nil {
			return err
		}
	}
	return nil
}
