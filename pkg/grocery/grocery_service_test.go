package grocery

import (
	"context"
	"testing"

	"plateplan-backend/domain"
	"plateplan-backend/entities"

	"github.com/stretchr/testify/assert"
)

type mockGroceryRepository struct {
	rows     map[string][]*entities.GroceryPrice
	upserted []string
}

func (m *mockGroceryRepository) GetPricesByItemName(ctx context.Context, itemName string) ([]*entities.GroceryPrice, error) {
	return m.rows[itemName], nil
}

func (m *mockGroceryRepository) UpsertPrice(ctx context.Context, itemName string, storeName string, price float64, unitMeasure string) error {
	m.upserted = append(m.upserted, itemName+"@"+storeName)
	return nil
}

func newTestService(rows map[string][]*entities.GroceryPrice) GroceryService {
	return NewGroceryService(&mockGroceryRepository{rows: rows})
}

func TestCompareGroceryPricesSortsAscending(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.CompareGroceryPrices(context.Background(), []string{"milk"})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	prices := res[0].Prices
	assert.NotEmpty(t, prices)
	for i := 1; i < len(prices); i++ {
		assert.LessOrEqual(t, prices[i-1].Price, prices[i].Price)
	}
}

func TestCompareGroceryPricesRejectsEmptyRequest(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.CompareGroceryPrices(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrNoItemsRequested)
}

func TestCompareGroceryPricesPrefersDatabaseRows(t *testing.T) {
	rows := map[string][]*entities.GroceryPrice{
		"milk": {
			{ItemName: "milk", StoreName: "Corner Shop", Price: 1.99, UnitMeasure: "gallon"},
		},
	}
	svc := newTestService(rows)

	res, err := svc.CompareGroceryPrices(context.Background(), []string{"milk"})

	assert.NoError(t, err)
	assert.Len(t, res[0].Prices, 1)
	assert.Equal(t, "Corner Shop", res[0].Prices[0].Store)
}

func TestFindBestPricesCapsAlternatives(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.FindBestPrices(context.Background(), []string{"milk", "no-such-item"})

	assert.NoError(t, err)
	// Unknown items carry no price data and are dropped.
	assert.Len(t, res, 1)
	assert.Equal(t, "milk", res[0].Item)
	assert.Equal(t, "Aldi", res[0].Best.Store)
	assert.LessOrEqual(t, len(res[0].Alternatives), 3)
	for _, alt := range res[0].Alternatives {
		assert.GreaterOrEqual(t, alt.Price, res[0].Best.Price)
	}
}

func TestOptimizeShoppingRouteOrdersByDistance(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.OptimizeShoppingRoute(domain.OptimizeRouteRequest{
		Stores: []string{"Walmart", "Kroger", "Aldi"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []domain.RouteStop{
		{Store: "Kroger", DistanceKm: 1.2},
		{Store: "Aldi", DistanceKm: 2.5},
		{Store: "Walmart", DistanceKm: 3.2},
	}, res.Route)
	assert.Equal(t, 6.9, res.TotalDistanceKm)
	assert.Equal(t, 69+3*15, res.EstimatedMinutes)
}

func TestOptimizeShoppingRouteUnknownStore(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.OptimizeShoppingRoute(domain.OptimizeRouteRequest{
		Stores: []string{"Nonexistent Mart"},
	})

	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestUpdateGroceryPricesUpsertsEachRow(t *testing.T) {
	repo := &mockGroceryRepository{}
	svc := NewGroceryService(repo)

	err := svc.UpdateGroceryPrices(context.Background(), domain.UpdateGroceryPricesRequest{
		Prices: []domain.UpdateGroceryPriceRequest{
			{ItemName: "milk", StoreName: "Walmart", Price: 3.25},
			{ItemName: "eggs", StoreName: "Aldi", Price: 2.39},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"milk@Walmart", "eggs@Aldi"}, repo.upserted)
}
