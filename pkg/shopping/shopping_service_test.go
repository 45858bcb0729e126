package shopping

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"plateplan-backend/domain"
	"plateplan-backend/entities"
	"plateplan-backend/pkg/grocery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type mockShoppingRepository struct {
	created []*entities.ShoppingList
	lists   map[string]*entities.ShoppingList
}

func (m *mockShoppingRepository) CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error {
	m.created = append(m.created, list)
	return nil
}

func (m *mockShoppingRepository) GetShoppingListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	if list, ok := m.lists[id]; ok {
		return list, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShoppingRepository) GetShoppingListsByHouseholdID(ctx context.Context, householdID string) ([]*entities.ShoppingList, error) {
	return nil, nil
}

func (m *mockShoppingRepository) UpdateShoppingList(ctx context.Context, list *entities.ShoppingList) error {
	return nil
}

type mockHouseholdRepository struct {
	household *entities.Household
	members   []*entities.HouseholdMember
}

func (m *mockHouseholdRepository) CreateHousehold(ctx context.Context, household *entities.Household) error {
	return nil
}

func (m *mockHouseholdRepository) GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error) {
	if m.household == nil || m.household.ID.String() != id {
		return nil, gorm.ErrRecordNotFound
	}
	return m.household, nil
}

func (m *mockHouseholdRepository) GetHouseholdByOwnerID(ctx context.Context, ownerID string) (*entities.Household, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHouseholdRepository) UpdateHousehold(ctx context.Context, household *entities.Household) error {
	return nil
}

func (m *mockHouseholdRepository) AddMember(ctx context.Context, member *entities.HouseholdMember) error {
	return nil
}

func (m *mockHouseholdRepository) GetMemberByID(ctx context.Context, id string) (*entities.HouseholdMember, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHouseholdRepository) GetMembersByHouseholdID(ctx context.Context, householdID string) ([]*entities.HouseholdMember, error) {
	return m.members, nil
}

func (m *mockHouseholdRepository) UpdateMember(ctx context.Context, member *entities.HouseholdMember) error {
	return nil
}

func (m *mockHouseholdRepository) DeleteMember(ctx context.Context, id string) error {
	return nil
}

type mockMealPlanRepository struct {
	activePlans map[string]*entities.MealPlan
	fetchErr    error
}

func (m *mockMealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return nil
}

func (m *mockMealPlanRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMealPlanRepository) GetMealPlansByMemberID(ctx context.Context, memberID string) ([]*entities.MealPlan, error) {
	return nil, nil
}

func (m *mockMealPlanRepository) GetActiveMealPlanByMemberID(ctx context.Context, memberID string) (*entities.MealPlan, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	if plan, ok := m.activePlans[memberID]; ok {
		return plan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMealPlanRepository) CountMembersByHouseholdID(ctx context.Context, householdID string) (int64, error) {
	return int64(len(m.activePlans)), nil
}

func (m *mockMealPlanRepository) ActivateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return nil
}

func (m *mockMealPlanRepository) CreateFeedback(ctx context.Context, feedback *entities.MealPlanFeedback) error {
	return nil
}

func (m *mockMealPlanRepository) GetMemberByID(ctx context.Context, id string) (*entities.HouseholdMember, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMealPlanRepository) GetHouseholdByID(ctx context.Context, id string) (*entities.Household, error) {
	return nil, gorm.ErrRecordNotFound
}

type mockPantryRepository struct {
	items []*entities.PantryItem
}

func (m *mockPantryRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	return nil
}

func (m *mockPantryRepository) GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPantryRepository) GetPantryItemsByHouseholdID(ctx context.Context, householdID string) ([]*entities.PantryItem, error) {
	return m.items, nil
}

func (m *mockPantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return nil
}

func (m *mockPantryRepository) DeletePantryItem(ctx context.Context, id string) error {
	return nil
}

type mockGroceryService struct{}

func (m *mockGroceryService) CompareGroceryPrices(ctx context.Context, items []string) ([]domain.ItemPriceComparison, error) {
	return nil, nil
}

func (m *mockGroceryService) FindBestPrices(ctx context.Context, items []string) ([]domain.BestPriceResult, error) {
	return nil, nil
}

func (m *mockGroceryService) OptimizeShoppingRoute(req domain.OptimizeRouteRequest) (domain.OptimizedRoute, error) {
	return domain.OptimizedRoute{}, nil
}

func (m *mockGroceryService) UpdateGroceryPrices(ctx context.Context, req domain.UpdateGroceryPricesRequest) error {
	return nil
}

var _ grocery.GroceryService = (*mockGroceryService)(nil)

func setupService(household *entities.Household, members []*entities.HouseholdMember, activePlans map[string]*entities.MealPlan, pantryItems []*entities.PantryItem) (ShoppingService, *mockShoppingRepository) {
	shoppingRepo := &mockShoppingRepository{lists: map[string]*entities.ShoppingList{}}
	svc := NewShoppingService(
		shoppingRepo,
		&mockHouseholdRepository{household: household, members: members},
		&mockMealPlanRepository{activePlans: activePlans},
		&mockPantryRepository{items: pantryItems},
		&mockGroceryService{},
	)
	return svc, shoppingRepo
}

func mealsJSON(t *testing.T, ingredients ...domain.Ingredient) string {
	t.Helper()
	raw, err := json.Marshal(planWith(ingredients...))
	assert.NoError(t, err)
	return string(raw)
}

func TestGenerateShoppingListNoActivePlans(t *testing.T) {
	ownerID := uuid.New()
	household := &entities.Household{ID: uuid.New(), OwnerID: ownerID}
	member := &entities.HouseholdMember{ID: uuid.New(), HouseholdID: household.ID}

	svc, repo := setupService(household, []*entities.HouseholdMember{member}, nil, nil)

	_, err := svc.GenerateShoppingList(context.Background(), household.ID.String(), ownerID.String())

	assert.ErrorIs(t, err, domain.ErrNoActiveMealPlans)
	assert.Empty(t, repo.created, "no list row should be persisted")
}

func TestGenerateShoppingListPropagatesPlanFetchFailure(t *testing.T) {
	ownerID := uuid.New()
	household := &entities.Household{ID: uuid.New(), OwnerID: ownerID}
	member := &entities.HouseholdMember{ID: uuid.New(), HouseholdID: household.ID}
	dbErr := errors.New("connection reset by peer")

	shoppingRepo := &mockShoppingRepository{lists: map[string]*entities.ShoppingList{}}
	svc := NewShoppingService(
		shoppingRepo,
		&mockHouseholdRepository{household: household, members: []*entities.HouseholdMember{member}},
		&mockMealPlanRepository{fetchErr: dbErr},
		&mockPantryRepository{},
		&mockGroceryService{},
	)

	_, err := svc.GenerateShoppingList(context.Background(), household.ID.String(), ownerID.String())

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrNoActiveMealPlans)
	assert.Empty(t, shoppingRepo.created)
}

func TestGenerateShoppingListConsolidatesActivePlans(t *testing.T) {
	ownerID := uuid.New()
	household := &entities.Household{ID: uuid.New(), OwnerID: ownerID}
	memberA := &entities.HouseholdMember{ID: uuid.New(), HouseholdID: household.ID}
	memberB := &entities.HouseholdMember{ID: uuid.New(), HouseholdID: household.ID}

	plans := map[string]*entities.MealPlan{
		memberA.ID.String(): {
			ID:    uuid.New(),
			Meals: mealsJSON(t, domain.Ingredient{Name: "carrot", Amount: "2", Unit: "whole"}),
		},
		memberB.ID.String(): {
			ID:    uuid.New(),
			Meals: mealsJSON(t, domain.Ingredient{Name: "carrot", Amount: "3", Unit: "whole"}),
		},
	}

	svc, repo := setupService(household, []*entities.HouseholdMember{memberA, memberB}, plans, nil)

	res, err := svc.GenerateShoppingList(context.Background(), household.ID.String(), ownerID.String())

	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "5", res.Items[0].Amount)
	assert.Nil(t, res.TotalEstimatedCost)
}

func TestGenerateShoppingListExcludesPantry(t *testing.T) {
	ownerID := uuid.New()
	household := &entities.Household{ID: uuid.New(), OwnerID: ownerID}
	member := &entities.HouseholdMember{ID: uuid.New(), HouseholdID: household.ID}

	plans := map[string]*entities.MealPlan{
		member.ID.String(): {
			ID: uuid.New(),
			Meals: mealsJSON(t,
				domain.Ingredient{Name: "Rice", Amount: "2", Unit: "cup"},
				domain.Ingredient{Name: "chicken breast", Amount: "500", Unit: "g"},
			),
		},
	}
	pantryItems := []*entities.PantryItem{
		{ID: uuid.New(), HouseholdID: household.ID, Name: "rice"},
	}

	svc, _ := setupService(household, []*entities.HouseholdMember{member}, plans, pantryItems)

	res, err := svc.GenerateShoppingList(context.Background(), household.ID.String(), ownerID.String())

	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "chicken breast", res.Items[0].Name)
}

func TestGenerateShoppingListUnauthorized(t *testing.T) {
	household := &entities.Household{ID: uuid.New(), OwnerID: uuid.New()}

	svc, repo := setupService(household, nil, nil, nil)

	_, err := svc.GenerateShoppingList(context.Background(), household.ID.String(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedHousehold)
	assert.Empty(t, repo.created)
}
