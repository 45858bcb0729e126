package shopping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"plateplan-backend/domain"
	"plateplan-backend/entities"
	"plateplan-backend/internal/utils/mailing"
	"plateplan-backend/pkg/grocery"
	"plateplan-backend/pkg/household"
	"plateplan-backend/pkg/mealplan"
	"plateplan-backend/pkg/pantry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		GenerateShoppingList(ctx context.Context, householdID string, userID string) (domain.ShoppingListResponse, error)
		GetShoppingLists(ctx context.Context, householdID string, userID string) ([]domain.ShoppingListResponse, error)
		CompleteShoppingList(ctx context.Context, listID string, userID string) error
		EmailShoppingList(ctx context.Context, listID string, req domain.EmailShoppingListRequest, userID string) error
	}

	shoppingService struct {
		shoppingRepository  ShoppingRepository
		householdRepository household.HouseholdRepository
		mealPlanRepository  mealplan.MealPlanRepository
		pantryRepository    pantry.PantryRepository
		groceryService      grocery.GroceryService
	}
)

func NewShoppingService(
	shoppingRepository ShoppingRepository,
	householdRepository household.HouseholdRepository,
	mealPlanRepository mealplan.MealPlanRepository,
	pantryRepository pantry.PantryRepository,
	groceryService grocery.GroceryService,
) ShoppingService {
	return &shoppingService{
		shoppingRepository:  shoppingRepository,
		householdRepository: householdRepository,
		mealPlanRepository:  mealPlanRepository,
		pantryRepository:    pantryRepository,
		groceryService:      groceryService,
	}
}

func (s *shoppingService) getOwnedHousehold(ctx context.Context, householdID string, userID string) (*entities.Household, error) {
	hh, err := s.householdRepository.GetHouseholdByID(ctx, householdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHouseholdNotFound
		}
		return nil, err
	}

	if hh.OwnerID.String() != userID {
		return nil, domain.ErrUnauthorizedHousehold
	}
	return hh, nil
}

func (s *shoppingService) GenerateShoppingList(ctx context.Context, householdID string, userID string) (domain.ShoppingListResponse, error) {
	hh, err := s.getOwnedHousehold(ctx, householdID, userID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	members, err := s.householdRepository.GetMembersByHouseholdID(ctx, householdID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	// Members without an active plan are simply skipped; any other
	// repository failure aborts the whole generation.
	var plans []map[string]domain.DayMeals
	for _, member := range members {
		plan, err := s.mealPlanRepository.GetActiveMealPlanByMemberID(ctx, member.ID.String())
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return domain.ShoppingListResponse{}, err
		}
		meals := map[string]domain.DayMeals{}
		if err := json.Unmarshal([]byte(plan.Meals), &meals); err != nil {
			continue
		}
		plans = append(plans, meals)
	}

	if len(plans) == 0 {
		return domain.ShoppingListResponse{}, domain.ErrNoActiveMealPlans
	}

	pantryItems, err := s.pantryRepository.GetPantryItemsByHouseholdID(ctx, householdID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	pantryNames := make(map[string]bool, len(pantryItems))
	for _, item := range pantryItems {
		pantryNames[strings.ToLower(item.Name)] = true
	}

	items := consolidate(plans, pantryNames)
	totalCost := s.annotatePrices(ctx, items)

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	list := &entities.ShoppingList{
		ID:                 uuid.New(),
		HouseholdID:        hh.ID,
		WeekStartDate:      time.Now(),
		Items:              string(itemsJSON),
		TotalEstimatedCost: totalCost,
	}

	if err := s.shoppingRepository.CreateShoppingList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return listResponse(list), nil
}

// annotatePrices fills in best price and store for items the price data
// covers, returning the summed estimate. Nil when nothing priced.
func (s *shoppingService) annotatePrices(ctx context.Context, items []domain.ShoppingListItem) *float64 {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	results, err := s.groceryService.FindBestPrices(ctx, names)
	if err != nil {
		return nil
	}

	best := make(map[string]domain.StorePrice, len(results))
	for _, result := range results {
		best[strings.ToLower(result.Item)] = result.Best
	}

	var total float64
	priced := false
	for i := range items {
		price, ok := best[strings.ToLower(items[i].Name)]
		if !ok {
			continue
		}
		p := price.Price
		items[i].EstimatedPrice = &p
		items[i].BestStore = price.Store
		total += p
		priced = true
	}

	if !priced {
		return nil
	}
	return &total
}

func listResponse(list *entities.ShoppingList) domain.ShoppingListResponse {
	var items []domain.ShoppingListItem
	if err := json.Unmarshal([]byte(list.Items), &items); err != nil {
		items = []domain.ShoppingListItem{}
	}

	return domain.ShoppingListResponse{
		ID:                 list.ID.String(),
		HouseholdID:        list.HouseholdID.String(),
		WeekStartDate:      list.WeekStartDate,
		Items:              items,
		TotalEstimatedCost: list.TotalEstimatedCost,
		IsCompleted:        list.IsCompleted,
		CreatedAt:          list.CreatedAt,
	}
}

func (s *shoppingService) GetShoppingLists(ctx context.Context, householdID string, userID string) ([]domain.ShoppingListResponse, error) {
	if _, err := s.getOwnedHousehold(ctx, householdID, userID); err != nil {
		return nil, err
	}

	lists, err := s.shoppingRepository.GetShoppingListsByHouseholdID(ctx, householdID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, listResponse(list))
	}
	return response, nil
}

func (s *shoppingService) getOwnedList(ctx context.Context, listID string, userID string) (*entities.ShoppingList, error) {
	list, err := s.shoppingRepository.GetShoppingListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingListNotFound
		}
		return nil, err
	}

	if _, err := s.getOwnedHousehold(ctx, list.HouseholdID.String(), userID); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *shoppingService) CompleteShoppingList(ctx context.Context, listID string, userID string) error {
	list, err := s.getOwnedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	list.IsCompleted = true
	return s.shoppingRepository.UpdateShoppingList(ctx, list)
}

func (s *shoppingService) EmailShoppingList(ctx context.Context, listID string, req domain.EmailShoppingListRequest, userID string) error {
	list, err := s.getOwnedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	response := listResponse(list)
	subject := fmt.Sprintf("Your shopping list for the week of %s", response.WeekStartDate.Format("January 2, 2006"))
	return mailing.SendMail(req.Email, subject, renderListBody(response))
}

func renderListBody(list domain.ShoppingListResponse) string {
	grouped := make(map[string][]domain.ShoppingListItem)
	var order []string
	for _, item := range list.Items {
		if _, seen := grouped[item.Category]; !seen {
			order = append(order, item.Category)
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	var b strings.Builder
	b.WriteString("<h3>Your PlatePlan shopping list</h3>")
	for _, category := range order {
		b.WriteString(fmt.Sprintf("<h4>%s</h4><ul>", category))
		for _, item := range grouped[category] {
			line := item.Name
			if item.Amount != "" {
				line += ": " + displayAmount(item.Amount, item.Unit)
			}
			if item.EstimatedPrice != nil {
				line += fmt.Sprintf(" (~%.2f at %s)", *item.EstimatedPrice, item.BestStore)
			}
			b.WriteString("<li>" + line + "</li>")
		}
		b.WriteString("</ul>")
	}
	if list.TotalEstimatedCost != nil {
		b.WriteString(fmt.Sprintf("<p>Estimated total: %.2f</p>", *list.TotalEstimatedCost))
	}
	return b.String()
}
