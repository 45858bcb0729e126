package pantry

import (
	"context"
	"errors"
	"time"

	"plateplan-backend/domain"
	"plateplan-backend/entities"
	"plateplan-backend/pkg/household"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, householdID string, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error)
		GetPantryItems(ctx context.Context, householdID string, userID string) ([]domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, itemID string, req domain.UpdatePantryItemRequest, userID string) error
		DeletePantryItem(ctx context.Context, itemID string, userID string) error
	}

	pantryService struct {
		pantryRepository    PantryRepository
		householdRepository household.HouseholdRepository
	}
)

func NewPantryService(pantryRepository PantryRepository, householdRepository household.HouseholdRepository) PantryService {
	return &pantryService{
		pantryRepository:    pantryRepository,
		householdRepository: householdRepository,
	}
}

func (s *pantryService) checkOwnership(ctx context.Context, householdID string, userID string) (*entities.Household, error) {
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

func parseExpiryDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, domain.ErrInvalidExpiryDate
	}
	return &parsed, nil
}

func itemResponse(item *entities.PantryItem) domain.PantryItemResponse {
	return domain.PantryItemResponse{
		ID:          item.ID.String(),
		HouseholdID: item.HouseholdID.String(),
		Name:        item.Name,
		Quantity:    item.Quantity,
		UnitMeasure: item.UnitMeasure,
		Category:    item.Category,
		ExpiryDate:  item.ExpiryDate,
		Notes:       item.Notes,
		CreatedAt:   item.CreatedAt,
	}
}

func (s *pantryService) AddPantryItem(ctx context.Context, householdID string, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	hh, err := s.checkOwnership(ctx, householdID, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	expiry, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	item := &entities.PantryItem{
		ID:          uuid.New(),
		HouseholdID: hh.ID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		UnitMeasure: req.UnitMeasure,
		Category:    req.Category,
		ExpiryDate:  expiry,
		Notes:       req.Notes,
	}

	if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return itemResponse(item), nil
}

func (s *pantryService) GetPantryItems(ctx context.Context, householdID string, userID string) ([]domain.PantryItemResponse, error) {
	if _, err := s.checkOwnership(ctx, householdID, userID); err != nil {
		return nil, err
	}

	items, err := s.pantryRepository.GetPantryItemsByHouseholdID(ctx, householdID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, itemResponse(item))
	}
	return response, nil
}

func (s *pantryService) getOwnedItem(ctx context.Context, itemID string, userID string) (*entities.PantryItem, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}

	if _, err := s.checkOwnership(ctx, item.HouseholdID.String(), userID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, itemID string, req domain.UpdatePantryItemRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}
	if req.UnitMeasure != "" {
		item.UnitMeasure = req.UnitMeasure
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.ExpiryDate != "" {
		expiry, err := parseExpiryDate(req.ExpiryDate)
		if err != nil {
			return err
		}
		item.ExpiryDate = expiry
	}
	if req.Notes != "" {
		item.Notes = req.Notes
	}

	return s.pantryRepository.UpdatePantryItem(ctx, item)
}

func (s *pantryService) DeletePantryItem(ctx context.Context, itemID string, userID string) error {
	if _, err := s.getOwnedItem(ctx, itemID, userID); err != nil {
		return err
	}
	return s.pantryRepository.DeletePantryItem(ctx, itemID)
}
