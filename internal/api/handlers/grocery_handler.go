package handlers

import (
	"strings"

	"plateplan-backend/domain"
	"plateplan-backend/internal/api/presenters"
	"plateplan-backend/pkg/grocery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		CompareGroceryPrices(c *fiber.Ctx) error
		FindBestPrices(c *fiber.Ctx) error
		OptimizeShoppingRoute(c *fiber.Ctx) error
		UpdateGroceryPrices(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func queryItems(c *fiber.Ctx) []string {
	raw := c.Query("items")
	if raw == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (h *groceryHandler) CompareGroceryPrices(c *fiber.Ctx) error {
	res, err := h.groceryService.CompareGroceryPrices(c.Context(), queryItems(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedComparePrices, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessComparePrices)
}

func (h *groceryHandler) FindBestPrices(c *fiber.Ctx) error {
	res, err := h.groceryService.FindBestPrices(c.Context(), queryItems(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBestPrices, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBestPrices)
}

func (h *groceryHandler) OptimizeShoppingRoute(c *fiber.Ctx) error {
	req := new(domain.OptimizeRouteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOptimizeRoute, err)
	}

	res, err := h.groceryService.OptimizeShoppingRoute(*req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOptimizeRoute, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessOptimizeRoute)
}

func (h *groceryHandler) UpdateGroceryPrices(c *fiber.Ctx) error {
	req := new(domain.UpdateGroceryPricesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePrices, err)
	}

	if err := h.groceryService.UpdateGroceryPrices(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdatePrices, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePrices)
}
