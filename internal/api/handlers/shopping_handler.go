package handlers

import (
	"plateplan-backend/domain"
	"plateplan-backend/internal/api/presenters"
	"plateplan-backend/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GenerateShoppingList(c *fiber.Ctx) error
		GetShoppingLists(c *fiber.Ctx) error
		CompleteShoppingList(c *fiber.Ctx) error
		EmailShoppingList(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GenerateShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	householdID := c.Params("id")

	res, err := h.shoppingService.GenerateShoppingList(c.Context(), householdID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedGenerateShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateShoppingList)
}

func (h *shoppingHandler) GetShoppingLists(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	householdID := c.Params("id")

	res, err := h.shoppingService.GetShoppingLists(c.Context(), householdID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedGetShoppingLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingLists)
}

func (h *shoppingHandler) CompleteShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	if err := h.shoppingService.CompleteShoppingList(c.Context(), listID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedCompleteShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteShoppingList)
}

func (h *shoppingHandler) EmailShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")
	req := new(domain.EmailShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEmailShoppingList, err)
	}

	if err := h.shoppingService.EmailShoppingList(c.Context(), listID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedEmailShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEmailShoppingList)
}
