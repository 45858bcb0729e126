package handlers

import (
	"plateplan-backend/domain"
	"plateplan-backend/internal/api/presenters"
	"plateplan-backend/pkg/household"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HouseholdHandler interface {
		CreateHousehold(c *fiber.Ctx) error
		GetHousehold(c *fiber.Ctx) error
		UpdateHousehold(c *fiber.Ctx) error
		AddMember(c *fiber.Ctx) error
		GetMembers(c *fiber.Ctx) error
		UpdateMember(c *fiber.Ctx) error
		DeleteMember(c *fiber.Ctx) error
	}

	householdHandler struct {
		householdService household.HouseholdService
		validator        *validator.Validate
	}
)

func NewHouseholdHandler(householdService household.HouseholdService, validator *validator.Validate) HouseholdHandler {
	return &householdHandler{
		householdService: householdService,
		validator:        validator,
	}
}

func (h *householdHandler) CreateHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateHouseholdRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateHousehold, err)
	}

	res, err := h.householdService.CreateHousehold(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedCreateHousehold, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateHousehold)
}

func (h *householdHandler) GetHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	householdID := c.Params("id")

	res, err := h.householdService.GetHousehold(c.Context(), householdID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedGetHousehold, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHousehold)
}

func (h *householdHandler) UpdateHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	householdID := c.Params("id")
	req := new(domain.UpdateHouseholdRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateHousehold, err)
	}

	if err := h.householdService.UpdateHousehold(c.Context(), householdID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedUpdateHousehold, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateHousehold)
}

func (h *householdHandler) AddMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	householdID := c.Params("id")
	req := new(domain.AddMemberRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMember, err)
	}

	res, err := h.householdService.AddMember(c.Context(), householdID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedAddMember, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMember)
}

func (h *householdHandler) GetMembers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	householdID := c.Params("id")

	res, err := h.householdService.GetMembers(c.Context(), householdID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedGetMembers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMembers)
}

func (h *householdHandler) UpdateMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	memberID := c.Params("id")
	req := new(domain.UpdateMemberRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMember, err)
	}

	if err := h.householdService.UpdateMember(c.Context(), memberID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedUpdateMember, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMember)
}

func (h *householdHandler) DeleteMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	memberID := c.Params("id")

	if err := h.householdService.DeleteMember(c.Context(), memberID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedDeleteMember, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMember)
}
