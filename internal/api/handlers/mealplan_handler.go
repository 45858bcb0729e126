package handlers

import (
	"plateplan-backend/domain"
	"plateplan-backend/internal/api/presenters"
	"plateplan-backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		GenerateMealPlan(c *fiber.Ctx) error
		GetMealPlans(c *fiber.Ctx) error
		ActivateMealPlan(c *fiber.Ctx) error
		SaveFeedback(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) GenerateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	memberID := c.Params("id")
	req := new(domain.GenerateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateMealPlan, err)
	}

	res, err := h.mealPlanService.GenerateMealPlan(c.Context(), memberID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedGenerateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateMealPlan)
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	memberID := c.Params("id")

	res, err := h.mealPlanService.GetMealPlans(c.Context(), memberID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) ActivateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	if err := h.mealPlanService.ActivateMealPlan(c.Context(), planID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedActivateMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessActivateMealPlan)
}

func (h *mealPlanHandler) SaveFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")
	req := new(domain.MealPlanFeedbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSavePlanFeedback, err)
	}

	if err := h.mealPlanService.SaveFeedback(c.Context(), planID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedSavePlanFeedback, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSavePlanFeedback)
}
