package handlers

import (
	"errors"

	"plateplan-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps service errors onto HTTP status codes. Not-found
// errors become 404, ownership violations 403, upstream model failures
// 500; everything else is the caller's fallback (usually 400).
func errorStatus(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrHouseholdNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrMealPlanNotFound),
		errors.Is(err, domain.ErrShoppingListNotFound),
		errors.Is(err, domain.ErrPantryItemNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedHousehold):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrGenerationFailed):
		return fiber.StatusInternalServerError
	default:
		return fallback
	}
}
