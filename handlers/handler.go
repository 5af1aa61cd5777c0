package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fleachain_backend/models"
	"fleachain_backend/store"
)

// storeError maps a store failure onto an HTTP response. Precondition
// failures surface as client errors instead of the silent no-ops a UI
// prototype would swallow.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotLoggedIn):
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Login required", err.Error()))
	case errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Not found", err.Error()))
	case errors.Is(err, store.ErrInvalidOperation):
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Invalid operation", err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal error", err.Error()))
	}
}
