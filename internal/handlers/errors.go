package handlers

import (
	"errors"

	"poshstore/internal/repositories"
	"poshstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service/repository errors onto the HTTP error taxonomy:
// validation → 400 (itemized where possible), not found → 404, forbidden →
// 403, stock/duplicate conflicts → 409, everything else → 500 with a generic
// message plus a machine-readable detail string. Responses never carry
// stack traces.
func respondError(c *fiber.Ctx, message string, err error) error {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		body := fiber.Map{"message": validation.Message}
		if len(validation.Details) > 0 {
			body["errors"] = validation.Details
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	var stockConflict *repositories.StockConflictError
	if errors.As(err, &stockConflict) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Order could not be placed due to a stock conflict. Please review item availability.",
			"errors":  []string{stockConflict.Error()},
		})
	}

	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Not authorized to access this resource",
		})
	case errors.Is(err, repositories.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": message,
			"details": err.Error(),
		})
	}
}
