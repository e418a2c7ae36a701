package handlers

import (
	"errors"

	"fintrack/internal/currency"
	"fintrack/internal/predict"
	"fintrack/internal/repository"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// respondError maps domain errors to 4xx outcomes with a stable
// machine-readable kind and everything else to a generic 5xx without
// internal detail. The denial body is identical for every denied record so
// existence never leaks.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	switch {
	case errors.Is(err, currency.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid amount", "kind": "invalid_amount",
		})
	case errors.Is(err, currency.ErrUnknownCurrency):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown currency", "kind": "unknown_currency",
		})
	case errors.Is(err, service.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Validation failed", "kind": "validation_failed",
		})
	case errors.Is(err, service.ErrDenied):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not permitted", "kind": "denied",
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found", "kind": "not_found",
		})
	case errors.Is(err, currency.ErrRateUnavailable):
		logger.Warn("Rate source unavailable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Currency conversion unavailable", "kind": "rate_source_unavailable",
		})
	case errors.Is(err, predict.ErrPredictorUnavailable):
		logger.Warn("Predictor unavailable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Prediction unavailable", "kind": "predictor_unavailable",
		})
	default:
		logger.Error("Request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error", "kind": "internal",
		})
	}
}
