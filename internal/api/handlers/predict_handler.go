package handlers

import (
	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PredictHandler struct {
	predictService *service.PredictService
	logger         *zap.Logger
}

func NewPredictHandler(predictService *service.PredictService, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
		logger:         logger,
	}
}

// Predict godoc
// @Summary Predict an expense amount
// @Description Forward expense features to the prediction service
// @Tags predict
// @Accept json
// @Produce json
// @Param request body dto.PredictRequest true "Expense features"
// @Security Bearer
// @Success 200 {object} dto.PredictResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/predict [post]
func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.predictService.Predict(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(resp)
}
