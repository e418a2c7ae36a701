package handlers

import (
	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GoalHandler struct {
	goalService *service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// Create godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal"
// @Security Bearer
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/goals [post]
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.goalService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List the user's goals
// @Tags goals
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.GoalResponse
// @Router /api/v1/goals [get]
func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.goalService.List(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(resp)
}

// UpdateProgress godoc
// @Summary Update goal progress
// @Description Replace the accumulated amount; the achieved flag is recomputed with the write
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.UpdateGoalProgressRequest true "New accumulated amount"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/goals/{id} [put]
func (h *GoalHandler) UpdateProgress(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req dto.UpdateGoalProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.goalService.ApplyProgress(c.Context(), userID, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	if err := h.goalService.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(fiber.Map{"message": "Goal removed"})
}
