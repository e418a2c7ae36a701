package handlers

import (
	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Add a new expense
// @Description Record a spending event; the amount is normalized into the canonical currency
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Security Bearer
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.expenseService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List the user's expenses
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ExpenseResponse
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.expenseService.List(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Get a single expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Security Bearer
// @Success 200 {object} dto.ExpenseResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense ID",
		})
	}

	resp, err := h.expenseService.Get(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update an expense
// @Description Edit an owned expense; a new amount or currency is re-normalized
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body dto.UpdateExpenseRequest true "Fields to update"
// @Security Bearer
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense ID",
		})
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.expenseService.Update(c.Context(), userID, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense ID",
		})
	}

	if err := h.expenseService.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(fiber.Map{"message": "Expense removed"})
}

// ExportCSV godoc
// @Summary Export expenses as CSV
// @Tags expenses
// @Produce text/csv
// @Security Bearer
// @Success 200 {string} string
// @Router /api/v1/expenses/export/csv [get]
func (h *ExpenseHandler) ExportCSV(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	data, err := h.expenseService.ExportCSV(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expenses.csv"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary Export expenses as PDF
// @Tags expenses
// @Produce application/pdf
// @Security Bearer
// @Success 200 {string} string
// @Router /api/v1/expenses/export/pdf [get]
func (h *ExpenseHandler) ExportPDF(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	data, err := h.expenseService.ExportPDF(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expenses.pdf"`)
	return c.Send(data)
}
