package service

import (
	"context"
	"strings"
	"time"

	"fintrack/internal/currency"
	"fintrack/internal/dto"
	"fintrack/internal/export"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExpenseStore is the persistence contract the expense service needs.
// Satisfied by repository.ExpenseRepository.
type ExpenseStore interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExpenseService struct {
	expenses   ExpenseStore
	normalizer *currency.Normalizer
	logger     *zap.Logger
}

func NewExpenseService(expenses ExpenseStore, normalizer *currency.Normalizer, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenses:   expenses,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Create records a new expense for actorID. Ownership always comes from the
// authenticated identity, never from the payload. The amount is normalized
// into the canonical currency before anything is persisted; the original
// currency code is kept on the record for display.
func (s *ExpenseService) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	amount, err := currency.ParseAmount(req.Amount.String())
	if err != nil {
		return nil, err
	}

	sourceCurrency := strings.ToUpper(req.Currency)
	if sourceCurrency == "" {
		sourceCurrency = s.normalizer.Canonical()
	}

	normalized, err := s.normalizer.Normalize(ctx, amount, sourceCurrency)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != "" {
		if date, err = parseDate(req.Date); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	expense := &models.Expense{
		ID:          uuid.New(),
		UserID:      actorID,
		Amount:      normalized,
		Category:    req.Category,
		Description: req.Description,
		Currency:    sourceCurrency,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expenseResponse(expense), nil
}

func (s *ExpenseService) Get(ctx context.Context, actorID, id uuid.UUID) (*dto.ExpenseResponse, error) {
	expense, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actorID, expense.UserID); err != nil {
		return nil, err
	}
	return expenseResponse(expense), nil
}

func (s *ExpenseService) List(ctx context.Context, actorID uuid.UUID) ([]*dto.ExpenseResponse, error) {
	expenses, err := s.expenses.ListByUserID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		resp = append(resp, expenseResponse(expense))
	}
	return resp, nil
}

// Update edits an owned expense in place. Supplying a new amount or currency
// re-normalizes before overwriting; a value that fails to parse aborts before
// any write, leaving the stored record unchanged.
func (s *ExpenseService) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actorID, expense.UserID); err != nil {
		return nil, err
	}

	if req.Amount != nil || req.Currency != nil {
		amount := expense.Amount
		if req.Amount != nil {
			if amount, err = currency.ParseAmount(req.Amount.String()); err != nil {
				return nil, err
			}
		}

		sourceCurrency := expense.Currency
		if req.Currency != nil {
			sourceCurrency = strings.ToUpper(*req.Currency)
		}

		normalized, err := s.normalizer.Normalize(ctx, amount, sourceCurrency)
		if err != nil {
			return nil, err
		}

		expense.Amount = normalized
		expense.Currency = sourceCurrency
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}

	return expenseResponse(expense), nil
}

// Delete removes an owned expense permanently. The identifier is not
// reusable afterwards.
func (s *ExpenseService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	expense, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actorID, expense.UserID); err != nil {
		return err
	}
	return s.expenses.Delete(ctx, id)
}

// ExportCSV renders the actor's expenses as delimited text.
func (s *ExpenseService) ExportCSV(ctx context.Context, actorID uuid.UUID) ([]byte, error) {
	expenses, err := s.expenses.ListByUserID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return export.CSV(expenses)
}

// ExportPDF renders the actor's expenses as a paginated document.
func (s *ExpenseService) ExportPDF(ctx context.Context, actorID uuid.UUID) ([]byte, error) {
	expenses, err := s.expenses.ListByUserID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return export.PDF("Expense Report", expenses)
}

func expenseResponse(e *models.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID.String(),
		Amount:      e.Amount.StringFixed(2),
		Category:    e.Category,
		Description: e.Description,
		Currency:    e.Currency,
		Date:        e.Date.Format(time.RFC3339),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
