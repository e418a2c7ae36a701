package service

import (
	"context"
	"time"

	"fintrack/internal/currency"
	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionStore is the persistence contract for the single-currency
// ledger. Ledger lines are create-and-list only.
type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error)
}

type TransactionService struct {
	transactions TransactionStore
	logger       *zap.Logger
}

func NewTransactionService(transactions TransactionStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		logger:       logger,
	}
}

func (s *TransactionService) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	amount, err := currency.ParseAmount(req.Amount.String())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      actorID,
		Description: req.Description,
		Amount:      amount,
		Date:        now,
		CreatedAt:   now,
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	return transactionResponse(tx), nil
}

func (s *TransactionService) List(ctx context.Context, actorID uuid.UUID) ([]*dto.TransactionResponse, error) {
	transactions, err := s.transactions.ListByUserID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, transactionResponse(tx))
	}
	return resp, nil
}

func transactionResponse(t *models.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Date:        t.Date.Format(time.RFC3339),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
