package service

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/currency"
	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GoalStore is the persistence contract the goal service needs. Satisfied by
// repository.GoalRepository. UpdateProgress must write both fields in one
// atomic statement.
type GoalStore interface {
	Create(ctx context.Context, goal *models.Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Goal, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Goal, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, currentAmount decimal.Decimal, achieved bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalService struct {
	goals  GoalStore
	logger *zap.Logger
}

func NewGoalService(goals GoalStore, logger *zap.Logger) *GoalService {
	return &GoalService{
		goals:  goals,
		logger: logger,
	}
}

func (s *GoalService) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	target, err := currency.ParseAmount(req.TargetAmount.String())
	if err != nil {
		return nil, err
	}
	if !target.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", currency.ErrInvalidAmount)
	}

	current := decimal.Zero
	if req.CurrentAmount != "" {
		if current, err = currency.ParseAmount(req.CurrentAmount.String()); err != nil {
			return nil, err
		}
		if current.IsNegative() {
			return nil, fmt.Errorf("%w: current amount must not be negative", currency.ErrInvalidAmount)
		}
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	goal := &models.Goal{
		ID:            uuid.New(),
		UserID:        actorID,
		Title:         req.Title,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		IsAchieved:    current.GreaterThanOrEqual(target),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goalResponse(goal), nil
}

func (s *GoalService) List(ctx context.Context, actorID uuid.UUID) ([]*dto.GoalResponse, error) {
	goals, err := s.goals.ListByUserID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.GoalResponse, 0, len(goals))
	for _, goal := range goals {
		resp = append(resp, goalResponse(goal))
	}
	return resp, nil
}

// ApplyProgress replaces the goal's accumulated amount and recomputes the
// achieved flag from it in the same write. The flag never changes any other
// way: a passed deadline or a mere read leaves it untouched, and an update
// dropping below target moves the goal back to unachieved.
func (s *GoalService) ApplyProgress(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateGoalProgressRequest) (*dto.GoalResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	current, err := currency.ParseAmount(req.CurrentAmount.String())
	if err != nil {
		return nil, err
	}
	if current.IsNegative() {
		return nil, fmt.Errorf("%w: current amount must not be negative", currency.ErrInvalidAmount)
	}

	goal, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actorID, goal.UserID); err != nil {
		return nil, err
	}

	achieved := current.GreaterThanOrEqual(goal.TargetAmount)
	if err := s.goals.UpdateProgress(ctx, id, current, achieved); err != nil {
		return nil, err
	}

	goal.CurrentAmount = current
	goal.IsAchieved = achieved
	return goalResponse(goal), nil
}

func (s *GoalService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	goal, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actorID, goal.UserID); err != nil {
		return err
	}
	return s.goals.Delete(ctx, id)
}

func goalResponse(g *models.Goal) *dto.GoalResponse {
	return &dto.GoalResponse{
		ID:            g.ID.String(),
		Title:         g.Title,
		TargetAmount:  g.TargetAmount.StringFixed(2),
		CurrentAmount: g.CurrentAmount.StringFixed(2),
		Deadline:      g.Deadline.Format(time.RFC3339),
		IsAchieved:    g.IsAchieved,
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
	}
}
