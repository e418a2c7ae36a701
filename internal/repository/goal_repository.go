package repository

import (
	"context"
	"errors"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type GoalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGoalRepository(db *pgxpool.Pool, logger *zap.Logger) *GoalRepository {
	return &GoalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *GoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	query := squirrel.Insert("goals").
		Columns("id", "user_id", "title", "target_amount", "current_amount", "deadline", "is_achieved", "created_at", "updated_at").
		Values(goal.ID, goal.UserID, goal.Title, goal.TargetAmount, goal.CurrentAmount, goal.Deadline, goal.IsAchieved, goal.CreatedAt, goal.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *GoalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Goal, error) {
	query := squirrel.Select("id", "user_id", "title", "target_amount", "current_amount", "deadline", "is_achieved", "created_at", "updated_at").
		From("goals").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var goal models.Goal
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&goal.ID, &goal.UserID, &goal.Title, &goal.TargetAmount, &goal.CurrentAmount, &goal.Deadline, &goal.IsAchieved, &goal.CreatedAt, &goal.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

func (r *GoalRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Goal, error) {
	query := squirrel.Select("id", "user_id", "title", "target_amount", "current_amount", "deadline", "is_achieved", "created_at", "updated_at").
		From("goals").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("deadline ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.Title, &goal.TargetAmount, &goal.CurrentAmount, &goal.Deadline, &goal.IsAchieved, &goal.CreatedAt, &goal.UpdatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, &goal)
	}

	return goals, rows.Err()
}

// UpdateProgress writes current_amount and is_achieved in a single statement
// so the cached achieved flag can never diverge from the amount it was
// derived from.
func (r *GoalRepository) UpdateProgress(ctx context.Context, id uuid.UUID, currentAmount decimal.Decimal, achieved bool) error {
	query := squirrel.Update("goals").
		Set("current_amount", currentAmount).
		Set("is_achieved", achieved).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("goals").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
