package repository

import (
	"context"
	"errors"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns("id", "user_id", "amount", "category", "description", "currency", "date", "created_at", "updated_at").
		Values(expense.ID, expense.UserID, expense.Amount, expense.Category, expense.Description, expense.Currency, expense.Date, expense.CreatedAt, expense.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	query := squirrel.Select("id", "user_id", "amount", "category", "description", "currency", "date", "created_at", "updated_at").
		From("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var expense models.Expense
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&expense.ID, &expense.UserID, &expense.Amount, &expense.Category, &expense.Description, &expense.Currency, &expense.Date, &expense.CreatedAt, &expense.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &expense, nil
}

// ListByUserID returns only records whose owner matches userID; the filter is
// part of the query predicate, never applied after the fact.
func (r *ExpenseRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Expense, error) {
	query := squirrel.Select("id", "user_id", "amount", "category", "description", "currency", "date", "created_at", "updated_at").
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC").
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

	var expenses []*models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(
			&expense.ID, &expense.UserID, &expense.Amount, &expense.Category, &expense.Description, &expense.Currency, &expense.Date, &expense.CreatedAt, &expense.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, &expense)
	}

	return expenses, rows.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Update("expenses").
		Set("amount", expense.Amount).
		Set("category", expense.Category).
		Set("description", expense.Description).
		Set("currency", expense.Currency).
		Set("date", expense.Date).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": expense.ID}).
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

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("expenses").
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
