package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fintrack/internal/currency"
	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/pkg/auth"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Seeds a demo user with a few expenses, a goal and some ledger lines.
// Amounts pass through the same normalizer the service uses, so seeded data
// obeys the canonical-currency invariant.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.Logger.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.RunMigrations(cfg.Database.DSN()); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	rates := currency.NewStaticSource(map[string]decimal.Decimal{
		"EUR/USD": decimal.NewFromFloat(1.1),
		"GBP/USD": decimal.NewFromFloat(1.27),
	})
	normalizer := currency.NewNormalizer(cfg.Currency.Canonical, rates, appLogger)

	if _, err := userRepo.GetByEmail(ctx, "demo@example.com"); err == nil {
		appLogger.Info("Demo user already seeded, nothing to do")
		return
	}

	hashed, err := auth.HashPassword("demo-password")
	if err != nil {
		appLogger.Fatal("Failed to hash password", zap.Error(err))
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Name:         "Demo User",
		Email:        "demo@example.com",
		Password:     hashed,
		MobileNumber: "+10000000000",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	expenses := []struct {
		amount      string
		currency    string
		category    string
		description string
	}{
		{"12.40", "USD", "food", "Lunch"},
		{"50", "EUR", "travel", "Train ticket"},
		{"9.99", "USD", "entertainment", "Streaming subscription"},
	}
	for _, e := range expenses {
		amount, err := currency.ParseAmount(e.amount)
		if err != nil {
			appLogger.Fatal("Bad seed amount", zap.String("amount", e.amount), zap.Error(err))
		}
		normalized, err := normalizer.Normalize(ctx, amount, e.currency)
		if err != nil {
			appLogger.Fatal("Failed to normalize seed amount", zap.Error(err))
		}
		expense := &models.Expense{
			ID:          uuid.New(),
			UserID:      user.ID,
			Amount:      normalized,
			Category:    e.category,
			Description: e.description,
			Currency:    e.currency,
			Date:        now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := expenseRepo.Create(ctx, expense); err != nil {
			appLogger.Fatal("Failed to create seed expense", zap.Error(err))
		}
	}

	goal := &models.Goal{
		ID:            uuid.New(),
		UserID:        user.ID,
		Title:         "Emergency fund",
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.Zero,
		Deadline:      now.AddDate(1, 0, 0),
		IsAchieved:    false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := goalRepo.Create(ctx, goal); err != nil {
		appLogger.Fatal("Failed to create seed goal", zap.Error(err))
	}

	transactions := []struct {
		description string
		amount      string
	}{
		{"Salary", "2500"},
		{"Rent", "-900"},
	}
	for _, t := range transactions {
		amount, err := currency.ParseAmount(t.amount)
		if err != nil {
			appLogger.Fatal("Bad seed amount", zap.String("amount", t.amount), zap.Error(err))
		}
		tx := &models.Transaction{
			ID:          uuid.New(),
			UserID:      user.ID,
			Description: t.description,
			Amount:      amount,
			Date:        now,
			CreatedAt:   now,
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			appLogger.Fatal("Failed to create seed transaction", zap.Error(err))
		}
	}

	appLogger.Info("Seed complete", zap.String("user", user.Email))
}
