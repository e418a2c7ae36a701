package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fintrack/internal/api"
	"fintrack/internal/api/handlers"
	"fintrack/internal/currency"
	"fintrack/internal/predict"
	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/pkg/auth"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// @title Personal Finance Tracker API
// @version 1.0
// @description Backend for tracking expenses, savings goals and ledger transactions.

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	appLogger.Info("Starting finance tracker service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.RunMigrations(cfg.Database.DSN()); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	// Rate source: external API when configured, a fixed table for local dev.
	var rates currency.RateSource
	if cfg.Rates.BaseURL != "" {
		rates = currency.NewHTTPSource(cfg.Rates.BaseURL, cfg.Rates.Timeout, appLogger)
	} else {
		appLogger.Warn("RATES_BASE_URL not set, using static dev rates")
		rates = currency.NewStaticSource(map[string]decimal.Decimal{
			"EUR/USD": decimal.NewFromFloat(1.1),
			"GBP/USD": decimal.NewFromFloat(1.27),
			"JPY/USD": decimal.NewFromFloat(0.0067),
		})
	}
	normalizer := currency.NewNormalizer(cfg.Currency.Canonical, rates, appLogger)

	predictor := predict.NewHTTPClient(cfg.Predictor.BaseURL, cfg.Predictor.Timeout, appLogger)
	if cfg.Predictor.BaseURL == "" {
		appLogger.Warn("PREDICTOR_BASE_URL not set, predictions will be unavailable")
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, normalizer, appLogger)
	goalService := service.NewGoalService(goalRepo, appLogger)
	txService := service.NewTransactionService(txRepo, appLogger)
	predictService := service.NewPredictService(predictor, appLogger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	userHandler := handlers.NewUserHandler(userService, appLogger)
	expenseHandler := handlers.NewExpenseHandler(expenseService, appLogger)
	goalHandler := handlers.NewGoalHandler(goalService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	predictHandler := handlers.NewPredictHandler(predictService, appLogger)

	app := api.SetupRouter(authHandler, userHandler, expenseHandler, goalHandler, txHandler, predictHandler, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
