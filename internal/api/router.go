package api

import (
	"fintrack/internal/api/handlers"
	"fintrack/pkg/auth"
	"fintrack/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	expenseHandler *handlers.ExpenseHandler,
	goalHandler *handlers.GoalHandler,
	transactionHandler *handlers.TransactionHandler,
	predictHandler *handlers.PredictHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Personal Finance Tracker API")
	})

	// Auth routes (public)
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	users := protected.Group("/users")
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)

	expenses := protected.Group("/expenses")
	expenses.Post("", expenseHandler.Create)
	expenses.Get("", expenseHandler.List)
	expenses.Get("/export/csv", expenseHandler.ExportCSV)
	expenses.Get("/export/pdf", expenseHandler.ExportPDF)
	expenses.Get("/:id", expenseHandler.Get)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	goals := protected.Group("/goals")
	goals.Post("", goalHandler.Create)
	goals.Get("", goalHandler.List)
	goals.Put("/:id", goalHandler.UpdateProgress)
	goals.Delete("/:id", goalHandler.Delete)

	transactions := protected.Group("/transactions")
	transactions.Post("", transactionHandler.Create)
	transactions.Get("", transactionHandler.List)

	protected.Post("/predict", predictHandler.Predict)

	return app
}
