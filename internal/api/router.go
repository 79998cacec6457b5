package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/qfnexora/finance-api/docs"
	"github.com/qfnexora/finance-api/internal/api/handler"
	"github.com/qfnexora/finance-api/internal/api/middleware"
	"github.com/qfnexora/finance-api/internal/core/ports"
	"github.com/qfnexora/finance-api/internal/core/service"
	financemongo "github.com/qfnexora/finance-api/internal/infrastructure/db/mongo"
)

// Deps carries everything the router needs that is constructed at startup.
type Deps struct {
	DB       *mongo.Database
	Redis    *redis.Client // may be nil: OTP cooldowns are then disabled
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenIssuer
	Notifier ports.Notifier
	Cooldown ports.Cooldown // may be nil
	AdminKey string
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("finance"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Repositories & services ---
	userRepo := financemongo.NewUserRepository(deps.DB)
	transactionRepo := financemongo.NewTransactionRepository(deps.DB)
	budgetRepo := financemongo.NewBudgetRepository(deps.DB)
	savingPlanRepo := financemongo.NewSavingPlanRepository(deps.DB)

	authService := service.NewAuthService(userRepo, deps.Hasher, deps.Tokens, deps.Notifier, deps.Cooldown, deps.Log)
	userService := service.NewUserService(userRepo)
	transactionService := service.NewTransactionService(transactionRepo, deps.Log)
	budgetService := service.NewBudgetService(budgetRepo, deps.Log)
	savingPlanService := service.NewSavingPlanService(savingPlanRepo, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	savingPlanHandler := handler.NewSavingPlanHandler(savingPlanService)

	authRequired := middleware.Auth(deps.Tokens)

	// --- Public auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/verify-email", authHandler.VerifyEmail)
	auth.POST("/resend-otp", authHandler.ResendOTP)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh-token", authHandler.Refresh)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// --- Authenticated auth routes ---
	auth.POST("/change-password", authHandler.ChangePassword, authRequired)
	auth.POST("/logout", authHandler.Logout, authRequired)
	auth.DELETE("/delete-account", authHandler.DeleteAccount, authRequired)

	// --- User profile & settings ---
	users := e.Group("/users", authRequired)
	users.GET("/me", userHandler.Profile)
	users.PUT("/me/settings", userHandler.UpdateSettings)

	// --- Transactions ---
	transactions := e.Group("/transactions", authRequired)
	transactions.POST("", transactionHandler.Create)
	transactions.GET("", transactionHandler.List)
	transactions.GET("/:id", transactionHandler.Get)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)

	// --- Budgets ---
	budgets := e.Group("/budgets", authRequired)
	budgets.POST("", budgetHandler.Create)
	budgets.GET("", budgetHandler.List)
	budgets.GET("/:id", budgetHandler.Get)
	budgets.PUT("/:id", budgetHandler.Update)
	budgets.DELETE("/:id", budgetHandler.Delete)

	// --- Saving plans ---
	plans := e.Group("/saving-plans", authRequired)
	plans.POST("", savingPlanHandler.Create)
	plans.GET("", savingPlanHandler.List)
	plans.GET("/:id", savingPlanHandler.Get)
	plans.PUT("/:id", savingPlanHandler.Update)
	plans.DELETE("/:id", savingPlanHandler.Delete)
	plans.POST("/:id/deposits", savingPlanHandler.AddDeposit)

	// --- Admin ---
	admin := e.Group("/admin", middleware.AdminKey(deps.AdminKey))
	admin.POST("/unlock-account", authHandler.UnlockAccount)

	// --- Observability & docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
