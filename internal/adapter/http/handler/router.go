package handler

import (
	"aura-bank-core/internal/adapter/http/middleware"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/breaker"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CardSvc        ports.CardService
	AccountSvc     ports.AccountService
	TransferSvc    ports.TransferService
	ExpenseSvc     ports.ExpenseService
	VerifierSvc    ports.VerifierService
	TokenSvc       ports.TokenService
	Breakers       *breaker.Registry // nil = no breaker states on /health
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis, reports breakers)
	r.GET("/health", HealthCheck(deps.Breakers, deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.CardSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/session", authHandler.CreateSession)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	accountHandler := NewAccountHandler(deps.AccountSvc)
	transferHandler := NewTransferHandler(deps.TransferSvc, deps.AccountSvc, deps.ExpenseSvc)
	expenseHandler := NewExpenseHandler(deps.ExpenseSvc, deps.AccountSvc)
	cardHandler := NewCardHandler(deps.CardSvc, deps.AccountSvc)

	accounts := v1.Group("/accounts", jwtAuth)
	{
		accounts.POST("", accountHandler.OpenAccount)
		accounts.GET("/:id", accountHandler.GetAccount)
		accounts.GET("/:id/transactions", accountHandler.History)
		accounts.POST("/:id/deposit", accountHandler.Deposit)
		accounts.POST("/:id/withdraw", accountHandler.Withdraw)
		accounts.POST("/:id/fees", accountHandler.ChargeFee)
	}

	transfers := v1.Group("/transfers", jwtAuth)
	{
		transfers.POST("", transferHandler.Transfer)
		transfers.POST("/:id/reverse", transferHandler.Reverse)
	}

	expenses := v1.Group("/expenses", jwtAuth)
	{
		expenses.POST("", expenseHandler.Create)
		expenses.POST("/preview", expenseHandler.Preview)
	}

	cards := v1.Group("/cards", jwtAuth)
	{
		cards.POST("", cardHandler.Issue)
		cards.PUT("/:id/status", cardHandler.SetStatus)
	}

	// --- Back-office audit (JWT-authenticated) ---
	auditHandler := NewAuditHandler(deps.VerifierSvc)
	audit := v1.Group("/audit", jwtAuth)
	{
		audit.GET("/ledger", auditHandler.VerifyLedger)
		audit.GET("/transactions/:id", auditHandler.VerifyTransaction)
		audit.GET("/discrepancies", auditHandler.Discrepancies)
	}

	return r
}
