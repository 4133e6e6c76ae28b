package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aura-bank-core/config"
	"aura-bank-core/internal/adapter/classifier"
	"aura-bank-core/internal/adapter/events/kafka"
	httpHandler "aura-bank-core/internal/adapter/http/handler"
	pgStorage "aura-bank-core/internal/adapter/storage/postgres"
	redisStorage "aura-bank-core/internal/adapter/storage/redis"
	"aura-bank-core/internal/core/ports"
	"aura-bank-core/internal/service"
	"aura-bank-core/pkg/breaker"
	"aura-bank-core/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Aura Bank Core")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	cardRepo := pgStorage.NewCardRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// The bank's internal ledger accounts must exist before any posting.
	if err := ledgerRepo.EnsureSystemAccounts(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure system ledger accounts")
	}

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)

	// Circuit breakers
	breakers := breaker.NewRegistry(log)
	classifierBreaker := breakers.GetOrCreate("classifier", breaker.Config{
		FailureThreshold: cfg.Classifier.FailureThreshold,
		SuccessThreshold: cfg.Classifier.SuccessThreshold,
		CallTimeout:      cfg.Classifier.CallTimeout,
		ResetTimeout:     cfg.Classifier.ResetTimeout,
	})

	// Event publishing is best effort and optional: no brokers, no events.
	var events ports.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := kafka.NewPublisher(cfg.Kafka.Brokers, log)
		defer publisher.Close()
		events = publisher
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka publisher enabled")
	} else {
		log.Info().Msg("No Kafka brokers configured, event publishing disabled")
	}

	// Initialize core services
	pinSvc := service.NewArgon2PINService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	ledgerSvc := service.NewLedgerService(ledgerRepo, log)
	classifierClient := classifier.New(cfg.Classifier.BaseURL, classifierBreaker, log)

	// Initialize business services
	transferSvc := service.NewTransferService(
		accountRepo, cardRepo, txRepo, idempotencyRepo, idempotencyCache,
		ledgerSvc, pinSvc, events, transactor, log,
	)
	accountSvc := service.NewAccountService(
		accountRepo, cardRepo, txRepo, idempotencyRepo, idempotencyCache,
		ledgerSvc, events, transactor, log,
	)
	cardSvc := service.NewCardService(cardRepo, accountRepo, pinSvc, tokenSvc, log)
	expenseSvc := service.NewExpenseService(accountSvc, txRepo, classifierClient, log)
	verifierSvc := service.NewVerifierService(accountRepo, ledgerRepo, transactor, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CardSvc:        cardSvc,
		AccountSvc:     accountSvc,
		TransferSvc:    transferSvc,
		ExpenseSvc:     expenseSvc,
		VerifierSvc:    verifierSvc,
		TokenSvc:       tokenSvc,
		Breakers:       breakers,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
