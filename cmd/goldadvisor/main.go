package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"goldadvisor/internal/api"
	"goldadvisor/internal/api/handlers"
	"goldadvisor/internal/repository"
	"goldadvisor/internal/service"
	"goldadvisor/pkg/config"
	"goldadvisor/pkg/logger"
	"goldadvisor/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting gold advisor service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.EnsureSchema(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	purchaseRepo := repository.NewPurchaseRepository(db, appLogger)

	// Initialize services
	classifier := service.NewKeywordClassifier()
	oracle := service.NewFixedPriceOracle(cfg.Gold.PricePerGramINR)
	advisorService := service.NewAdvisorService(classifier, oracle, appLogger)
	purchaseService := service.NewPurchaseService(userRepo, purchaseRepo, oracle, cfg.Gold.Provider, appLogger)

	// Initialize handlers
	advisorHandler := handlers.NewAdvisorHandler(advisorService, oracle, appLogger)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, advisorHandler, purchaseHandler)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
