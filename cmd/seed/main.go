package main

import (
	"context"
	"log"
	"time"

	"goldadvisor/internal/models"
	"goldadvisor/internal/repository"
	"goldadvisor/pkg/config"
	"goldadvisor/pkg/logger"
	"goldadvisor/pkg/postgres"

	"go.uber.org/zap"
)

// Demo users to stand in for the external user service. User accounts
// are not managed by this system; purchases only reference them.
var demoUsers = []models.User{
	{Name: "Asha Verma", Email: "asha@example.com", Phone: "+91-9800000001"},
	{Name: "Rohan Iyer", Email: "rohan@example.com", Phone: "+91-9800000002"},
	{Name: "Priya Nair", Email: "priya@example.com", Phone: "+91-9800000003"},
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.EnsureSchema(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)

	appLogger.Info("Seeding demo users...")
	for i := range demoUsers {
		user := demoUsers[i]
		user.CreatedAt = time.Now().UTC()
		if err := userRepo.Create(ctx, &user); err != nil {
			appLogger.Fatal("Failed to seed user", zap.String("email", user.Email), zap.Error(err))
		}
		appLogger.Info("Seeded user",
			zap.Int64("id", user.ID),
			zap.String("name", user.Name),
		)
	}

	appLogger.Info("Database seeding completed successfully!")
}
