package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT '',
		phone      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id             UUID PRIMARY KEY,
		user_id        BIGINT NOT NULL REFERENCES users(id),
		grams          DOUBLE PRECISION NOT NULL,
		amount_inr     DOUBLE PRECISION NOT NULL CHECK (amount_inr > 0),
		price_per_gram DOUBLE PRECISION NOT NULL,
		provider       TEXT NOT NULL,
		status         TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_user_created ON purchases (user_id, created_at)`,
}

// EnsureSchema creates the tables the service owns. Idempotent, runs at
// startup before the first request is accepted.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	logger.Info("Database schema ensured")
	return nil
}
