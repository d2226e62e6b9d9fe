package repository

import (
	"context"
	"errors"

	"goldadvisor/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PurchaseRepository is the durable transaction store. Purchases are
// append-only: this type exposes no update or delete path, and the
// primary key constraint rejects a duplicate transaction identifier.
type PurchaseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPurchaseRepository(db *pgxpool.Pool, logger *zap.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, p *models.Purchase) error {
	query := squirrel.Insert("purchases").
		Columns("id", "user_id", "grams", "amount_inr", "price_per_gram", "provider", "status", "created_at").
		Values(p.ID, p.UserID, p.Grams, p.AmountINR, p.PricePerGram, p.Provider, p.Status, p.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *PurchaseRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Purchase, error) {
	query := squirrel.Select("id", "user_id", "grams", "amount_inr", "price_per_gram", "provider", "status", "created_at").
		From("purchases").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
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

	var purchases []*models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Grams, &p.AmountINR, &p.PricePerGram, &p.Provider, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		purchases = append(purchases, &p)
	}

	return purchases, rows.Err()
}

func (r *PurchaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	query := squirrel.Select("id", "user_id", "grams", "amount_inr", "price_per_gram", "provider", "status", "created_at").
		From("purchases").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p models.Purchase
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.UserID, &p.Grams, &p.AmountINR, &p.PricePerGram, &p.Provider, &p.Status, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
