package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PurchaseStatusSuccess = "SUCCESS"
)

// Purchase is an append-only audit record of a completed digital gold
// purchase. ID doubles as the transaction identifier returned to the
// caller; records are never updated or deleted once written.
type Purchase struct {
	ID           uuid.UUID `db:"id"`
	UserID       int64     `db:"user_id"`
	Grams        float64   `db:"grams"`
	AmountINR    float64   `db:"amount_inr"`
	PricePerGram float64   `db:"price_per_gram"`
	Provider     string    `db:"provider"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}
