package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"goldadvisor/internal/dto"
	"goldadvisor/internal/models"
	"goldadvisor/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserStore resolves purchase ownership. Backed by the external user
// collaborator's table; missing rows surface as repository.ErrNotFound.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// PurchaseStore is the durable, append-only transaction log. Create
// must be atomic and must reject a duplicate identifier.
type PurchaseStore interface {
	Create(ctx context.Context, p *models.Purchase) error
	ListByUser(ctx context.Context, userID int64) ([]*models.Purchase, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Purchase, error)
}

type PurchaseService struct {
	users     UserStore
	purchases PurchaseStore
	oracle    PriceOracle
	provider  string
	logger    *zap.Logger
}

func NewPurchaseService(users UserStore, purchases PurchaseStore, oracle PriceOracle, provider string, logger *zap.Logger) *PurchaseService {
	return &PurchaseService{
		users:     users,
		purchases: purchases,
		oracle:    oracle,
		provider:  provider,
		logger:    logger,
	}
}

// Purchase executes a simulated digital gold purchase: validates the
// amount, resolves the user, converts INR to grams at the oracle price
// and appends exactly one record. The identifier is generated fresh per
// attempt, so a failed insert never consumes an id.
func (s *PurchaseService) Purchase(ctx context.Context, userID int64, amountINR float64) (*dto.PurchaseReceipt, error) {
	if amountINR <= 0 || math.IsNaN(amountINR) || math.IsInf(amountINR, 0) {
		return nil, ErrInvalidAmount
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	pricePerGram := s.oracle.PricePerGram()
	purchase := &models.Purchase{
		ID:           uuid.New(),
		UserID:       user.ID,
		Grams:        roundTo(amountINR/pricePerGram, 4),
		AmountINR:    roundTo(amountINR, 2),
		PricePerGram: pricePerGram,
		Provider:     s.provider,
		Status:       models.PurchaseStatusSuccess,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	s.logger.Info("Purchase recorded",
		zap.String("transaction_id", purchase.ID.String()),
		zap.Int64("user_id", user.ID),
		zap.Float64("amount_inr", purchase.AmountINR),
	)

	return &dto.PurchaseReceipt{
		Message:       "Purchase successful!",
		User:          user.Name,
		AmountINR:     purchase.AmountINR,
		Grams:         purchase.Grams,
		TransactionID: purchase.ID.String(),
		PricePerGram:  purchase.PricePerGram,
		Provider:      purchase.Provider,
		Status:        purchase.Status,
		CreatedAt:     purchase.CreatedAt.Format(time.RFC3339),
	}, nil
}

// History lists a user's purchases oldest first. A user with no
// purchases gets an empty list, not an error.
func (s *PurchaseService) History(ctx context.Context, userID int64) ([]dto.PurchaseResponse, error) {
	purchases, err := s.purchases.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

// Get fetches a single purchase by its transaction identifier.
func (s *PurchaseService) Get(ctx context.Context, transactionID string) (*dto.PurchaseResponse, error) {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return nil, ErrPurchaseNotFound
	}

	p, err := s.purchases.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPurchaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}

	resp := toPurchaseResponse(p)
	return &resp, nil
}

func toPurchaseResponse(p *models.Purchase) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:           p.ID.String(),
		UserID:       p.UserID,
		AmountINR:    p.AmountINR,
		Grams:        p.Grams,
		PricePerGram: p.PricePerGram,
		Provider:     p.Provider,
		Status:       p.Status,
		Timestamp:    p.CreatedAt.Format(time.RFC3339),
	}
}
