package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"goldadvisor/internal/api"
	"goldadvisor/internal/api/handlers"
	"goldadvisor/internal/dto"
	"goldadvisor/internal/models"
	"goldadvisor/internal/repository"
	"goldadvisor/internal/service"
	"goldadvisor/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memUserStore struct {
	users map[int64]*models.User
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

type memPurchaseStore struct {
	mu      sync.Mutex
	records []*models.Purchase
}

func (s *memPurchaseStore) Create(_ context.Context, p *models.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == p.ID {
			return fmt.Errorf("duplicate key %s", p.ID)
		}
	}
	cp := *p
	s.records = append(s.records, &cp)
	return nil
}

func (s *memPurchaseStore) ListByUser(_ context.Context, userID int64) ([]*models.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Purchase
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memPurchaseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newTestApp() *fiber.App {
	log := zap.NewNop()
	users := &memUserStore{users: map[int64]*models.User{
		1: {ID: 1, Name: "Asha Verma", Email: "asha@example.com"},
	}}
	purchases := &memPurchaseStore{}

	oracle := service.NewFixedPriceOracle(5800)
	advisorService := service.NewAdvisorService(service.NewKeywordClassifier(), oracle, log)
	purchaseService := service.NewPurchaseService(users, purchases, oracle, "SimplifyMoney-DigitalGold", log)

	return api.SetupRouter(
		&config.ServerConfig{ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second},
		handlers.NewAdvisorHandler(advisorService, oracle, log),
		handlers.NewPurchaseHandler(purchaseService, log),
	)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "ok", body["status"])
	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestPrice(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, http.MethodGet, "/price", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.PriceResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, 5800.0, body.PricePerGramINR)
	assert.Equal(t, "fixed", body.Source)
}

func advisorBody(message string) map[string]string {
	return map[string]string{"message": message}
}

func TestAdvisorGoldRelated(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, http.MethodPost, "/advisor", advisorBody("Should I invest in gold now?"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AdvisorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body.IsGoldRelated)
	assert.NotEmpty(t, body.Reply)
	assert.NotEmpty(t, body.Suggestion)
}

func TestAdvisorNotGoldRelated(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, http.MethodPost, "/advisor", advisorBody("What's the weather today?"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AdvisorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.False(t, body.IsGoldRelated)
	assert.Empty(t, body.Suggestion)
}

func TestAdvisorMissingMessage(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/advisor", map[string]string{"name": "Asha"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdvisorEmptyMessage(t *testing.T) {
	app := newTestApp()

	// An empty message is not an error: it classifies as not
	// gold-related and gets the generic fallback.
	resp, raw := doJSON(t, app, http.MethodPost, "/advisor", advisorBody(""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AdvisorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.False(t, body.IsGoldRelated)
	assert.NotEmpty(t, body.Reply)
	assert.Empty(t, body.Suggestion)
}

func TestPurchaseAndHistoryRoundTrip(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, http.MethodPost, "/purchase", dto.PurchaseRequest{
		UserID:    1,
		AmountINR: 5000,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var receipt dto.PurchaseReceipt
	require.NoError(t, json.Unmarshal(raw, &receipt))
	assert.Equal(t, "Purchase successful!", receipt.Message)
	assert.Equal(t, "Asha Verma", receipt.User)
	assert.Equal(t, 5000.0, receipt.AmountINR)
	assert.Equal(t, 5800.0, receipt.PricePerGram)
	assert.NotEmpty(t, receipt.TransactionID)

	resp, raw = doJSON(t, app, http.MethodGet, "/purchases/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var history []dto.PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &history))
	require.Len(t, history, 1)
	assert.Equal(t, receipt.TransactionID, history[0].ID)
	assert.Equal(t, 5000.0, history[0].AmountINR)

	resp, raw = doJSON(t, app, http.MethodGet, "/purchase/"+receipt.TransactionID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var single dto.PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &single))
	assert.Equal(t, receipt.TransactionID, single.ID)
}

func TestPurchaseInvalidAmount(t *testing.T) {
	app := newTestApp()

	for _, amount := range []float64{0, -100} {
		resp, _ := doJSON(t, app, http.MethodPost, "/purchase", dto.PurchaseRequest{
			UserID:    1,
			AmountINR: amount,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	resp, raw := doJSON(t, app, http.MethodGet, "/purchases/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var history []dto.PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &history))
	assert.Empty(t, history)
}

func TestPurchaseUnknownUser(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/purchase", dto.PurchaseRequest{
		UserID:    99,
		AmountINR: 1000,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHistoryEmptyForUnknownUser(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, http.MethodGet, "/purchases/12345", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(raw))
}

func TestHistoryBadUserID(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodGet, "/purchases/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPurchaseNotFound(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodGet, "/purchase/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
