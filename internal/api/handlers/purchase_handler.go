package handlers

import (
	"errors"
	"strconv"

	"goldadvisor/internal/dto"
	"goldadvisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PurchaseHandler struct {
	purchaseService *service.PurchaseService
	logger          *zap.Logger
}

func NewPurchaseHandler(purchaseService *service.PurchaseService, logger *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

// Purchase godoc
// @Summary Buy digital gold
// @Description Execute a simulated digital gold purchase at the current price
// @Tags purchase
// @Accept json
// @Produce json
// @Param request body dto.PurchaseRequest true "Purchase request"
// @Success 201 {object} dto.PurchaseReceipt
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /purchase [post]
func (h *PurchaseHandler) Purchase(c *fiber.Ctx) error {
	var req dto.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	receipt, err := h.purchaseService.Purchase(c.Context(), req.UserID, req.AmountINR)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			h.logger.Error("Purchase failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Purchase failed",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// History godoc
// @Summary List a user's purchases
// @Description Purchases for the user, oldest first; empty list when none
// @Tags purchase
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Router /purchases/{user_id} [get]
func (h *PurchaseHandler) History(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id must be an integer",
		})
	}

	purchases, err := h.purchaseService.History(c.Context(), userID)
	if err != nil {
		h.logger.Error("Listing purchases failed", zap.Error(err), zap.Int64("user_id", userID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Listing purchases failed",
		})
	}

	return c.JSON(purchases)
}

// Get godoc
// @Summary Look up a purchase
// @Description Fetch a single purchase by transaction identifier
// @Tags purchase
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string
// @Router /purchase/{transaction_id} [get]
func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	resp, err := h.purchaseService.Get(c.Context(), c.Params("transaction_id"))
	if err != nil {
		if errors.Is(err, service.ErrPurchaseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Purchase lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Purchase lookup failed",
		})
	}

	return c.JSON(resp)
}
