package handlers

import (
	"goldadvisor/internal/dto"
	"goldadvisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdvisorHandler struct {
	advisorService *service.AdvisorService
	oracle         service.PriceOracle
	logger         *zap.Logger
}

func NewAdvisorHandler(advisorService *service.AdvisorService, oracle service.PriceOracle, logger *zap.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService: advisorService,
		oracle:         oracle,
		logger:         logger,
	}
}

// Advise godoc
// @Summary Ask the gold advisor
// @Description Classify a free-text question and reply with gold investment guidance
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body dto.AdvisorRequest true "Advisory request"
// @Success 200 {object} dto.AdvisorResponse
// @Failure 400 {object} map[string]string
// @Router /advisor [post]
func (h *AdvisorHandler) Advise(c *fiber.Ctx) error {
	var req dto.AdvisorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// An empty message is a valid question; only an absent field is a
	// client error.
	if req.Message == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	return c.JSON(h.advisorService.Advise(&req))
}

// Price godoc
// @Summary Current gold price
// @Description Indicative price per gram in INR
// @Tags advisor
// @Produce json
// @Success 200 {object} dto.PriceResponse
// @Router /price [get]
func (h *AdvisorHandler) Price(c *fiber.Ctx) error {
	return c.JSON(dto.PriceResponse{
		PricePerGramINR: h.oracle.PricePerGram(),
		Source:          "fixed",
	})
}
