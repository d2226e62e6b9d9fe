package api

import (
	"goldadvisor/internal/api/handlers"
	"goldadvisor/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupRouter(
	cfg *config.ServerConfig,
	advisorHandler *handlers.AdvisorHandler,
	purchaseHandler *handlers.PurchaseHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	app.Get("/health", handlers.Health)
	app.Get("/price", advisorHandler.Price)
	app.Post("/advisor", advisorHandler.Advise)
	app.Post("/purchase", purchaseHandler.Purchase)
	app.Get("/purchase/:transaction_id", purchaseHandler.Get)
	app.Get("/purchases/:user_id", purchaseHandler.History)

	return app
}
