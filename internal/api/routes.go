package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bvsbharat/mzon/internal/config"
	"github.com/bvsbharat/mzon/internal/gen"
	"github.com/bvsbharat/mzon/internal/middleware"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, orchestrator *gen.Orchestrator, history gen.HistoryStore, cfg *config.Config) {
	handlers := NewHandlers(orchestrator, history)

	// API group with versioning
	api := app.Group("/api/v1")

	api.Get("/health", handlers.HealthCheck)

	// Generation endpoints
	generate := api.Group("/generate")
	{
		generate.Post("", handlers.GenerateContent)
		generate.Get("/history/:newsId", handlers.GetHistory)
	}

	// Admin endpoints
	admin := api.Group("/admin", middleware.AdminOnly(cfg.AdminAPIKey))
	{
		admin.Delete("/history", handlers.ClearHistory)
	}

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
