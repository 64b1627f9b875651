package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bvsbharat/mzon/internal/gen"
	"github.com/bvsbharat/mzon/internal/logger"
	"github.com/bvsbharat/mzon/internal/middleware"
	"github.com/bvsbharat/mzon/internal/models"
)

// Handlers carries the dependencies of the HTTP layer.
type Handlers struct {
	orchestrator *gen.Orchestrator
	history      gen.HistoryStore
	validator    *middleware.Validator
}

// NewHandlers wires the HTTP handlers.
func NewHandlers(orchestrator *gen.Orchestrator, history gen.HistoryStore) *Handlers {
	return &Handlers{
		orchestrator: orchestrator,
		history:      history,
		validator:    middleware.NewValidator(),
	}
}

// HealthCheck handles GET /api/v1/health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// GenerateContent handles POST /api/v1/generate
func (h *Handlers) GenerateContent(c *fiber.Ctx) error {
	log := logger.Get()

	var req models.GenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body: " + err.Error(),
		})
	}

	if fields := h.validator.Validate(&req); fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}
	if req.NewsItem.ID == "" || req.NewsItem.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "news_item.id and news_item.title are required",
		})
	}

	result, err := h.orchestrator.Generate(c.Context(), &req)
	if err != nil {
		if errors.Is(err, gen.ErrMissingCredential) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Content generation is not configured",
			})
		}
		log.Error().Err(err).Str("news_id", req.NewsItem.ID).Msg("Generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Content generation failed",
		})
	}

	return c.JSON(result)
}

// GetHistory handles GET /api/v1/generate/history/:newsId
func (h *Handlers) GetHistory(c *fiber.Ctx) error {
	newsID := c.Params("newsId")
	if newsID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "News ID is required",
		})
	}

	result, err := h.history.Get(c.Context(), newsID)
	if err != nil {
		logger.Get().Error().Err(err).Str("news_id", newsID).Msg("History lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read history",
		})
	}
	if result == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No generation history for this news item",
		})
	}

	return c.JSON(result)
}

// ClearHistory handles DELETE /api/v1/admin/history
func (h *Handlers) ClearHistory(c *fiber.Ctx) error {
	if err := h.history.Clear(c.Context()); err != nil {
		logger.Get().Error().Err(err).Msg("Failed to clear history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear history",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "cleared",
		"message": "Generation history cleared",
	})
}
