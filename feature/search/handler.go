package search

import (
	"timetable-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for entity search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/search")
	group.Get("/", h.HandleSearch)
	group.Post("/rebuild", h.HandleRebuild)
}

// HandleSearch resolves the q query parameter to the best matching entity.
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query parameter q is required",
		})
	}

	match, ok := h.service.Search(query)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no entity matches the query",
		})
	}

	return c.JSON(match)
}

// HandleRebuild forces a fresh index build from the timetable site.
func (h *Handler) HandleRebuild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Rebuild(c.Context()); err != nil {
		l.Error("Search index rebuild failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"entities": len(h.service.Entities()),
	})
}
