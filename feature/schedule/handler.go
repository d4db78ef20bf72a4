package schedule

import (
	"errors"

	"timetable-sync/core/fetch"
	"timetable-sync/core/logger"
	"timetable-sync/feature/schedule/models"
	"timetable-sync/feature/schedule/parser"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for schedules.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the schedule routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/schedule")
	group.Get("/group/:id", h.HandleGetGroupSchedule)
	group.Get("/professor/:id", h.HandleGetProfessorSchedule)
}

// HandleGetGroupSchedule returns the reconciled schedule for a student group.
// Pass ?cache=false to fetch without touching the snapshot store.
func (h *Handler) HandleGetGroupSchedule(c *fiber.Ctx) error {
	return h.handleGet(c, models.KindGroup)
}

// HandleGetProfessorSchedule returns the reconciled schedule for a professor.
func (h *Handler) HandleGetProfessorSchedule(c *fiber.Ctx) error {
	return h.handleGet(c, models.KindProfessor)
}

func (h *Handler) handleGet(c *fiber.Ctx, kind models.Kind) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id must be a positive integer",
		})
	}

	useCache := c.QueryBool("cache", true)

	schedule, err := h.service.GetSchedule(c.Context(), kind, id, useCache)
	if err != nil {
		l.Error("Schedule sync failed",
			zap.String("kind", string(kind)),
			zap.Int("id", id),
			zap.Error(err),
		)
		status := fiber.StatusInternalServerError
		if errors.Is(err, fetch.ErrUnavailable) || errors.Is(err, fetch.ErrBadStatus) || errors.Is(err, parser.ErrMalformed) {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(schedule)
}
