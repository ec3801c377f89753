package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nutrivio/PlanAppBack/internal/models"
	"github.com/nutrivio/PlanAppBack/internal/services"
)

type sentPlanReader interface {
	GetSentPlan(ctx context.Context, planID string) (*models.DietPlan, error)
}

// PortalHandler is the client-facing read path. It knows plans only by the
// reference from the delivery email, and only once they are sent; anything
// else reports not-available.
type PortalHandler struct {
	service sentPlanReader
}

func NewPortalHandler(service *services.PlanService) *PortalHandler {
	return &PortalHandler{service: service}
}

func (h *PortalHandler) GetPlan(c *fiber.Ctx) error {
	plan, err := h.service.GetSentPlan(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrPlanNotAvailable) || errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not available"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
	return c.JSON(fiber.Map{"plan": plan})
}
