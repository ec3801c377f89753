package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/nutrivio/PlanAppBack/internal/models"
	"github.com/nutrivio/PlanAppBack/internal/services"
)

type planApplicationService interface {
	GeneratePlan(ctx context.Context, sessionID string) (*models.DietPlan, error)
	ListPlans(ctx context.Context) ([]models.PlanSummary, error)
	GetPlan(ctx context.Context, planID string) (*models.DietPlan, error)
	ApprovePlan(ctx context.Context, planID, approvedBy string, notes *string) (*models.DietPlan, error)
	SendPlan(ctx context.Context, planID string) (*models.DietPlan, error)
	DeletePlan(ctx context.Context, planID string) error
}

type userReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// PlanHandler exposes the staff side of the plan lifecycle; every route is
// nutritionist-only.
type PlanHandler struct {
	service  planApplicationService
	userRepo userReader
}

func NewPlanHandler(service *services.PlanService, userRepo userReader) *PlanHandler {
	return &PlanHandler{service: service, userRepo: userRepo}
}

type generatePlanRequest struct {
	SessionID string `json:"session_id"`
}

type approvePlanRequest struct {
	Notes *string `json:"notes"`
}

func (h *PlanHandler) GeneratePlan(c *fiber.Ctx) error {
	if !isNutritionist(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	var req generatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "session_id is required"})
	}

	plan, err := h.service.GeneratePlan(c.Context(), req.SessionID)
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"plan": plan})
}

func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	if !isNutritionist(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	summaries, err := h.service.ListPlans(c.Context())
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"plans": summaries})
}

func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	if !isNutritionist(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	plan, err := h.service.GetPlan(c.Context(), c.Params("id"))
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"plan": plan})
}

// ApprovePlan records the authenticated nutritionist as the approver; the
// approver identity always comes from the token, never from the body.
func (h *PlanHandler) ApprovePlan(c *fiber.Ctx) error {
	if !isNutritionist(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	approver, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch approver"})
	}

	var req approvePlanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	plan, err := h.service.ApprovePlan(c.Context(), c.Params("id"), approver.Email, req.Notes)
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"plan": plan})
}

func (h *PlanHandler) SendPlan(c *fiber.Ctx) error {
	if !isNutritionist(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	plan, err := h.service.SendPlan(c.Context(), c.Params("id"))
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"plan": plan})
}

func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	if !isNutritionist(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	if err := h.service.DeletePlan(c.Context(), c.Params("id")); err != nil {
		return mapPlanError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func isNutritionist(c *fiber.Ctx) bool {
	role, ok := c.Locals("role").(string)
	return ok && role == "nutritionist"
}

func mapPlanError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPlanNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
	case errors.Is(err, services.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	case errors.Is(err, services.ErrSessionIncomplete):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Intake session is not complete"})
	case errors.Is(err, services.ErrInvalidStateTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Invalid state transition"})
	case errors.Is(err, services.ErrNotificationUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Notification service is not configured"})
	case errors.Is(err, services.ErrNotificationFailed):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Notification delivery failed; the plan was not marked as sent"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
}
