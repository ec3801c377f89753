package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nutrivio/PlanAppBack/internal/services"
)

type intakeApplicationService interface {
	StartSession(ctx context.Context, locale string) (*services.NavigationState, error)
	AnswerQuestion(ctx context.Context, sessionID, questionID string, value any) (*services.NavigationState, error)
	GoBack(ctx context.Context, sessionID string) (*services.NavigationState, error)
	State(ctx context.Context, sessionID string) (*services.NavigationState, error)
}

type IntakeHandler struct {
	service intakeApplicationService
}

func NewIntakeHandler(service *services.IntakeService) *IntakeHandler {
	return &IntakeHandler{service: service}
}

type startIntakeRequest struct {
	Locale string `json:"locale"`
}

type answerRequest struct {
	QuestionID string `json:"question_id"`
	Value      any    `json:"value"`
}

func (h *IntakeHandler) StartIntake(c *fiber.Ctx) error {
	var req startIntakeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	state, err := h.service.StartSession(c.Context(), req.Locale)
	if err != nil {
		return mapIntakeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"state": state})
}

func (h *IntakeHandler) AnswerQuestion(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Params("id"))
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Session id is required"})
	}

	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.QuestionID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "question_id is required"})
	}

	state, err := h.service.AnswerQuestion(c.Context(), sessionID, req.QuestionID, req.Value)
	if err != nil {
		return mapIntakeError(c, err)
	}
	return c.JSON(fiber.Map{"state": state})
}

func (h *IntakeHandler) GoBack(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Params("id"))
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Session id is required"})
	}

	state, err := h.service.GoBack(c.Context(), sessionID)
	if err != nil {
		return mapIntakeError(c, err)
	}
	return c.JSON(fiber.Map{"state": state})
}

func (h *IntakeHandler) GetState(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Params("id"))
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Session id is required"})
	}

	state, err := h.service.State(c.Context(), sessionID)
	if err != nil {
		return mapIntakeError(c, err)
	}
	return c.JSON(fiber.Map{"state": state})
}

func mapIntakeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	case errors.Is(err, services.ErrAnswerRequired):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "An answer is required before advancing"})
	case errors.Is(err, services.ErrQuestionMismatch):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Answer does not target the current question"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
}
