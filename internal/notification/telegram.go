package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nutrivio/PlanAppBack/internal/models"
)

// ReviewAlertService pings the nutritionist chat when a freshly generated
// plan is waiting for review. Alerts are best-effort: callers log failures
// instead of failing the generation.
type ReviewAlertService struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewReviewAlertService(token string, chatID int64) (*ReviewAlertService, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram api: %w", err)
	}
	return &ReviewAlertService{api: api, chatID: chatID}, nil
}

func (s *ReviewAlertService) PlanReadyForReview(_ context.Context, plan *models.DietPlan) error {
	text := fmt.Sprintf(
		"New draft plan for %s (goal: %s) is ready for review.\nReference: %s",
		plan.Profile.FullName, plan.Profile.Goal, plan.ID,
	)
	if _, err := s.api.Send(tgbotapi.NewMessage(s.chatID, text)); err != nil {
		return fmt.Errorf("send review alert: %w", err)
	}
	return nil
}
