package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nutrivio/PlanAppBack/internal/models"
	"github.com/nutrivio/PlanAppBack/internal/notification"
	"github.com/nutrivio/PlanAppBack/internal/plangen"
	"github.com/nutrivio/PlanAppBack/internal/questionnaire"
	"github.com/nutrivio/PlanAppBack/internal/repository"
)

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrForbidden               = errors.New("forbidden")
	ErrPlanNotFound            = errors.New("plan not found")
	ErrPlanNotAvailable        = errors.New("plan not available")
	ErrSessionIncomplete       = errors.New("intake session is not complete")
	ErrInvalidStateTransition  = errors.New("invalid state transition")
	ErrNotificationUnavailable = errors.New("notification service is not configured")
	ErrNotificationFailed      = errors.New("notification delivery failed")
)

type planStore interface {
	Get(ctx context.Context, planID string) (*models.DietPlan, error)
	Put(ctx context.Context, plan *models.DietPlan) error
	DeleteDraft(ctx context.Context, planID string) error
	ListSummaries(ctx context.Context) ([]models.PlanSummary, error)
	MarkApproved(ctx context.Context, planID, approvedBy string, notes *string, at time.Time) error
	MarkSent(ctx context.Context, planID string, at time.Time) error
}

type sessionReader interface {
	Get(ctx context.Context, sessionID string) (*models.IntakeSession, error)
}

// ReviewAlerter pings the nutritionist team when a new draft is ready.
// Optional: a nil alerter disables the ping without affecting generation.
type ReviewAlerter interface {
	PlanReadyForReview(ctx context.Context, plan *models.DietPlan) error
}

// PlanService owns plan generation and the draft -> approved -> sent
// lifecycle. Every status mutation goes through one of the transition methods
// here; nothing else touches the audit fields.
type PlanService struct {
	plans        planStore
	sessions     sessionReader
	dispatcher   notification.Dispatcher
	reviewAlerts ReviewAlerter
	now          func() time.Time
}

func NewPlanService(
	plans *repository.PlanRepository,
	sessions *repository.IntakeSessionRepository,
	dispatcher notification.Dispatcher,
	reviewAlerts ReviewAlerter,
) *PlanService {
	return &PlanService{
		plans:        plans,
		sessions:     sessions,
		dispatcher:   dispatcher,
		reviewAlerts: reviewAlerts,
		now:          time.Now,
	}
}

// GeneratePlan derives the profile from a completed intake session, builds
// the 30-day draft plan and persists it. The review alert is best-effort and
// never fails the generation.
func (s *PlanService) GeneratePlan(ctx context.Context, sessionID string) (*models.DietPlan, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !session.Completed {
		return nil, ErrSessionIncomplete
	}

	profile := plangen.DeriveProfile(questionnaire.Answers(session.Answers))
	plan := plangen.BuildPlan(profile, s.now())

	if err := s.plans.Put(ctx, plan); err != nil {
		return nil, err
	}

	if s.reviewAlerts != nil {
		if err := s.reviewAlerts.PlanReadyForReview(ctx, plan); err != nil {
			log.Printf("review alert for plan %s failed: %v", plan.ID, err)
		}
	}

	return plan, nil
}

func (s *PlanService) ListPlans(ctx context.Context) ([]models.PlanSummary, error) {
	return s.plans.ListSummaries(ctx)
}

func (s *PlanService) GetPlan(ctx context.Context, planID string) (*models.DietPlan, error) {
	return s.getPlan(ctx, planID)
}

// GetSentPlan is the client-facing read contract: the full plan is exposed
// only once it has been sent. Draft and approved plans report not-available,
// indistinguishable from an unknown id.
func (s *PlanService) GetSentPlan(ctx context.Context, planID string) (*models.DietPlan, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return nil, ErrPlanNotAvailable
		}
		return nil, err
	}
	if plan.Status != models.PlanStatusSent {
		return nil, ErrPlanNotAvailable
	}
	return plan, nil
}

// ApprovePlan performs draft -> approved. Requires an approver identity and
// records the approval timestamp plus optional review notes.
func (s *PlanService) ApprovePlan(ctx context.Context, planID, approvedBy string, notes *string) (*models.DietPlan, error) {
	approvedBy = strings.TrimSpace(approvedBy)
	if approvedBy == "" {
		return nil, ErrInvalidInput
	}
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if trimmed == "" {
			return nil, ErrInvalidInput
		}
		notes = &trimmed
	}

	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != models.PlanStatusDraft {
		return nil, ErrInvalidStateTransition
	}

	at := s.now()
	if err := s.plans.MarkApproved(ctx, plan.ID, approvedBy, notes, at); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}

	plan.Status = models.PlanStatusApproved
	plan.ApprovedBy = &approvedBy
	plan.ReviewNotes = notes
	plan.ApprovedAt = &at
	return plan, nil
}

// SendPlan performs approved -> sent. The transition succeeds only after the
// dispatcher reports delivery; on failure the plan keeps its approved status
// and no sent timestamp, and the caller may retry with the same plan.
func (s *PlanService) SendPlan(ctx context.Context, planID string) (*models.DietPlan, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != models.PlanStatusApproved {
		return nil, ErrInvalidStateTransition
	}
	if s.dispatcher == nil {
		return nil, ErrNotificationUnavailable
	}

	subject, body := notification.BuildPlanEmail(plan)
	if err := s.dispatcher.Send(ctx, plan.Profile.Email, subject, body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	at := s.now()
	if err := s.plans.MarkSent(ctx, plan.ID, at); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}

	plan.Status = models.PlanStatusSent
	plan.SentAt = &at
	return plan, nil
}

// DeletePlan removes a rejected draft. Approved and sent plans cannot be
// deleted.
func (s *PlanService) DeletePlan(ctx context.Context, planID string) error {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return err
	}
	if plan.Status != models.PlanStatusDraft {
		return ErrInvalidStateTransition
	}
	if err := s.plans.DeleteDraft(ctx, plan.ID); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return ErrInvalidStateTransition
		}
		return err
	}
	return nil
}

func (s *PlanService) getPlan(ctx context.Context, planID string) (*models.DietPlan, error) {
	if strings.TrimSpace(planID) == "" {
		return nil, ErrInvalidInput
	}
	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}
