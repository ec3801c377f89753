package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nutrivio/PlanAppBack/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ErrStaleStatus is returned by the compare-and-set transitions when the
// stored status no longer matches the expected precondition state.
var ErrStaleStatus = errors.New("plan status changed concurrently")

// PlanRepository persists diet plans. Structured content (profile, days,
// guidelines) is stored as JSONB; the columns used for listing and the
// lifecycle live beside it so summaries never decode meal detail.
type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

const planColumns = `
	id, client_name, client_email, goal, status,
	profile, days, guidelines,
	created_at, review_notes, approved_by, approved_at, sent_at
`

func (r *PlanRepository) Put(ctx context.Context, plan *models.DietPlan) error {
	profile, days, guidelines, err := encodePlanBody(plan)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO diet_plans (
			id, client_name, client_email, goal, status,
			profile, days, guidelines,
			created_at, review_notes, approved_by, approved_at, sent_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			client_name = EXCLUDED.client_name,
			client_email = EXCLUDED.client_email,
			goal = EXCLUDED.goal,
			status = EXCLUDED.status,
			profile = EXCLUDED.profile,
			days = EXCLUDED.days,
			guidelines = EXCLUDED.guidelines,
			review_notes = EXCLUDED.review_notes,
			approved_by = EXCLUDED.approved_by,
			approved_at = EXCLUDED.approved_at,
			sent_at = EXCLUDED.sent_at
	`
	_, err = r.db.Exec(ctx, query,
		plan.ID,
		plan.Profile.FullName,
		plan.Profile.Email,
		plan.Profile.Goal,
		plan.Status,
		profile,
		days,
		guidelines,
		plan.CreatedAt,
		plan.ReviewNotes,
		plan.ApprovedBy,
		plan.ApprovedAt,
		plan.SentAt,
	)
	return err
}

func (r *PlanRepository) Get(ctx context.Context, planID string) (*models.DietPlan, error) {
	query := `SELECT ` + planColumns + ` FROM diet_plans WHERE id = $1`
	return scanPlan(r.db.QueryRow(ctx, query, planID))
}

func (r *PlanRepository) Delete(ctx context.Context, planID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM diet_plans WHERE id = $1`, planID)
	return err
}

// DeleteDraft removes the plan only while it is still a draft; reviewers
// rejecting a plan delete it instead of transitioning it.
func (r *PlanRepository) DeleteDraft(ctx context.Context, planID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM diet_plans WHERE id = $1 AND status = $2`,
		planID, models.PlanStatusDraft,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *PlanRepository) ListAll(ctx context.Context) ([]models.DietPlan, error) {
	query := `SELECT ` + planColumns + ` FROM diet_plans ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.DietPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

func (r *PlanRepository) ListSummaries(ctx context.Context) ([]models.PlanSummary, error) {
	query := `
		SELECT id, client_name, status, goal, created_at, approved_at, sent_at
		FROM diet_plans
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]models.PlanSummary, 0)
	for rows.Next() {
		var summary models.PlanSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.ClientName,
			&summary.Status,
			&summary.Goal,
			&summary.CreatedAt,
			&summary.ApprovedAt,
			&summary.SentAt,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// MarkApproved performs the draft -> approved transition as a compare-and-set
// on the stored status, which serializes concurrent approval attempts.
func (r *PlanRepository) MarkApproved(ctx context.Context, planID, approvedBy string, notes *string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE diet_plans
		SET status = $1, approved_by = $2, review_notes = $3, approved_at = $4
		WHERE id = $5 AND status = $6
	`, models.PlanStatusApproved, approvedBy, notes, at, planID, models.PlanStatusDraft)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStaleStatus
	}
	return nil
}

// MarkSent performs the approved -> sent transition; same CAS discipline.
func (r *PlanRepository) MarkSent(ctx context.Context, planID string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE diet_plans
		SET status = $1, sent_at = $2
		WHERE id = $3 AND status = $4
	`, models.PlanStatusSent, at, planID, models.PlanStatusApproved)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStaleStatus
	}
	return nil
}

func encodePlanBody(plan *models.DietPlan) (profile, days, guidelines []byte, err error) {
	if profile, err = json.Marshal(plan.Profile); err != nil {
		return nil, nil, nil, fmt.Errorf("encode profile: %w", err)
	}
	if days, err = json.Marshal(plan.Days); err != nil {
		return nil, nil, nil, fmt.Errorf("encode days: %w", err)
	}
	if guidelines, err = json.Marshal(plan.Guidelines); err != nil {
		return nil, nil, nil, fmt.Errorf("encode guidelines: %w", err)
	}
	return profile, days, guidelines, nil
}

func scanPlan(row pgx.Row) (*models.DietPlan, error) {
	var (
		plan        models.DietPlan
		clientName  string
		clientEmail string
		goal        string
		profile     []byte
		days        []byte
		guidelines  []byte
	)
	err := row.Scan(
		&plan.ID,
		&clientName,
		&clientEmail,
		&goal,
		&plan.Status,
		&profile,
		&days,
		&guidelines,
		&plan.CreatedAt,
		&plan.ReviewNotes,
		&plan.ApprovedBy,
		&plan.ApprovedAt,
		&plan.SentAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(profile, &plan.Profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := json.Unmarshal(days, &plan.Days); err != nil {
		return nil, fmt.Errorf("decode days: %w", err)
	}
	if err := json.Unmarshal(guidelines, &plan.Guidelines); err != nil {
		return nil, fmt.Errorf("decode guidelines: %w", err)
	}
	return &plan, nil
}
