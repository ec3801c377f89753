package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nutrivio/PlanAppBack/internal/models"
)

// IntakeSessionRepository persists questionnaire sessions; answers are stored
// as a JSONB document keyed by question id.
type IntakeSessionRepository struct {
	db DBTX
}

func NewIntakeSessionRepository(db DBTX) *IntakeSessionRepository {
	return &IntakeSessionRepository{db: db}
}

func (r *IntakeSessionRepository) Create(ctx context.Context, session *models.IntakeSession) error {
	answers, err := json.Marshal(session.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	query := `
		INSERT INTO intake_sessions (id, locale, answers, current_index, completed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		session.ID,
		session.Locale,
		answers,
		session.CurrentIndex,
		session.Completed,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
}

func (r *IntakeSessionRepository) Get(ctx context.Context, sessionID string) (*models.IntakeSession, error) {
	query := `
		SELECT id, locale, answers, current_index, completed, created_at, updated_at
		FROM intake_sessions
		WHERE id = $1
	`

	var (
		session models.IntakeSession
		answers []byte
	)
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&session.ID,
		&session.Locale,
		&answers,
		&session.CurrentIndex,
		&session.Completed,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(answers, &session.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return &session, nil
}

func (r *IntakeSessionRepository) Update(ctx context.Context, session *models.IntakeSession) error {
	answers, err := json.Marshal(session.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	query := `
		UPDATE intake_sessions
		SET answers = $1, current_index = $2, completed = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query,
		answers,
		session.CurrentIndex,
		session.Completed,
		session.ID,
	).Scan(&session.UpdatedAt)
}
