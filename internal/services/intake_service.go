package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nutrivio/PlanAppBack/internal/models"
	"github.com/nutrivio/PlanAppBack/internal/questionnaire"
)

var (
	ErrSessionNotFound  = errors.New("intake session not found")
	ErrAnswerRequired   = errors.New("answer required before advancing")
	ErrQuestionMismatch = errors.New("answer does not target the current question")
)

type intakeSessionStore interface {
	Create(ctx context.Context, session *models.IntakeSession) error
	Get(ctx context.Context, sessionID string) (*models.IntakeSession, error)
	Update(ctx context.Context, session *models.IntakeSession) error
}

// QuestionView is what the UI renders for one question: canonical options
// plus localized prompt and labels.
type QuestionView struct {
	ID       string             `json:"id"`
	Kind     questionnaire.Kind `json:"kind"`
	Prompt   string             `json:"prompt"`
	Options  []string           `json:"options,omitempty"`
	Labels   []string           `json:"labels,omitempty"`
	Required bool               `json:"required"`
}

// NavigationState is the navigation decision returned after every answer
// event.
type NavigationState struct {
	SessionID string        `json:"session_id"`
	Locale    string        `json:"locale"`
	Index     int           `json:"index"`
	Question  *QuestionView `json:"question,omitempty"`
	Progress  float64       `json:"progress"`
	Completed bool          `json:"completed"`
}

// IntakeService runs questionnaire sessions over the shared intake graph.
// All navigation logic is pure; the service only adds persistence and locale
// resolution.
type IntakeService struct {
	sessions intakeSessionStore
	graph    *questionnaire.Graph
	texts    map[string]*questionnaire.TextTable
}

func NewIntakeService(sessions intakeSessionStore) (*IntakeService, error) {
	texts := make(map[string]*questionnaire.TextTable)
	for _, locale := range questionnaire.Locales() {
		table, err := questionnaire.LoadTextTable(locale)
		if err != nil {
			return nil, fmt.Errorf("load locale %q: %w", locale, err)
		}
		texts[locale] = table
	}
	return &IntakeService{
		sessions: sessions,
		graph:    questionnaire.IntakeGraph(),
		texts:    texts,
	}, nil
}

func (s *IntakeService) StartSession(ctx context.Context, locale string) (*NavigationState, error) {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		locale = questionnaire.DefaultLocale
	}
	if _, ok := s.texts[locale]; !ok {
		return nil, ErrInvalidInput
	}

	session := &models.IntakeSession{
		ID:      uuid.NewString(),
		Locale:  locale,
		Answers: map[string]any{},
	}
	session.CurrentIndex = s.skipSectionsForward(0, session.Answers)

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return s.buildState(session), nil
}

// AnswerQuestion records the answer for the session's current question and
// returns the next navigation state. A required question with an empty value
// blocks with ErrAnswerRequired instead of failing hard.
func (s *IntakeService) AnswerQuestion(ctx context.Context, sessionID, questionID string, value any) (*NavigationState, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	index, ok := s.graph.IndexOf(questionID)
	if !ok {
		return nil, ErrInvalidInput
	}
	if index != session.CurrentIndex {
		return nil, ErrQuestionMismatch
	}

	question := s.graph.Question(index)
	normalized, err := normalizeAnswer(question, value)
	if err != nil {
		return nil, err
	}

	answers := questionnaire.Answers(session.Answers)
	answers[questionID] = normalized
	if !s.graph.CanAdvance(index, answers) {
		delete(answers, questionID)
		return nil, ErrAnswerRequired
	}

	// Answering the last visible question advances to the terminal index
	// (NextVisibleIndex clamps there), so the session completes only once
	// every question on its path has actually been answered.
	next := s.skipSectionsForward(s.graph.Advance(index, answers), answers)
	session.CurrentIndex = next
	session.Completed = s.graph.IsTerminal(next)

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return s.buildState(session), nil
}

// GoBack moves to the previous visible question; when none exists the state
// is returned unchanged.
func (s *IntakeService) GoBack(ctx context.Context, sessionID string) (*NavigationState, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	answers := questionnaire.Answers(session.Answers)
	index := session.CurrentIndex
	for {
		prev, ok := s.graph.PreviousVisibleIndex(index, answers)
		if !ok {
			return s.buildState(session), nil
		}
		index = prev
		if s.graph.Question(index).Kind != questionnaire.KindSection {
			break
		}
	}

	session.CurrentIndex = index
	session.Completed = false
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return s.buildState(session), nil
}

func (s *IntakeService) State(ctx context.Context, sessionID string) (*NavigationState, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildState(session), nil
}

func (s *IntakeService) getSession(ctx context.Context, sessionID string) (*models.IntakeSession, error) {
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
	if session.Answers == nil {
		session.Answers = map[string]any{}
	}
	return session, nil
}

// Sections are presentation markers: the session never parks on one, so the
// current question is always answerable or terminal.
func (s *IntakeService) skipSectionsForward(index int, answers questionnaire.Answers) int {
	for !s.graph.IsTerminal(index) && s.graph.Question(index).Kind == questionnaire.KindSection {
		index = s.graph.NextVisibleIndex(index, answers)
	}
	return index
}

func (s *IntakeService) buildState(session *models.IntakeSession) *NavigationState {
	answers := questionnaire.Answers(session.Answers)
	question := s.graph.Question(session.CurrentIndex)

	table, ok := s.texts[session.Locale]
	if !ok {
		table = s.texts[questionnaire.DefaultLocale]
	}

	view := &QuestionView{
		ID:       question.ID,
		Kind:     question.Kind,
		Prompt:   table.Prompt(question.ID),
		Options:  question.Options,
		Labels:   table.Labels(question.ID, question.Options),
		Required: question.Required,
	}

	return &NavigationState{
		SessionID: session.ID,
		Locale:    session.Locale,
		Index:     session.CurrentIndex,
		Question:  view,
		Progress:  s.graph.Progress(answers),
		Completed: session.Completed,
	}
}

func normalizeAnswer(question questionnaire.Question, value any) (any, error) {
	switch question.Kind {
	case questionnaire.KindNumber:
		answers := questionnaire.Answers{question.ID: value}
		number, ok := answers.Number(question.ID)
		if !ok {
			if question.Required {
				return nil, ErrAnswerRequired
			}
			return "", nil
		}
		return number, nil
	case questionnaire.KindEmail:
		text, ok := value.(string)
		if !ok {
			return nil, ErrInvalidInput
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return "", nil
		}
		parsed, err := mail.ParseAddress(text)
		if err != nil {
			return nil, ErrInvalidInput
		}
		return parsed.Address, nil
	case questionnaire.KindBinary, questionnaire.KindSingleChoice:
		text, ok := value.(string)
		if !ok {
			return nil, ErrInvalidInput
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return "", nil
		}
		for _, option := range question.Options {
			if text == option {
				return text, nil
			}
		}
		return nil, ErrInvalidInput
	case questionnaire.KindMultiChoice:
		labels := questionnaire.Answers{question.ID: value}.Labels(question.ID)
		for _, label := range labels {
			if !containsOption(question.Options, label) {
				return nil, ErrInvalidInput
			}
		}
		return labels, nil
	case questionnaire.KindSection, questionnaire.KindTerminal:
		return nil, ErrInvalidInput
	default:
		text, ok := value.(string)
		if !ok {
			return nil, ErrInvalidInput
		}
		return strings.TrimSpace(text), nil
	}
}

func containsOption(options []string, label string) bool {
	for _, option := range options {
		if option == label {
			return true
		}
	}
	return false
}
