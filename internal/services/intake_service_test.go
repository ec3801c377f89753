package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/nutrivio/PlanAppBack/internal/models"
	"github.com/nutrivio/PlanAppBack/internal/questionnaire"
)

type stubIntakeStore struct {
	sessions  map[string]*models.IntakeSession
	createErr error
	updateErr error
	updates   int
}

func newStubIntakeStore() *stubIntakeStore {
	return &stubIntakeStore{sessions: map[string]*models.IntakeSession{}}
}

func (s *stubIntakeStore) Create(_ context.Context, session *models.IntakeSession) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *stubIntakeStore) Get(_ context.Context, sessionID string) (*models.IntakeSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return session, nil
}

func (s *stubIntakeStore) Update(_ context.Context, session *models.IntakeSession) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates++
	s.sessions[session.ID] = session
	return nil
}

func newTestIntakeService(t *testing.T) (*IntakeService, *stubIntakeStore) {
	t.Helper()
	store := newStubIntakeStore()
	service, err := NewIntakeService(store)
	if err != nil {
		t.Fatalf("NewIntakeService: %v", err)
	}
	return service, store
}

func mustStart(t *testing.T, service *IntakeService, locale string) *NavigationState {
	t.Helper()
	state, err := service.StartSession(context.Background(), locale)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return state
}

func mustAnswer(t *testing.T, service *IntakeService, sessionID, questionID string, value any) *NavigationState {
	t.Helper()
	state, err := service.AnswerQuestion(context.Background(), sessionID, questionID, value)
	if err != nil {
		t.Fatalf("AnswerQuestion(%q): %v", questionID, err)
	}
	return state
}

func TestStartSessionSkipsLeadingSection(t *testing.T) {
	service, _ := newTestIntakeService(t)
	state := mustStart(t, service, "")

	if state.Locale != questionnaire.DefaultLocale {
		t.Fatalf("expected default locale, got %q", state.Locale)
	}
	if state.Question == nil || state.Question.ID != questionnaire.QFullName {
		t.Fatalf("expected the first answerable question, got %+v", state.Question)
	}
	if state.Completed {
		t.Fatalf("fresh session must not be completed")
	}
}

func TestStartSessionRejectsUnknownLocale(t *testing.T) {
	service, _ := newTestIntakeService(t)
	if _, err := service.StartSession(context.Background(), "xx"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown locale, got %v", err)
	}
}

func TestStartSessionSpanishPrompts(t *testing.T) {
	service, _ := newTestIntakeService(t)
	state := mustStart(t, service, "es")

	if state.Locale != "es" {
		t.Fatalf("expected es locale, got %q", state.Locale)
	}
	if state.Question.Prompt == state.Question.ID {
		t.Fatalf("expected a localized prompt, got the raw id %q", state.Question.Prompt)
	}
}

func TestAnswerQuestionAdvancesThroughTheGraph(t *testing.T) {
	service, _ := newTestIntakeService(t)
	state := mustStart(t, service, "en")

	state = mustAnswer(t, service, state.SessionID, questionnaire.QFullName, "Maria Lopez")
	if state.Question.ID != questionnaire.QEmail {
		t.Fatalf("expected email next, got %q", state.Question.ID)
	}

	state = mustAnswer(t, service, state.SessionID, questionnaire.QEmail, "maria@example.com")
	if state.Question.ID != questionnaire.QAge {
		t.Fatalf("expected age next, got %q", state.Question.ID)
	}
}

func TestAnswerQuestionRejectsOutOfTurnAnswers(t *testing.T) {
	service, _ := newTestIntakeService(t)
	state := mustStart(t, service, "en")

	_, err := service.AnswerQuestion(context.Background(), state.SessionID, questionnaire.QAge, 32)
	if !errors.Is(err, ErrQuestionMismatch) {
		t.Fatalf("expected ErrQuestionMismatch, got %v", err)
	}
}

func TestAnswerQuestionBlocksEmptyRequiredAnswer(t *testing.T) {
	service, store := newTestIntakeService(t)
	state := mustStart(t, service, "en")

	_, err := service.AnswerQuestion(context.Background(), state.SessionID, questionnaire.QFullName, "   ")
	if !errors.Is(err, ErrAnswerRequired) {
		t.Fatalf("expected ErrAnswerRequired, got %v", err)
	}

	session := store.sessions[state.SessionID]
	if _, ok := session.Answers[questionnaire.QFullName]; ok {
		t.Fatalf("a blocked answer must not be recorded")
	}
}

func TestAnswerQuestionValidatesEmail(t *testing.T) {
	service, _ := newTestIntakeService(t)
	state := mustStart(t, service, "en")
	state = mustAnswer(t, service, state.SessionID, questionnaire.QFullName, "Maria Lopez")

	_, err := service.AnswerQuestion(context.Background(), state.SessionID, questionnaire.QEmail, "not-an-email")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a malformed email, got %v", err)
	}
}

func TestAnswerQuestionRejectsUnknownOption(t *testing.T) {
	service, _ := newTestIntakeService(t)
	state := mustStart(t, service, "en")
	state = answerBasics(t, service, state)

	_, err := service.AnswerQuestion(context.Background(), state.SessionID, questionnaire.QGoal, "Become an astronaut")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown option, got %v", err)
	}
}

func TestBinaryYesRevealsDetailQuestion(t *testing.T) {
	service, _ := newTestIntakeService(t)
	state := mustStart(t, service, "en")
	state = answerBasics(t, service, state)
	state = mustAnswer(t, service, state.SessionID, questionnaire.QGoal, "Weight loss")

	state = mustAnswer(t, service, state.SessionID, questionnaire.QHasSecondaryGoal, questionnaire.AnswerYes)
	if state.Question.ID != questionnaire.QSecondaryGoal {
		t.Fatalf("expected the detail question after Yes, got %q", state.Question.ID)
	}
}

func TestBinaryNoSkipsDetailQuestion(t *testing.T) {
	service, _ := newTestIntakeService(t)
	state := mustStart(t, service, "en")
	state = answerBasics(t, service, state)
	state = mustAnswer(t, service, state.SessionID, questionnaire.QGoal, "Weight loss")

	state = mustAnswer(t, service, state.SessionID, questionnaire.QHasSecondaryGoal, questionnaire.AnswerNo)
	if state.Question.ID != questionnaire.QHasConditions {
		t.Fatalf("expected the next section's first question after No, got %q", state.Question.ID)
	}
}

func TestGoBackSkipsSectionMarkers(t *testing.T) {
	service, _ := newTestIntakeService(t)
	state := mustStart(t, service, "en")
	state = answerBasics(t, service, state)
	if state.Question.ID != questionnaire.QGoal {
		t.Fatalf("expected goal after the basics, got %q", state.Question.ID)
	}

	state, err := service.GoBack(context.Background(), state.SessionID)
	if err != nil {
		t.Fatalf("GoBack: %v", err)
	}
	if state.Question.ID != questionnaire.QWeightKG {
		t.Fatalf("expected to land on the previous answerable question, got %q", state.Question.ID)
	}
}

func TestGoBackAtStartIsANoOp(t *testing.T) {
	service, store := newTestIntakeService(t)
	state := mustStart(t, service, "en")
	updatesBefore := store.updates

	back, err := service.GoBack(context.Background(), state.SessionID)
	if err != nil {
		t.Fatalf("GoBack: %v", err)
	}
	if back.Question.ID != state.Question.ID {
		t.Fatalf("expected the state to be unchanged, got %q", back.Question.ID)
	}
	if store.updates != updatesBefore {
		t.Fatalf("a no-op back must not persist anything")
	}
}

func TestFullHappyPathCompletesSession(t *testing.T) {
	service, store := newTestIntakeService(t)
	state := mustStart(t, service, "en")

	answers := map[string]any{
		questionnaire.QFullName:         "Maria Lopez",
		questionnaire.QEmail:            "maria@example.com",
		questionnaire.QAge:              32,
		questionnaire.QHeightCM:         165,
		questionnaire.QWeightKG:         68,
		questionnaire.QGoal:             "Weight loss",
		questionnaire.QHasSecondaryGoal: questionnaire.AnswerNo,
		questionnaire.QHasConditions:    questionnaire.AnswerNo,
		questionnaire.QMedications:      questionnaire.AnswerNo,
		questionnaire.QHasIntolerances:  questionnaire.AnswerNo,
		questionnaire.QDietStyle:        "No restrictions",
		questionnaire.QBreakfastStyle:   "Savory",
		questionnaire.QMealsPerDay:      "4",
		questionnaire.QDislikedFoods:    "olives",
		questionnaire.QActivity:         "Moderate (3-4 sessions per week)",
		questionnaire.QDoesTraining:     questionnaire.AnswerNo,
		questionnaire.QSleepHours:       "7-8",
		questionnaire.QStressLevel:      "Moderate",
		questionnaire.QMotivation:       "feel better",
		questionnaire.QNotes:            "none",
	}

	for !state.Completed {
		value, ok := answers[state.Question.ID]
		if !ok {
			t.Fatalf("no scripted answer for %q", state.Question.ID)
		}
		state = mustAnswer(t, service, state.SessionID, state.Question.ID, value)
	}

	if !store.sessions[state.SessionID].Completed {
		t.Fatalf("completion must be persisted")
	}
	if state.Progress != 1 {
		t.Fatalf("expected full progress at completion, got %f", state.Progress)
	}
}

func TestSessionNotCompletedWhileLastQuestionUnanswered(t *testing.T) {
	service, store := newTestIntakeService(t)
	state := mustStart(t, service, "en")

	answers := map[string]any{
		questionnaire.QFullName:         "Maria Lopez",
		questionnaire.QEmail:            "maria@example.com",
		questionnaire.QAge:              32,
		questionnaire.QHeightCM:         165,
		questionnaire.QWeightKG:         68,
		questionnaire.QGoal:             "Weight loss",
		questionnaire.QHasSecondaryGoal: questionnaire.AnswerNo,
		questionnaire.QHasConditions:    questionnaire.AnswerNo,
		questionnaire.QMedications:      questionnaire.AnswerNo,
		questionnaire.QHasIntolerances:  questionnaire.AnswerNo,
		questionnaire.QDietStyle:        "No restrictions",
		questionnaire.QBreakfastStyle:   "Savory",
		questionnaire.QMealsPerDay:      "4",
		questionnaire.QDislikedFoods:    "olives",
		questionnaire.QActivity:         "Moderate (3-4 sessions per week)",
		questionnaire.QDoesTraining:     questionnaire.AnswerNo,
		questionnaire.QSleepHours:       "7-8",
		questionnaire.QStressLevel:      "Moderate",
		questionnaire.QMotivation:       "feel better",
	}

	for state.Question.ID != questionnaire.QNotes {
		value, ok := answers[state.Question.ID]
		if !ok {
			t.Fatalf("no scripted answer for %q", state.Question.ID)
		}
		state = mustAnswer(t, service, state.SessionID, state.Question.ID, value)
	}

	// Landing on the final question is not completion: it still awaits an
	// answer, and a generated plan would otherwise miss it.
	if state.Completed {
		t.Fatalf("session must not complete while the last question is unanswered")
	}
	if store.sessions[state.SessionID].Completed {
		t.Fatalf("premature completion must not be persisted")
	}

	state = mustAnswer(t, service, state.SessionID, questionnaire.QNotes, "none")
	if !state.Completed {
		t.Fatalf("session must complete after the last answer")
	}
	if state.Question.ID != questionnaire.QTerminal {
		t.Fatalf("expected to land on the terminal marker, got %q", state.Question.ID)
	}
}

func TestStateUnknownSession(t *testing.T) {
	service, _ := newTestIntakeService(t)
	if _, err := service.State(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := service.State(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}

// answerBasics walks the about-you block so tests can start at the goal
// question.
func answerBasics(t *testing.T, service *IntakeService, state *NavigationState) *NavigationState {
	t.Helper()
	state = mustAnswer(t, service, state.SessionID, questionnaire.QFullName, "Maria Lopez")
	state = mustAnswer(t, service, state.SessionID, questionnaire.QEmail, "maria@example.com")
	state = mustAnswer(t, service, state.SessionID, questionnaire.QAge, 32)
	state = mustAnswer(t, service, state.SessionID, questionnaire.QHeightCM, 165)
	state = mustAnswer(t, service, state.SessionID, questionnaire.QWeightKG, 68)
	return state
}
