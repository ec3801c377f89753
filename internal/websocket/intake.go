package intakews

import (
	"context"
	"encoding/json"
	"errors"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/nutrivio/PlanAppBack/internal/services"
)

// The live intake channel: the UI opens one socket per questionnaire session,
// pushes answer events and receives a navigation state frame after each one.
// A session has exactly one participant, so there is no hub or fan-out.

type event struct {
	Type       string `json:"type"`
	Locale     string `json:"locale,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	QuestionID string `json:"question_id,omitempty"`
	Value      any    `json:"value,omitempty"`
}

type frame struct {
	Type  string                    `json:"type"`
	State *services.NavigationState `json:"state,omitempty"`
	Error string                    `json:"error,omitempty"`
}

type intakeRunner interface {
	StartSession(ctx context.Context, locale string) (*services.NavigationState, error)
	AnswerQuestion(ctx context.Context, sessionID, questionID string, value any) (*services.NavigationState, error)
	GoBack(ctx context.Context, sessionID string) (*services.NavigationState, error)
	State(ctx context.Context, sessionID string) (*services.NavigationState, error)
}

// Handler returns the connection loop for the intake socket endpoint.
func Handler(service intakeRunner) func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		defer func() {
			_ = conn.Close()
		}()

		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var incoming event
			if err := json.Unmarshal(payload, &incoming); err != nil {
				writeFrame(conn, frame{Type: "error", Error: "invalid event payload"})
				continue
			}

			state, err := dispatch(service, incoming)
			if err != nil {
				writeFrame(conn, frame{Type: "error", Error: errorText(err)})
				continue
			}
			writeFrame(conn, frame{Type: "state", State: state})
		}
	}
}

func dispatch(service intakeRunner, incoming event) (*services.NavigationState, error) {
	ctx := context.Background()
	switch incoming.Type {
	case "start":
		return service.StartSession(ctx, incoming.Locale)
	case "answer":
		return service.AnswerQuestion(ctx, incoming.SessionID, incoming.QuestionID, incoming.Value)
	case "back":
		return service.GoBack(ctx, incoming.SessionID)
	case "state":
		return service.State(ctx, incoming.SessionID)
	default:
		return nil, errors.New("unsupported event type")
	}
}

func errorText(err error) string {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return "session not found"
	case errors.Is(err, services.ErrAnswerRequired):
		return "an answer is required before advancing"
	case errors.Is(err, services.ErrQuestionMismatch):
		return "answer does not target the current question"
	case errors.Is(err, services.ErrInvalidInput):
		return "invalid input"
	default:
		return "something went wrong"
	}
}

func writeFrame(conn *websocket.Conn, f frame) {
	payload, err := json.Marshal(f)
	if err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.TextMessage, payload)
}
