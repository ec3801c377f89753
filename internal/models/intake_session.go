package models

import "time"

// IntakeSession holds one client's questionnaire progress. Answers maps
// question id to the raw value (string, float64, or list of labels); keys are
// overwritten on re-answer, never removed.
type IntakeSession struct {
	ID           string         `json:"id"`
	Locale       string         `json:"locale"`
	Answers      map[string]any `json:"answers"`
	CurrentIndex int            `json:"current_index"`
	Completed    bool           `json:"completed"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
