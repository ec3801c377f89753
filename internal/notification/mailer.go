package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MailAPIService sends plan emails through a JSON mail API. It implements
// Dispatcher.
type MailAPIService struct {
	baseURL    string
	apiKey     string
	fromEmail  string
	httpClient *http.Client
}

func NewMailAPIService(baseURL, apiKey, fromEmail string) *MailAPIService {
	return &MailAPIService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (s *MailAPIService) Send(ctx context.Context, recipientEmail, subject, body string) error {
	payload, err := json.Marshal(mailMessage{
		From:    s.fromEmail,
		To:      recipientEmail,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
