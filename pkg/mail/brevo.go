package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoSender sends emails through the Brevo transactional HTTP API.
// Each send is a single synchronous call with no persistent connection state.
type BrevoSender struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewBrevoSender creates a new Brevo email sender.
func NewBrevoSender(apiKey string) *BrevoSender {
	return &BrevoSender{
		apiKey:     apiKey,
		endpoint:   brevoEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type brevoAddress struct {
	Email string `json:"email"`
}

type brevoSendRequest struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	ReplyTo     *brevoAddress  `json:"replyTo,omitempty"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// Send sends an email using the Brevo API.
func (s *BrevoSender) Send(ctx context.Context, msg Message) error {
	payload := brevoSendRequest{
		Sender:      brevoAddress{Email: msg.From},
		To:          []brevoAddress{{Email: msg.To}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &brevoAddress{Email: msg.ReplyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("brevo: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("brevo: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", s.apiKey)

	res, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("brevo: request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return &StatusError{
			Provider:   "brevo",
			StatusCode: res.StatusCode,
			Body:       string(buf),
		}
	}

	return nil
}
