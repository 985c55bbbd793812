package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Email is a rendered message ready for dispatch.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends rendered emails. The production implementation talks to the
// SendGrid v3 API; tests swap in a capturing fake.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

const sendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

type sendGridMailer struct {
	apiKey    string
	fromEmail string
	client    *http.Client
}

func NewSendGridMailer(apiKey, fromEmail string, timeout time.Duration) Mailer {
	return &sendGridMailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

func (m *sendGridMailer) Send(ctx context.Context, email Email) error {
	payload := sendGridRequest{
		Personalizations: []sendGridPersonalization{
			{To: []sendGridAddress{{Email: email.To}}},
		},
		From:    sendGridAddress{Email: m.fromEmail},
		Subject: email.Subject,
		// plain text part must come before html per the SendGrid API
		Content: []sendGridContent{
			{Type: "text/plain", Value: email.Text},
			{Type: "text/html", Value: email.HTML},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("email call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}
