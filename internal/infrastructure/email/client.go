package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"fiscalai/internal/config"
)

var ErrEmailNotConfigured = errors.New("email integration not configured")

// Client sends transactional email through a JSON HTTP API.
type Client struct {
	apiURL     string
	apiKey     string
	fromName   string
	httpClient *http.Client
}

func NewClient(cfg config.EmailConfig) (*Client, error) {
	if cfg.APIURL == "" {
		log.Printf("[email][gateway] missing EMAIL_API_URL")
		return nil, ErrEmailNotConfigured
	}
	return &Client{
		apiURL:   cfg.APIURL,
		apiKey:   cfg.APIKey,
		fromName: cfg.FromName,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

type sendRequest struct {
	FromName string `json:"from_name"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Type     string `json:"type,omitempty"`
}

// Send delivers one message. Any non-2xx answer from the email API is an
// error; the caller decides the user-facing message.
func (c *Client) Send(ctx context.Context, to, subject, body, messageType string) error {
	payload, err := json.Marshal(sendRequest{
		FromName: c.fromName,
		To:       to,
		Subject:  subject,
		Body:     body,
		Type:     messageType,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email api failed with status code: %d", resp.StatusCode)
	}
	return nil
}
