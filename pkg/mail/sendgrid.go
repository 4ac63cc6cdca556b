package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lateladelgol/storefront-backend/pkg/enums"
)

const defaultSendgridBaseURL = "https://api.sendgrid.com"

var errSendgridKeyRequired = errors.New("sendgrid api key is required")

// SendgridError carries the non-success response body so callers can
// surface it as a detail string.
type SendgridError struct {
	Status int
	Body   string
}

func (e *SendgridError) Error() string {
	return fmt.Sprintf("sendgrid: unexpected status %d: %s", e.Status, e.Body)
}

// SendgridClient speaks the SendGrid v3 mail/send REST API directly.
type SendgridClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// SendgridOption customizes the client, mainly for tests.
type SendgridOption func(*SendgridClient)

// WithSendgridBaseURL overrides the API host.
func WithSendgridBaseURL(baseURL string) SendgridOption {
	return func(c *SendgridClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithSendgridHTTPClient overrides the underlying HTTP client.
func WithSendgridHTTPClient(client *http.Client) SendgridOption {
	return func(c *SendgridClient) {
		c.httpClient = client
	}
}

// NewSendgridClient validates the credential and builds the client.
func NewSendgridClient(apiKey string, opts ...SendgridOption) (*SendgridClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errSendgridKeyRequired
	}
	c := &SendgridClient{
		apiKey:     apiKey,
		baseURL:    defaultSendgridBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Provider identifies this transport on audit records.
func (c *SendgridClient) Provider() enums.MailProvider {
	return enums.MailProviderSendgrid
}

type sendgridPayload struct {
	Personalizations []sendgridPersonalization `json:"personalizations"`
	From             sendgridAddress           `json:"from"`
	Subject          string                    `json:"subject,omitempty"`
	Content          []sendgridContent         `json:"content"`
}

type sendgridPersonalization struct {
	To      []sendgridAddress `json:"to"`
	Subject string            `json:"subject,omitempty"`
}

type sendgridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendgridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send posts the message to /v3/mail/send. Any 2xx is acceptance.
func (c *SendgridClient) Send(ctx context.Context, msg Message) error {
	payload := sendgridPayload{
		Personalizations: []sendgridPersonalization{{
			To: []sendgridAddress{{Email: msg.To}},
		}},
		From:    sendgridAddress{Email: msg.From, Name: msg.FromName},
		Subject: msg.Subject,
		Content: []sendgridContent{{Type: "text/html", Value: msg.HTML}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding sendgrid payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building sendgrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to sendgrid: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return &SendgridError{Status: res.StatusCode, Body: strings.TrimSpace(string(text))}
	}
	return nil
}
