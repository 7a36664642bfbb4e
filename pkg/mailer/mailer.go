package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.brevo.com/v3"

// Config holds transactional email API details.
type Config struct {
	APIKey      string
	SenderName  string
	SenderEmail string
	BaseURL     string // optional; tests point this at a stub server
}

// Client sends transactional email through the Brevo HTTP API. Delivery is
// best-effort; callers must never let a send failure reach the request path.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a new mailer client. The HTTP timeout bounds
// notification dispatch so it can never stall a caller indefinitely.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type recipient struct {
	Email string `json:"email"`
}

type sender struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendRequest struct {
	Sender      sender      `json:"sender"`
	To          []recipient `json:"to"`
	Cc          []recipient `json:"cc,omitempty"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

// Send delivers one email. The first recipient is the primary addressee;
// the rest are carbon-copied.
func (c *Client) Send(to []string, subject, htmlContent string) error {
	if c.cfg.APIKey == "" {
		return fmt.Errorf("mailer API key is not configured")
	}
	if len(to) == 0 {
		return fmt.Errorf("no recipients provided")
	}

	req := sendRequest{
		Sender:      sender{Name: c.cfg.SenderName, Email: c.cfg.SenderEmail},
		To:          []recipient{{Email: to[0]}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}
	for _, cc := range to[1:] {
		req.Cc = append(req.Cc, recipient{Email: cc})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.cfg.BaseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.cfg.APIKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
