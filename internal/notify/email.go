package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"beautybar/pkg/logger"
)

const sendGridSendURL = "https://api.sendgrid.com/v3/mail/send"

type SendGridClient struct {
	apiKey string
	from   string
	client *http.Client
	log    *logger.Logger
}

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridMail struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func NewSendGridClient(apiKey, from string, log *logger.Logger) *SendGridClient {
	return &SendGridClient{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

func (c *SendGridClient) Configured() bool {
	return c.apiKey != ""
}

func (c *SendGridClient) Send(ctx context.Context, to, subject, html string) bool {
	if !c.Configured() {
		c.log.Warn("SendGrid API key not configured, skipping email")
		return false
	}

	payload := sendGridMail{
		Personalizations: []sendGridPersonalization{
			{To: []sendGridAddress{{Email: to}}},
		},
		From:    sendGridAddress{Email: c.from},
		Subject: subject,
		Content: []sendGridContent{
			{Type: "text/html", Value: html},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("Failed to marshal email payload", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridSendURL, bytes.NewReader(body))
	if err != nil {
		c.log.Error("Failed to build email request", "error", err)
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Failed to send email", "error", err, "to", to)
		return false
	}
	defer resp.Body.Close()

	// SendGrid acknowledges accepted mail with 202.
	if resp.StatusCode != http.StatusAccepted {
		c.log.Error("Email rejected by provider", "to", to, "status", resp.StatusCode)
		return false
	}

	c.log.Info("Email sent successfully", "to", to, "subject", subject)
	return true
}

// SenderAddress is the business mailbox; booking notifications go here.
func (c *SendGridClient) SenderAddress() string {
	return c.from
}
