package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"beautybar/pkg/logger"
	"beautybar/pkg/sanitizer"
)

const termiiSendURL = "https://api.ng.termii.com/api/sms/send"

type TermiiClient struct {
	apiKey   string
	senderID string
	client   *http.Client
	log      *logger.Logger
}

type termiiSendRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	SMS     string `json:"sms"`
	Type    string `json:"type"`
	Channel string `json:"channel"`
	APIKey  string `json:"api_key"`
}

type termiiSendResponse struct {
	Code      string `json:"code"`
	MessageID string `json:"message_id"`
	Message   string `json:"message"`
}

func NewTermiiClient(apiKey, senderID string, log *logger.Logger) *TermiiClient {
	return &TermiiClient{
		apiKey:   apiKey,
		senderID: senderID,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

func (c *TermiiClient) Send(ctx context.Context, to, message string) bool {
	if c.apiKey == "" {
		c.log.Warn("Termii API key not configured, skipping SMS")
		return false
	}

	phone := sanitizer.NormalizePhone(to)

	payload := termiiSendRequest{
		To:      phone,
		From:    c.senderID,
		SMS:     message,
		Type:    "plain",
		Channel: "dnd",
		APIKey:  c.apiKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("Failed to marshal SMS payload", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, termiiSendURL, bytes.NewReader(body))
	if err != nil {
		c.log.Error("Failed to build SMS request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Failed to send SMS", "error", err, "phone", phone)
		return false
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("Failed to read SMS response", "error", err)
		return false
	}

	var result termiiSendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		c.log.Error("Failed to parse SMS response", "error", err, "body", string(respBody))
		return false
	}

	// Termii signals acceptance with code "ok"; older gateway responses
	// carry only a message_id.
	if result.Code == "ok" || result.MessageID != "" {
		c.log.Info("SMS sent successfully", "phone", phone, "message_id", result.MessageID)
		return true
	}

	c.log.Error("SMS rejected by provider", "phone", phone, "code", result.Code, "message", result.Message)
	return false
}
