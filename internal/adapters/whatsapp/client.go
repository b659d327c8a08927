package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TextMessage is the WhatsApp Cloud API text payload.
type TextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// Client handles WhatsApp Cloud API communication.
type Client struct {
	baseURL       string
	phoneNumberID string
	token         string
	httpClient    *http.Client
}

// NewClient creates a WhatsApp Cloud API client.
func NewClient(phoneNumberID, token string) *Client {
	return &Client{
		baseURL:       "https://graph.facebook.com/v19.0",
		phoneNumberID: phoneNumberID,
		token:         token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendText sends a simple text message.
func (c *Client) SendText(ctx context.Context, phone string, message string) error {
	payload := TextMessage{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
	}
	payload.Text.Body = message

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return nil
}
