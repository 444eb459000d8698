package campaign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PromoWriter produces the promotional message text for one customer.
type PromoWriter interface {
	PromoMessage(ctx context.Context, customerName string) (string, error)
}

// WebhookWriter fetches campaign copy from the message-generation webhook.
// Each call builds its own request; the client is safe for concurrent use.
type WebhookWriter struct {
	url    string
	client *http.Client
}

func NewWebhookWriter(url string) *WebhookWriter {
	return &WebhookWriter{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type webhookRequest struct {
	CustomerName     string `json:"Customer_name"`
	PastConversation string `json:"past_conversation"`
}

type webhookResponse struct {
	Output string `json:"output"`
}

func (w *WebhookWriter) PromoMessage(ctx context.Context, customerName string) (string, error) {
	payload, err := json.Marshal(webhookRequest{
		CustomerName:     customerName,
		PastConversation: pastConversationSample,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("promo webhook returned status %d", resp.StatusCode)
	}

	var out []webhookResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode promo webhook response: %w", err)
	}
	if len(out) == 0 || out[0].Output == "" {
		return "", fmt.Errorf("promo webhook returned no message")
	}

	return out[0].Output, nil
}

// Tone/style example sent to the webhook so the generated copy matches
// previous campaigns.
const pastConversationSample = "Hey Lennart,\n\n" +
	"Hope this email finds you well! We noticed it's been a while since your " +
	"last visit to our restaurant, and we miss seeing you around.\n\n" +
	"Next week, we'd love to have you back! As a small token of our " +
	"appreciation, enjoy a special 20% discount on your meal. Plus, we've got " +
	"a surplus of fresh ingredients that we'd hate to see go to waste - so " +
	"it's a win-win!\n\n" +
	"Looking forward to serving you again soon.\n\nWarm regards!"
