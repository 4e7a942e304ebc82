package googlechat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gchat-cardbot/internal/domain/model"
	"gchat-cardbot/internal/domain/ports"
)

// Webhook posts card payloads to a Google Chat incoming webhook.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.CardSender = (*Webhook)(nil)

// NewWebhook creates a webhook sender. webhookURL may be empty; in that case
// every Send call must supply a URL explicitly.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send performs one blocking POST of the JSON-encoded payload. An explicit
// webhookURL overrides the configured one. The response status and body are
// returned as data whatever the status code is; the sender does not decide
// whether a 4xx from the endpoint is a failure.
func (w *Webhook) Send(ctx context.Context, payload model.Payload, webhookURL string) (model.Delivery, error) {
	url := webhookURL
	if url == "" {
		url = w.webhookURL
	}
	if url == "" {
		return model.Delivery{}, model.ErrMissingWebhook
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return model.Delivery{}, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return model.Delivery{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return model.Delivery{}, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Delivery{}, fmt.Errorf("read response body: %w", err)
	}

	if w.logger != nil {
		w.logger.Info(ctx, "card posted to chat webhook", "status", resp.StatusCode)
	}

	return model.Delivery{Status: resp.StatusCode, Body: string(respBody)}, nil
}
