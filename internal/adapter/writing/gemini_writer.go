package writing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gchat-cardbot/internal/domain/model"
	"gchat-cardbot/internal/domain/ports"
)

const (
	geminiEndpointTemplate = "https://generativelanguage.googleapis.com/v1/models/%s:generateContent?key=%s"

	// Google Chat renders textParagraph widgets poorly past a few hundred
	// characters, so summaries are clamped well below the API limit.
	maxSummaryLength = 800
)

// GeminiWriter composes a short status narrative using Gemini's REST API.
type GeminiWriter struct {
	httpClient *http.Client
	apiKey     string
	model      string
	logger     ports.Logger
}

var _ ports.SummaryWriter = (*GeminiWriter)(nil)

// NewGeminiWriter constructs a GeminiWriter.
func NewGeminiWriter(apiKey, modelName string, timeout time.Duration, logger ports.Logger) *GeminiWriter {
	return &GeminiWriter{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		model:      modelName,
		logger:     logger,
	}
}

// Compose generates a one-paragraph summary of the check results.
func (g *GeminiWriter) Compose(ctx context.Context, results []model.CheckResult) (string, error) {
	if g.apiKey == "" || g.model == "" {
		return "", fmt.Errorf("gemini writer not configured")
	}

	body, err := g.buildRequestBody(g.buildPrompt(results))
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf(geminiEndpointTemplate, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var payload struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range payload.Candidates {
		for _, part := range candidate.Content.Parts {
			builder.WriteString(part.Text)
		}
		break
	}
	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	if g.logger != nil {
		g.logger.Info(ctx, "gemini summary composed", "chars", len(text))
	}
	return trimText(text, maxSummaryLength), nil
}

func (g *GeminiWriter) buildPrompt(results []model.CheckResult) string {
	var builder strings.Builder
	builder.WriteString("Summarize the following service health checks in one short paragraph ")
	builder.WriteString("for an operations chat channel. Plain text, no markdown headings, max 3 sentences.\n\n")
	for _, r := range results {
		if r.Err != "" {
			builder.WriteString(fmt.Sprintf("- %s: unreachable (%s)\n", r.Target.Name, r.Err))
			continue
		}
		state := "down"
		if r.Up {
			state = "up"
		}
		builder.WriteString(fmt.Sprintf("- %s: %s, HTTP %d, %s\n", r.Target.Name, state, r.Status, r.Latency.Round(time.Millisecond)))
	}
	return builder.String()
}

func (g *GeminiWriter) buildRequestBody(prompt string) ([]byte, error) {
	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.3,
			"maxOutputTokens": 512,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal gemini payload: %w", err)
	}
	return body, nil
}

func trimText(content string, limit int) string {
	if len(content) <= limit {
		return content
	}
	trimmed := content[:limit]
	if lastSpace := strings.LastIndex(trimmed, " "); lastSpace > 0 {
		trimmed = trimmed[:lastSpace]
	}
	return trimmed + "..."
}
