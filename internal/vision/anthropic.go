package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
)

// anthropicProvider calls the messages endpoint with the image as a base64
// source block. The key travels in the x-api-key header.
type anthropicProvider struct {
	cfg  common.ProviderConfig
	http *http.Client
	log  *slog.Logger
}

func newAnthropicProvider(cfg common.ProviderConfig, client *http.Client, log *slog.Logger) Provider {
	return &anthropicProvider{cfg: cfg, http: client, log: log}
}

func (p *anthropicProvider) Name() string { return "anthropic" }

func (p *anthropicProvider) Extract(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return "", common.NewAppError("PROVIDER_CONFIG", "no API key configured for provider anthropic", common.ErrInvalidInput)
	}

	body := map[string]any{
		"model":      p.cfg.Model,
		"max_tokens": 1024,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "image",
						"source": map[string]any{
							"type":       "base64",
							"media_type": mimeType,
							"data":       base64.StdEncoding.EncodeToString(image),
						},
					},
					{"type": "text", "text": prompt},
				},
			},
		},
	}

	headers := map[string]string{
		"x-api-key":         p.cfg.APIKey,
		"anthropic-version": "2023-06-01",
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/messages"
	raw, status, err := sendJSON(ctx, p.http, endpoint, body, headers, p.log)
	if err != nil {
		return "", fmt.Errorf("anthropic request: %w", err)
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("anthropic status %d", status)
	}

	var ar struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &ar); err != nil {
		return "", fmt.Errorf("decode anthropic response: %w", err)
	}
	for _, c := range ar.Content {
		if c.Type == "text" && strings.TrimSpace(c.Text) != "" {
			return c.Text, nil
		}
	}
	return "", fmt.Errorf("no completion text in anthropic response")
}
