package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
)

// chatProvider speaks the OpenAI chat/completions shape with an inline
// base64 image part. OpenRouter exposes the same envelope, so both providers
// share this implementation with different endpoints and headers.
type chatProvider struct {
	name    string
	cfg     common.ProviderConfig
	headers map[string]string
	http    *http.Client
	log     *slog.Logger
}

func newOpenAIProvider(cfg common.ProviderConfig, client *http.Client, log *slog.Logger) Provider {
	return &chatProvider{name: "openai", cfg: cfg, http: client, log: log}
}

func (p *chatProvider) Name() string { return p.name }

func (p *chatProvider) Extract(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return "", common.NewAppError("PROVIDER_CONFIG", fmt.Sprintf("no API key configured for provider %s", p.name), common.ErrInvalidInput)
	}

	body := map[string]any{
		"model":       p.cfg.Model,
		"temperature": 0,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": prompt},
					{"type": "image_url", "image_url": map[string]any{"url": dataURL(mimeType, image)}},
				},
			},
		},
	}

	headers := map[string]string{"Authorization": "Bearer " + p.cfg.APIKey}
	for k, v := range p.headers {
		headers[k] = v
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/chat/completions"
	raw, status, err := sendJSON(ctx, p.http, endpoint, body, headers, p.log)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", p.name, err)
	}
	if status < 200 || status >= 300 {
		// status only; upstream error bodies can carry keys and internals
		return "", fmt.Errorf("%s status %d", p.name, status)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode %s response: %w", p.name, err)
	}
	if len(cc.Choices) == 0 || strings.TrimSpace(cc.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("no completion text in %s response", p.name)
	}
	return cc.Choices[0].Message.Content, nil
}
