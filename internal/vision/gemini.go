package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
)

// geminiProvider calls the generateContent endpoint with the image inlined
// in a dedicated inline_data part. Gemini takes the API key as a query
// parameter, not a header.
type geminiProvider struct {
	cfg  common.ProviderConfig
	http *http.Client
	log  *slog.Logger
}

func newGeminiProvider(cfg common.ProviderConfig, client *http.Client, log *slog.Logger) Provider {
	return &geminiProvider{cfg: cfg, http: client, log: log}
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Extract(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return "", common.NewAppError("PROVIDER_CONFIG", "no API key configured for provider gemini", common.ErrInvalidInput)
	}

	body := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": prompt},
					{"inline_data": map[string]any{
						"mime_type": mimeType,
						"data":      base64.StdEncoding.EncodeToString(image),
					}},
				},
			},
		},
		"generationConfig": map[string]any{"temperature": 0},
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(p.cfg.BaseURL, "/"), p.cfg.Model, url.QueryEscape(p.cfg.APIKey))
	raw, status, err := sendJSON(ctx, p.http, endpoint, body, nil, p.log)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("gemini status %d", status)
	}

	var gr struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no completion text in gemini response")
	}
	text := strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("no completion text in gemini response")
	}
	return text, nil
}
