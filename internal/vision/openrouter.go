package vision

import (
	"log/slog"
	"net/http"

	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
)

// OpenRouter proxies many vision models behind the OpenAI chat shape. The
// attribution headers are optional but keep requests identifiable upstream.
func newOpenRouterProvider(cfg common.ProviderConfig, client *http.Client, log *slog.Logger) Provider {
	return &chatProvider{
		name: "openrouter",
		cfg:  cfg,
		headers: map[string]string{
			"HTTP-Referer": "https://github.com/oghenetejiriorukpegmail/expense-tracker",
			"X-Title":      "expense-tracker",
		},
		http: client,
		log:  log,
	}
}
