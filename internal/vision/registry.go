package vision

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
)

// Registry holds the configured providers keyed by name. Adding a provider
// means one new implementation file and one entry here; nothing else in the
// pipeline changes.
type Registry struct {
	providers map[string]Provider
	def       string
}

// NewRegistry builds every known provider from the explicit configuration.
// Providers with no key are still registered: a missing key is a hard,
// descriptive failure at call time, never a silent skip.
func NewRegistry(cfg common.VisionConfig, httpClient *http.Client, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 45 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	providers := map[string]Provider{
		"openai":     newOpenAIProvider(cfg.Providers["openai"], httpClient, log),
		"openrouter": newOpenRouterProvider(cfg.Providers["openrouter"], httpClient, log),
		"gemini":     newGeminiProvider(cfg.Providers["gemini"], httpClient, log),
		"anthropic":  newAnthropicProvider(cfg.Providers["anthropic"], httpClient, log),
	}

	def := strings.ToLower(cfg.DefaultProvider)
	if _, ok := providers[def]; !ok {
		def = "openai"
	}
	return &Registry{providers: providers, def: def}
}

// Get resolves a provider by name; empty resolves the configured default.
func (r *Registry) Get(name string) (Provider, bool) {
	if strings.TrimSpace(name) == "" {
		name = r.def
	}
	p, ok := r.providers[strings.ToLower(name)]
	return p, ok
}

// Default returns the configured default provider name.
func (r *Registry) Default() string { return r.def }
