package vision

import (
	"context"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
)

// Provider is one external vision-extraction backend. Implementations build
// their own request envelope and issue exactly one network call; no retries
// and no backoff happen at this layer.
type Provider interface {
	Name() string
	// Extract sends the image with the template instruction and returns the
	// provider's textual completion.
	Extract(ctx context.Context, image []byte, mimeType, prompt string) (string, error)
}

// Request is one extraction attempt. Ephemeral, never persisted.
type Request struct {
	Image    []byte
	MimeType string
	Template constants.Template
	Provider string // empty means the configured default
}

// Result carries the provider's raw response plus the typed fields parsed
// from it. On failure the raw text is still preserved for later inspection.
type Result struct {
	RawText string
	Fields  map[string]any
}

// Extractor is the capability the dispatcher depends on.
type Extractor interface {
	Extract(ctx context.Context, req Request) (Result, error)
}
